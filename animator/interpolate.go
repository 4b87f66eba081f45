package animator

import (
	"fmt"

	"github.com/alacrity-engine/core/math/geometry"
)

// Property names an animatable keyframe property.
type Property int

const (
	PropertyPosition Property = iota
	PropertyRotation
	PropertyScale
	PropertyAlpha
	PropertyPivot
	PropertyTexture
	PropertyBlendMode
)

// InterpolatedProperties are the properties filled
// between keyframes, in the order they are processed.
var InterpolatedProperties = []Property{
	PropertyPosition,
	PropertyRotation,
	PropertyScale,
	PropertyAlpha,
}

func (p Property) String() string {
	switch p {
	case PropertyPosition:
		return "position"
	case PropertyRotation:
		return "rotation"
	case PropertyScale:
		return "scale"
	case PropertyAlpha:
		return "alpha"
	case PropertyPivot:
		return "pivot"
	case PropertyTexture:
		return "texture"
	case PropertyBlendMode:
		return "blendmode"
	}

	return fmt.Sprintf("Property(%d)", int(p))
}

// Interpolate fills the holes of the property between
// every two frames that declare it with linearly
// interpolated values. Frames after the last
// declaration are left untouched.
func (tl Timeline) Interpolate(p Property) error {
	switch p {
	case PropertyPosition:
		interpolate(tl, func(kf *Keyframe) **geometry.Vec { return &kf.Position }, lerpVec)
	case PropertyScale:
		interpolate(tl, func(kf *Keyframe) **geometry.Vec { return &kf.Scale }, lerpVec)
	case PropertyRotation:
		interpolate(tl, func(kf *Keyframe) **float64 { return &kf.Rotation }, lerpScalar)
	case PropertyAlpha:
		interpolate(tl, func(kf *Keyframe) **float64 { return &kf.Alpha }, lerpScalar)
	default:
		return fmt.Errorf("interpolate %s: %w", p, ErrNotInterpolable)
	}

	return nil
}

// interpolate runs a single left-to-right pass for the field
// selected by the accessor. Each run starts at a declared
// frame and ends at the next one, which then starts
// the following run.
func interpolate[T any](tl Timeline, field func(*Keyframe) **T,
	lerp func(from, to T, distance, step int) T) {
	for index := 0; index < len(tl); index++ {
		if tl[index] == nil || *field(tl[index]) == nil {
			continue
		}

		from := **field(tl[index])
		target := index + 1

		for target < len(tl) && (tl[target] == nil || *field(tl[target]) == nil) {
			target++
		}

		// No later declaration: the value is
		// carried forward by playback.
		if target >= len(tl) {
			return
		}

		to := **field(tl[target])

		for j := index + 1; j < target; j++ {
			if tl[j] == nil {
				tl[j] = &Keyframe{}
			}

			value := lerp(from, to, target-index, j-index)
			*field(tl[j]) = &value
		}

		index = target - 1
	}
}

func lerpScalar(from, to float64, distance, step int) float64 {
	delta := (to - from) / float64(distance)
	return from + delta*float64(step)
}

func lerpVec(from, to geometry.Vec, distance, step int) geometry.Vec {
	return geometry.V(
		lerpScalar(from.X, to.X, distance, step),
		lerpScalar(from.Y, to.Y, distance, step))
}
