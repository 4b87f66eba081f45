package animator

import (
	"github.com/alacrity-engine/core/math/geometry"
)

// BlendMode is the tag of a blend mode
// understood by the host render system.
type BlendMode string

const (
	BlendNormal   BlendMode = "NORMAL"
	BlendAdd      BlendMode = "ADD"
	BlendMultiply BlendMode = "MULTIPLY"
	BlendScreen   BlendMode = "SCREEN"
)

// Known reports whether the blend mode is
// one of the modes the render system supports.
func (mode BlendMode) Known() bool {
	switch mode {
	case BlendNormal, BlendAdd, BlendMultiply, BlendScreen:
		return true
	}

	return false
}

// Keyframe is a partial pose at a single frame.
// A nil field means the property is not
// declared at this frame.
type Keyframe struct {
	Texture   *int
	BlendMode *BlendMode
	Pivot     *geometry.Vec
	Position  *geometry.Vec
	Rotation  *float64
	Scale     *geometry.Vec
	Alpha     *float64
}

// Clone returns a copy of the keyframe that
// shares no memory with the original.
func (kf *Keyframe) Clone() *Keyframe {
	if kf == nil {
		return nil
	}

	return &Keyframe{
		Texture:   clonePtr(kf.Texture),
		BlendMode: clonePtr(kf.BlendMode),
		Pivot:     clonePtr(kf.Pivot),
		Position:  clonePtr(kf.Position),
		Rotation:  clonePtr(kf.Rotation),
		Scale:     clonePtr(kf.Scale),
		Alpha:     clonePtr(kf.Alpha),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p
	return &v
}
