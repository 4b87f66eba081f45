package resource

import (
	"github.com/alacrity-engine/core/math/geometry"
	"github.com/alacrity-engine/keyframe-animator/animator"
)

// Point is a serialized vector.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// BakedTexture is the serialized
// texture region of a frame.
type BakedTexture struct {
	Index  int    `yaml:"index"`
	Atlas  string `yaml:"atlas"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// BakedFrame is the full pose of
// the render object at a frame.
type BakedFrame struct {
	Frame     int           `yaml:"frame"`
	Texture   *BakedTexture `yaml:"texture,omitempty"`
	BlendMode string        `yaml:"blendmode,omitempty"`
	Pivot     *Point        `yaml:"pivot,omitempty"`
	Position  *Point        `yaml:"position,omitempty"`
	Rotation  *float64      `yaml:"rotation,omitempty"`
	Scale     *Point        `yaml:"scale,omitempty"`
	Alpha     *float64      `yaml:"alpha,omitempty"`
}

// Bake plays the animation from the start and records the pose
// after every frame. The pose must be the sink of the animator
// and both must be fresh: Reset only pushes the fields the first
// frame declares, so earlier playback would leak into the result.
func Bake(anim *animator.Animator, pose *animator.Pose) []BakedFrame {
	frames := make([]BakedFrame, 0, anim.Duration())

	anim.Reset()

	for i := 0; i < anim.Duration(); i++ {
		anim.Tick(i)
		frames = append(frames, bakeFrame(i, pose.Snapshot()))
	}

	return frames
}

func bakeFrame(index int, pose animator.Pose) BakedFrame {
	frame := BakedFrame{
		Frame:    index,
		Pivot:    bakePoint(pose.Pivot),
		Position: bakePoint(pose.Position),
		Rotation: pose.Rotation,
		Scale:    bakePoint(pose.Scale),
		Alpha:    pose.Alpha,
	}

	if pose.Texture != nil {
		frame.Texture = &BakedTexture{
			Index:  pose.Texture.Index,
			Atlas:  pose.Texture.Atlas,
			X:      pose.Texture.X,
			Y:      pose.Texture.Y,
			Width:  pose.Texture.Width,
			Height: pose.Texture.Height,
		}
	}

	if pose.BlendMode != nil {
		frame.BlendMode = string(*pose.BlendMode)
	}

	return frame
}

func bakePoint(v *geometry.Vec) *Point {
	if v == nil {
		return nil
	}

	return &Point{X: v.X, Y: v.Y}
}
