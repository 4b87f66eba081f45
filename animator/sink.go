package animator

import (
	"github.com/alacrity-engine/core/math/geometry"
)

// Sink receives pose mutations for the
// renderable object driven by an Animator.
// The animator never reads values back.
type Sink interface {
	SetTextureRegion(region TextureRegion)
	SetBlendMode(mode BlendMode)
	SetPivot(pivot geometry.Vec)
	SetPosition(position geometry.Vec)
	SetRotation(rotation float64)
	SetScale(scale geometry.Vec)
	SetAlpha(alpha float64)
}

// Pose is a Sink that keeps the last value set
// for every field. Fields are nil until set.
type Pose struct {
	Texture   *TextureRegion
	BlendMode *BlendMode
	Pivot     *geometry.Vec
	Position  *geometry.Vec
	Rotation  *float64
	Scale     *geometry.Vec
	Alpha     *float64
}

func (p *Pose) SetTextureRegion(region TextureRegion) { p.Texture = &region }
func (p *Pose) SetBlendMode(mode BlendMode) { p.BlendMode = &mode }
func (p *Pose) SetPivot(pivot geometry.Vec) { p.Pivot = &pivot }
func (p *Pose) SetPosition(position geometry.Vec) { p.Position = &position }
func (p *Pose) SetRotation(rotation float64) { p.Rotation = &rotation }
func (p *Pose) SetScale(scale geometry.Vec) { p.Scale = &scale }
func (p *Pose) SetAlpha(alpha float64) { p.Alpha = &alpha }

// Snapshot returns a copy of the pose.
func (p *Pose) Snapshot() Pose {
	return Pose{
		Texture:   clonePtr(p.Texture),
		BlendMode: clonePtr(p.BlendMode),
		Pivot:     clonePtr(p.Pivot),
		Position:  clonePtr(p.Position),
		Rotation:  clonePtr(p.Rotation),
		Scale:     clonePtr(p.Scale),
		Alpha:     clonePtr(p.Alpha),
	}
}
