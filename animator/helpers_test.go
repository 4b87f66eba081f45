package animator

import (
	"fmt"
	"image"

	"github.com/alacrity-engine/core/math/geometry"
)

// recorder is a Sink that logs every call.
type recorder struct {
	calls []string
}

func (r *recorder) SetTextureRegion(region TextureRegion) {
	r.calls = append(r.calls, fmt.Sprintf("texture %d %d,%d %dx%d",
		region.Index, region.X, region.Y, region.Width, region.Height))
}

func (r *recorder) SetBlendMode(mode BlendMode) {
	r.calls = append(r.calls, fmt.Sprintf("blendmode %s", mode))
}

func (r *recorder) SetPivot(pivot geometry.Vec) {
	r.calls = append(r.calls, fmt.Sprintf("pivot %v,%v", pivot.X, pivot.Y))
}

func (r *recorder) SetPosition(position geometry.Vec) {
	r.calls = append(r.calls, fmt.Sprintf("position %v,%v", position.X, position.Y))
}

func (r *recorder) SetRotation(rotation float64) {
	r.calls = append(r.calls, fmt.Sprintf("rotation %v", rotation))
}

func (r *recorder) SetScale(scale geometry.Vec) {
	r.calls = append(r.calls, fmt.Sprintf("scale %v,%v", scale.X, scale.Y))
}

func (r *recorder) SetAlpha(alpha float64) {
	r.calls = append(r.calls, fmt.Sprintf("alpha %v", alpha))
}

func (r *recorder) reset() {
	r.calls = nil
}

// imageStub hands out blank 64x64 images.
type imageStub struct {
	loads []ImageRef
	fail  bool
}

func (s *imageStub) LoadImage(ref ImageRef) (image.Image, error) {
	s.loads = append(s.loads, ref)

	if s.fail {
		return nil, fmt.Errorf("cannot open %s", ref.File)
	}

	return image.NewRGBA(image.Rect(0, 0, 64, 64)), nil
}

func intp(v int) *int { return &v }
func floatp(v float64) *float64 { return &v }
func vecp(x, y float64) *geometry.Vec {
	v := geometry.V(x, y)
	return &v
}
func blendp(m BlendMode) *BlendMode { return &m }
