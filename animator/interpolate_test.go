package animator

import (
	"errors"
	"testing"

	"github.com/alacrity-engine/core/math/geometry"
)

func TestInterpolateScalarExact(t *testing.T) {
	timeline := BuildTimeline([]*Keyframe{
		{Alpha: floatp(0)}, nil, nil, nil, {Alpha: floatp(8)},
	})

	err := timeline.Interpolate(PropertyAlpha)

	if err != nil {
		t.Fatal(err)
	}

	for i, want := range []float64{0, 2, 4, 6, 8} {
		if got := timeline[i].Alpha; got == nil || *got != want {
			t.Errorf("frame %d: expected alpha %v, got %v", i, want, got)
		}
	}
}

func TestInterpolateVector(t *testing.T) {
	timeline := BuildTimeline([]*Keyframe{
		{Position: vecp(0, 0)}, nil, nil, nil, nil, {Position: vecp(10, 20)},
	})

	err := timeline.Interpolate(PropertyPosition)

	if err != nil {
		t.Fatal(err)
	}

	want := []geometry.Vec{
		geometry.V(0, 0),
		geometry.V(2, 4),
		geometry.V(4, 8),
		geometry.V(6, 12),
		geometry.V(8, 16),
		geometry.V(10, 20),
	}

	for i := range want {
		if got := timeline[i].Position; got == nil || *got != want[i] {
			t.Errorf("frame %d: expected %v, got %v", i, want[i], got)
		}
	}
}

func TestInterpolateFractional(t *testing.T) {
	timeline := BuildTimeline([]*Keyframe{
		{Rotation: floatp(0)}, nil, {Rotation: floatp(1)},
	})

	timeline.Interpolate(PropertyRotation)

	if got := *timeline[1].Rotation; got != 0.5 {
		t.Errorf("expected 0.5, got %v", got)
	}
}

func TestInterpolateChainsSegments(t *testing.T) {
	timeline := BuildTimeline([]*Keyframe{
		{Scale: vecp(1, 1)}, nil, {Scale: vecp(3, 3)}, nil, nil, {Scale: vecp(0, 6)},
	})

	timeline.Interpolate(PropertyScale)

	want := []geometry.Vec{
		geometry.V(1, 1),
		geometry.V(2, 2),
		geometry.V(3, 3),
		geometry.V(2, 4),
		geometry.V(1, 5),
		geometry.V(0, 6),
	}

	for i := range want {
		if got := timeline[i].Scale; got == nil || *got != want[i] {
			t.Errorf("frame %d: expected %v, got %v", i, want[i], got)
		}
	}
}

func TestInterpolateAdjacentIsNoop(t *testing.T) {
	timeline := BuildTimeline([]*Keyframe{
		{Alpha: floatp(0)}, {Alpha: floatp(1)}, nil,
	})

	timeline.Interpolate(PropertyAlpha)

	if *timeline[0].Alpha != 0 || *timeline[1].Alpha != 1 {
		t.Error("declared values changed")
	}

	if timeline[2] != nil {
		t.Errorf("expected the tail to stay a hole, got %+v", timeline[2])
	}
}

func TestInterpolateLeavesTailHoles(t *testing.T) {
	timeline := BuildTimeline([]*Keyframe{
		nil, {Rotation: floatp(2)}, nil, {Texture: intp(1)}, nil,
	})

	timeline.Interpolate(PropertyRotation)

	if timeline[0] != nil || timeline[2] != nil || timeline[4] != nil {
		t.Error("holes were filled without a later keyframe")
	}

	if timeline[3].Rotation != nil {
		t.Error("rotation written after the last keyframe")
	}
}

func TestInterpolateIndependence(t *testing.T) {
	timeline := BuildTimeline([]*Keyframe{
		{Alpha: floatp(0), Rotation: floatp(10)},
		{Scale: vecp(2, 2)},
		nil,
		{Alpha: floatp(3)},
		{Rotation: floatp(0)},
	})

	timeline.Interpolate(PropertyAlpha)

	for i, kf := range timeline {
		if kf == nil {
			continue
		}

		if i > 0 && i < 4 && kf.Rotation != nil {
			t.Errorf("frame %d: rotation written by alpha interpolation", i)
		}

		if i != 1 && kf.Scale != nil {
			t.Errorf("frame %d: scale written by alpha interpolation", i)
		}
	}

	if *timeline[1].Alpha != 1 || *timeline[2].Alpha != 2 {
		t.Errorf("unexpected alpha values %v %v", *timeline[1].Alpha, *timeline[2].Alpha)
	}

	if timeline[4].Alpha != nil {
		t.Error("alpha written past its last keyframe")
	}

	timeline.Interpolate(PropertyRotation)

	for i, want := range []float64{10, 7.5, 5, 2.5, 0} {
		if got := *timeline[i].Rotation; got != want {
			t.Errorf("frame %d: expected rotation %v, got %v", i, want, got)
		}
	}
}

func TestInterpolateRejectsDiscreteProperties(t *testing.T) {
	for _, p := range []Property{PropertyPivot, PropertyTexture, PropertyBlendMode} {
		timeline := BuildTimeline([]*Keyframe{{Pivot: vecp(0, 0)}, nil, {Pivot: vecp(2, 2)}})

		err := timeline.Interpolate(p)

		if !errors.Is(err, ErrNotInterpolable) {
			t.Errorf("%s: expected ErrNotInterpolable, got %v", p, err)
		}

		if timeline[1] != nil {
			t.Errorf("%s: hole filled", p)
		}
	}
}
