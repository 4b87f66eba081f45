package animator

import (
	"fmt"
	"image"
	"io"
	"log"

	"github.com/alacrity-engine/core/math/geometry"
)

// Animation is the raw description of a keyframe animation.
type Animation struct {
	// Type is an arbitrary tag of the animation.
	Type string
	// Textures are the global tile indices referenced
	// by the timeline, sorted ascending.
	Textures []int
	// Timeline holds one record per frame,
	// nil for frames without a keyframe.
	Timeline []*Keyframe
}

// Option configures an Animator.
type Option func(*Animator)

// WithLogger sets the logger for construction diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(a *Animator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithDefaultPose makes Seek push the fields of the pose for
// every property not determined by the visited frames. Nil
// fields of the default pose keep the sink value. The pose
// holds sink values: a default position is pushed as is,
// not offset by the pivot like timeline positions.
func WithDefaultPose(pose Pose) Option {
	return func(a *Animator) {
		snapshot := pose.Snapshot()
		a.defaults = &snapshot
	}
}

// Animator plays a keyframe timeline back
// onto a Sink. It is not safe for concurrent use.
type Animator struct {
	kind     string
	textures map[int]TextureRegion
	timeline Timeline
	sink     Sink
	defaults *Pose
	logger   *log.Logger

	// pivot is the last pivot pushed to the sink. The sink
	// can't be queried, so positions are computed against it.
	pivot geometry.Vec
}

// New creates an animator. Every atlas image is loaded once through
// the provider, the referenced tile indices are resolved and the
// holes of the timeline are filled by interpolation.
func New(anim Animation, atlases []AtlasSpec, provider ImageProvider,
	sink Sink, opts ...Option) (*Animator, error) {
	if sink == nil {
		return nil, fmt.Errorf("animation '%s': nil sink", anim.Type)
	}

	a := &Animator{
		kind:   anim.Type,
		sink:   sink,
		logger: log.New(io.Discard, "", 0),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.defaults != nil && a.defaults.Pivot != nil {
		a.pivot = *a.defaults.Pivot
	}

	// Load the atlas images.
	images := make([]image.Image, len(atlases))

	for i, atlas := range atlases {
		err := atlas.Validate()

		if err != nil {
			return nil, err
		}

		if provider == nil {
			continue
		}

		img, err := provider.LoadImage(atlas.Source)

		if err != nil {
			return nil, fmt.Errorf(
				"load image of atlas '%s' (%s): %w", atlas.Name, atlas.Source, err)
		}

		images[i] = img
	}

	// Resolve the textures.
	a.textures = ResolveTextures(anim.Textures, atlases, images)

	for _, index := range anim.Textures {
		if region, ok := a.textures[index]; ok {
			a.logger.Printf("adding texture %d from atlas '%s' at %v",
				index, region.Atlas, region.Rect())
		} else {
			a.logger.Printf("texture %d is not covered by any atlas", index)
		}
	}

	// Build the timeline and fill the holes.
	a.timeline = BuildTimeline(anim.Timeline)

	for _, property := range InterpolatedProperties {
		err := a.timeline.Interpolate(property)

		if err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Type returns the type tag of the animation.
func (a *Animator) Type() string {
	return a.kind
}

// Duration returns the number of frames.
func (a *Animator) Duration() int {
	return a.timeline.Len()
}

// Texture returns the region bound to the global tile index.
func (a *Animator) Texture(index int) (TextureRegion, bool) {
	region, ok := a.textures[index]
	return region, ok
}

// Frame returns a copy of the interpolated keyframe
// at the index or nil if the frame is a hole.
func (a *Animator) Frame(index int) *Keyframe {
	return a.timeline.At(index).Clone()
}

// Reset seeks to the first frame.
func (a *Animator) Reset() {
	a.Seek(0)
}

// Seek computes the pose at the frame by replaying every
// frame from the start and pushes the fields it determined.
// Fields no visited frame declares are left untouched unless
// a default pose is configured.
func (a *Animator) Seek(frame int) {
	a.apply(a.lastKnown(frame), a.defaults)
}

// SeekStrict is Seek that fails on a frame outside the timeline
// or an unresolved texture. Nothing is pushed on failure.
func (a *Animator) SeekStrict(frame int) error {
	err := a.checkRange(frame)

	if err != nil {
		return fmt.Errorf("seek: %w", err)
	}

	pose := a.lastKnown(frame)
	err = a.checkTexture(pose)

	if err != nil {
		return fmt.Errorf("seek to frame %d: %w", frame, err)
	}

	a.apply(pose, a.defaults)

	return nil
}

// Tick applies the single frame. It relies on continuous
// forward playback: fields absent from the frame keep
// the value the sink already holds.
func (a *Animator) Tick(frame int) {
	a.apply(a.timeline.At(frame), nil)
}

// TickStrict is Tick that fails on a frame outside the timeline
// or an unresolved texture. Nothing is pushed on failure.
func (a *Animator) TickStrict(frame int) error {
	err := a.checkRange(frame)

	if err != nil {
		return fmt.Errorf("tick: %w", err)
	}

	kf := a.timeline.At(frame)
	err = a.checkTexture(kf)

	if err != nil {
		return fmt.Errorf("tick frame %d: %w", frame, err)
	}

	a.apply(kf, nil)

	return nil
}

// lastKnown folds the frames 0..frame into a single keyframe
// holding the last declared value of every property.
func (a *Animator) lastKnown(frame int) *Keyframe {
	pose := &Keyframe{}

	for i := 0; i <= frame && i < a.timeline.Len(); i++ {
		kf := a.timeline[i]

		if kf == nil {
			continue
		}

		if kf.Texture != nil {
			pose.Texture = kf.Texture
		}

		if kf.BlendMode != nil && *kf.BlendMode != "" {
			pose.BlendMode = kf.BlendMode
		}

		if kf.Pivot != nil {
			pose.Pivot = kf.Pivot
		}

		if kf.Position != nil {
			pose.Position = kf.Position
		}

		if kf.Rotation != nil {
			pose.Rotation = kf.Rotation
		}

		if kf.Scale != nil {
			pose.Scale = kf.Scale
		}

		if kf.Alpha != nil {
			pose.Alpha = kf.Alpha
		}
	}

	return pose
}

// apply pushes the declared fields of the keyframe to the sink.
// Undeclared fields fall back to the defaults when given.
func (a *Animator) apply(kf *Keyframe, defaults *Pose) {
	if kf == nil {
		kf = &Keyframe{}
	}

	if defaults == nil {
		defaults = &Pose{}
	}

	if kf.Texture != nil {
		if region, ok := a.textures[*kf.Texture]; ok {
			a.sink.SetTextureRegion(region)
		}
	} else if defaults.Texture != nil {
		a.sink.SetTextureRegion(*defaults.Texture)
	}

	if kf.BlendMode != nil && *kf.BlendMode != "" {
		a.sink.SetBlendMode(*kf.BlendMode)
	} else if defaults.BlendMode != nil {
		a.sink.SetBlendMode(*defaults.BlendMode)
	}

	if kf.Pivot != nil {
		a.pivot = *kf.Pivot
		a.sink.SetPivot(a.pivot)
	} else if defaults.Pivot != nil {
		a.pivot = *defaults.Pivot
		a.sink.SetPivot(a.pivot)
	}

	// Timeline positions are relative to the pivot.
	if kf.Position != nil {
		a.sink.SetPosition(a.pivot.Add(*kf.Position))
	} else if defaults.Position != nil {
		a.sink.SetPosition(*defaults.Position)
	}

	if kf.Rotation != nil {
		a.sink.SetRotation(*kf.Rotation)
	} else if defaults.Rotation != nil {
		a.sink.SetRotation(*defaults.Rotation)
	}

	if kf.Scale != nil {
		a.sink.SetScale(*kf.Scale)
	} else if defaults.Scale != nil {
		a.sink.SetScale(*defaults.Scale)
	}

	if kf.Alpha != nil {
		a.sink.SetAlpha(*kf.Alpha)
	} else if defaults.Alpha != nil {
		a.sink.SetAlpha(*defaults.Alpha)
	}
}

func (a *Animator) checkRange(frame int) error {
	if frame < 0 || frame >= a.timeline.Len() {
		return fmt.Errorf("frame %d of %d: %w",
			frame, a.timeline.Len(), ErrOutOfRange)
	}

	return nil
}

func (a *Animator) checkTexture(kf *Keyframe) error {
	if kf == nil || kf.Texture == nil {
		return nil
	}

	if _, ok := a.textures[*kf.Texture]; !ok {
		return fmt.Errorf("texture %d: %w", *kf.Texture, ErrMissingResource)
	}

	return nil
}
