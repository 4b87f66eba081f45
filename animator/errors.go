package animator

import "errors"

var (
	// ErrOutOfRange is returned by the strict playback
	// methods when the frame index is beyond the timeline.
	ErrOutOfRange = errors.New("frame index out of range")
	// ErrMissingResource is returned by the strict playback
	// methods when a frame references an unresolved texture.
	ErrMissingResource = errors.New("missing texture resource")
	// ErrNotInterpolable is returned when interpolation is
	// requested for a property that is never interpolated.
	ErrNotInterpolable = errors.New("property is not interpolable")
	// ErrInvalidAtlas is returned for atlases with
	// non-positive tile or image dimensions.
	ErrInvalidAtlas = errors.New("invalid atlas")
)
