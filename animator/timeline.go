package animator

// Timeline is a sequence of keyframes, one slot
// per frame. A nil slot is a hole.
type Timeline []*Keyframe

// BuildTimeline copies raw frame records into a new
// timeline. Nil records stay holes. The result
// is independent of the input.
func BuildTimeline(frames []*Keyframe) Timeline {
	timeline := make(Timeline, len(frames))

	for i, frame := range frames {
		timeline[i] = frame.Clone()
	}

	return timeline
}

// Len returns the number of frames.
func (tl Timeline) Len() int {
	return len(tl)
}

// At returns the keyframe at the given index or
// nil for holes and indices outside the timeline.
func (tl Timeline) At(index int) *Keyframe {
	if index < 0 || index >= len(tl) {
		return nil
	}

	return tl[index]
}
