package av

import (
	"fmt"

	"github.com/cbsinteractive/annotate/timecode"
	"github.com/cbsinteractive/pkg/video"
)

// Region is an area of a video active during a window of time: a
// timecode.Range, the frame rate of the asset and the bounding box.
type Region struct {
	span   timecode.Range
	rate   float64
	bounds Rectangle
}

// NewRegion returns the region covering bounds from start to end. The time
// ordering is checked before the frame rate.
func NewRegion(start, end timecode.Timecode, rate float64, bounds Rectangle) (Region, error) {
	span, err := timecode.NewRange(start, end)
	if err != nil {
		return Region{}, err
	}
	// every frame query derives from the end frame, so it must exist
	if _, err := end.Frame(rate); err != nil {
		return Region{}, err
	}
	return Region{span: span, rate: rate, bounds: bounds}, nil
}

// RegionFromSeconds is NewRegion for plain seconds.
func RegionFromSeconds(start, end, rate float64, bounds Rectangle) (Region, error) {
	span, err := timecode.RangeFromSeconds(start, end)
	if err != nil {
		return Region{}, err
	}
	return NewRegion(span.Start(), span.End(), rate, bounds)
}

// RegionFromFrames is NewRegion for the frames start through end.
func RegionFromFrames(start, end int64, rate float64, bounds Rectangle) (Region, error) {
	if start < 0 || end < 0 {
		return Region{}, timecode.Invalid("frame numbers must be non-negative, got %d and %d", start, end)
	}
	if start >= end {
		return Region{}, timecode.Invalid("start must precede end, got frames %d and %d", start, end)
	}
	s, err := timecode.FromFrame(start, rate)
	if err != nil {
		return Region{}, err
	}
	e, err := timecode.FromFrame(end, rate)
	if err != nil {
		return Region{}, err
	}
	return NewRegion(s, e, rate, bounds)
}

func (r Region) Start() timecode.Timecode    { return r.span.Start() }
func (r Region) End() timecode.Timecode      { return r.span.End() }
func (r Region) Duration() timecode.Timecode { return r.span.Duration() }
func (r Region) Rate() float64               { return r.rate }
func (r Region) Bounds() Rectangle           { return r.bounds }

// Range returns the time window of r.
func (r Region) Range() timecode.Range { return r.span }

// Framerate returns the rate of r as a fraction.
func (r Region) Framerate() video.Framerate { return Framerate(r.rate) }

func (r Region) StartFrame() int64 {
	return timecode.Round(r.span.Start().Seconds() * r.rate)
}

func (r Region) EndFrame() int64 {
	return timecode.Round(r.span.End().Seconds() * r.rate)
}

// FrameCount counts the frames from StartFrame through EndFrame.
func (r Region) FrameCount() int64 {
	return r.EndFrame() - r.StartFrame() + 1
}

// AlignedStart is the start of the first frame of r.
func (r Region) AlignedStart() timecode.Timecode {
	return r.frameTime(r.StartFrame())
}

// AlignedEnd is the start of the last frame of r.
func (r Region) AlignedEnd() timecode.Timecode {
	return r.frameTime(r.EndFrame())
}

func (r Region) frameTime(n int64) timecode.Timecode {
	// n and rate were validated at construction
	t, _ := timecode.FromFrame(n, r.rate)
	return t
}

// ContainsTime reports whether t falls in r, both ends included.
func (r Region) ContainsTime(t timecode.Timecode) bool {
	return r.span.Contains(t)
}

// ContainsFrame reports whether frame n falls in r, both ends included.
func (r Region) ContainsFrame(n int64) bool {
	return n >= r.StartFrame() && n <= r.EndFrame()
}

// ContainsPoint reports whether the pixel lies in the bounds of r.
func (r Region) ContainsPoint(x, y int32) bool {
	return r.bounds.Contains(x, y)
}

// OverlapsTime uses the open-interval rule of timecode.Range.
func (r Region) OverlapsTime(o Region) bool {
	return r.span.Overlaps(o.span)
}

// OverlapsSpace uses the closed rule of Rectangle.
func (r Region) OverlapsSpace(o Region) bool {
	return r.bounds.Overlaps(o.bounds)
}

// Overlaps reports whether r and o intersect in both time and space.
func (r Region) Overlaps(o Region) bool {
	return r.OverlapsTime(o) && r.OverlapsSpace(o)
}

func (r Region) TimeOverlapDuration(o Region) (timecode.Timecode, bool) {
	return r.span.OverlapDuration(o.span)
}

// Expand widens r by timeBuffer on both ends and by spaceBuffer pixels on
// every side of its bounds. It fails when the new end has no frame number.
func (r Region) Expand(timeBuffer timecode.Timecode, spaceBuffer int32) (Region, error) {
	span := r.span.Expand(timeBuffer, timeBuffer)
	return NewRegion(span.Start(), span.End(), r.rate, r.bounds.Grow(spaceBuffer))
}

// FrameAt returns the frame of r at t.
func (r Region) FrameAt(t timecode.Timecode) (timecode.Frame, error) {
	if !r.span.Contains(t) {
		return timecode.Frame{}, timecode.Invalid("time %gs is outside region %s", t.Seconds(), r.span)
	}
	return timecode.FrameAt(t, r.rate)
}

func (r Region) Equal(o Region) bool {
	return r.span.Equal(o.span) && timecode.Equal(r.rate, o.rate) && r.bounds.Equal(o.bounds)
}

func (r Region) String() string {
	return fmt.Sprintf("%s@%vfps %s", r.span, r.rate, r.bounds)
}
