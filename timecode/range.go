package timecode

import (
	"fmt"

	cbs "github.com/cbsinteractive/pkg/timecode"
)

// Range is the interval between two Timecodes, start strictly before end.
// It models an audio region.
type Range struct {
	start, end Timecode
}

// NewRange returns the Range from start to end.
func NewRange(start, end Timecode) (Range, error) {
	if !start.Before(end) {
		return Range{}, Invalid("start must precede end, got %gs and %gs", start.seconds, end.seconds)
	}
	return Range{start: start, end: end}, nil
}

// RangeFromSeconds is NewRange for plain seconds.
func RangeFromSeconds(start, end float64) (Range, error) {
	s, err := FromSeconds(start)
	if err != nil {
		return Range{}, err
	}
	e, err := FromSeconds(end)
	if err != nil {
		return Range{}, err
	}
	return NewRange(s, e)
}

// ParseRange is NewRange for two formatted MM:SS or HH:MM:SS timecodes.
func ParseRange(start, end string) (Range, error) {
	s, err := ParseFormatted(start)
	if err != nil {
		return Range{}, err
	}
	e, err := ParseFormatted(end)
	if err != nil {
		return Range{}, err
	}
	return NewRange(s, e)
}

func (r Range) Start() Timecode { return r.start }
func (r Range) End() Timecode   { return r.end }

// Duration returns end-start.
func (r Range) Duration() Timecode {
	return r.end.Sub(r.start)
}

// Contains reports whether t lies in r, both ends included.
func (r Range) Contains(t Timecode) bool {
	return !t.Before(r.start) && !t.After(r.end)
}

// Overlaps reports whether r and o share any time. Ranges that only touch
// at an endpoint do not overlap.
func (r Range) Overlaps(o Range) bool {
	return r.start.Before(o.end) && o.start.Before(r.end)
}

// OverlapDuration returns how long r and o overlap, and false if they don't.
func (r Range) OverlapDuration(o Range) (Timecode, bool) {
	if !r.Overlaps(o) {
		return Timecode{}, false
	}
	return minTime(r.end, o.end).Sub(maxTime(r.start, o.start)), true
}

// Expand widens r by before and after. The start stops at zero.
func (r Range) Expand(before, after Timecode) Range {
	return Range{start: r.start.Sub(before), end: r.end.Add(after)}
}

// Equal reports whether both endpoints are equal within tolerance.
func (r Range) Equal(o Range) bool {
	return r.start.Equal(o.start) && r.end.Equal(o.end)
}

// Interval converts r into the splice range used by transcode jobs.
func (r Range) Interval() cbs.Range {
	return cbs.Range{r.start.seconds, r.end.seconds}
}

// Timecodes returns the start and end in SMPTE HH:MM:SS:FF form.
func (r Range) Timecodes(rate float64) (string, string, error) {
	s, err := r.start.SMPTE(rate)
	if err != nil {
		return "", "", err
	}
	e, err := r.end.SMPTE(rate)
	return s, e, err
}

func (r Range) String() string {
	return fmt.Sprintf("(%s-%s)", r.start.Duration(), r.end.Duration())
}
