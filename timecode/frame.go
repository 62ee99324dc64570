package timecode

import (
	"fmt"
	"math"
)

// Frame addresses a single video frame: a Timecode bound to a frame rate,
// with the frame number derived from it. A Frame occupies one frame's worth
// of time, so its Duration is 1/rate and never zero.
type Frame struct {
	time   Timecode
	rate   float64
	number int64
}

// FrameAt returns the frame nearest to t at the given rate. The Timecode is
// kept as given; use Aligned for the frame boundary.
func FrameAt(t Timecode, rate float64) (Frame, error) {
	n, err := FrameNumber(t.seconds, rate)
	if err != nil {
		return Frame{}, err
	}
	return Frame{time: t, rate: rate, number: n}, nil
}

// FrameAtSeconds is FrameAt for a plain number of seconds.
func FrameAtSeconds(s, rate float64) (Frame, error) {
	if err := CheckRate(rate); err != nil {
		return Frame{}, err
	}
	t, err := FromSeconds(s)
	if err != nil {
		return Frame{}, err
	}
	return FrameAt(t, rate)
}

// FrameFromNumber returns frame n, starting at n/rate.
func FrameFromNumber(n int64, rate float64) (Frame, error) {
	if err := CheckRate(rate); err != nil {
		return Frame{}, err
	}
	t, err := FromFrame(n, rate)
	if err != nil {
		return Frame{}, err
	}
	return Frame{time: t, rate: rate, number: n}, nil
}

// ParseFrame is FrameAt for a formatted MM:SS or HH:MM:SS timecode.
func ParseFrame(text string, rate float64) (Frame, error) {
	if err := CheckRate(rate); err != nil {
		return Frame{}, err
	}
	t, err := ParseFormatted(text)
	if err != nil {
		return Frame{}, err
	}
	return FrameAt(t, rate)
}

func (f Frame) Time() Timecode { return f.time }
func (f Frame) Rate() float64  { return f.rate }
func (f Frame) Number() int64  { return f.number }

// Duration is the nominal width of one frame.
func (f Frame) Duration() Timecode {
	return Timecode{seconds: 1 / f.rate}
}

// Aligned returns the start of the frame, dropping any sub-frame offset
// carried by the original time.
func (f Frame) Aligned() Timecode {
	return Timecode{seconds: float64(f.number) / f.rate}
}

// Next returns the following frame.
func (f Frame) Next() (Frame, error) {
	return f.AddFrames(1)
}

// Previous returns the preceding frame.
func (f Frame) Previous() (Frame, error) {
	if f.number <= 0 {
		return Frame{}, Invalid("cannot precede frame zero")
	}
	return f.at(f.number - 1), nil
}

// AddFrames moves delta frames forward, or backward when delta is negative.
func (f Frame) AddFrames(delta int64) (Frame, error) {
	if delta > 0 && f.number > math.MaxInt64-delta {
		return Frame{}, Invalid("frame %d%+d is past the last addressable frame", f.number, delta)
	}
	n := f.number + delta
	if n < 0 {
		return Frame{}, Invalid("frame %d%+d is before frame zero", f.number, delta)
	}
	return f.at(n), nil
}

func (f Frame) at(n int64) Frame {
	return Frame{time: Timecode{seconds: float64(n) / f.rate}, rate: f.rate, number: n}
}

// SameFrame reports whether f and o address the same frame of the same
// frame rate.
func (f Frame) SameFrame(o Frame) bool {
	return f.number == o.number && Equal(f.rate, o.rate)
}

// Distance returns the number of frames between f and o. Both must share a
// frame rate.
func (f Frame) Distance(o Frame) (int64, error) {
	if !Equal(f.rate, o.rate) {
		return 0, Invalid("frame rates differ: %v and %v", f.rate, o.rate)
	}
	d := f.number - o.number
	if d < 0 {
		d = -d
	}
	return d, nil
}

// Equal reports whether f and o are the same frame at the same time.
func (f Frame) Equal(o Frame) bool {
	return f.SameFrame(o) && f.time.Equal(o.time)
}

func (f Frame) String() string {
	return fmt.Sprintf("frame %d @ %vfps (%s)", f.number, f.rate, f.time)
}
