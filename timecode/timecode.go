package timecode

import (
	"math"
	"time"
)

// Timecode is a non-negative, finite offset into a media asset, in seconds.
// The zero value is the start of the asset.
type Timecode struct {
	seconds float64
}

// FromSeconds returns the Timecode s seconds into the asset.
func FromSeconds(s float64) (Timecode, error) {
	if s < 0 || !finite(s) {
		return Timecode{}, Invalid("seconds must be non-negative and finite, got %v", s)
	}
	if s == 0 {
		s = 0 // drop the sign of -0
	}
	return Timecode{seconds: s}, nil
}

// FromFrame returns the start of frame n at the given rate.
func FromFrame(n int64, rate float64) (Timecode, error) {
	if n < 0 {
		return Timecode{}, Invalid("frame number must be non-negative, got %d", n)
	}
	if err := CheckRate(rate); err != nil {
		return Timecode{}, err
	}
	s := float64(n) / rate
	if !finite(s) {
		return Timecode{}, Invalid("frame %d at %vfps is past the end of time", n, rate)
	}
	return Timecode{seconds: s}, nil
}

// FromDuration converts d into a Timecode.
func FromDuration(d time.Duration) (Timecode, error) {
	return FromSeconds(d.Seconds())
}

// Zero returns the Timecode at the start of the asset.
func Zero() Timecode {
	return Timecode{}
}

// Seconds returns t in seconds.
func (t Timecode) Seconds() float64 {
	return t.seconds
}

// RoundSeconds returns t rounded to the nearest whole second.
func (t Timecode) RoundSeconds() int64 {
	return Round(t.seconds)
}

// Duration converts t into a time.Duration, rounded to the nanosecond.
func (t Timecode) Duration() time.Duration {
	return time.Duration(math.Round(t.seconds * float64(time.Second)))
}

// Frame returns the number of the frame nearest to t at the given rate.
func (t Timecode) Frame(rate float64) (int64, error) {
	return FrameNumber(t.seconds, rate)
}

// FrameAligned snaps t to the boundary of its nearest frame.
func (t Timecode) FrameAligned(rate float64) (Timecode, error) {
	n, err := t.Frame(rate)
	if err != nil {
		return Timecode{}, err
	}
	return Timecode{seconds: float64(n) / rate}, nil
}

// IsZero reports whether t is the start of the asset, within tolerance.
func (t Timecode) IsZero() bool {
	return Equal(t.seconds, 0)
}

// HasHours reports whether t is at least one hour in.
func (t Timecode) HasHours() bool {
	return t.seconds >= 3600
}

// Add returns t+u. Like Sub at zero, the sum stops at the largest finite
// Timecode.
func (t Timecode) Add(u Timecode) Timecode {
	return Timecode{seconds: math.Min(t.seconds+u.seconds, math.MaxFloat64)}
}

// Sub returns t-u, or zero if u is after t.
func (t Timecode) Sub(u Timecode) Timecode {
	return Timecode{seconds: math.Max(0, t.seconds-u.seconds)}
}

// Diff returns the absolute distance between t and u.
func (t Timecode) Diff(u Timecode) Timecode {
	return Timecode{seconds: math.Abs(t.seconds - u.seconds)}
}

// After reports whether t is strictly later than u.
func (t Timecode) After(u Timecode) bool {
	return t.seconds > u.seconds
}

// Before reports whether t is strictly earlier than u.
func (t Timecode) Before(u Timecode) bool {
	return t.seconds < u.seconds
}

// Equal reports whether t and u are the same instant, within tolerance.
func (t Timecode) Equal(u Timecode) bool {
	return Equal(t.seconds, u.seconds)
}

func minTime(a, b Timecode) Timecode {
	if b.Before(a) {
		return b
	}
	return a
}

func maxTime(a, b Timecode) Timecode {
	if b.After(a) {
		return b
	}
	return a
}
