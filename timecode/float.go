package timecode

import "math"

// Epsilon is the float64 machine epsilon. Every tolerant comparison in this
// module goes through Equal, which scales it by the operands' magnitude.
const Epsilon = 2.220446049250313e-16

// DefaultFrameRate is assumed when wire data carries no frame rate at all.
// Older producers omitted it for 30fps material.
const DefaultFrameRate = 30.0

// Equal reports whether a and b differ by no more than Epsilon relative to
// the larger magnitude (or absolutely, below 1).
func Equal(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= Epsilon*scale
}

// maxFrame is 2^63, the first float64 past the int64 range.
const maxFrame = float64(1 << 63)

// Round is the rounding rule for frame numbers: nearest integer, halves
// away from zero. Results outside the int64 range saturate.
func Round(x float64) int64 {
	return whole(math.Round(x))
}

// FrameNumber returns the frame containing the instant s seconds in at the
// given rate, or an InvalidArgumentError when that frame number does not
// fit in an int64.
func FrameNumber(s, rate float64) (int64, error) {
	if err := CheckRate(rate); err != nil {
		return 0, err
	}
	x := math.Round(s * rate)
	if !finite(x) || x >= maxFrame || x < 0 {
		return 0, Invalid("%vs at %vfps is past the last addressable frame", s, rate)
	}
	return int64(x), nil
}

// whole truncates x toward zero, saturating at the int64 limits.
func whole(x float64) int64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= maxFrame:
		return math.MaxInt64
	case x < -maxFrame:
		return math.MinInt64
	}
	return int64(x)
}

// CheckRate returns an InvalidArgumentError unless rate is a positive,
// finite number of frames per second.
func CheckRate(rate float64) error {
	if !(rate > 0) || math.IsInf(rate, 1) {
		return Invalid("frame rate must be positive and finite, got %v", rate)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
