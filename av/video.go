package av

import (
	"math"

	"github.com/cbsinteractive/annotate/timecode"
	"github.com/cbsinteractive/pkg/video"
)

// Framerate expresses rate as a fraction. NTSC rates such as 29.97 map to
// N*1000/1001; other rates are reduced from millifps.
func Framerate(rate float64) video.Framerate {
	if n := math.Round(rate); timecode.Equal(rate, n) {
		return video.Framerate{Numerator: int(n), Denominator: 1}
	}
	if n := math.Round(rate * 1.001); math.Abs(rate-n*1000/1001) < 0.005 {
		return video.Framerate{Numerator: int(n) * 1000, Denominator: 1001}
	}
	num, den := int(math.Round(rate*1000)), 1000
	g := gcd(num, den)
	return video.Framerate{Numerator: num / g, Denominator: den / g}
}

// Rate converts a fractional frame rate into frames per second.
func Rate(f video.Framerate) (float64, error) {
	if f.Empty() {
		return 0, timecode.Invalid("frame rate %d/%d is empty", f.Numerator, f.Denominator)
	}
	rate := float64(f.Numerator) / float64(f.Denominator)
	if err := timecode.CheckRate(rate); err != nil {
		return 0, err
	}
	return rate, nil
}

// Crop returns the pixels to remove from each side of frame to leave r.
// Parts of r outside the frame are ignored.
func (r Rectangle) Crop(frame Rectangle) video.Crop {
	return video.Crop{
		Top:    clamp(int64(r.y) - int64(frame.y)),
		Left:   clamp(int64(r.x) - int64(frame.x)),
		Bottom: clamp(frame.bottom() - r.bottom()),
		Right:  clamp(frame.right() - r.right()),
	}
}

// Scale returns the crop of frame centered on r that has the same aspect
// ratio as frame, so an annotated area can be cut out without distortion.
func (r Rectangle) Scale(frame Rectangle) Rectangle {
	return FromImage(video.Scale(frame.Image(), r.Image()))
}

func clamp(n int64) int {
	if n < 0 {
		return 0
	}
	return int(n)
}

func gcd(a, b int) int {
	for a != 0 {
		a, b = b%a, a
	}
	return b
}
