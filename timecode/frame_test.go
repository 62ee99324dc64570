package timecode_test

import (
	"math"
	"testing"

	"github.com/cbsinteractive/annotate/test"
	"github.com/cbsinteractive/annotate/timecode"
)

func TestFrameAt(t *testing.T) {
	for _, tt := range []struct {
		name        string
		seconds     float64
		rate        float64
		wantNumber  int64
		wantAligned float64
		wantErr     string
	}{
		{"on a boundary", 10, 25, 250, 10, ""},
		{"between frames", 10.03, 25, 251, 10.04, ""},
		{"ntsc", 1, 29.97, 30, 30 / 29.97, ""},
		{"zero rate", 1, 0, 0, 0, "frame rate must be positive and finite, got 0"},
		{"negative seconds", -1, 25, 0, 0, "seconds must be non-negative and finite, got -1"},
		{"past the last frame", 1e300, 30, 0, 0, "1e+300s at 30fps is past the last addressable frame"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f, err := timecode.FrameAtSeconds(tt.seconds, tt.rate)
			if test.AssertWantErr(err, tt.wantErr, "FrameAtSeconds()", t) {
				return
			}
			if f.Number() != tt.wantNumber {
				t.Errorf("Number() = %d, want %d", f.Number(), tt.wantNumber)
			}
			test.AssertFloat(f.Time().Seconds(), tt.seconds, "Time()", t)
			test.AssertFloat(f.Aligned().Seconds(), tt.wantAligned, "Aligned()", t)
			test.AssertFloat(f.Duration().Seconds(), 1/tt.rate, "Duration()", t)
		})
	}
}

func TestParseFrame(t *testing.T) {
	f, err := timecode.ParseFrame("0:10", 25)
	if err != nil {
		t.Fatal(err)
	}
	if f.Number() != 250 {
		t.Errorf("Number() = %d, want 250", f.Number())
	}
	if _, err := timecode.ParseFrame("10", 25); err == nil {
		t.Error("ParseFrame() accepted plain seconds")
	}
}

func TestFrameStepping(t *testing.T) {
	f, err := timecode.FrameFromNumber(250, 25)
	if err != nil {
		t.Fatal(err)
	}

	next, err := f.Next()
	if err != nil {
		t.Fatal(err)
	}
	if next.Number() != 251 {
		t.Errorf("Next() = %d, want 251", next.Number())
	}
	test.AssertFloat(next.Time().Seconds(), 10.04, "Next().Time()", t)

	prev, err := f.Previous()
	if err != nil {
		t.Fatal(err)
	}
	if prev.Number() != 249 {
		t.Errorf("Previous() = %d, want 249", prev.Number())
	}

	back, err := f.AddFrames(-250)
	if err != nil {
		t.Fatal(err)
	}
	if back.Number() != 0 || !back.Time().IsZero() {
		t.Errorf("AddFrames(-250) = %v", back)
	}
	_, err = back.Previous()
	test.AssertWantErr(err, "cannot precede frame zero", "Previous()", t)
	_, err = f.AddFrames(-251)
	test.AssertWantErr(err, "frame 250-251 is before frame zero", "AddFrames()", t)
}

func TestFrameSteppingAtTheLastFrame(t *testing.T) {
	last, err := timecode.FrameFromNumber(math.MaxInt64, 30)
	if err != nil {
		t.Fatal(err)
	}
	_, err = last.Next()
	test.AssertWantErr(err, "frame 9223372036854775807+1 is past the last addressable frame", "Next()", t)
	test.AssertInvalid(err, "Next()", t)

	_, err = last.AddFrames(math.MaxInt64)
	test.AssertInvalid(err, "AddFrames()", t)

	prev, err := last.AddFrames(-1)
	if err != nil {
		t.Fatal(err)
	}
	if prev.Number() != math.MaxInt64-1 {
		t.Errorf("AddFrames(-1) = %d, want %d", prev.Number(), int64(math.MaxInt64-1))
	}
}

func TestFrameCompare(t *testing.T) {
	a, _ := timecode.FrameAtSeconds(10.01, 25)
	b, _ := timecode.FrameAtSeconds(10, 25)
	c, _ := timecode.FrameAtSeconds(10, 30)

	if !a.SameFrame(b) {
		t.Error("10.01s and 10s are the same frame at 25fps")
	}
	if a.Equal(b) {
		t.Error("frames at different times are not Equal")
	}
	if b.SameFrame(c) {
		t.Error("frames at different rates are not the same frame")
	}

	far, _ := timecode.FrameFromNumber(200, 25)
	d, err := far.Distance(b)
	if err != nil {
		t.Fatal(err)
	}
	if d != 50 {
		t.Errorf("Distance() = %d, want 50", d)
	}
	_, err = b.Distance(c)
	test.AssertWantErr(err, "frame rates differ: 25 and 30", "Distance()", t)
}

func TestFrameString(t *testing.T) {
	f, _ := timecode.FrameFromNumber(250, 25)
	if got, want := f.String(), "frame 250 @ 25fps (0:10)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
