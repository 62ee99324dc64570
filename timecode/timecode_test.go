package timecode_test

import (
	"math"
	"testing"
	"time"

	"github.com/cbsinteractive/annotate/test"
	"github.com/cbsinteractive/annotate/timecode"
)

func seconds(t *testing.T, s float64) timecode.Timecode {
	t.Helper()
	tc, err := timecode.FromSeconds(s)
	if err != nil {
		t.Fatalf("FromSeconds(%v): %v", s, err)
	}
	return tc
}

func TestFromSeconds(t *testing.T) {
	for _, tt := range []struct {
		name    string
		in      float64
		want    float64
		wantErr string
	}{
		{"zero", 0, 0, ""},
		{"negative zero", math.Copysign(0, -1), 0, ""},
		{"fractional", 12.5, 12.5, ""},
		{"negative", -1, 0, "seconds must be non-negative and finite, got -1"},
		{"nan", math.NaN(), 0, "seconds must be non-negative and finite, got NaN"},
		{"inf", math.Inf(1), 0, "seconds must be non-negative and finite, got +Inf"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timecode.FromSeconds(tt.in)
			if test.AssertWantErr(err, tt.wantErr, "FromSeconds()", t) {
				test.AssertInvalid(err, "FromSeconds()", t)
				return
			}
			if got.Seconds() != tt.want || math.Signbit(got.Seconds()) {
				t.Errorf("FromSeconds() = %v, want %v", got.Seconds(), tt.want)
			}
		})
	}
}

func TestFromFrame(t *testing.T) {
	for _, tt := range []struct {
		name    string
		n       int64
		rate    float64
		want    float64
		wantErr string
	}{
		{"frame 250 at 25", 250, 25, 10, ""},
		{"frame 0", 0, 29.97, 0, ""},
		{"ntsc", 30, 29.97, 30 / 29.97, ""},
		{"negative frame", -1, 25, 0, "frame number must be non-negative, got -1"},
		{"zero rate", 10, 0, 0, "frame rate must be positive and finite, got 0"},
		{"negative rate", 10, -25, 0, "frame rate must be positive and finite, got -25"},
		{"infinite seconds", 1, 1e-320, 0, "frame 1 at 1e-320fps is past the end of time"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timecode.FromFrame(tt.n, tt.rate)
			if test.AssertWantErr(err, tt.wantErr, "FromFrame()", t) {
				return
			}
			test.AssertFloat(got.Seconds(), tt.want, "FromFrame()", t)
		})
	}
}

func TestFrameRoundTrip(t *testing.T) {
	for _, rate := range []float64{23.976, 24, 25, 29.97, 30, 50, 59.94, 60} {
		for n := int64(0); n < 10000; n += 7 {
			tc, err := timecode.FromFrame(n, rate)
			if err != nil {
				t.Fatal(err)
			}
			got, err := tc.Frame(rate)
			if err != nil {
				t.Fatal(err)
			}
			if got != n {
				t.Fatalf("frame %d at %v fps came back as %d", n, rate, got)
			}
		}
	}
}

func TestFrameAlignedIdempotent(t *testing.T) {
	for _, rate := range []float64{23.976, 25, 29.97, 60} {
		for _, s := range []float64{0, 0.01, 1.5, 10.02, 12.5, 3599.999, 7200.123} {
			once, err := seconds(t, s).FrameAligned(rate)
			if err != nil {
				t.Fatal(err)
			}
			twice, err := once.FrameAligned(rate)
			if err != nil {
				t.Fatal(err)
			}
			if !once.Equal(twice) {
				t.Errorf("aligning %vs at %v fps twice: %v then %v", s, rate, once.Seconds(), twice.Seconds())
			}
		}
	}
}

func TestTimecodeFrame(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   float64
		rate float64
		want int64
	}{
		{"exact", 10, 25, 250},
		{"half rounds up", 12.5, 25, 313},
		{"just below half", 0.019, 25, 0},
		{"ntsc", 1, 29.97, 30},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := seconds(t, tt.in).Frame(tt.rate)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Frame() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTimecodeFrameOutOfRange(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   float64
		rate float64
	}{
		{"huge time", 1e300, 30},
		{"huge rate", 1, 1e300},
		{"just past int64", 9.3e18, 1},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seconds(t, tt.in).Frame(tt.rate)
			test.AssertInvalid(err, "Frame()", t)
			_, err = seconds(t, tt.in).FrameAligned(tt.rate)
			test.AssertInvalid(err, "FrameAligned()", t)
		})
	}
}

func TestTimecodeArithmetic(t *testing.T) {
	a, b := seconds(t, 5), seconds(t, 10)

	test.AssertFloat(a.Add(b).Seconds(), 15, "Add()", t)
	huge := seconds(t, math.MaxFloat64)
	if got := huge.Add(huge).Seconds(); got != math.MaxFloat64 {
		t.Errorf("Add() past the largest timecode = %v, want %v", got, math.MaxFloat64)
	}
	test.AssertFloat(b.Sub(a).Seconds(), 5, "Sub()", t)
	if got := a.Sub(b); got.Seconds() != 0 {
		t.Errorf("Sub() past zero = %v, want 0", got.Seconds())
	}
	test.AssertFloat(a.Diff(b).Seconds(), 5, "Diff()", t)
	test.AssertFloat(b.Diff(a).Seconds(), 5, "Diff()", t)

	if !a.Before(b) || a.After(b) || !b.After(a) {
		t.Error("ordering of 5s and 10s is wrong")
	}
	if a.Before(a) || a.After(a) {
		t.Error("a timecode is neither before nor after itself")
	}
}

func TestTimecodeEqual(t *testing.T) {
	if !seconds(t, 0.1+0.2).Equal(seconds(t, 0.3)) {
		t.Error("0.1+0.2 should equal 0.3 within tolerance")
	}
	if !seconds(t, 1e6).Equal(seconds(t, 1e6+1e-10)) {
		t.Error("tolerance should scale with magnitude")
	}
	if seconds(t, 1).Equal(seconds(t, 1.000001)) {
		t.Error("1 and 1.000001 should differ")
	}
	if !timecode.Zero().IsZero() || seconds(t, 0.001).IsZero() {
		t.Error("IsZero is wrong")
	}
}

func TestTimecodeConversions(t *testing.T) {
	tc := seconds(t, 3930.5)
	if got, want := tc.Duration(), time.Hour+5*time.Minute+30*time.Second+500*time.Millisecond; got != want {
		t.Errorf("Duration() = %v, want %v", got, want)
	}
	back, err := timecode.FromDuration(tc.Duration())
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(tc) {
		t.Errorf("FromDuration() = %v, want %v", back.Seconds(), tc.Seconds())
	}
	if _, err := timecode.FromDuration(-time.Second); err == nil {
		t.Error("FromDuration() accepted a negative duration")
	}
	if got := tc.RoundSeconds(); got != 3931 {
		t.Errorf("RoundSeconds() = %d, want 3931", got)
	}
	if !tc.HasHours() || seconds(t, 3599.9).HasHours() {
		t.Error("HasHours is wrong")
	}
}
