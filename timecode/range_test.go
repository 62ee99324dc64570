package timecode_test

import (
	"testing"

	"github.com/cbsinteractive/annotate/test"
	"github.com/cbsinteractive/annotate/timecode"
	cbs "github.com/cbsinteractive/pkg/timecode"
	"github.com/google/go-cmp/cmp"
)

func span(t *testing.T, start, end float64) timecode.Range {
	t.Helper()
	r, err := timecode.RangeFromSeconds(start, end)
	if err != nil {
		t.Fatalf("RangeFromSeconds(%v, %v): %v", start, end, err)
	}
	return r
}

func TestNewRange(t *testing.T) {
	for _, tt := range []struct {
		name       string
		start, end float64
		wantErr    string
	}{
		{"ordered", 10, 12.5, ""},
		{"empty", 5, 5, "start must precede end, got 5s and 5s"},
		{"reversed", 10, 2, "start must precede end, got 10s and 2s"},
		{"negative", -1, 2, "seconds must be non-negative and finite, got -1"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			r, err := timecode.RangeFromSeconds(tt.start, tt.end)
			if test.AssertWantErr(err, tt.wantErr, "RangeFromSeconds()", t) {
				test.AssertInvalid(err, "RangeFromSeconds()", t)
				return
			}
			test.AssertFloat(r.Duration().Seconds(), tt.end-tt.start, "Duration()", t)
		})
	}
}

func TestParseRange(t *testing.T) {
	r, err := timecode.ParseRange("1:00", "1:05:30")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(span(t, 60, 3930), r); diff != "" {
		t.Errorf("ParseRange() mismatch (-want +got):\n%s", diff)
	}
	_, err = timecode.ParseRange("2:00", "1:00")
	test.AssertWantErr(err, "start must precede end, got 120s and 60s", "ParseRange()", t)
}

func TestRangeContains(t *testing.T) {
	r := span(t, 10, 20)
	for _, tt := range []struct {
		at   float64
		want bool
	}{
		{9.999, false},
		{10, true},
		{15, true},
		{20, true},
		{20.001, false},
	} {
		if got := r.Contains(seconds(t, tt.at)); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.at, got, tt.want)
		}
	}
}

func TestRangeOverlaps(t *testing.T) {
	for _, tt := range []struct {
		name    string
		a, b    [2]float64
		want    bool
		wantDur float64
	}{
		{"disjoint", [2]float64{0, 5}, [2]float64{6, 10}, false, 0},
		{"touching", [2]float64{0, 10}, [2]float64{10, 20}, false, 0},
		{"partial", [2]float64{0, 10}, [2]float64{5, 15}, true, 5},
		{"nested", [2]float64{0, 30}, [2]float64{10, 12.5}, true, 2.5},
		{"identical", [2]float64{3, 4}, [2]float64{3, 4}, true, 1},
	} {
		t.Run(tt.name, func(t *testing.T) {
			a, b := span(t, tt.a[0], tt.a[1]), span(t, tt.b[0], tt.b[1])
			if got := a.Overlaps(b); got != tt.want {
				t.Errorf("a.Overlaps(b) = %v, want %v", got, tt.want)
			}
			if got := b.Overlaps(a); got != tt.want {
				t.Errorf("b.Overlaps(a) = %v, want %v", got, tt.want)
			}
			d, ok := a.OverlapDuration(b)
			if ok != tt.want {
				t.Fatalf("OverlapDuration() ok = %v, want %v", ok, tt.want)
			}
			test.AssertFloat(d.Seconds(), tt.wantDur, "OverlapDuration()", t)
		})
	}
}

func TestRangeExpand(t *testing.T) {
	r := span(t, 1, 5).Expand(seconds(t, 2), seconds(t, 3))
	if diff := cmp.Diff(span(t, 0, 8), r); diff != "" {
		t.Errorf("Expand() mismatch (-want +got):\n%s", diff)
	}
}

func TestRangeExports(t *testing.T) {
	r := span(t, 1, 5.5)
	if diff := cmp.Diff(cbs.Range{1, 5.5}, r.Interval()); diff != "" {
		t.Errorf("Interval() mismatch (-want +got):\n%s", diff)
	}
	s, e, err := r.Timecodes(25)
	if err != nil {
		t.Fatal(err)
	}
	if s != "00:00:01:00" || e != "00:00:05:13" {
		t.Errorf("Timecodes() = %q, %q", s, e)
	}
	if got, want := r.String(), "(1s-5.5s)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
