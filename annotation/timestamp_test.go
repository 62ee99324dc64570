package annotation_test

import (
	"encoding/json"
	"testing"

	"github.com/cbsinteractive/annotate/annotation"
	"github.com/cbsinteractive/annotate/av"
	"github.com/cbsinteractive/annotate/test"
	"github.com/cbsinteractive/annotate/timecode"
	"github.com/google/go-cmp/cmp"
)

func frame(t *testing.T, s, rate float64) annotation.Timestamp {
	t.Helper()
	f, err := timecode.FrameAtSeconds(s, rate)
	if err != nil {
		t.Fatal(err)
	}
	return annotation.FromFrame(f)
}

func audio(t *testing.T, start, end float64) annotation.Timestamp {
	t.Helper()
	r, err := timecode.RangeFromSeconds(start, end)
	if err != nil {
		t.Fatal(err)
	}
	return annotation.FromRange(r)
}

func video(t *testing.T, start, end, rate float64, x, y, w, h int32) annotation.Timestamp {
	t.Helper()
	b, err := av.NewRectangle(x, y, w, h)
	if err != nil {
		t.Fatal(err)
	}
	r, err := av.RegionFromSeconds(start, end, rate, b)
	if err != nil {
		t.Fatal(err)
	}
	return annotation.FromRegion(r)
}

func tc(t *testing.T, s float64) timecode.Timecode {
	t.Helper()
	v, err := timecode.FromSeconds(s)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestTimestampAccessors(t *testing.T) {
	f := frame(t, 10, 25)
	a := audio(t, 10, 12.5)
	v := video(t, 10, 12.5, 25, 100, 50, 200, 150)

	if _, ok := f.Frame(); !ok || f.Kind() != annotation.KindVideoFrame {
		t.Error("frame timestamp does not hold a frame")
	}
	if _, ok := f.Range(); ok {
		t.Error("frame timestamp holds a range")
	}
	if _, ok := a.Range(); !ok || a.Kind() != annotation.KindAudioRegion {
		t.Error("audio timestamp does not hold a range")
	}
	if _, ok := a.Region(); ok {
		t.Error("audio timestamp holds a region")
	}
	if r, ok := v.Region(); !ok || r.FrameCount() != 64 {
		t.Error("video timestamp does not hold the region")
	}

	for _, tt := range []struct {
		name       string
		ts         annotation.Timestamp
		start, end float64
		rate       float64
		hasRate    bool
	}{
		{"frame", f, 10, 10.04, 25, true},
		{"audio", a, 10, 12.5, 0, false},
		{"video", v, 10, 12.5, 25, true},
		{"zero", annotation.Timestamp{}, 0, 0, 0, false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			test.AssertFloat(tt.ts.Start().Seconds(), tt.start, "Start()", t)
			test.AssertFloat(tt.ts.End().Seconds(), tt.end, "End()", t)
			test.AssertFloat(tt.ts.Duration().Seconds(), tt.end-tt.start, "Duration()", t)
			rate, ok := tt.ts.FrameRate()
			if rate != tt.rate || ok != tt.hasRate {
				t.Errorf("FrameRate() = %v, %v, want %v, %v", rate, ok, tt.rate, tt.hasRate)
			}
		})
	}
}

func TestTimestampContains(t *testing.T) {
	a := audio(t, 10, 12.5)
	for _, tt := range []struct {
		at   float64
		want bool
	}{{9.9, false}, {10, true}, {12.5, true}, {12.6, false}} {
		if got := a.Contains(tc(t, tt.at)); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.at, got, tt.want)
		}
	}
	if (annotation.Timestamp{}).Contains(timecode.Zero()) {
		t.Error("the zero Timestamp contains nothing")
	}
}

func TestTimestampOverlapsTime(t *testing.T) {
	for _, tt := range []struct {
		name string
		a, b annotation.Timestamp
		want bool
	}{
		{"frame in audio", frame(t, 11, 25), audio(t, 10, 12.5), true},
		{"frame at audio end", frame(t, 12.5, 25), audio(t, 10, 12.5), false},
		{"frame ending at audio start", frame(t, 9.5, 2), audio(t, 10, 12.5), false},
		{"audio and video", audio(t, 0, 10.5), video(t, 10, 12.5, 25, 0, 0, 1, 1), true},
		{"touching regions", audio(t, 0, 10), video(t, 10, 12.5, 25, 0, 0, 1, 1), false},
		{"zero", annotation.Timestamp{}, audio(t, 0, 10), false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.OverlapsTime(tt.b); got != tt.want {
				t.Errorf("a.OverlapsTime(b) = %v, want %v", got, tt.want)
			}
			if got := tt.b.OverlapsTime(tt.a); got != tt.want {
				t.Errorf("b.OverlapsTime(a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimestampEqual(t *testing.T) {
	if !audio(t, 1, 2).Equal(audio(t, 1, 2)) {
		t.Error("equal ranges are not Equal")
	}
	if audio(t, 1, 2).Equal(video(t, 1, 2, 25, 0, 0, 0, 0)) {
		t.Error("different kinds are Equal")
	}
	if !(annotation.Timestamp{}).Equal(annotation.Timestamp{}) {
		t.Error("zero timestamps are not Equal")
	}
}

func TestTimestampJSON(t *testing.T) {
	for _, ts := range []annotation.Timestamp{
		frame(t, 10.03, 25),
		audio(t, 10, 12.5),
		video(t, 10, 12.5, 25, 100, 50, 200, 150),
	} {
		t.Run(string(ts.Kind()), func(t *testing.T) {
			data, err := json.Marshal(ts)
			if err != nil {
				t.Fatal(err)
			}
			var got annotation.Timestamp
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(ts, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}

	data, err := json.Marshal(annotation.Timestamp{})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "null" {
		t.Errorf("zero Timestamp marshals as %s", data)
	}

	var got annotation.Timestamp
	err = json.Unmarshal([]byte(`{"type":"subtitle"}`), &got)
	test.AssertWantErr(err, `unknown timestamp variant "subtitle"`, "Unmarshal()", t)
}

func TestTimestampString(t *testing.T) {
	for _, tt := range []struct {
		ts   annotation.Timestamp
		want string
	}{
		{frame(t, 10, 25), "frame 250 @ 25fps (0:10)"},
		{audio(t, 1, 2.5), "(1s-2.5s)"},
		{annotation.Timestamp{}, "<none>"},
	} {
		if got := tt.ts.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
