package timecode

import (
	"fmt"

	"github.com/cbsinteractive/annotate/wire"
)

// Timing is the display block written for every Timecode in a wire map.
func (t Timecode) Timing() wire.Map {
	return wire.Map{
		"seconds":           t.seconds,
		"formatted":         t.Format(false),
		"formatted_precise": t.FormatPrecise(DefaultPrecision, false),
	}
}

// Wire returns the video_frame map for f.
func (f Frame) Wire() wire.Map {
	timing := f.time.Timing()
	timing["frame"] = f.number
	timing["frame_aligned"] = f.Aligned().seconds
	return wire.Map{
		wire.TypeKey:   wire.VideoFrame,
		"time":         f.time.seconds,
		"frame_number": f.number,
		"frame_rate":   f.rate,
		"timing":       timing,
		"media": wire.Map{
			"frame_rate": f.rate,
			"type":       wire.MediaVideo,
		},
		"frame": wire.Map{
			"number":   f.number,
			"duration": 1 / f.rate,
			"display":  fmt.Sprintf("Frame %d", f.number),
		},
	}
}

type frameWire struct {
	Time        *float64 `mapstructure:"time"`
	FrameNumber *int64   `mapstructure:"frame_number"`
	FrameRate   *float64 `mapstructure:"frame_rate"`
	Timing      struct {
		Seconds *float64 `mapstructure:"seconds"`
	} `mapstructure:"timing"`
	Media wire.Media `mapstructure:"media"`
}

// FrameFromWire reads a video_frame map. The time comes from "time", then
// "timing.seconds", then "frame_number"; the rate from "frame_rate", then
// "media.frame_rate", then defaultRate.
func FrameFromWire(m wire.Map, defaultRate float64) (Frame, error) {
	var w frameWire
	if err := decode(m, &w); err != nil {
		return Frame{}, err
	}
	rate := wire.First(defaultRate, w.FrameRate, w.Media.FrameRate)
	switch {
	case w.Time != nil:
		return FrameAtSeconds(*w.Time, rate)
	case w.Timing.Seconds != nil:
		return FrameAtSeconds(*w.Timing.Seconds, rate)
	case w.FrameNumber != nil:
		return FrameFromNumber(*w.FrameNumber, rate)
	}
	return Frame{}, Invalid("video frame has no time or frame number")
}

// Wire returns the audio_region map for r.
func (r Range) Wire() wire.Map {
	d := r.Duration()
	return wire.Map{
		wire.TypeKey: wire.AudioRegion,
		"start_time": r.start.seconds,
		"end_time":   r.end.seconds,
		"duration":   d.seconds,
		"timing": wire.Map{
			"start":    r.start.Timing(),
			"end":      r.end.Timing(),
			"duration": d.Timing(),
		},
	}
}

// RangeFromWire reads an audio_region map in either the flat or the nested
// timing layout.
func RangeFromWire(m wire.Map) (Range, error) {
	var w wire.Span
	if err := decode(m, &w); err != nil {
		return Range{}, err
	}
	return SpanFromWire(w)
}

// SpanFromWire builds the Range described by a decoded wire span.
func SpanFromWire(w wire.Span) (Range, error) {
	start, end := w.Start(), w.End()
	if start == nil || end == nil {
		return Range{}, Invalid("region needs both start_time and end_time")
	}
	return RangeFromSeconds(*start, *end)
}

func decode(m wire.Map, out interface{}) error {
	if err := wire.Decode(m, out); err != nil {
		return InvalidArgumentError(err.Error())
	}
	return nil
}
