package av

import (
	"github.com/cbsinteractive/annotate/timecode"
	"github.com/cbsinteractive/annotate/wire"
)

// Wire returns the minimal map for r.
func (r Rectangle) Wire() wire.Map {
	return wire.Map{
		"x":      r.x,
		"y":      r.y,
		"width":  r.width,
		"height": r.height,
	}
}

// DetailedWire adds the derived fields used by display contexts.
func (r Rectangle) DetailedWire() wire.Map {
	m := r.Wire()
	m["area"] = r.Area()
	m["center_x"] = r.CenterX()
	m["center_y"] = r.CenterY()
	return m
}

type rectWire struct {
	X      int32 `mapstructure:"x"`
	Y      int32 `mapstructure:"y"`
	Width  int32 `mapstructure:"width"`
	Height int32 `mapstructure:"height"`
}

func (w *rectWire) rectangle() (Rectangle, error) {
	if w == nil {
		return Rectangle{}, nil
	}
	return NewRectangle(w.X, w.Y, w.Width, w.Height)
}

// RectangleFromWire reads a rectangle map. Derived fields are ignored.
func RectangleFromWire(m wire.Map) (Rectangle, error) {
	var w rectWire
	if err := decode(m, &w); err != nil {
		return Rectangle{}, err
	}
	return w.rectangle()
}

// Wire returns the video_region map for r.
func (r Region) Wire() wire.Map {
	start, end := r.Start().Timing(), r.End().Timing()
	start["frame"] = r.StartFrame()
	start["frame_aligned"] = r.AlignedStart().Seconds()
	end["frame"] = r.EndFrame()
	end["frame_aligned"] = r.AlignedEnd().Seconds()

	return wire.Map{
		wire.TypeKey: wire.VideoRegion,
		"start_time": r.Start().Seconds(),
		"end_time":   r.End().Seconds(),
		"duration":   r.Duration().Seconds(),
		"frame_rate": r.rate,
		"bounds":     r.bounds.DetailedWire(),
		"timing": wire.Map{
			"start": start,
			"end":   end,
		},
		"position": r.bounds.Wire(),
		"media": wire.Map{
			"frame_rate": r.rate,
			"type":       wire.MediaVideo,
		},
		"frames": wire.Map{
			"start": r.StartFrame(),
			"end":   r.EndFrame(),
			"count": r.FrameCount(),
		},
	}
}

type regionWire struct {
	wire.Span `mapstructure:",squash"`
	FrameRate *float64   `mapstructure:"frame_rate"`
	Media     wire.Media `mapstructure:"media"`
	Bounds    *rectWire  `mapstructure:"bounds"`
	Position  *rectWire  `mapstructure:"position"`
}

// RegionFromWire reads a video_region map. Times are read as in
// timecode.RangeFromWire, the rate falls back to defaultRate, and bounds
// fall back to the legacy "position" block, then to an empty box at the
// origin.
func RegionFromWire(m wire.Map, defaultRate float64) (Region, error) {
	var w regionWire
	if err := decode(m, &w); err != nil {
		return Region{}, err
	}
	span, err := timecode.SpanFromWire(w.Span)
	if err != nil {
		return Region{}, err
	}
	rw := w.Bounds
	if rw == nil {
		rw = w.Position
	}
	bounds, err := rw.rectangle()
	if err != nil {
		return Region{}, err
	}
	rate := wire.First(defaultRate, w.FrameRate, w.Media.FrameRate)
	return NewRegion(span.Start(), span.End(), rate, bounds)
}

func decode(m wire.Map, out interface{}) error {
	if err := wire.Decode(m, out); err != nil {
		return timecode.InvalidArgumentError(err.Error())
	}
	return nil
}
