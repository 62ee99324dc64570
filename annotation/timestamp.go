// Package annotation anchors feedback to media. A Timestamp is one of the
// three wire-representable anchors: a single video frame, an audio region,
// or a video region. FromWire rebuilds the right one from its wire map.
package annotation

import (
	"encoding/json"

	"github.com/cbsinteractive/annotate/av"
	"github.com/cbsinteractive/annotate/timecode"
	"github.com/cbsinteractive/annotate/wire"
)

// Kind is the discriminator of a Timestamp, as written in the wire map.
type Kind string

const (
	KindVideoFrame  Kind = wire.VideoFrame
	KindAudioRegion Kind = wire.AudioRegion
	KindVideoRegion Kind = wire.VideoRegion
)

// Timestamp holds exactly one of a timecode.Frame, a timecode.Range or an
// av.Region, selected by its Kind. The zero Timestamp has no kind and
// reports zero times.
type Timestamp struct {
	kind   Kind
	frame  timecode.Frame
	audio  timecode.Range
	region av.Region
}

func FromFrame(f timecode.Frame) Timestamp {
	return Timestamp{kind: KindVideoFrame, frame: f}
}

func FromRange(r timecode.Range) Timestamp {
	return Timestamp{kind: KindAudioRegion, audio: r}
}

func FromRegion(r av.Region) Timestamp {
	return Timestamp{kind: KindVideoRegion, region: r}
}

func (t Timestamp) Kind() Kind { return t.kind }

// Frame returns the video frame held by t.
func (t Timestamp) Frame() (timecode.Frame, bool) {
	return t.frame, t.kind == KindVideoFrame
}

// Range returns the audio region held by t.
func (t Timestamp) Range() (timecode.Range, bool) {
	return t.audio, t.kind == KindAudioRegion
}

// Region returns the video region held by t.
func (t Timestamp) Region() (av.Region, bool) {
	return t.region, t.kind == KindVideoRegion
}

// Start returns the first instant covered by t.
func (t Timestamp) Start() timecode.Timecode {
	switch t.kind {
	case KindVideoFrame:
		return t.frame.Time()
	case KindAudioRegion:
		return t.audio.Start()
	case KindVideoRegion:
		return t.region.Start()
	}
	return timecode.Zero()
}

// End returns the last instant covered by t. A frame ends one frame
// duration after its time.
func (t Timestamp) End() timecode.Timecode {
	switch t.kind {
	case KindVideoFrame:
		return t.frame.Time().Add(t.frame.Duration())
	case KindAudioRegion:
		return t.audio.End()
	case KindVideoRegion:
		return t.region.End()
	}
	return timecode.Zero()
}

func (t Timestamp) Duration() timecode.Timecode {
	switch t.kind {
	case KindVideoFrame:
		return t.frame.Duration()
	case KindAudioRegion:
		return t.audio.Duration()
	case KindVideoRegion:
		return t.region.Duration()
	}
	return timecode.Zero()
}

// FrameRate returns the frame rate of video timestamps. Audio regions carry
// none.
func (t Timestamp) FrameRate() (float64, bool) {
	switch t.kind {
	case KindVideoFrame:
		return t.frame.Rate(), true
	case KindVideoRegion:
		return t.region.Rate(), true
	}
	return 0, false
}

// Span returns the time window of t.
func (t Timestamp) Span() timecode.Range {
	if t.kind == KindAudioRegion {
		return t.audio
	}
	// every kind ends after it starts; the zero Timestamp yields the zero Range
	r, _ := timecode.NewRange(t.Start(), t.End())
	return r
}

// Contains reports whether instant u falls in t, both ends included.
func (t Timestamp) Contains(u timecode.Timecode) bool {
	return t.kind != "" && !u.Before(t.Start()) && !u.After(t.End())
}

// OverlapsTime reports whether t and u share time, using the open-interval
// rule of timecode.Range.
func (t Timestamp) OverlapsTime(u Timestamp) bool {
	if t.kind == "" || u.kind == "" {
		return false
	}
	return t.Start().Before(u.End()) && u.Start().Before(t.End())
}

// Less orders timestamps by start, then by duration.
func (t Timestamp) Less(u Timestamp) bool {
	a, b := t.Start(), u.Start()
	if a.Equal(b) {
		return t.Duration().Before(u.Duration())
	}
	return a.Before(b)
}

// Equal reports whether t and u are the same kind holding equal values.
func (t Timestamp) Equal(u Timestamp) bool {
	if t.kind != u.kind {
		return false
	}
	switch t.kind {
	case KindVideoFrame:
		return t.frame.Equal(u.frame)
	case KindAudioRegion:
		return t.audio.Equal(u.audio)
	case KindVideoRegion:
		return t.region.Equal(u.region)
	}
	return true
}

// Wire returns the wire map of the held variant, or nil for the zero
// Timestamp.
func (t Timestamp) Wire() wire.Map {
	switch t.kind {
	case KindVideoFrame:
		return t.frame.Wire()
	case KindAudioRegion:
		return t.audio.Wire()
	case KindVideoRegion:
		return t.region.Wire()
	}
	return nil
}

func (t Timestamp) String() string {
	switch t.kind {
	case KindVideoFrame:
		return t.frame.String()
	case KindAudioRegion:
		return t.audio.String()
	case KindVideoRegion:
		return t.region.String()
	}
	return "<none>"
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Wire())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	m, err := wire.Parse(data)
	if err != nil {
		return err
	}
	ts, err := FromWire(m)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
