// Package wire holds the map representation of timestamps exchanged with
// persistence layers and annotation front-ends, and the tolerant decoder used
// to read those maps back.
//
// Historical producers disagree on field layout and on number types: a frame
// rate may arrive as a JSON number, a Go integer or a numeric string. Decode
// accepts all of them.
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// TypeKey is the discriminator field carried by every timestamp map.
const TypeKey = "type"

// Discriminator tags for the timestamp variants.
const (
	VideoFrame  = "video_frame"
	AudioRegion = "audio_region"
	VideoRegion = "video_region"
)

// MediaVideo is the media type reported by video variants.
const MediaVideo = "video"

// Map is a JSON-serializable wire value.
type Map map[string]interface{}

// Type returns the discriminator tag and reports whether one was present.
// A non-string tag is rendered with fmt so that it can be reported.
func (m Map) Type() (string, bool) {
	v, ok := m[TypeKey]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// JSON encodes m.
func (m Map) JSON() ([]byte, error) {
	return json.Marshal(m)
}

// Parse decodes a JSON object into a Map.
func Parse(data []byte) (Map, error) {
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "parsing wire json")
	}
	if m == nil {
		return nil, errors.New("wire json is not an object")
	}
	return m, nil
}

// Decode copies the fields of in into the struct pointed to by out, using
// `mapstructure` tags. Numbers are converted between kinds and numeric strings
// are accepted. Unknown keys are ignored.
func Decode(in Map, out interface{}) error {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return errors.Wrap(err, "building wire decoder")
	}
	return errors.Wrap(d.Decode(map[string]interface{}(in)), "decoding wire map")
}

// First returns the value of the first non-nil candidate, or def.
func First(def float64, candidates ...*float64) float64 {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return def
}

// Seconds is a nested timing entry. Only the seconds field is read back;
// the formatted strings are display values.
type Seconds struct {
	Seconds *float64 `mapstructure:"seconds"`
}

// Span is the time window of a region map in either historical layout: a
// flat start_time/end_time pair, or timing.start.seconds/timing.end.seconds.
type Span struct {
	StartTime *float64 `mapstructure:"start_time"`
	EndTime   *float64 `mapstructure:"end_time"`
	Timing    struct {
		Start Seconds `mapstructure:"start"`
		End   Seconds `mapstructure:"end"`
	} `mapstructure:"timing"`
}

// Start returns the start seconds, preferring the flat field.
func (s Span) Start() *float64 {
	if s.StartTime != nil {
		return s.StartTime
	}
	return s.Timing.Start.Seconds
}

// End returns the end seconds, preferring the flat field.
func (s Span) End() *float64 {
	if s.EndTime != nil {
		return s.EndTime
	}
	return s.Timing.End.Seconds
}

// Media is the media descriptor nested in video variants.
type Media struct {
	FrameRate *float64 `mapstructure:"frame_rate"`
	Type      string   `mapstructure:"type"`
}
