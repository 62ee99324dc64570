package annotation

import (
	"github.com/cbsinteractive/annotate/av"
	"github.com/cbsinteractive/annotate/timecode"
	"github.com/cbsinteractive/annotate/wire"
)

type decodeFunc func(m wire.Map, rate float64) (Timestamp, error)

// decoders is closed: every Kind has exactly one entry and nothing can be
// registered from outside the package.
var decoders = map[Kind]decodeFunc{
	KindVideoFrame: func(m wire.Map, rate float64) (Timestamp, error) {
		f, err := timecode.FrameFromWire(m, rate)
		if err != nil {
			return Timestamp{}, err
		}
		return FromFrame(f), nil
	},
	KindAudioRegion: func(m wire.Map, _ float64) (Timestamp, error) {
		r, err := timecode.RangeFromWire(m)
		if err != nil {
			return Timestamp{}, err
		}
		return FromRange(r), nil
	},
	KindVideoRegion: func(m wire.Map, rate float64) (Timestamp, error) {
		r, err := av.RegionFromWire(m, rate)
		if err != nil {
			return Timestamp{}, err
		}
		return FromRegion(r), nil
	},
}

// Kinds lists the known discriminators in a stable order.
func Kinds() []Kind {
	return []Kind{KindVideoFrame, KindAudioRegion, KindVideoRegion}
}

// Decoder rebuilds Timestamps from wire maps.
type Decoder struct {
	// DefaultFrameRate is used for video maps that carry no frame rate.
	// Zero means timecode.DefaultFrameRate.
	DefaultFrameRate float64
}

// Decode reads the type tag of m and hands m to the matching variant.
func (d Decoder) Decode(m wire.Map) (Timestamp, error) {
	tag, ok := m.Type()
	if !ok {
		return Timestamp{}, timecode.Invalid("timestamp has no %q field", wire.TypeKey)
	}
	fn, ok := decoders[Kind(tag)]
	if !ok {
		return Timestamp{}, timecode.Invalid("unknown timestamp variant %q", tag)
	}
	return fn(m, d.rate())
}

func (d Decoder) rate() float64 {
	if d.DefaultFrameRate > 0 {
		return d.DefaultFrameRate
	}
	return timecode.DefaultFrameRate
}

// FromWire decodes m with the default Decoder.
func FromWire(m wire.Map) (Timestamp, error) {
	return Decoder{}.Decode(m)
}
