package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultPrecision is the number of decimals used by FormatPrecise in
// wire maps.
const DefaultPrecision = 1

// MaxPrecision caps the decimals of FormatPrecise; float64 carries no more
// significant digits than that.
const MaxPrecision = 15

// String returns t in M:SS or H:MM:SS form.
func (t Timecode) String() string {
	return t.Format(false)
}

// Format renders t as M:SS, or H:MM:SS when t is at least an hour in or
// forceHours is set. Fractional seconds are truncated.
func (t Timecode) Format(forceHours bool) string {
	d := whole(t.seconds)
	h, m, s := d/3600, d%3600/60, d%60
	if forceHours || h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatPrecise is like Format but keeps the given number of decimals on
// the seconds field, zero padded: 1:05.3, 1:05:30.25.
func (t Timecode) FormatPrecise(decimals int, forceHours bool) string {
	if decimals < 0 {
		decimals = 0
	}
	if decimals > MaxPrecision {
		decimals = MaxPrecision
	}
	// round first so that 59.96 carries into the minute instead of
	// printing as 60.0
	p := math.Pow10(decimals)
	total := t.seconds
	if r := math.Round(t.seconds*p) / p; finite(r) {
		total = r
	}
	d := whole(total)
	h, m := d/3600, d%3600/60
	s := total - float64(h*3600+m*60)

	width := 2
	if decimals > 0 {
		width = 3 + decimals
	}
	sec := fmt.Sprintf("%0*.*f", width, decimals, s)
	if forceHours || h > 0 {
		return fmt.Sprintf("%d:%02d:%s", h, m, sec)
	}
	return fmt.Sprintf("%d:%s", m, sec)
}

// ParseFormatted parses MM:SS or HH:MM:SS. Every part must be a
// non-negative number and the seconds part may be fractional.
func ParseFormatted(text string) (Timecode, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Timecode{}, Invalid("timecode is empty")
	}
	parts := strings.Split(text, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return Timecode{}, Invalid("timecode %q must be MM:SS or HH:MM:SS", text)
	}

	var hms [3]float64
	off := len(hms) - len(parts)
	for i, p := range parts {
		v, err := number(p)
		if err != nil {
			return Timecode{}, Invalid("timecode %q: %v", text, err)
		}
		hms[off+i] = v
	}
	return FromSeconds(hms[0]*3600 + hms[1]*60 + hms[2])
}

// Parse accepts either a formatted timecode (anything with a colon) or a
// plain number of seconds.
func Parse(text string) (Timecode, error) {
	if strings.Contains(text, ":") {
		return ParseFormatted(text)
	}
	v, err := number(text)
	if err != nil {
		return Timecode{}, Invalid("timecode %q: %v", text, err)
	}
	return FromSeconds(v)
}

func number(p string) (float64, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return 0, errors.New("empty part")
	}
	if p[0] == '-' || p[0] == '+' {
		return 0, errors.Errorf("signed part %q", p)
	}
	v, err := strconv.ParseFloat(p, 64)
	if err != nil || !finite(v) {
		return 0, errors.Errorf("non-numeric part %q", p)
	}
	return v, nil
}

// SMPTE renders t as a non-drop-frame HH:MM:SS:FF timecode, where FF is the
// nearest frame within the second.
func (t Timecode) SMPTE(rate float64) (string, error) {
	if _, err := FrameNumber(t.seconds, rate); err != nil {
		return "", err
	}
	if t.seconds >= maxFrame {
		return "", Invalid("%vs is too far in for an smpte timecode", t.seconds)
	}
	d := int64(t.seconds)
	ff := Round((t.seconds - float64(d)) * rate)
	if float64(ff) >= math.Ceil(rate) {
		d, ff = d+1, 0
	}
	return fmt.Sprintf("%02d:%02d:%02d:%02d", d/3600, d%3600/60, d%60, ff), nil
}

// ParseSMPTE parses HH:MM:SS:FF, HH:MM:SS;FF or HH:MM:SS, where FF is a frame
// number within the second at the given rate.
func ParseSMPTE(text string, rate float64) (Timecode, error) {
	if err := CheckRate(rate); err != nil {
		return Timecode{}, err
	}
	text = strings.TrimSpace(text)
	norm := text
	if i := strings.LastIndex(text, ";"); i >= 0 {
		norm = text[:i] + ":" + text[i+1:]
		if strings.Count(norm, ":") != 3 {
			return Timecode{}, Invalid("smpte timecode %q must be HH:MM:SS;FF", text)
		}
	}
	parts := strings.Split(norm, ":")
	if len(parts) != 3 && len(parts) != 4 {
		return Timecode{}, Invalid("smpte timecode %q must be HH:MM:SS:FF", text)
	}

	var v [4]int64
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return Timecode{}, Invalid("smpte timecode %q: non-numeric part %q", text, p)
		}
		v[i] = int64(n)
	}
	h, m, s, ff := v[0], v[1], v[2], v[3]
	if m >= 60 || s >= 60 {
		return Timecode{}, Invalid("smpte timecode %q: minutes and seconds must be below 60", text)
	}
	if float64(ff) >= math.Ceil(rate) {
		return Timecode{}, Invalid("smpte timecode %q: frame %d out of range at %v fps", text, ff, rate)
	}
	return FromSeconds(float64(h*3600+m*60+s) + float64(ff)/rate)
}
