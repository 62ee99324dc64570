package timecode

import (
	"sort"

	cbs "github.com/cbsinteractive/pkg/timecode"
)

// Splice is a list of Ranges, possibly unordered and possibly overlapping.
// It implements sort.Interface, ordering by start and then by duration.
type Splice []Range

func (s Splice) Len() int      { return len(s) }
func (s Splice) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s Splice) Less(i, j int) bool {
	if s[i].start.Equal(s[j].start) {
		return s[i].Duration().Before(s[j].Duration())
	}
	return s[i].start.Before(s[j].start)
}

// Sorted reports whether s is in order.
func (s Splice) Sorted() bool {
	return sort.IsSorted(s)
}

// Duration returns the cumulative duration of the ranges, counting any
// overlap more than once.
func (s Splice) Duration() (d Timecode) {
	for _, r := range s {
		d = d.Add(r.Duration())
	}
	return d
}

// Union returns the smallest Range containing every range in s. It returns
// false for an empty splice.
func (s Splice) Union() (Range, bool) {
	if len(s) == 0 {
		return Range{}, false
	}
	u := s[0]
	for _, r := range s[1:] {
		u.start = minTime(u.start, r.start)
		u.end = maxTime(u.end, r.end)
	}
	return u, true
}

// In reports whether every range of s lies within r.
func (s Splice) In(r Range) bool {
	for _, c := range s {
		if c.start.Before(r.start) || c.end.After(r.end) {
			return false
		}
	}
	return true
}

// Merge returns a sorted copy of s in which overlapping ranges are joined.
// Ranges that only touch stay separate, as they do not overlap.
func (s Splice) Merge() Splice {
	if len(s) == 0 {
		return nil
	}
	in := append(Splice(nil), s...)
	sort.Sort(in)

	out := Splice{in[0]}
	for _, r := range in[1:] {
		last := &out[len(out)-1]
		if last.Overlaps(r) {
			last.end = maxTime(last.end, r.end)
			continue
		}
		out = append(out, r)
	}
	return out
}

// Export converts s into a transcode splice.
func (s Splice) Export() cbs.Splice {
	out := make(cbs.Splice, 0, len(s))
	for _, r := range s {
		out = append(out, r.Interval())
	}
	return out
}
