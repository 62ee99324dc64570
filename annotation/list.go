package annotation

import (
	"sort"

	"github.com/cbsinteractive/annotate/timecode"
)

// List is a set of timestamps on the same asset. It sorts like
// timecode.Splice: by start, then by duration.
type List []Timestamp

func (l List) Len() int           { return len(l) }
func (l List) Swap(i, j int)      { l[i], l[j] = l[j], l[i] }
func (l List) Less(i, j int) bool { return l[i].Less(l[j]) }

// Sorted returns a sorted copy of l.
func (l List) Sorted() List {
	out := append(List(nil), l...)
	sort.Stable(out)
	return out
}

// At returns the timestamps that contain t.
func (l List) At(t timecode.Timecode) List {
	var out List
	for _, ts := range l {
		if ts.Contains(t) {
			out = append(out, ts)
		}
	}
	return out
}

// Overlapping returns the timestamps that share time with w.
func (l List) Overlapping(w Timestamp) List {
	var out List
	for _, ts := range l {
		if ts.OverlapsTime(w) {
			out = append(out, ts)
		}
	}
	return out
}

// Splice returns the time windows of l.
func (l List) Splice() timecode.Splice {
	out := make(timecode.Splice, 0, len(l))
	for _, ts := range l {
		out = append(out, ts.Span())
	}
	return out
}
