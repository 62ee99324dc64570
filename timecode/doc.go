// Package timecode deals with offsets and intervals on a media timeline,
// used to anchor annotations to moments of audio and video assets. The
// primary types in this package are:
//
//	Timecode  a non-negative offset in seconds
//	Frame     a Timecode bound to a frame rate, with its frame number
//	Range     a start/end pair of Timecodes where start < end
//	Splice    a list of (possibly unordered, possibly overlapping) Ranges
//
// All values are immutable; every operation returns a new value. Invalid
// input is reported as an InvalidArgumentError and never produces a
// partially built value.
//
// Frame numbers are always derived with Round, which rounds half away
// from zero, so that 12.5s at 25fps is frame 313.
package timecode
