package av

import (
	"fmt"
	"image"
	"math"

	"github.com/cbsinteractive/annotate/timecode"
)

// Rectangle is an axis-aligned bounding box in pixels. The position may be
// negative (an offset outside the frame); the size may not.
type Rectangle struct {
	x, y          int32
	width, height int32
}

// NewRectangle returns the box at (x, y) of the given size.
func NewRectangle(x, y, width, height int32) (Rectangle, error) {
	if width < 0 || height < 0 {
		return Rectangle{}, timecode.Invalid("rectangle size must be non-negative, got %dx%d", width, height)
	}
	return Rectangle{x: x, y: y, width: width, height: height}, nil
}

func (r Rectangle) X() int32      { return r.x }
func (r Rectangle) Y() int32      { return r.y }
func (r Rectangle) Width() int32  { return r.width }
func (r Rectangle) Height() int32 { return r.height }

func (r Rectangle) Area() int64 {
	return int64(r.width) * int64(r.height)
}

func (r Rectangle) CenterX() int32 { return r.x + r.width/2 }
func (r Rectangle) CenterY() int32 { return r.y + r.height/2 }

// edges in int64 so that boxes near the int32 limits don't wrap
func (r Rectangle) right() int64  { return int64(r.x) + int64(r.width) }
func (r Rectangle) bottom() int64 { return int64(r.y) + int64(r.height) }

// Contains reports whether the point lies in r, edges included.
func (r Rectangle) Contains(x, y int32) bool {
	px, py := int64(x), int64(y)
	return px >= int64(r.x) && px <= r.right() &&
		py >= int64(r.y) && py <= r.bottom()
}

// Overlaps reports whether r and o intersect. Boxes sharing only an edge
// overlap; compare with timecode.Range.Overlaps, where touching endpoints
// do not.
func (r Rectangle) Overlaps(o Rectangle) bool {
	return !(r.right() < int64(o.x) || o.right() < int64(r.x) ||
		r.bottom() < int64(o.y) || o.bottom() < int64(r.y))
}

// Grow adds n pixels on every side. The origin is clamped to (0, 0) and
// the size to the int32 limit; negative n is treated as zero.
func (r Rectangle) Grow(n int32) Rectangle {
	if n < 0 {
		n = 0
	}
	buf := int64(n)
	return Rectangle{
		x:      clamp32(int64(r.x) - buf),
		y:      clamp32(int64(r.y) - buf),
		width:  clamp32(int64(r.width) + 2*buf),
		height: clamp32(int64(r.height) + 2*buf),
	}
}

func (r Rectangle) Equal(o Rectangle) bool {
	return r == o
}

// Image returns r as an image.Rectangle.
func (r Rectangle) Image() image.Rectangle {
	return image.Rect(int(r.x), int(r.y), int(r.right()), int(r.bottom()))
}

// FromImage converts an image.Rectangle. The input is canonicalized first,
// so swapped corners are accepted.
func FromImage(ir image.Rectangle) Rectangle {
	ir = ir.Canon()
	return Rectangle{
		x:      int32(ir.Min.X),
		y:      int32(ir.Min.Y),
		width:  int32(ir.Dx()),
		height: int32(ir.Dy()),
	}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%dx%d%+d%+d", r.width, r.height, r.x, r.y)
}

// clamp32 limits v to [0, MaxInt32].
func clamp32(v int64) int32 {
	switch {
	case v < 0:
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	}
	return int32(v)
}
