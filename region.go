package quadtree

import (
	"fmt"
	"math"
)

// Region is an axis-aligned area of the plane. Bounds are closed on the
// minimum edges and open on the maximum edges, so adjacent regions never
// both own a shared boundary coordinate.
type Region struct {
	XMin, YMin, XMax, YMax float64
}

func (r Region) String() string {
	return fmt.Sprintf("[%g,%g)x[%g,%g)", r.XMin, r.XMax, r.YMin, r.YMax)
}

// Width returns the horizontal extent of the region.
func (r Region) Width() float64 { return r.XMax - r.XMin }

// Height returns the vertical extent of the region.
func (r Region) Height() float64 { return r.YMax - r.YMin }

// Origin returns the midpoint of the region, the point its four quadrants
// split at.
func (r Region) Origin() Point {
	return Point{(r.XMin + r.XMax) / 2, (r.YMin + r.YMax) / 2}
}

// Quadrant classifies p against the region origin. A point on a split line
// belongs to the quadrant with the greater coordinates: NE wins over NW and
// SE, SE wins over SW.
func (r Region) Quadrant(p Point) Quadrant {
	o := r.Origin()
	if p.X >= o.X {
		if p.Y >= o.Y {
			return NE
		}
		return SE
	}
	if p.Y >= o.Y {
		return NW
	}
	return SW
}

// Split returns the sub-region covering one quadrant of r. The four
// sub-regions partition r exactly: each keeps the closed-min/open-max
// convention, with the origin owned by NE.
func (r Region) Split(q Quadrant) Region {
	o := r.Origin()
	switch q {
	case NE:
		return Region{o.X, o.Y, r.XMax, r.YMax}
	case NW:
		return Region{r.XMin, o.Y, o.X, r.YMax}
	case SW:
		return Region{r.XMin, r.YMin, o.X, o.Y}
	default:
		return Region{o.X, r.YMin, r.XMax, o.Y}
	}
}

// ContainsCircle reports whether the circle's bounding box lies entirely
// inside the region: closed against the minimum edges, open against the
// maximum edges. A circle touching a maximum edge exactly is not contained;
// one touching a minimum edge exactly is.
func (r Region) ContainsCircle(c *Circle) bool {
	if c.x-c.r < r.XMin || c.x+c.r >= r.XMax {
		return false
	}
	if c.y-c.r < r.YMin || c.y+c.r >= r.YMax {
		return false
	}
	return true
}

// IntersectsCircle reports whether the circle overlaps the region anywhere.
// The test degrades cleanly on degenerate regions: a zero-extent region
// behaves as a point.
func (r Region) IntersectsCircle(c *Circle) bool {
	o := r.Origin()
	halfW := r.Width() / 2
	halfH := r.Height() / 2
	dx := math.Abs(c.x - o.X)
	dy := math.Abs(c.y - o.Y)

	if dx > c.r+halfW || dy > c.r+halfH {
		return false
	}
	if dx <= halfW || dy <= halfH {
		return true
	}

	// Center is past both half-extents: the nearest region point is a corner.
	cx := dx - halfW
	cy := dy - halfH
	return cx*cx+cy*cy <= c.r*c.r
}

// FloorPow2 returns the nearest signed power of two at or below n: for
// positive n the largest power of two not exceeding it, for negative n the
// power of two at or below it (greater in magnitude). Zero maps to zero.
func FloorPow2(n float64) float64 {
	if n == 0 {
		return 0
	}
	if n < 0 {
		return -math.Exp2(math.Ceil(math.Log2(-n)))
	}
	return math.Exp2(math.Floor(math.Log2(n)))
}

// CeilPow2 returns the nearest signed power of two at or above n, the
// ceiling counterpart of FloorPow2. Zero maps to zero.
func CeilPow2(n float64) float64 {
	if n == 0 {
		return 0
	}
	if n < 0 {
		return -math.Exp2(math.Floor(math.Log2(-n)))
	}
	return math.Exp2(math.Ceil(math.Log2(n)))
}
