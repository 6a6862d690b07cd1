package quadtree

import "fmt"

// Circle is the payload the tree indexes: a center and a radius. The zero
// radius is legal and describes a point.
//
// Circles are stored by pointer. Mutating a circle's position while it is in
// a Tree invalidates the index; Remove it first, then Add it back.
type Circle struct {
	x, y, r float64
	multi   bool
}

// NewCircle returns a circle centered at (x, y) with radius r.
func NewCircle(x, y, r float64) *Circle {
	return &Circle{x: x, y: y, r: r}
}

// X returns the center's x coordinate.
func (c *Circle) X() float64 { return c.x }

// Y returns the center's y coordinate.
func (c *Circle) Y() float64 { return c.y }

// Radius returns the circle's radius.
func (c *Circle) Radius() float64 { return c.r }

// Center returns the center as a Point.
func (c *Circle) Center() Point { return Point{X: c.x, Y: c.y} }

// MultiQuadrant reports whether the circle straddled more than one child
// region the last time its node subdivided. It is informational only; no
// tree operation consults it.
func (c *Circle) MultiQuadrant() bool { return c.multi }

// Equals reports whether o has the same center and radius. The
// multi-quadrant annotation is ignored.
func (c *Circle) Equals(o *Circle) bool {
	return c.x == o.x && c.y == o.y && c.r == o.r
}

func (c *Circle) String() string {
	return fmt.Sprintf("(%g,%g r=%g)", c.x, c.y, c.r)
}
