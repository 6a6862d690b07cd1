package quadtree

import "math"

// Point is a position on the plane.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between a and b. The tree never
// calls it; it exists for consumers such as trail rendering.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// CollisionFunc decides whether two circles collide. The tree uses the
// active CollisionFunc only for circle-to-circle tests during Collide;
// subtree pruning always runs on region geometry, so a custom strategy can
// be looser or stricter than the default without breaking traversal.
type CollisionFunc func(a, b *Circle) bool

// DefaultCollision reports overlap when the squared distance between
// centers does not exceed the squared sum of the radii. Circles touching at
// a single point collide.
func DefaultCollision(a, b *Circle) bool {
	dx := a.x - b.x
	dy := a.y - b.y
	sum := a.r + b.r
	return dx*dx+dy*dy <= sum*sum
}

// BoxCollision reports overlap of the circles' bounding boxes, a coarser
// substitute for DefaultCollision. Boxes that only share an edge do not
// collide.
func BoxCollision(a, b *Circle) bool {
	return a.x-a.r < b.x+b.r && a.x+a.r > b.x-b.r &&
		a.y-a.r < b.y+b.r && a.y+a.r > b.y-b.r
}

// CircleVisitor receives circles one at a time. Returning false stops the
// enumeration; nothing further is produced.
type CircleVisitor func(*Circle) bool

// NodeVisitor receives nodes one at a time. Returning false stops the walk.
type NodeVisitor func(*Node) bool
