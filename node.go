package quadtree

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Quadrant identifies one of a node's four children. The order NE, NW, SW,
// SE is the traversal order everywhere in the package.
type Quadrant int

const (
	NE Quadrant = iota
	NW
	SW
	SE
)

func (q Quadrant) String() string {
	switch q {
	case NE:
		return "NE"
	case NW:
		return "NW"
	case SW:
		return "SW"
	case SE:
		return "SE"
	}
	return fmt.Sprintf("Quadrant(%d)", int(q))
}

// splitThreshold is the local occupancy a leaf tolerates before it
// subdivides. A leaf holding more than this many circles splits on the next
// Add.
const splitThreshold = 4

// Node is one square cell of the tree. A node is either a leaf with no
// children or has exactly four; subdivision never reverses. Interior nodes
// still carry circles locally when a circle straddles more than one child
// region.
type Node struct {
	region   Region
	origin   Point
	children [4]*Node
	circles  []*Circle
}

func newNode(r Region) *Node {
	return &Node{region: r, origin: r.Origin()}
}

// Region returns the node's cell.
func (n *Node) Region() Region { return n.region }

// Origin returns the center point where the node's children meet.
func (n *Node) Origin() Point { return n.origin }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return n.children[NE] == nil }

// Child returns the child in quadrant q, or nil on a leaf.
func (n *Node) Child(q Quadrant) *Node { return n.children[q] }

// Circles returns the node's local list. Interior nodes hold the circles
// that straddle more than one of their child regions.
func (n *Node) Circles() []*Circle { return n.circles }

// quadrants reports which child regions c intersects, in NE to SE order.
// Only meaningful on subdivided nodes.
func (n *Node) quadrants(c *Circle) []Quadrant {
	var quads []Quadrant
	for q := NE; q <= SE; q++ {
		if n.children[q].region.IntersectsCircle(c) {
			quads = append(quads, q)
		}
	}
	return quads
}

// Add stores c in the subtree rooted at n and reports whether it was
// stored. Circles whose bounds do not intersect the node's region are
// rejected. The circle descends while exactly one child region intersects
// it and parks at the deepest node where that stops being true.
func (n *Node) Add(c *Circle) bool {
	for {
		if !n.region.IntersectsCircle(c) {
			return false
		}
		if n.IsLeaf() {
			n.circles = append(n.circles, c)
			if len(n.circles) > splitThreshold {
				n.subdivide()
			}
			return true
		}
		quads := n.quadrants(c)
		if len(quads) == 1 {
			n = n.children[quads[0]]
			continue
		}
		n.circles = append(n.circles, c)
		return true
	}
}

// subdivide creates the four children and redistributes the local list.
// Circles intersecting a single child region move down; the rest stay here
// and are marked multi-quadrant.
func (n *Node) subdivide() {
	for q := NE; q <= SE; q++ {
		n.children[q] = newNode(n.region.Split(q))
	}
	update := n.circles
	n.circles = nil
	for _, c := range update {
		quads := n.quadrants(c)
		if len(quads) == 1 {
			c.multi = false
			if !n.children[quads[0]].Add(c) {
				log.Errorln("subdivide: child rejected circle", c)
				n.circles = append(n.circles, c)
			}
			continue
		}
		c.multi = true
		n.circles = append(n.circles, c)
	}
}

// Remove deletes the first circle in this node's local list that Equals c
// and reports whether one was found. Children are not searched and the
// node structure is left as is.
func (n *Node) Remove(c *Circle) bool {
	for i, stored := range n.circles {
		if stored.Equals(c) {
			n.circles = append(n.circles[:i], n.circles[i+1:]...)
			return true
		}
	}
	return false
}

// Collide feeds every stored circle that hit reports colliding with q to
// visit, pruning subtrees whose regions q does not reach. A nil hit falls
// back to DefaultCollision. Order is a node's local circles first, then its
// children NE to SE. The traversal stops early when visit returns false;
// Collide reports whether it ran to completion.
func (n *Node) Collide(q *Circle, hit CollisionFunc, visit CircleVisitor) bool {
	if hit == nil {
		hit = DefaultCollision
	}
	return n.collide(q, hit, visit)
}

func (n *Node) collide(q *Circle, hit CollisionFunc, visit CircleVisitor) bool {
	if !n.region.IntersectsCircle(q) {
		return true
	}
	for _, c := range n.circles {
		if hit(q, c) && !visit(c) {
			return false
		}
	}
	if n.IsLeaf() {
		return true
	}
	for _, quad := range n.quadrants(q) {
		if !n.children[quad].collide(q, hit, visit) {
			return false
		}
	}
	return true
}

// Walk visits n and every descendant in preorder, children NE to SE. The
// walk stops early when visit returns false; Walk reports whether it ran
// to completion.
func (n *Node) Walk(visit NodeVisitor) bool {
	if !visit(n) {
		return false
	}
	if n.IsLeaf() {
		return true
	}
	for q := NE; q <= SE; q++ {
		if !n.children[q].Walk(visit) {
			return false
		}
	}
	return true
}
