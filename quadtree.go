package quadtree

import (
	"fmt"
	"math"
)

// Tree is a quadtree over a square, power-of-two region. The zero value is
// not usable; construct with New.
type Tree struct {
	region    Region
	root      *Node
	collision CollisionFunc
}

// Option configures a Tree at construction time.
type Option func(*Tree)

// WithCollision sets the collision strategy Collide uses for
// circle-to-circle tests. Region pruning is unaffected, so a strategy
// looser than the circles' true extents can miss candidates the pruning
// already discarded.
func WithCollision(f CollisionFunc) Option {
	return func(t *Tree) {
		t.collision = f
	}
}

// New builds an empty tree covering at least r. The bounds grow outward to
// powers of two and then to a square, so the root region is typically
// larger than requested; Region reports the result. New fails when r's max
// bounds do not exceed its min bounds.
func New(r Region, opts ...Option) (*Tree, error) {
	if r.XMax <= r.XMin || r.YMax <= r.YMin {
		return nil, fmt.Errorf("quadtree: malformed region %v: max bounds must exceed min bounds", r)
	}
	xmin := FloorPow2(r.XMin)
	ymin := FloorPow2(r.YMin)
	xmax := CeilPow2(r.XMax)
	ymax := CeilPow2(r.YMax)
	canon := Region{
		XMin: math.Min(xmin, ymin),
		YMin: math.Min(xmin, ymin),
		XMax: math.Max(xmax, ymax),
		YMax: math.Max(xmax, ymax),
	}
	t := &Tree{region: canon, collision: DefaultCollision}
	for _, opt := range opts {
		opt(t)
	}
	if t.collision == nil {
		t.collision = DefaultCollision
	}
	return t, nil
}

// Region returns the canonical square region the tree covers.
func (t *Tree) Region() Region { return t.region }

// Add stores c and reports whether it was stored. Circles extending past
// the tree's region are rejected.
func (t *Tree) Add(c *Circle) bool {
	if t.root == nil {
		t.root = newNode(t.region)
	}
	return t.root.Add(c)
}

// Remove deletes the first stored circle equal to c and reports whether
// one was found. The descent follows child regions only while exactly one
// child intersects c; after that the current node's local list is
// searched. Subdivisions are never undone.
func (t *Tree) Remove(c *Circle) bool {
	node := t.root
	for node != nil {
		if !node.IsLeaf() {
			if quads := node.quadrants(c); len(quads) == 1 {
				node = node.children[quads[0]]
				continue
			}
		}
		return node.Remove(c)
	}
	return false
}

// Collide feeds every stored circle colliding with q to visit, using the
// tree's collision strategy. Returning false from visit stops the
// traversal.
func (t *Tree) Collide(q *Circle, visit CircleVisitor) {
	if t.root == nil {
		return
	}
	t.root.Collide(q, t.collision, visit)
}

// CollideAll returns every stored circle colliding with q.
func (t *Tree) CollideAll(q *Circle) []*Circle {
	var hits []*Circle
	t.Collide(q, func(c *Circle) bool {
		hits = append(hits, c)
		return true
	})
	return hits
}

// Walk visits every node in preorder, children NE to SE. Returning false
// from visit stops the walk. An empty tree has no nodes to visit.
func (t *Tree) Walk(visit NodeVisitor) {
	if t.root == nil {
		return
	}
	t.root.Walk(visit)
}

// Nodes returns every node in preorder.
func (t *Tree) Nodes() []*Node {
	var nodes []*Node
	t.Walk(func(n *Node) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}

// Circles feeds every stored circle to visit in preorder node order.
// Returning false from visit stops the enumeration.
func (t *Tree) Circles(visit CircleVisitor) {
	t.Walk(func(n *Node) bool {
		for _, c := range n.circles {
			if !visit(c) {
				return false
			}
		}
		return true
	})
}

// Len returns the number of stored circles.
func (t *Tree) Len() int {
	count := 0
	t.Circles(func(*Circle) bool {
		count++
		return true
	})
	return count
}
