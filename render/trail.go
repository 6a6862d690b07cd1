package render

import (
	"image/color"

	"github.com/behollister/quadtree"
)

// Trail is a fixed-capacity ring of recent points, oldest first. Pushing
// onto a full trail drops the oldest point.
type Trail struct {
	points []quadtree.Point
	limit  int
}

// NewTrail returns an empty trail keeping at most limit points.
func NewTrail(limit int) *Trail {
	if limit < 1 {
		limit = 1
	}
	return &Trail{limit: limit}
}

// Push appends p to the trail.
func (t *Trail) Push(p quadtree.Point) {
	t.points = append(t.points, p)
	if len(t.points) > t.limit {
		t.points = t.points[1:]
	}
}

// Points returns the retained points, oldest first.
func (t *Trail) Points() []quadtree.Point { return t.points }

// Len returns the number of retained points.
func (t *Trail) Len() int { return len(t.points) }

// Length returns the polyline length over the retained points.
func (t *Trail) Length() float64 {
	total := 0.0
	for i := 1; i < len(t.points); i++ {
		total += quadtree.Distance(t.points[i-1], t.points[i])
	}
	return total
}

// DrawTrail joins the trail's points with line segments, skipping
// zero-length ones.
func (f *Frame) DrawTrail(tr *Trail, col color.Color) {
	pts := tr.Points()
	for i := 1; i < len(pts); i++ {
		if quadtree.Distance(pts[i-1], pts[i]) == 0 {
			continue
		}
		f.DrawLine(pts[i-1], pts[i], col)
	}
}
