package render

import (
	"testing"

	"github.com/behollister/quadtree"
)

func TestTrailDropsOldest(t *testing.T) {
	tr := NewTrail(3)
	for i := 0; i < 5; i++ {
		tr.Push(quadtree.Point{X: float64(i), Y: 0})
	}
	if tr.Len() != 3 {
		t.Fatalf("Len = %d, want 3", tr.Len())
	}
	pts := tr.Points()
	if pts[0].X != 2 || pts[2].X != 4 {
		t.Fatalf("retained points = %v, want the three newest", pts)
	}
}

func TestTrailLength(t *testing.T) {
	tr := NewTrail(10)
	tr.Push(quadtree.Point{X: 0, Y: 0})
	tr.Push(quadtree.Point{X: 3, Y: 4})
	// a repeated point adds no length
	tr.Push(quadtree.Point{X: 3, Y: 4})
	if l := tr.Length(); l != 5 {
		t.Fatalf("Length = %g, want 5", l)
	}
}

func TestDrawTrailSkipsRepeatedPoints(t *testing.T) {
	f := NewFrame(quadtree.Region{XMin: 0, YMin: 0, XMax: 16, YMax: 16})
	tr := NewTrail(5)
	tr.Push(quadtree.Point{X: 2, Y: 2})
	tr.Push(quadtree.Point{X: 2, Y: 2})
	tr.Push(quadtree.Point{X: 10, Y: 2})
	f.DrawTrail(tr, CircleColor)
	if got := f.Image().RGBAAt(6, 2); got != CircleColor {
		t.Fatalf("segment pixel = %v, want line color", got)
	}
}
