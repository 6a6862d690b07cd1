package quadtree

import "testing"

// quadrantCircles returns one small circle per quadrant of the 64x64 region,
// in NE, NW, SW, SE order.
func quadrantCircles() []*Circle {
	return []*Circle{
		NewCircle(48, 48, 2),
		NewCircle(16, 48, 2),
		NewCircle(16, 16, 2),
		NewCircle(48, 16, 2),
	}
}

func TestNodeAddRejectsOutside(t *testing.T) {
	n := newNode(Region{XMin: 0, YMin: 0, XMax: 64, YMax: 64})
	if n.Add(NewCircle(100, 100, 4)) {
		t.Fatal("circle outside the region was accepted")
	}
	// intersection is enough, containment is not required
	if !n.Add(NewCircle(60, 60, 10)) {
		t.Fatal("circle overlapping the region was rejected")
	}
}

func TestLeafHoldsUpToThreshold(t *testing.T) {
	n := newNode(Region{XMin: 0, YMin: 0, XMax: 64, YMax: 64})
	for _, c := range quadrantCircles() {
		if !n.Add(c) {
			t.Fatal("insert rejected", c)
		}
	}
	if !n.IsLeaf() {
		t.Fatal("node split below the threshold")
	}
	if len(n.Circles()) != 4 {
		t.Fatalf("leaf holds %d circles, want 4", len(n.Circles()))
	}
}

func TestSubdivideRedistributes(t *testing.T) {
	n := newNode(Region{XMin: 0, YMin: 0, XMax: 64, YMax: 64})
	corners := quadrantCircles()
	for _, c := range corners {
		n.Add(c)
	}
	big := NewCircle(32, 32, 20)
	n.Add(big)

	if n.IsLeaf() {
		t.Fatal("fifth insert did not split the leaf")
	}
	if len(n.Circles()) != 1 || n.Circles()[0] != big {
		t.Fatalf("straddler not kept at the parent: %v", n.Circles())
	}
	if !big.MultiQuadrant() {
		t.Error("straddler not marked multi-quadrant")
	}
	for q := NE; q <= SE; q++ {
		child := n.Child(q)
		if len(child.Circles()) != 1 || child.Circles()[0] != corners[q] {
			t.Fatalf("%v child holds %v, want %v", q, child.Circles(), corners[q])
		}
		if corners[q].MultiQuadrant() {
			t.Errorf("%v corner circle marked multi-quadrant", q)
		}
	}
}

func TestSubdivideCascades(t *testing.T) {
	n := newNode(Region{XMin: 0, YMin: 0, XMax: 64, YMax: 64})
	// all five circles crowd the NE quadrant, so the split pushes them all
	// into one child and that child splits again
	crowd := []*Circle{
		NewCircle(36, 36, 1),
		NewCircle(60, 36, 1),
		NewCircle(36, 60, 1),
		NewCircle(60, 60, 1),
		NewCircle(48, 48, 1),
	}
	for _, c := range crowd {
		n.Add(c)
	}
	if n.IsLeaf() {
		t.Fatal("node did not split")
	}
	ne := n.Child(NE)
	if ne.IsLeaf() {
		t.Fatal("crowded child did not split in turn")
	}
	count := 0
	n.Walk(func(w *Node) bool {
		count += len(w.Circles())
		return true
	})
	if count != 5 {
		t.Fatalf("tree holds %d circles, want 5", count)
	}
	// the center circle straddles the child's own quadrants
	if len(ne.Circles()) != 1 || ne.Circles()[0] != crowd[4] {
		t.Fatalf("NE child local list %v, want the center circle", ne.Circles())
	}
	if !crowd[4].MultiQuadrant() {
		t.Error("center circle not marked multi-quadrant")
	}
}

func TestNodeRemoveLocalOnly(t *testing.T) {
	n := newNode(Region{XMin: 0, YMin: 0, XMax: 64, YMax: 64})
	for _, c := range quadrantCircles() {
		n.Add(c)
	}
	big := NewCircle(32, 32, 20)
	n.Add(big)

	if n.Remove(NewCircle(48, 48, 2)) {
		t.Fatal("Remove found a circle stored in a child")
	}
	if !n.Remove(NewCircle(32, 32, 20)) {
		t.Fatal("Remove missed the locally stored straddler")
	}
	if len(n.Circles()) != 0 {
		t.Fatalf("local list not empty after remove: %v", n.Circles())
	}
}

func TestNodeCollideHitFunc(t *testing.T) {
	n := newNode(Region{XMin: 0, YMin: 0, XMax: 64, YMax: 64})
	n.Add(NewCircle(10, 10, 2))
	probe := NewCircle(13, 13, 2)

	var def []*Circle
	n.Collide(probe, nil, func(c *Circle) bool {
		def = append(def, c)
		return true
	})
	if len(def) != 0 {
		t.Fatalf("default collision matched %v", def)
	}

	var box []*Circle
	n.Collide(probe, BoxCollision, func(c *Circle) bool {
		box = append(box, c)
		return true
	})
	if len(box) != 1 {
		t.Fatalf("box collision matched %d circles, want 1", len(box))
	}
}

func TestNodeCollideEarlyStop(t *testing.T) {
	n := newNode(Region{XMin: 0, YMin: 0, XMax: 64, YMax: 64})
	for i := 0; i < 8; i++ {
		n.Add(NewCircle(float64(4+i*8), 32, 3))
	}
	probe := NewCircle(32, 32, 64)
	visited := 0
	done := n.Collide(probe, nil, func(*Circle) bool {
		visited++
		return false
	})
	if done {
		t.Fatal("Collide reported completion after an early stop")
	}
	if visited != 1 {
		t.Fatalf("visited %d circles after stop, want 1", visited)
	}
}

func TestNodeWalkOrder(t *testing.T) {
	n := newNode(Region{XMin: 0, YMin: 0, XMax: 64, YMax: 64})
	for _, c := range quadrantCircles() {
		n.Add(c)
	}
	n.Add(NewCircle(32, 32, 20))

	var regions []Region
	n.Walk(func(w *Node) bool {
		regions = append(regions, w.Region())
		return true
	})
	want := []Region{
		{0, 0, 64, 64},
		{32, 32, 64, 64},
		{0, 32, 32, 64},
		{0, 0, 32, 32},
		{32, 0, 64, 32},
	}
	if len(regions) != len(want) {
		t.Fatalf("walk visited %d nodes, want %d", len(regions), len(want))
	}
	for i := range want {
		if regions[i] != want[i] {
			t.Errorf("walk[%d] = %v, want %v", i, regions[i], want[i])
		}
	}
}

func TestNodeWalkEarlyStop(t *testing.T) {
	n := newNode(Region{XMin: 0, YMin: 0, XMax: 64, YMax: 64})
	for _, c := range quadrantCircles() {
		n.Add(c)
	}
	n.Add(NewCircle(32, 32, 20))

	visited := 0
	done := n.Walk(func(*Node) bool {
		visited++
		return visited < 2
	})
	if done {
		t.Fatal("Walk reported completion after an early stop")
	}
	if visited != 2 {
		t.Fatalf("visited %d nodes after stop, want 2", visited)
	}
}
