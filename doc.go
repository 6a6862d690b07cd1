// Package quadtree implements a spatial index for circles on a bounded
// plane. It answers the broad-phase collision question, which stored
// circles intersect this query circle, without scanning every stored
// object.
//
// A Tree covers a square region whose bounds are widened to signed powers of
// two, so halving a region during subdivision never drifts off alignment. A
// circle that overlaps more than one child quadrant is parked at the deepest
// node that still sees all of it; everything else sinks toward the leaves,
// and a leaf splits once a fifth circle lands on it.
//
// Basic usage:
//
//	t, err := quadtree.New(quadtree.Region{XMin: 0, YMin: 0, XMax: 512, YMax: 512})
//	if err != nil {
//		// region had max <= min on an axis
//	}
//	t.Add(quadtree.NewCircle(100, 80, 16))
//	probe := quadtree.NewCircle(96, 96, 32)
//	t.Collide(probe, func(c *quadtree.Circle) bool {
//		fmt.Println("hit:", c)
//		return true // keep going; false stops the enumeration
//	})
//
// The tree is not safe for concurrent mutation; callers must serialize Add
// and Remove externally. There is no move primitive: relocating a circle is
// a Remove followed by an Add of the new position.
package quadtree
