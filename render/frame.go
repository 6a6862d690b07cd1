// Package render draws quadtree contents as raster frames and Graphviz
// diagrams. It reads trees only through their walk interfaces and never
// mutates them.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"

	"golang.org/x/image/bmp"

	"github.com/behollister/quadtree"
)

var (
	// Background fills new frames.
	Background = color.RGBA{0, 0, 0, 255}
	// RegionColor outlines node regions.
	RegionColor = color.RGBA{255, 0, 0, 255}
	// CircleColor outlines stored circles.
	CircleColor = color.RGBA{0, 255, 0, 255}
	// MultiColor outlines circles parked above a subdivision.
	MultiColor = color.RGBA{255, 255, 0, 255}
)

// Frame is an RGBA canvas sized to a tree region, one pixel per unit.
type Frame struct {
	img *image.RGBA
}

// NewFrame returns a frame covering r, filled with Background.
func NewFrame(r quadtree.Region) *Frame {
	img := image.NewRGBA(image.Rect(int(r.XMin), int(r.YMin), int(r.XMax)+1, int(r.YMax)+1))
	draw.Draw(img, img.Bounds(), &image.Uniform{Background}, image.Point{}, draw.Src)
	return &Frame{img: img}
}

// Image exposes the underlying canvas.
func (f *Frame) Image() *image.RGBA { return f.img }

func (f *Frame) hline(x1, y, x2 int, col color.Color) {
	for ; x1 <= x2; x1++ {
		f.img.Set(x1, y, col)
	}
}

func (f *Frame) vline(x, y1, y2 int, col color.Color) {
	for ; y1 <= y2; y1++ {
		f.img.Set(x, y1, col)
	}
}

// DrawRegion outlines r.
func (f *Frame) DrawRegion(r quadtree.Region, col color.Color) {
	x1, y1 := int(r.XMin), int(r.YMin)
	x2, y2 := int(r.XMax), int(r.YMax)
	f.hline(x1, y1, x2, col)
	f.hline(x1, y2, x2, col)
	f.vline(x1, y1, y2, col)
	f.vline(x2, y1, y2, col)
}

// DrawCircle rasterizes the circle's outline with the midpoint algorithm.
// Circles with a radius under two pixels become a single pixel.
func (f *Frame) DrawCircle(c *quadtree.Circle, col color.Color) {
	cx, cy, r := int(c.X()), int(c.Y()), int(c.Radius())
	if r <= 1 {
		f.img.Set(cx, cy, col)
		return
	}
	x, y, dx, dy := r-1, 0, 1, 1
	err := dx - r*2
	for x > y {
		f.img.Set(cx+x, cy+y, col)
		f.img.Set(cx+y, cy+x, col)
		f.img.Set(cx-y, cy+x, col)
		f.img.Set(cx-x, cy+y, col)
		f.img.Set(cx-x, cy-y, col)
		f.img.Set(cx-y, cy-x, col)
		f.img.Set(cx+y, cy-x, col)
		f.img.Set(cx+x, cy-y, col)

		if err <= 0 {
			y++
			err += dy
			dy += 2
		}
		if err > 0 {
			x--
			dx += 2
			err += dx - r*2
		}
	}
}

// DrawLine rasterizes the segment from a to b.
func (f *Frame) DrawLine(a, b quadtree.Point, col color.Color) {
	x1, y1 := int(a.X), int(a.Y)
	x2, y2 := int(b.X), int(b.Y)
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	e := dx + dy
	for {
		f.img.Set(x1, y1, col)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			e += dx
			y1 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// DrawTree outlines every node region and every stored circle. Circles
// parked above a subdivision use MultiColor, the rest CircleColor.
func (f *Frame) DrawTree(t *quadtree.Tree) {
	t.Walk(func(n *quadtree.Node) bool {
		f.DrawRegion(n.Region(), RegionColor)
		for _, c := range n.Circles() {
			col := color.Color(CircleColor)
			if c.MultiQuadrant() {
				col = MultiColor
			}
			f.DrawCircle(c, col)
		}
		return true
	})
}

// WriteBMP encodes the frame as BMP.
func (f *Frame) WriteBMP(w io.Writer) error {
	if err := bmp.Encode(w, f.img); err != nil {
		return fmt.Errorf("encode bmp: %w", err)
	}
	return nil
}

// WriteFile writes the frame to path as BMP.
func (f *Frame) WriteFile(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	defer out.Close()
	return f.WriteBMP(out)
}
