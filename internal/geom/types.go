package geom

import (
	"fmt"
	"math"
)

// Point is a sample of a curve.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Width returns MaxX-MinX.
func (b BBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY-MinY.
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Valid reports whether the box has a positive area.
func (b BBox) Valid() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

// Bounds returns the bounding box of pts. A flat extent (a constant
// function, a single point) is padded by half a unit on each side so that
// projecting onto the box never divides by zero.
func Bounds(pts []Point) BBox {
	if len(pts) == 0 {
		return BBox{MinX: -0.5, MinY: -0.5, MaxX: 0.5, MaxY: 0.5}
	}
	bbox := BBox{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < bbox.MinX {
			bbox.MinX = p.X
		}
		if p.Y < bbox.MinY {
			bbox.MinY = p.Y
		}
		if p.X > bbox.MaxX {
			bbox.MaxX = p.X
		}
		if p.Y > bbox.MaxY {
			bbox.MaxY = p.Y
		}
	}
	if !(bbox.MaxX > bbox.MinX) {
		bbox.MinX -= 0.5
		bbox.MaxX += 0.5
	}
	if !(bbox.MaxY > bbox.MinY) {
		bbox.MinY -= 0.5
		bbox.MaxY += 0.5
	}
	return bbox
}
