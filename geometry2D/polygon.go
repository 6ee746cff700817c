package geometry2D

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

type BoundingBox struct {
	XMin, XMax r2.Vec
}

func NewBoundingBox(geometry []r2.Vec) (box *BoundingBox) {
	if len(geometry) == 0 {
		return nil
	}
	box = &BoundingBox{XMin: geometry[0], XMax: geometry[0]}
	for _, pt := range geometry {
		box.XMin.X, box.XMin.Y = math.Min(box.XMin.X, pt.X), math.Min(box.XMin.Y, pt.Y)
		box.XMax.X, box.XMax.Y = math.Max(box.XMax.X, pt.X), math.Max(box.XMax.Y, pt.Y)
	}
	return
}

func (bb *BoundingBox) Centroid() r2.Vec {
	return r2.Scale(0.5, r2.Add(bb.XMin, bb.XMax))
}

// Scale grows or shrinks the box about its centroid.
func (bb *BoundingBox) Scale(scale float64) *BoundingBox {
	ct := bb.Centroid()
	return &BoundingBox{
		XMin: r2.Add(ct, r2.Scale(scale, r2.Sub(bb.XMin, ct))),
		XMax: r2.Add(ct, r2.Scale(scale, r2.Sub(bb.XMax, ct))),
	}
}

// Square expands the shorter side so both sides match, keeping the centroid.
func (bb *BoundingBox) Square() *BoundingBox {
	var (
		ct   = bb.Centroid()
		half = 0.5 * math.Max(bb.XMax.X-bb.XMin.X, bb.XMax.Y-bb.XMin.Y)
	)
	return &BoundingBox{
		XMin: r2.Vec{X: ct.X - half, Y: ct.Y - half},
		XMax: r2.Vec{X: ct.X + half, Y: ct.Y + half},
	}
}

/*
IsLeft tests where p2 lies relative to the infinite line through p0 and p1:

	>0 for p2 left of the line
	=0 for p2 on the line
	<0 for p2 right of the line
*/
func IsLeft(p0, p1, p2 r2.Vec) float64 {
	return r2.Cross(r2.Sub(p1, p0), r2.Sub(p2, p0))
}

// SignedArea of a closed polygon by Green's theorem; positive when counter-clockwise.
func SignedArea(poly []r2.Vec) (area float64) {
	for i := range poly {
		p0, p1 := poly[i], poly[(i+1)%len(poly)]
		area += p0.X*p1.Y - p1.X*p0.Y
	}
	return 0.5 * area
}

// IsConvexCCW reports whether every corner of the polygon turns strictly left.
func IsConvexCCW(poly []r2.Vec) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	for i := range poly {
		if IsLeft(poly[i], poly[(i+1)%n], poly[(i+2)%n]) <= 0 {
			return false
		}
	}
	return true
}
