package geometry2D

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

/*
singleBendSection lays out one Tesla loop. The main duct runs along y in [-d, 0]
from the inlet at the far left to the bend at the origin, where it splits into
the diverted outlet branch (down and right at BendAngle) and the return loop
(up and left), which arcs back into the main duct upstream of the valve.

Indices are fixed: the topology tables in topology2D refer to them.
*/
func singleBendSection(vp ValveParams) (pts []r2.Vec, arcs []Arc) {
	var (
		L, d, E, th = vp.ValveLength, vp.Diameter, vp.EndLength, vp.BendAngle
		h           = th / 2
		sinT, cosT  = math.Sincos(th)
		sinH, cosH  = math.Sincos(h)
		tanH        = math.Tan(h)
		// neck: run of the main duct swept by the return loop
		neck = math.Sqrt(d*d + 2*d*L*tanH)
		// loop inner radius
		r   = L * tanH
		phi = math.Atan(neck / r)
		// outer loop reach along the bisector of the bend
		x = L + math.Sqrt((d*d-L*L)*cosH*cosH+2*L*d*sinH*cosH+L*L)
	)
	sinP2, cosP2 := math.Sincos(phi / 2)
	// 0, 1: inlet (lower, upper). 2, 3: loop rejoins the main duct (outer, inner).
	// 5: bend apex. 9, 10: outlet. 11, 12: return branch (outer, inner).
	// 22, 23: loop crown (inner, outer). Arc through points are 16 on 3-15,
	// 17 on 4-2, 18 on 15-13, 19 on 2-14, 20 on 13-22, 21 on 14-23, 24 on 22-12
	// and 25 on 23-11.
	pts = []r2.Vec{
		{X: -L - neck - E, Y: -d},
		{X: -L - neck - E, Y: 0},
		{X: -L - neck, Y: 0},
		{X: -L, Y: 0},
		{X: -L, Y: -d},
		{X: 0, Y: 0},
		{X: d / math.Tan(th), Y: -d},
		{X: d / sinT, Y: 0},
		{X: d/math.Tan(th) + d/sinT, Y: -d},
		{X: d/math.Tan(th) + d/sinT + E*cosT, Y: -d - E*sinT},
		{X: d/math.Tan(th) + E*cosT, Y: -d - E*sinT},
		{X: -L*cosT + d*sinT, Y: L*sinT + d*cosT},
		{X: -L * cosT, Y: L * sinT},
		{X: -L * (1 + sinH), Y: L * (tanH + sinH*sinH/cosH)},
		{X: -x, Y: tanH * x},
		{X: -L - r*math.Sin(phi), Y: r * (1 - math.Cos(phi))},
		{X: -L - r*sinP2, Y: r * (1 - cosP2)},
		{X: -L - (r+d)*sinP2, Y: r - (d+r)*cosP2},
		{X: -L - r, Y: r},
		{X: -L - r - d, Y: r},
		{X: -L - r*sinP2, Y: r * (1 + cosP2)},
		{X: -L - (r+d)*sinP2, Y: r + (d+r)*cosP2},
		{X: -L, Y: 2 * r},
		{X: -L, Y: 2*r + d},
		{X: -L + r*sinH, Y: r * (1 + cosH)},
		{X: -L + (r+d)*sinH, Y: r + (r+d)*cosH},
	}
	arcs = []Arc{
		{Start: 15, Through: 18, End: 13},
		{Start: 2, Through: 19, End: 14},
		{Start: 3, Through: 16, End: 15},
		{Start: 4, Through: 17, End: 2},
		{Start: 13, Through: 20, End: 22},
		{Start: 14, Through: 21, End: 23},
		{Start: 22, Through: 24, End: 12},
		{Start: 23, Through: 25, End: 11},
	}
	return
}
