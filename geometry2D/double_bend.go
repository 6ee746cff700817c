package geometry2D

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

/*
doubleBendSection lays out two loops in series. The first loop sits above the
main duct and returns into it upstream of the first bend; the diverted branch
runs down at BendAngle into a second bend whose loop sits below and returns into
the branch, before a horizontal outlet duct.

Both loops share radius r = L sinθ / (1 + sinθ), so that each loop arc is
tangent to the duct it starts from and to the branch it rejoins. Through points
sit at a quarter, a half and three quarters of the sweep π/2 + θ.
*/
func doubleBendSection(vp ValveParams) (pts []r2.Vec, arcs []Arc) {
	var (
		L, d, E, th = vp.ValveLength, vp.Diameter, vp.EndLength, vp.BendAngle
		sinT, cosT  = math.Sincos(th)
		cotT        = 1 / math.Tan(th)
		r           = L * sinT / (1 + sinT)
		sweep       = math.Pi/2 + th
		t1, t2, t3  = 3 * sweep / 4, sweep / 2, sweep / 4
		// second bend origin, where the branch meets the lower loop
		y2 = -d - (E+d+L)*sinT
		x2 = d*cotT + (E+d+L)*cosT
		// lower loop centre
		c2x = x2 - (L-r)*cosT
		c2y = y2 + (L-r)*sinT
		// first loop centre is (-L + r, 0)
		c1x = -L + r
	)
	upper := func(rad, t float64) r2.Vec {
		return r2.Vec{X: c1x - rad*math.Cos(t), Y: rad * math.Sin(t)}
	}
	lower := func(rad, t float64) r2.Vec {
		return r2.Vec{X: c2x - rad*math.Sin(t), Y: c2y - rad*math.Cos(t)}
	}
	// 0: first bend apex. 1, 2: upper loop joins the main duct (inner, outer).
	// 3, 4: inlet (upper, lower). 11, 21: lower loop joins the branch (inner,
	// outer). 12, 13: upper loop leaves the first bend (inner, outer). 22: second
	// bend. 26, 27: outlet (upper, lower). 28, 29: lower loop leaves the second
	// bend (inner, outer). 14-19 and 30-35 are arc through points.
	pts = []r2.Vec{
		{X: 0, Y: 0},
		{X: -L, Y: 0},
		{X: -L - d, Y: 0},
		{X: -L - d - E, Y: 0},
		{X: -L - d - E, Y: -d},
		{X: -L - d, Y: -d},
		{X: -L, Y: -d},
		{X: d * cotT, Y: -d},
		{X: d * sinT, Y: d * cosT},
		{X: d*cotT + d*sinT, Y: -d + d*cosT},
		{X: d*cotT + E*cosT + d*sinT, Y: -d - E*sinT + d*cosT},
		{X: d*cotT + E*cosT, Y: -d - E*sinT},
		upper(r, sweep),
		upper(r+d, sweep),
		upper(r, t1),
		upper(r+d, t1),
		upper(r, t2),
		upper(r+d, t2),
		upper(r, t3),
		upper(r+d, t3),
		{X: d*cotT + (E+d)*cosT + d*sinT, Y: -d - (E+d)*sinT + d*cosT},
		{X: d*cotT + (E+d)*cosT, Y: -d - (E+d)*sinT},
		{X: x2, Y: y2},
		{X: x2 + d/sinT, Y: y2},
		{X: x2, Y: y2 - d},
		{X: x2 + d/sinT, Y: y2 - d},
		{X: x2 + d/cosT + E, Y: y2},
		{X: x2 + d/cosT + E, Y: y2 - d},
		{X: c2x, Y: y2},
		{X: c2x, Y: y2 - d},
		lower(r, t3),
		lower(r+d, t3),
		lower(r, t2),
		lower(r+d, t2),
		lower(r, t1),
		lower(r+d, t1),
	}
	arcs = []Arc{
		{Start: 1, Through: 18, End: 16},
		{Start: 2, Through: 19, End: 17},
		{Start: 16, Through: 14, End: 12},
		{Start: 17, Through: 15, End: 13},
		{Start: 28, Through: 30, End: 32},
		{Start: 29, Through: 31, End: 33},
		{Start: 32, Through: 34, End: 21},
		{Start: 33, Through: 35, End: 11},
	}
	return
}
