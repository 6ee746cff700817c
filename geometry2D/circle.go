package geometry2D

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// singularRcond is the relative singular value cutoff for the bisector system.
const singularRcond = 1.e-12

/*
Circle is the circular arc passing through three points A, B, C.

StartAngle, ThroughAngle and EndAngle are the polar angles of A, B and C about
Center. The arc is drawn counter-clockwise from Theta1 to Theta2, an ordering
chosen so that B lies inside the sweep.

A Degenerate circle comes from collinear or coincident input points. It has
an infinite radius and is treated as the straight segment A-B-C.
*/
type Circle struct {
	A, B, C                            r2.Vec
	Center                             r2.Vec
	Radius                             float64
	StartAngle, ThroughAngle, EndAngle float64
	Theta1, Theta2                     float64
	Degenerate                         bool
}

/*
CircleFromPoints reconstructs the arc through a, b and c.

The centre is the intersection of the perpendicular bisectors of AB and BC:

	midAB + t0*perpAB = midBC + t1*perpBC

The 2x2 system [perpAB, -perpBC] t = midBC - midAB is solved by least squares
using the SVD pseudo-inverse. A rank deficient system does not fail: it returns
a Degenerate circle.
*/
func CircleFromPoints(a, b, c r2.Vec) (cc Circle) {
	cc = Circle{A: a, B: b, C: c}
	var (
		midAB  = r2.Scale(0.5, r2.Add(a, b))
		midBC  = r2.Scale(0.5, r2.Add(b, c))
		dirAB  = r2.Sub(b, a)
		dirBC  = r2.Sub(c, b)
		perpAB = r2.Vec{X: -dirAB.Y, Y: dirAB.X}
		perpBC = r2.Vec{X: -dirBC.Y, Y: dirBC.X}
		rhs    = r2.Sub(midBC, midAB)
	)
	A := mat.NewDense(2, 2, []float64{
		perpAB.X, -perpBC.X,
		perpAB.Y, -perpBC.Y,
	})
	t, ok := leastSquares2(A, []float64{rhs.X, rhs.Y})
	if !ok {
		return degenerateCircle(cc)
	}
	cc.Center = r2.Add(midAB, r2.Scale(t[0], perpAB))
	cc.Radius = r2.Norm(r2.Sub(a, cc.Center))
	if math.IsNaN(cc.Radius) || math.IsInf(cc.Radius, 0) {
		return degenerateCircle(cc)
	}
	cc.StartAngle = polarAngle(r2.Sub(a, cc.Center))
	cc.ThroughAngle = polarAngle(r2.Sub(b, cc.Center))
	cc.EndAngle = polarAngle(r2.Sub(c, cc.Center))
	if angleDiff(cc.StartAngle, cc.ThroughAngle) < angleDiff(cc.StartAngle, cc.EndAngle) {
		cc.Theta1, cc.Theta2 = cc.StartAngle, cc.EndAngle
	} else {
		cc.Theta1, cc.Theta2 = cc.EndAngle, cc.StartAngle
	}
	return
}

// leastSquares2 returns the minimum norm solution of A x = b for a 2x2 A, or
// false when A is numerically rank deficient.
func leastSquares2(A *mat.Dense, b []float64) (x []float64, ok bool) {
	var svd mat.SVD
	if !svd.Factorize(A, mat.SVDFull) {
		return nil, false
	}
	s := svd.Values(nil)
	if len(s) != 2 || s[0] == 0 || s[1] <= singularRcond*s[0] {
		return nil, false
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	var utb mat.VecDense
	utb.MulVec(u.T(), mat.NewVecDense(2, b))
	for i := 0; i < 2; i++ {
		utb.SetVec(i, utb.AtVec(i)/s[i])
	}
	var xv mat.VecDense
	xv.MulVec(&v, &utb)
	return []float64{xv.AtVec(0), xv.AtVec(1)}, true
}

func degenerateCircle(cc Circle) Circle {
	cc.Degenerate = true
	cc.Radius = math.Inf(1)
	cc.Center = r2.Scale(0.5, r2.Add(cc.A, cc.C))
	dir := polarAngle(r2.Sub(cc.C, cc.A))
	cc.StartAngle, cc.ThroughAngle, cc.EndAngle = dir, dir, dir
	cc.Theta1, cc.Theta2 = dir, dir
	return cc
}

func polarAngle(v r2.Vec) float64 {
	return math.Atan2(v.Y, v.X)
}

// angleDiff is the counter-clockwise angular distance from a1 to a2 in [0, 2π).
func angleDiff(a1, a2 float64) float64 {
	d := math.Mod(a2-a1, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d
}

// Sweep is the counter-clockwise angle swept from Theta1 to Theta2.
func (cc Circle) Sweep() float64 {
	if cc.Degenerate {
		return 0
	}
	return angleDiff(cc.Theta1, cc.Theta2)
}

// Clockwise reports whether travelling A -> B -> C turns clockwise about the centre.
func (cc Circle) Clockwise() bool {
	return !cc.Degenerate && cc.Theta1 != cc.StartAngle
}

func (cc Circle) PointAt(theta float64) r2.Vec {
	return r2.Add(cc.Center, r2.Vec{X: cc.Radius * math.Cos(theta), Y: cc.Radius * math.Sin(theta)})
}

// Contains reports whether the polar angle theta falls inside the drawn sweep.
func (cc Circle) Contains(theta float64) bool {
	if cc.Degenerate {
		return false
	}
	return angleDiff(cc.Theta1, theta) <= cc.Sweep()
}

func (cc Circle) ArcLength() float64 {
	if cc.Degenerate {
		return r2.Norm(r2.Sub(cc.B, cc.A)) + r2.Norm(r2.Sub(cc.C, cc.B))
	}
	return cc.Radius * cc.Sweep()
}

// Sample returns n+1 points running from A to C along the arc.
func (cc Circle) Sample(n int) (pts []r2.Vec) {
	if n < 1 {
		n = 1
	}
	pts = make([]r2.Vec, n+1)
	if cc.Degenerate {
		for i := range pts {
			pts[i] = r2.Add(cc.A, r2.Scale(float64(i)/float64(n), r2.Sub(cc.C, cc.A)))
		}
		return
	}
	var (
		start = cc.StartAngle
		sweep = cc.Sweep()
	)
	if cc.Clockwise() {
		sweep = -sweep
	}
	for i := range pts {
		pts[i] = cc.PointAt(start + sweep*float64(i)/float64(n))
	}
	pts[0], pts[n] = cc.A, cc.C
	return
}
