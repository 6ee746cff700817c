package geometry2D

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/teslamesh/utils"
)

// ErrGeometry is wrapped by failures of computed geometry (as opposed to bad input).
var ErrGeometry = errors.New("invalid valve geometry")

// Arc references three points by index: the arc runs from Start through Through to End.
type Arc struct {
	Start, Through, End int
}

// Offset returns the arc with every index shifted by n.
func (a Arc) Offset(n int) Arc {
	return Arc{Start: a.Start + n, Through: a.Through + n, End: a.End + n}
}

func (a Arc) Indices() [3]int {
	return [3]int{a.Start, a.Through, a.End}
}

// Section is one solved valve-loop cross-section. Points and Arcs are fixed
// once solved; every other entity refers to points by index.
type Section struct {
	Variant Variant
	Params  ValveParams
	Points  []r2.Vec
	Arcs    []Arc
}

// SolveSection computes the control points and arcs for the parameter set.
func SolveSection(vp ValveParams) (sec *Section, err error) {
	if err = vp.Validate(); err != nil {
		return
	}
	sec = &Section{
		Variant: vp.Variant,
		Params:  vp,
	}
	switch vp.Variant {
	case SingleBend:
		sec.Points, sec.Arcs = singleBendSection(vp)
	case DoubleBend:
		sec.Points, sec.Arcs = doubleBendSection(vp)
	}
	if err = sec.checkFinite(); err != nil {
		return nil, err
	}
	if err = sec.checkArcIndices(); err != nil {
		return nil, err
	}
	if err = sec.CheckDistinct(); err != nil {
		return nil, err
	}
	utils.Logger().Debug("solved valve section",
		"variant", vp.Variant.String(), "points", len(sec.Points), "arcs", len(sec.Arcs))
	return
}

func (sec *Section) NumPoints() int { return len(sec.Points) }

// Circle reconstructs the circle carrying arc a.
func (sec *Section) Circle(a Arc) Circle {
	return CircleFromPoints(sec.Points[a.Start], sec.Points[a.Through], sec.Points[a.End])
}

// ArcFor returns the arc joining the two points, in either direction.
func (sec *Section) ArcFor(i, j int) (a Arc, ok bool) {
	for _, a = range sec.Arcs {
		if (a.Start == i && a.End == j) || (a.Start == j && a.End == i) {
			return a, true
		}
	}
	return Arc{}, false
}

// MinPointSpacing is the smallest distance between any two points.
func (sec *Section) MinPointSpacing() (dMin float64) {
	dMin = math.Inf(1)
	for i := range sec.Points {
		for j := i + 1; j < len(sec.Points); j++ {
			dMin = math.Min(dMin, r2.Norm(r2.Sub(sec.Points[i], sec.Points[j])))
		}
	}
	return
}

// CheckDistinct fails when two points coincide within tolerance.
func (sec *Section) CheckDistinct() error {
	tol := utils.NODETOL * sec.Params.Diameter
	for i := range sec.Points {
		for j := i + 1; j < len(sec.Points); j++ {
			if r2.Norm(r2.Sub(sec.Points[i], sec.Points[j])) <= tol {
				return fmt.Errorf("%w: points %d and %d coincide at (%g, %g)",
					ErrGeometry, i, j, sec.Points[i].X, sec.Points[i].Y)
			}
		}
	}
	return nil
}

func (sec *Section) checkFinite() error {
	for i, p := range sec.Points {
		if !utils.IsFinite(p.X, p.Y) {
			return fmt.Errorf("%w: point %d is not finite for %+v", ErrGeometry, i, sec.Params)
		}
	}
	return nil
}

func (sec *Section) checkArcIndices() error {
	n := len(sec.Points)
	for i, a := range sec.Arcs {
		for _, ind := range a.Indices() {
			if ind < 0 || ind >= n {
				return fmt.Errorf("%w: arc %d references point %d of %d", ErrGeometry, i, ind, n)
			}
		}
	}
	return nil
}
