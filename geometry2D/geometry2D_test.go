package geometry2D

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/teslamesh/types"
)

var testAngles = []float64{math.Pi / 6, math.Pi / 4, math.Pi / 3}

func vecNear(t *testing.T, want, got r2.Vec, tol float64) {
	t.Helper()
	assert.InDeltaf(t, want.X, got.X, tol, "x: want %v got %v", want, got)
	assert.InDeltaf(t, want.Y, got.Y, tol, "y: want %v got %v", want, got)
}

func TestNewVariant(t *testing.T) {
	for label, want := range map[string]Variant{
		"single": SingleBend, "Single-Bend": SingleBend, " double ": DoubleBend, "double-bend": DoubleBend,
	} {
		v, err := NewVariant(label)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	_, err := NewVariant("triple")
	assert.True(t, errors.Is(err, types.ErrConfig))
	assert.Equal(t, "double", DoubleBend.String())
}

func TestValidate(t *testing.T) {
	good := ValveParams{Variant: SingleBend, ValveLength: 3, Diameter: 1, EndLength: 4, BendAngle: math.Pi / 4}
	require.NoError(t, good.Validate())

	cases := []struct {
		param  string
		modify func(vp *ValveParams)
	}{
		{"ValveLength", func(vp *ValveParams) { vp.ValveLength = 0 }},
		{"Diameter", func(vp *ValveParams) { vp.Diameter = -1 }},
		{"EndLength", func(vp *ValveParams) { vp.EndLength = math.NaN() }},
		{"EndLength", func(vp *ValveParams) { vp.EndLength = math.Inf(1) }},
		{"BendAngle", func(vp *ValveParams) { vp.BendAngle = 0 }},
		{"BendAngle", func(vp *ValveParams) { vp.BendAngle = math.Pi }},
		{"BendAngle", func(vp *ValveParams) { vp.BendAngle = math.NaN() }},
	}
	for _, tc := range cases {
		vp := good
		tc.modify(&vp)
		err := vp.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrConfig))
		var ce *types.ConfigError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, tc.param, ce.Param)

		_, err = SolveSection(vp)
		assert.True(t, errors.Is(err, types.ErrConfig))
	}
}

func TestCircleQuarterArc(t *testing.T) {
	var (
		a = r2.Vec{X: 1, Y: 0}
		b = r2.Vec{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}
		c = r2.Vec{X: 0, Y: 1}
	)
	cc := CircleFromPoints(a, b, c)
	assert.False(t, cc.Degenerate)
	assert.False(t, cc.Clockwise())
	assert.InDelta(t, 1., cc.Radius, 1.e-12)
	vecNear(t, r2.Vec{}, cc.Center, 1.e-12)
	assert.InDelta(t, 0., cc.StartAngle, 1.e-12)
	assert.InDelta(t, math.Pi/2, cc.EndAngle, 1.e-12)
	assert.InDelta(t, math.Pi/2, cc.Sweep(), 1.e-12)
	assert.InDelta(t, math.Pi/2, cc.ArcLength(), 1.e-12)

	// Reversed traversal draws the same arc
	rc := CircleFromPoints(c, b, a)
	assert.True(t, rc.Clockwise())
	assert.InDelta(t, cc.Sweep(), rc.Sweep(), 1.e-12)
	pts := rc.Sample(2)
	require.Len(t, pts, 3)
	vecNear(t, c, pts[0], 1.e-12)
	vecNear(t, b, pts[1], 1.e-12)
	vecNear(t, a, pts[2], 1.e-12)
}

func TestCircleDegenerate(t *testing.T) {
	cc := CircleFromPoints(r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1, Y: 0}, r2.Vec{X: 2, Y: 0})
	assert.True(t, cc.Degenerate)
	assert.True(t, math.IsInf(cc.Radius, 1))
	vecNear(t, r2.Vec{X: 1, Y: 0}, cc.Center, 1.e-14)
	assert.Equal(t, 0., cc.Sweep())
	assert.InDelta(t, 2., cc.ArcLength(), 1.e-14)
	pts := cc.Sample(4)
	vecNear(t, r2.Vec{X: 0.5, Y: 0}, pts[1], 1.e-14)

	// Coincident points do not panic either
	cc = CircleFromPoints(r2.Vec{X: 1, Y: 1}, r2.Vec{X: 1, Y: 1}, r2.Vec{X: 2, Y: 0})
	assert.True(t, cc.Degenerate)

	// Nearly collinear is still a proper, very large circle
	cc = CircleFromPoints(r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1, Y: 1.e-3}, r2.Vec{X: 2, Y: 0})
	assert.False(t, cc.Degenerate)
	assert.InDelta(t, 500., cc.Radius, 1.)
}

func TestSectionCounts(t *testing.T) {
	for _, theta := range testAngles {
		sec, err := SolveSection(ValveParams{Variant: SingleBend, ValveLength: 3, Diameter: 1,
			EndLength: 4, BendAngle: theta})
		require.NoError(t, err)
		assert.Equal(t, 26, sec.NumPoints())
		assert.Len(t, sec.Arcs, 8)

		sec, err = SolveSection(ValveParams{Variant: DoubleBend, ValveLength: 3, Diameter: 1,
			EndLength: 4, BendAngle: theta})
		require.NoError(t, err)
		assert.Equal(t, 36, sec.NumPoints())
		assert.Len(t, sec.Arcs, 8)
	}
}

func TestSingleBendReference(t *testing.T) {
	vp, ok := ExampleParams("single-bend")
	require.True(t, ok)
	sec, err := SolveSection(vp)
	require.NoError(t, err)
	// The inlet edge is vertical and one diameter wide
	assert.InDelta(t, sec.Points[0].X, sec.Points[1].X, 1.e-12)
	assert.InDelta(t, vp.Diameter, sec.Points[1].Y-sec.Points[0].Y, 1.e-12)
	assert.InDelta(t, 0.485, sec.MinPointSpacing(), 1.e-3)
	// The two bend arcs about the island share a centre with radii differing by one diameter
	var radii []float64
	for _, a := range sec.Arcs[:2] {
		radii = append(radii, sec.Circle(a).Radius)
	}
	assert.InDelta(t, 1., math.Abs(radii[1]-radii[0]), 1.e-9)
}

func TestSectionGeometry(t *testing.T) {
	for _, variant := range []Variant{SingleBend, DoubleBend} {
		for _, theta := range testAngles {
			vp := ValveParams{Variant: variant, ValveLength: 3, Diameter: 1, EndLength: 4, BendAngle: theta}
			sec, err := SolveSection(vp)
			require.NoError(t, err)
			require.NoError(t, sec.CheckDistinct())
			assert.Greater(t, sec.MinPointSpacing(), 0.1)

			for _, a := range sec.Arcs {
				cc := sec.Circle(a)
				require.False(t, cc.Degenerate, "arc %v of %s at %g", a, variant, theta)
				// Reconstruction reproduces the end points from centre and angles
				vecNear(t, sec.Points[a.Start], cc.PointAt(cc.StartAngle), 1.e-9)
				vecNear(t, sec.Points[a.End], cc.PointAt(cc.EndAngle), 1.e-9)
				// The through point lies on the drawn side of the circle
				assert.True(t, cc.Contains(cc.ThroughAngle))
				assert.Less(t, cc.Sweep(), math.Pi)
				got, ok := sec.ArcFor(a.End, a.Start)
				assert.True(t, ok)
				assert.Equal(t, a, got)
			}
		}
	}
}

func TestCheckDistinctFails(t *testing.T) {
	vp, _ := ExampleParams("double-bend")
	sec, err := SolveSection(vp)
	require.NoError(t, err)
	sec.Points[5] = sec.Points[9]
	err = sec.CheckDistinct()
	assert.True(t, errors.Is(err, ErrGeometry))
}

func TestExampleParams(t *testing.T) {
	names := ExampleNames()
	require.NotEmpty(t, names)
	for _, name := range names {
		vp, ok := ExampleParams(name)
		require.True(t, ok)
		_, err := SolveSection(vp)
		assert.NoError(t, err, name)
	}
	_, ok := ExampleParams("nonesuch")
	assert.False(t, ok)
}

func TestPolygon(t *testing.T) {
	square := []r2.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 1}}
	assert.InDelta(t, 2., SignedArea(square), 1.e-14)
	assert.True(t, IsConvexCCW(square))

	cw := []r2.Vec{square[3], square[2], square[1], square[0]}
	assert.InDelta(t, -2., SignedArea(cw), 1.e-14)
	assert.False(t, IsConvexCCW(cw))

	dart := []r2.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0.5, Y: 0.5}, {X: 0, Y: 2}}
	assert.False(t, IsConvexCCW(dart))

	assert.Greater(t, IsLeft(square[0], square[1], square[3]), 0.)
	assert.Less(t, IsLeft(square[0], square[1], r2.Vec{X: 1, Y: -1}), 0.)

	bb := NewBoundingBox(square)
	vecNear(t, r2.Vec{X: 1, Y: 0.5}, bb.Centroid(), 1.e-14)
	sq := bb.Square()
	vecNear(t, r2.Vec{X: 0, Y: -0.5}, sq.XMin, 1.e-14)
	vecNear(t, r2.Vec{X: 2, Y: 1.5}, sq.XMax, 1.e-14)
	sc := bb.Scale(2)
	vecNear(t, r2.Vec{X: -1, Y: -0.5}, sc.XMin, 1.e-14)
	assert.Nil(t, NewBoundingBox(nil))
}
