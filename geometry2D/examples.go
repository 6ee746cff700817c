package geometry2D

import (
	"math"
	"sort"
)

// exampleParams are the reference valve shapes.
var exampleParams = map[string]ValveParams{
	"single-bend": {Variant: SingleBend, ValveLength: 3, Diameter: 1, EndLength: 4, BendAngle: math.Pi / 4},
	"single-bend-narrow": {Variant: SingleBend, ValveLength: 3, Diameter: 0.5, EndLength: 4,
		BendAngle: math.Pi / 4},
	"double-bend": {Variant: DoubleBend, ValveLength: 3, Diameter: 1, EndLength: 4, BendAngle: math.Pi / 4},
}

// ExampleParams returns a named example parameter set.
func ExampleParams(name string) (vp ValveParams, ok bool) {
	vp, ok = exampleParams[name]
	return
}

// ExampleNames lists the example parameter sets in sorted order.
func ExampleNames() (names []string) {
	for name := range exampleParams {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
