package geometry2D

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/teslamesh/types"
	"github.com/notargets/teslamesh/utils"
)

// Variant selects the family member whose closed-form point formulas are used.
type Variant uint8

const (
	SingleBend Variant = iota
	DoubleBend
)

var variantNames = map[string]Variant{
	"single":      SingleBend,
	"single-bend": SingleBend,
	"double":      DoubleBend,
	"double-bend": DoubleBend,
}

func NewVariant(label string) (Variant, error) {
	if v, ok := variantNames[strings.ToLower(strings.TrimSpace(label))]; ok {
		return v, nil
	}
	return SingleBend, fmt.Errorf("%w: unknown valve variant %q, want single or double",
		types.ErrConfig, label)
}

func (v Variant) String() string {
	switch v {
	case SingleBend:
		return "single"
	case DoubleBend:
		return "double"
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

/*
ValveParams holds the scalar shape parameters of one valve loop cross-section.

	ValveLength: inner length of the straight valve segment
	Diameter:    duct width
	EndLength:   length of the inlet and outlet ducts
	BendAngle:   angle between the main duct and the diverted branch, radians in (0, π)
*/
type ValveParams struct {
	Variant     Variant
	ValveLength float64
	Diameter    float64
	EndLength   float64
	BendAngle   float64
}

// Validate rejects parameters before any point is computed. Values are never clamped.
func (vp ValveParams) Validate() error {
	if vp.Variant != SingleBend && vp.Variant != DoubleBend {
		return fmt.Errorf("%w: unknown valve variant %d", types.ErrConfig, vp.Variant)
	}
	lengths := []struct {
		name string
		val  float64
	}{
		{"ValveLength", vp.ValveLength},
		{"Diameter", vp.Diameter},
		{"EndLength", vp.EndLength},
	}
	for _, l := range lengths {
		if !utils.IsFinite(l.val) {
			return types.NewConfigError(l.name, l.val, "must be finite")
		}
		if l.val <= 0 {
			return types.NewConfigError(l.name, l.val, "must be positive")
		}
	}
	if math.IsNaN(vp.BendAngle) || vp.BendAngle <= 0 || vp.BendAngle >= math.Pi {
		return types.NewConfigError("BendAngle", vp.BendAngle, "must lie in the open interval (0, π)")
	}
	return nil
}
