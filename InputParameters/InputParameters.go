package InputParameters

import (
	"fmt"
	"math"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/teslamesh/geometry2D"
	"github.com/notargets/teslamesh/mesh3D"
	"github.com/notargets/teslamesh/topology2D"
)

// Parameters obtained from the YAML input file
type ValveParameters struct {
	Title            string  `json:"Title"`
	Variant          string  `json:"Variant"`
	ValveLength      float64 `json:"ValveLength"`
	Diameter         float64 `json:"Diameter"`
	EndLength        float64 `json:"EndLength"`
	BendAngle        float64 `json:"BendAngle"`        // radians
	BendAngleDegrees float64 `json:"BendAngleDegrees"` // used when BendAngle is zero
	Density          float64 `json:"Density"`
	Resolution       string  `json:"Resolution"`
	HalfThickness    float64 `json:"HalfThickness"`
	ConvertToMeters  float64 `json:"ConvertToMeters"`
	FrontAndBack     bool    `json:"FrontAndBack"`
	Output           string  `json:"Output"`
}

func DefaultValveParameters() *ValveParameters {
	return &ValveParameters{
		Title:           "Tesla valve",
		Variant:         "single",
		ValveLength:     3,
		Diameter:        0.5,
		EndLength:       4,
		BendAngle:       math.Pi / 4,
		Density:         20,
		Resolution:      "uniform",
		HalfThickness:   0.05,
		ConvertToMeters: 1,
		Output:          "blockMeshDict",
	}
}

/*
Parse overlays the YAML document onto the receiver; absent keys keep their values.
A document giving BendAngleDegrees without BendAngle clears BendAngle so the
degrees take effect over an inherited value.
*/
func (vp *ValveParameters) Parse(data []byte) (err error) {
	var doc map[string]interface{}
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return
	}
	if err = yaml.Unmarshal(data, vp); err != nil {
		return
	}
	if hasKey(doc, "BendAngleDegrees") && !hasKey(doc, "BendAngle") {
		vp.BendAngle = 0
	}
	return
}

// hasKey matches keys the way encoding/json matches field names.
func hasKey(doc map[string]interface{}, name string) bool {
	for key := range doc {
		if strings.EqualFold(key, name) {
			return true
		}
	}
	return false
}

func (vp *ValveParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", vp.Title)
	fmt.Printf("[%s]\t\t\t= Variant\n", vp.Variant)
	fmt.Printf("%8.5f\t\t= ValveLength\n", vp.ValveLength)
	fmt.Printf("%8.5f\t\t= Diameter\n", vp.Diameter)
	fmt.Printf("%8.5f\t\t= EndLength\n", vp.EndLength)
	fmt.Printf("%8.5f\t\t= BendAngle (%.2f degrees)\n", vp.bendAngle(), vp.bendAngle()*180/math.Pi)
	fmt.Printf("%8.5f\t\t= Density\n", vp.Density)
	fmt.Printf("[%s]\t\t= Resolution\n", vp.Resolution)
	fmt.Printf("%8.5f\t\t= HalfThickness\n", vp.HalfThickness)
	fmt.Printf("%8.5f\t\t= ConvertToMeters\n", vp.ConvertToMeters)
	fmt.Printf("[%s]\t= Output\n", vp.Output)
}

func (vp *ValveParameters) bendAngle() float64 {
	if vp.BendAngle == 0 && vp.BendAngleDegrees != 0 {
		return vp.BendAngleDegrees * math.Pi / 180
	}
	return vp.BendAngle
}

// UseExample replaces the shape parameters with a named example set.
func (vp *ValveParameters) UseExample(name string) error {
	ex, ok := geometry2D.ExampleParams(name)
	if !ok {
		return fmt.Errorf("unknown example %q, want one of %s", name,
			strings.Join(geometry2D.ExampleNames(), ", "))
	}
	vp.Title = name
	vp.Variant = ex.Variant.String()
	vp.ValveLength, vp.Diameter, vp.EndLength = ex.ValveLength, ex.Diameter, ex.EndLength
	vp.BendAngle, vp.BendAngleDegrees = ex.BendAngle, 0
	return nil
}

// Settings is the read side of a layered configuration such as *viper.Viper.
type Settings interface {
	IsSet(key string) bool
	GetString(key string) string
	GetFloat64(key string) float64
	GetBool(key string) bool
}

// Override replaces every field whose key was set in settings. Keys are the
// command line flag names.
func (vp *ValveParameters) Override(settings Settings) {
	strs := map[string]*string{
		"title":      &vp.Title,
		"variant":    &vp.Variant,
		"resolution": &vp.Resolution,
		"output":     &vp.Output,
	}
	for key, dst := range strs {
		if settings.IsSet(key) {
			*dst = settings.GetString(key)
		}
	}
	floats := map[string]*float64{
		"valveLength":     &vp.ValveLength,
		"diameter":        &vp.Diameter,
		"endLength":       &vp.EndLength,
		"density":         &vp.Density,
		"halfThickness":   &vp.HalfThickness,
		"convertToMeters": &vp.ConvertToMeters,
	}
	for key, dst := range floats {
		if settings.IsSet(key) {
			*dst = settings.GetFloat64(key)
		}
	}
	if settings.IsSet("bendAngle") {
		vp.BendAngle = settings.GetFloat64("bendAngle")
	} else if settings.IsSet("bendAngleDegrees") {
		vp.BendAngle, vp.BendAngleDegrees = 0, settings.GetFloat64("bendAngleDegrees")
	}
	if settings.IsSet("frontAndBack") {
		vp.FrontAndBack = settings.GetBool("frontAndBack")
	}
}

// Config converts the parameters into a mesh configuration, rejecting unknown
// variant and resolution names.
func (vp *ValveParameters) Config() (cfg mesh3D.Config, err error) {
	var (
		variant geometry2D.Variant
		policy  topology2D.ResolutionPolicy
	)
	if variant, err = geometry2D.NewVariant(vp.Variant); err != nil {
		return
	}
	if policy, err = topology2D.NewResolutionPolicy(vp.Resolution); err != nil {
		return
	}
	cfg = mesh3D.Config{
		Valve: geometry2D.ValveParams{
			Variant:     variant,
			ValveLength: vp.ValveLength,
			Diameter:    vp.Diameter,
			EndLength:   vp.EndLength,
			BendAngle:   vp.bendAngle(),
		},
		Policy:            policy,
		Density:           vp.Density,
		HalfThickness:     vp.HalfThickness,
		EmptyFrontAndBack: vp.FrontAndBack,
	}
	err = cfg.Validate()
	return
}
