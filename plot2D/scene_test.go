package plot2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/teslamesh/geometry2D"
	"github.com/notargets/teslamesh/topology2D"
)

func TestSectionScene(t *testing.T) {
	for variant, want := range map[geometry2D.Variant]int{
		geometry2D.SingleBend: (27 - 8) + 8*16 + 2*26,
		geometry2D.DoubleBend: (44 - 8) + 8*16 + 2*36,
	} {
		sec, err := geometry2D.SolveSection(geometry2D.ValveParams{Variant: variant,
			ValveLength: 3, Diameter: 1, EndLength: 4, BendAngle: math.Pi / 4})
		require.NoError(t, err)
		topo, err := topology2D.Assemble(sec, topology2D.Uniform, 1)
		require.NoError(t, err)

		opts := DefaultOptions()
		opts.BlockLabels = true
		sc := SectionScene(topo, opts)
		assert.Equal(t, want, sc.NumSegments(), "%s", variant)
		assert.Len(t, sc.Lines[GetColor(Green)], 4, "one inlet segment")
		assert.Len(t, sc.Lines[GetColor(Red)], 4, "one outlet segment")
		assert.NotEmpty(t, sc.Lines[GetColor(Black)])
		assert.Len(t, sc.Text, sec.NumPoints()+topo.NumBlocks())

		assert.InDelta(t, sc.XMax-sc.XMin, sc.YMax-sc.YMin, 1.e-4)
		for _, line := range sc.Lines {
			for i := 0; i < len(line); i += 2 {
				assert.True(t, line[i] >= sc.XMin && line[i] <= sc.XMax)
				assert.True(t, line[i+1] >= sc.YMin && line[i+1] <= sc.YMax)
			}
		}
	}
}
