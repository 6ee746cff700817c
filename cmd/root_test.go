package cmd

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valveCommand(t *testing.T, flags map[string]string) *cobra.Command {
	t.Helper()
	viper.Reset()
	cmd := &cobra.Command{Use: "valve"}
	addValveFlags(cmd)
	for name, val := range flags {
		require.NoError(t, cmd.Flags().Set(name, val))
	}
	return cmd
}

func TestLoadParameters(t *testing.T) {
	fileInput := []byte(`
Title: Layered
Variant: single
Diameter: 0.75
BendAngleDegrees: 30
Density: 6
`)
	inputFile := filepath.Join(t.TempDir(), "valve.yaml")
	require.NoError(t, os.WriteFile(inputFile, fileInput, 0644))

	{ // Defaults only
		vp, err := loadParameters(valveCommand(t, nil))
		require.NoError(t, err)
		assert.Equal(t, "single", vp.Variant)
		assert.Equal(t, 0.5, vp.Diameter)
		assert.Equal(t, math.Pi/4, vp.BendAngle)
		assert.Equal(t, 20., vp.Density)
	}
	{ // Example, then file, then flags
		vp, err := loadParameters(valveCommand(t, map[string]string{
			"example":   "double-bend",
			"inputFile": inputFile,
			"density":   "8",
		}))
		require.NoError(t, err)
		assert.Equal(t, "Layered", vp.Title)
		assert.Equal(t, "single", vp.Variant)
		assert.Equal(t, 0.75, vp.Diameter)
		assert.Equal(t, 3., vp.ValveLength)
		assert.Equal(t, 4., vp.EndLength)
		assert.Equal(t, 8., vp.Density)
		cfg, err := vp.Config()
		require.NoError(t, err)
		assert.InDelta(t, math.Pi/6, cfg.Valve.BendAngle, 1.e-14)
	}
	{ // A radian flag overrides degrees from the file
		vp, err := loadParameters(valveCommand(t, map[string]string{
			"inputFile": inputFile,
			"bendAngle": "1",
		}))
		require.NoError(t, err)
		cfg, err := vp.Config()
		require.NoError(t, err)
		assert.Equal(t, 1., cfg.Valve.BendAngle)
	}
	{ // Bad example names and missing files are reported
		_, err := loadParameters(valveCommand(t, map[string]string{"example": "triple-bend"}))
		assert.Error(t, err)
		_, err = loadParameters(valveCommand(t, map[string]string{
			"inputFile": filepath.Join(t.TempDir(), "missing.yaml"),
		}))
		assert.Error(t, err)
	}
}
