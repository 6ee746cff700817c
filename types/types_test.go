package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypes(t *testing.T) {
	{ // Packed undirected edge keys
		en := NewEdgeKey([2]int{1, 0})
		assert.Equal(t, EdgeKey(1<<32), en)
		assert.Equal(t, [2]int{0, 1}, en.GetVertices(false))
		assert.Equal(t, [2]int{1, 0}, en.GetVertices(true))

		assert.Equal(t, NewEdgeKey([2]int{100, 1}), NewEdgeKey([2]int{1, 100}))
		assert.Equal(t, EdgeKey(100*(1<<32)+1), NewEdgeKey([2]int{100, 1}))

		en = NewEdgeKey([2]int{1<<32 - 1, 1})
		assert.Equal(t, EdgeKey((1<<32-1)<<32+1), en)
		assert.Equal(t, [2]int{1, 1<<32 - 1}, en.GetVertices(false))
		assert.Panics(t, func() { NewEdgeKey([2]int{-1, 2}) })
	}
	{ // Patch flags
		assert.Equal(t, BC_In, NewBCFLAG(" Inlet"))
		assert.Equal(t, BC_Wall, NewBCFLAG("pipe"))
		assert.Equal(t, BC_None, NewBCFLAG("periodic"))
		assert.Equal(t, "pipe", BC_Wall.PatchName())
		assert.Equal(t, "wall", BC_Wall.FoamType())
		assert.Equal(t, "patch", BC_In.FoamType())
		assert.Equal(t, "patch", BC_Out.FoamType())
		assert.Equal(t, "Curved", Curved.String())
	}
	{ // Configuration errors unwrap to ErrConfig
		var err error = NewConfigError("Diameter", -1, "must be positive")
		assert.True(t, errors.Is(err, ErrConfig))
		var ce *ConfigError
		assert.True(t, errors.As(err, &ce))
		assert.Equal(t, "Diameter", ce.Param)
		assert.Contains(t, err.Error(), "must be positive")
	}
}
