package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite())
	assert.True(t, IsFinite(0, -1, 1.e300))
	assert.False(t, IsFinite(1, math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
	assert.Contains(t, GetMemUsage(), "Alloc =")
}
