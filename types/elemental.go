package types

import (
	"fmt"
	"math"
)

/*
EdgeKey identifies an undirected edge. Both vertex indices are packed into one
uint64 with the smaller index in the low 32 bits, so [4,0] and [0,4] share a key.
*/
type EdgeKey uint64

func NewEdgeKey(verts [2]int) EdgeKey {
	checkPackable(verts, math.MaxUint32)
	lo, hi := verts[0], verts[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	return EdgeKey(uint64(lo) | uint64(hi)<<32)
}

// GetVertices returns the vertices in ascending order, or descending when rev is set.
func (ek EdgeKey) GetVertices(rev bool) (verts [2]int) {
	verts[0] = int(ek & math.MaxUint32)
	verts[1] = int(ek >> 32)
	if rev {
		verts[0], verts[1] = verts[1], verts[0]
	}
	return
}

func checkPackable(verts [2]int, limit int) {
	for _, vert := range verts {
		if vert < 0 || vert > limit {
			panic(fmt.Errorf("unable to pack vertex indices %d and %d into an edge key",
				verts[0], verts[1]))
		}
	}
}
