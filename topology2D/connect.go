package topology2D

import (
	"github.com/james-bowman/sparse"
)

const NFaces = 4

/*
Connect2D finds the block neighbours across every local edge.

Each row of the sparse face to vertex matrix FToV marks the two points of one
block edge. In FToF = FToV * FToV^T an off diagonal entry of 2 means the two
edges share both points, which makes them the same edge seen from two blocks.

EToE[k][f] is the block across local edge f of block k and EToF[k][f] the
neighbour's local edge number; both are -1 on the exterior. overShared lists edges
shared by more than two blocks, which is a topology fault.
*/
func Connect2D(blocks []Block, numPoints int) (EToE, EToF [][NFaces]int, overShared [][2]int) {
	var (
		K          = len(blocks)
		TotalFaces = NFaces * K
	)
	EToE = make([][NFaces]int, K)
	EToF = make([][NFaces]int, K)
	for k := range blocks {
		for f := 0; f < NFaces; f++ {
			EToE[k][f], EToF[k][f] = -1, -1
		}
	}
	if K == 0 {
		return
	}
	SpFToV_Tmp := sparse.NewDOK(TotalFaces, numPoints)
	var sk int
	for _, b := range blocks {
		for face := 0; face < NFaces; face++ {
			e := b.Edge(face)
			SpFToV_Tmp.Set(sk, e[0], 1)
			SpFToV_Tmp.Set(sk, e[1], 1)
			sk++
		}
	}
	SpFToF := sparse.NewCSR(TotalFaces, TotalFaces, nil, nil, nil)
	SpFToV := SpFToV_Tmp.ToCSR()
	SpFToF.Mul(SpFToV, SpFToV.T())
	SpFToF.DoNonZero(func(face1, face2 int, v float64) {
		if face1 >= face2 || v != 2 {
			return
		}
		var (
			k1, f1 = face1 / NFaces, face1 % NFaces
			k2, f2 = face2 / NFaces, face2 % NFaces
		)
		if EToE[k1][f1] != -1 || EToE[k2][f2] != -1 {
			overShared = append(overShared, [2]int{face1, face2})
			return
		}
		EToE[k1][f1], EToF[k1][f1] = k2, f2
		EToE[k2][f2], EToF[k2][f2] = k1, f1
	})
	return
}
