package types

import "strings"

// BCFLAG labels the physical role of a boundary patch in the generated mesh.
type BCFLAG uint8

const (
	BC_None BCFLAG = iota
	BC_In
	BC_Out
	BC_Wall
	BC_Empty
)

var BCNameMap = map[string]BCFLAG{
	"inflow":  BC_In,
	"in":      BC_In,
	"inlet":   BC_In,
	"out":     BC_Out,
	"outflow": BC_Out,
	"outlet":  BC_Out,
	"wall":    BC_Wall,
	"pipe":    BC_Wall,
	"empty":   BC_Empty,
}

func NewBCFLAG(name string) BCFLAG {
	if bf, ok := BCNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return bf
	}
	return BC_None
}

func (bf BCFLAG) String() string {
	switch bf {
	case BC_In:
		return "Inflow"
	case BC_Out:
		return "Outflow"
	case BC_Wall:
		return "Wall"
	case BC_Empty:
		return "Empty"
	}
	return "None"
}

// PatchName is the blockMesh patch name used for faces carrying this flag.
func (bf BCFLAG) PatchName() string {
	switch bf {
	case BC_In:
		return "inlet"
	case BC_Out:
		return "outlet"
	case BC_Wall:
		return "pipe"
	case BC_Empty:
		return "frontAndBack"
	}
	return ""
}

// FoamType is the OpenFOAM patch type keyword.
func (bf BCFLAG) FoamType() string {
	switch bf {
	case BC_Wall:
		return "wall"
	case BC_Empty:
		return "empty"
	}
	return "patch"
}

// WallSection tags a wall edge with the winding it was authored in.
// Straight edges follow their owning block's counter-clockwise order.
// Curved edges bound the island enclosed by a bend loop and are written
// in the island's own traversal order, which is the opposite sense.
type WallSection uint8

const (
	Straight WallSection = iota
	Curved
)

func (ws WallSection) String() string {
	if ws == Curved {
		return "Curved"
	}
	return "Straight"
}
