package topology2D

import (
	"fmt"

	"github.com/notargets/teslamesh/geometry2D"
	"github.com/notargets/teslamesh/types"
)

// Block lists four point indices counter-clockwise seen from +z. Local edge f
// joins corners f and f+1; edges 0 and 2 run along the block x direction.
type Block [4]int

// Edge returns local edge f in the block's own traversal order.
func (b Block) Edge(f int) Edge {
	return Edge{b[f], b[(f+1)%4]}
}

// Resolution is the cell count of a block along its x, y and z directions.
type Resolution [3]int

// Edge is an ordered pair of point indices.
type Edge [2]int

func (e Edge) Key() types.EdgeKey {
	return types.NewEdgeKey([2]int(e))
}

func (e Edge) Reverse() Edge {
	return Edge{e[1], e[0]}
}

// WallEdge is a wall boundary edge together with the convention it was authored in.
// Straight edges follow their block's counter-clockwise traversal, Curved edges
// bound the island inside a loop and run the other way.
type WallEdge struct {
	Edge
	Section types.WallSection
}

// Layout is the hand authored block structure for one valve variant.
type Layout struct {
	Variant geometry2D.Variant
	Blocks  []Block
	Inlet   Edge
	Outlet  Edge
	Walls   []WallEdge
	// Tuned holds per block (nx, ny) counts at unit density, nil when the variant has none
	Tuned [][2]int
}

func walls(section types.WallSection, edges ...Edge) (we []WallEdge) {
	we = make([]WallEdge, len(edges))
	for i, e := range edges {
		we[i] = WallEdge{Edge: e, Section: section}
	}
	return
}

var singleBendLayout = Layout{
	Variant: geometry2D.SingleBend,
	Blocks: []Block{
		{0, 4, 2, 1},
		{4, 6, 5, 3},
		{6, 8, 7, 5},
		{10, 9, 8, 6},
		{5, 7, 11, 12},
		{22, 12, 11, 23},
		{14, 13, 22, 23},
		{2, 15, 13, 14},
		{4, 3, 15, 2},
	},
	Inlet:  Edge{0, 1},
	Outlet: Edge{9, 10},
	Walls: append(
		walls(types.Straight,
			Edge{0, 4}, Edge{4, 6}, Edge{6, 10}, Edge{9, 8}, Edge{8, 7},
			Edge{7, 11}, Edge{11, 23}, Edge{23, 14}, Edge{14, 2}, Edge{2, 1}),
		walls(types.Curved,
			Edge{3, 5}, Edge{5, 12}, Edge{12, 22}, Edge{22, 13}, Edge{13, 15}, Edge{15, 3})...),
}

var doubleBendLayout = Layout{
	Variant: geometry2D.DoubleBend,
	Blocks: []Block{
		{4, 5, 2, 3},
		{5, 6, 1, 2},
		{6, 7, 0, 1},
		{7, 9, 8, 0},
		{11, 10, 9, 7},
		{0, 8, 13, 12},
		{2, 1, 16, 17},
		{17, 16, 12, 13},
		{21, 20, 10, 11},
		{22, 23, 20, 21},
		{24, 25, 23, 22},
		{29, 24, 22, 28},
		{25, 27, 26, 23},
		{29, 28, 32, 33},
		{33, 32, 21, 11},
	},
	Inlet:  Edge{4, 3},
	Outlet: Edge{26, 27},
	Walls: append(
		walls(types.Straight,
			Edge{4, 5}, Edge{5, 6}, Edge{6, 7}, Edge{7, 11}, Edge{10, 9}, Edge{9, 8},
			Edge{8, 13}, Edge{13, 17}, Edge{17, 2}, Edge{2, 3}, Edge{11, 33}, Edge{33, 29},
			Edge{29, 24}, Edge{24, 25}, Edge{25, 27}, Edge{26, 23}, Edge{23, 20}, Edge{20, 10}),
		walls(types.Curved,
			Edge{28, 22}, Edge{22, 21}, Edge{21, 32}, Edge{32, 28},
			Edge{1, 0}, Edge{0, 12}, Edge{12, 16}, Edge{16, 1})...),
	Tuned: [][2]int{
		{80, 20}, {20, 20}, {80, 20}, {20, 20}, {20, 80},
		{20, 80}, {20, 20}, {20, 60}, {20, 20}, {20, 80},
		{20, 20}, {20, 20}, {80, 20}, {20, 60}, {20, 60},
	},
}

// LayoutFor returns a private copy of the variant's layout.
func LayoutFor(variant geometry2D.Variant) (*Layout, error) {
	var src *Layout
	switch variant {
	case geometry2D.SingleBend:
		src = &singleBendLayout
	case geometry2D.DoubleBend:
		src = &doubleBendLayout
	default:
		return nil, fmt.Errorf("%w: no block layout for variant %s", types.ErrConfig, variant)
	}
	return src.Copy(), nil
}

// Copy is deep, so callers may edit the result freely.
func (l *Layout) Copy() *Layout {
	cp := &Layout{
		Variant: l.Variant,
		Blocks:  append([]Block(nil), l.Blocks...),
		Inlet:   l.Inlet,
		Outlet:  l.Outlet,
		Walls:   append([]WallEdge(nil), l.Walls...),
	}
	if l.Tuned != nil {
		cp.Tuned = append([][2]int(nil), l.Tuned...)
	}
	return cp
}

// BoundaryEdges lists the inlet, the outlet and every wall edge with its patch flag.
func (l *Layout) BoundaryEdges() (edges []Edge, flags []types.BCFLAG) {
	edges = append(edges, l.Inlet, l.Outlet)
	flags = append(flags, types.BC_In, types.BC_Out)
	for _, w := range l.Walls {
		edges = append(edges, w.Edge)
		flags = append(flags, types.BC_Wall)
	}
	return
}
