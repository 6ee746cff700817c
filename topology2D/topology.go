package topology2D

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/teslamesh/geometry2D"
	"github.com/notargets/teslamesh/types"
	"github.com/notargets/teslamesh/utils"
)

var (
	// ErrTopology is wrapped by coverage and conformity failures.
	ErrTopology = errors.New("inconsistent block topology")
	// ErrDegenerateBlock is wrapped when a block has repeated corners or is not a
	// convex counter-clockwise quadrilateral.
	ErrDegenerateBlock = errors.New("degenerate block")
)

// TopologyError locates a fault at a block, an edge or both. Block is -1 when
// the fault is not tied to one block.
type TopologyError struct {
	Kind   error
	Block  int
	Edge   Edge
	Reason string
}

func newTopologyError(kind error, block int, edge Edge, format string, args ...any) *TopologyError {
	return &TopologyError{Kind: kind, Block: block, Edge: edge, Reason: fmt.Sprintf(format, args...)}
}

func (te *TopologyError) Error() string {
	if te.Block >= 0 {
		return fmt.Sprintf("%s: block %d edge %v: %s", te.Kind, te.Block, te.Edge, te.Reason)
	}
	return fmt.Sprintf("%s: edge %v: %s", te.Kind, te.Edge, te.Reason)
}

func (te *TopologyError) Unwrap() error { return te.Kind }

// Topology is a validated block structure over one solved section.
type Topology struct {
	Section     *geometry2D.Section
	Layout      *Layout
	Policy      ResolutionPolicy
	Resolutions []Resolution
	EToE, EToF  [][NFaces]int
}

// Assemble validates the variant's layout against the section and assigns resolutions.
func Assemble(sec *geometry2D.Section, policy ResolutionPolicy, density float64) (*Topology, error) {
	layout, err := LayoutFor(sec.Variant)
	if err != nil {
		return nil, err
	}
	return AssembleLayout(sec, layout, policy, density)
}

// AssembleLayout is Assemble for an explicit layout.
func AssembleLayout(sec *geometry2D.Section, layout *Layout, policy ResolutionPolicy,
	density float64) (topo *Topology, err error) {
	topo = &Topology{
		Section: sec,
		Layout:  layout,
		Policy:  policy,
	}
	if err = topo.checkIndices(); err != nil {
		return nil, err
	}
	if err = topo.checkBlockShapes(); err != nil {
		return nil, err
	}
	var overShared [][2]int
	topo.EToE, topo.EToF, overShared = Connect2D(layout.Blocks, sec.NumPoints())
	if len(overShared) != 0 {
		face := overShared[0][0]
		k, f := face/NFaces, face%NFaces
		return nil, newTopologyError(ErrTopology, k, layout.Blocks[k].Edge(f),
			"shared by more than two blocks")
	}
	if err = topo.CheckBoundaryCoverage(); err != nil {
		return nil, err
	}
	if topo.Resolutions, err = policy.Resolutions(sec, layout, density); err != nil {
		return nil, err
	}
	if err = topo.CheckConformity(); err != nil {
		return nil, err
	}
	utils.Logger().Debug("assembled block topology",
		"variant", sec.Variant.String(), "blocks", len(layout.Blocks),
		"walls", len(layout.Walls), "policy", policy.String())
	return topo, nil
}

func (topo *Topology) NumBlocks() int { return len(topo.Layout.Blocks) }

func (topo *Topology) checkIndices() error {
	n := topo.Section.NumPoints()
	inRange := func(e Edge) bool {
		return e[0] >= 0 && e[0] < n && e[1] >= 0 && e[1] < n
	}
	for k, b := range topo.Layout.Blocks {
		for f := 0; f < NFaces; f++ {
			if !inRange(b.Edge(f)) {
				return newTopologyError(ErrTopology, k, b.Edge(f), "point index out of range [0, %d)", n)
			}
		}
	}
	edges, _ := topo.Layout.BoundaryEdges()
	for _, e := range edges {
		if !inRange(e) {
			return newTopologyError(ErrTopology, -1, e, "point index out of range [0, %d)", n)
		}
		if e[0] == e[1] {
			return newTopologyError(ErrTopology, -1, e, "boundary edge joins a point to itself")
		}
	}
	return nil
}

func (topo *Topology) checkBlockShapes() error {
	for k, b := range topo.Layout.Blocks {
		for i := 0; i < NFaces; i++ {
			for j := i + 1; j < NFaces; j++ {
				if b[i] == b[j] {
					return newTopologyError(ErrDegenerateBlock, k, Edge{b[i], b[j]},
						"corners %d and %d repeat point %d", i, j, b[i])
				}
			}
		}
		poly := topo.BlockPolygon(k)
		if !geometry2D.IsConvexCCW(poly) {
			return newTopologyError(ErrDegenerateBlock, k, b.Edge(0),
				"not a convex counter-clockwise quadrilateral, signed area %g", geometry2D.SignedArea(poly))
		}
	}
	return nil
}

func (topo *Topology) BlockPolygon(k int) (poly []r2.Vec) {
	poly = make([]r2.Vec, NFaces)
	for i, ind := range topo.Layout.Blocks[k] {
		poly[i] = topo.Section.Points[ind]
	}
	return
}

// ExteriorEdges are the block edges without a neighbour, in block traversal order.
func (topo *Topology) ExteriorEdges() (edges []Edge) {
	for k, b := range topo.Layout.Blocks {
		for f := 0; f < NFaces; f++ {
			if topo.EToE[k][f] == -1 {
				edges = append(edges, b.Edge(f))
			}
		}
	}
	return
}

// CheckBoundaryCoverage requires the exterior block edges to be exactly the
// inlet, outlet and wall edges, each named once.
func (topo *Topology) CheckBoundaryCoverage() error {
	exterior := make(map[types.EdgeKey]Edge)
	for _, e := range topo.ExteriorEdges() {
		exterior[e.Key()] = e
	}
	named := make(map[types.EdgeKey]types.BCFLAG)
	edges, flags := topo.Layout.BoundaryEdges()
	for i, e := range edges {
		key := e.Key()
		if prev, ok := named[key]; ok {
			return newTopologyError(ErrTopology, -1, e, "named as %s and again as %s", prev, flags[i])
		}
		named[key] = flags[i]
		if _, ok := exterior[key]; !ok {
			return newTopologyError(ErrTopology, -1, e, "%s edge is not on the exterior of the blocks", flags[i])
		}
	}
	var missing []Edge
	for key, e := range exterior {
		if _, ok := named[key]; !ok {
			missing = append(missing, e)
		}
	}
	if len(missing) != 0 {
		sort.Slice(missing, func(i, j int) bool { return missing[i].Key() < missing[j].Key() })
		return newTopologyError(ErrTopology, -1, missing[0],
			"%d exterior edges are not covered by any boundary patch", len(missing))
	}
	return nil
}

// CheckConformity requires both sides of every shared edge to carry the same
// cell count, and every count to be positive.
func (topo *Topology) CheckConformity() error {
	if len(topo.Resolutions) != topo.NumBlocks() {
		return newTopologyError(ErrTopology, -1, Edge{}, "%d resolutions for %d blocks",
			len(topo.Resolutions), topo.NumBlocks())
	}
	for k, res := range topo.Resolutions {
		for dir, n := range res {
			if n < 1 {
				return newTopologyError(ErrTopology, k, Edge{},
					"resolution %v has a non-positive count in direction %d", res, dir)
			}
		}
	}
	for k, b := range topo.Layout.Blocks {
		for f := 0; f < NFaces; f++ {
			kk, ff := topo.EToE[k][f], topo.EToF[k][f]
			if kk < k {
				continue
			}
			n1, n2 := topo.Resolutions[k][f%2], topo.Resolutions[kk][ff%2]
			if n1 != n2 {
				return newTopologyError(ErrTopology, k, b.Edge(f),
					"%d cells do not match %d cells of block %d", n1, n2, kk)
			}
			if topo.Resolutions[k][2] != topo.Resolutions[kk][2] {
				return newTopologyError(ErrTopology, k, b.Edge(f),
					"%d layers do not match %d layers of block %d",
					topo.Resolutions[k][2], topo.Resolutions[kk][2], kk)
			}
		}
	}
	return nil
}

// Edges lists every distinct block edge once, in first seen order.
func (topo *Topology) Edges() (edges []Edge) {
	seen := make(map[types.EdgeKey]bool)
	for _, b := range topo.Layout.Blocks {
		for f := 0; f < NFaces; f++ {
			e := b.Edge(f)
			if !seen[e.Key()] {
				seen[e.Key()] = true
				edges = append(edges, e)
			}
		}
	}
	return
}

// BlockEdge locates the block and local edge holding e, and whether e follows
// the block's counter-clockwise traversal.
func (topo *Topology) BlockEdge(e Edge) (k, f int, ccw, ok bool) {
	key := e.Key()
	for k, b := range topo.Layout.Blocks {
		for f := 0; f < NFaces; f++ {
			be := b.Edge(f)
			if be.Key() == key {
				return k, f, be == e, true
			}
		}
	}
	return -1, -1, false, false
}
