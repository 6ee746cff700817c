package mesh3D

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/teslamesh/geometry2D"
	"github.com/notargets/teslamesh/topology2D"
	"github.com/notargets/teslamesh/types"
	"github.com/notargets/teslamesh/utils"
)

// Hex is a hexahedral block: the back layer corners then the front layer corners,
// each counter-clockwise seen from +z.
type Hex [8]int

// Quad is a boundary face, ordered so its normal points out of the mesh.
type Quad [4]int

// Mesh is the extruded block structure of one valve section. It is built once
// and read only afterwards.
type Mesh struct {
	Topology      *topology2D.Topology
	NumPoints2D   int
	HalfThickness float64

	Vertices    []r3.Vec // front layer at +HalfThickness, then back layer at -HalfThickness
	Blocks      []Hex
	Resolutions []topology2D.Resolution
	Arcs        []geometry2D.Arc

	Inlet, Outlet Quad
	Walls         []Quad
	// FrontAndBack is empty unless the layer faces were requested as a patch
	FrontAndBack []Quad
}

// Patch is one named group of boundary faces.
type Patch struct {
	Name  string
	Flag  types.BCFLAG
	Faces []Quad
}

/*
Extrude lifts the 2D topology into a one cell thick layer. Point i of the
section becomes vertex i at z = +halfThickness and vertex i+N at z = -halfThickness.

Every boundary edge becomes the side quad (a, b, b+N, a+N) with (a, b) running
clockwise around its block. Inlet and outlet edges are authored that way. Wall
edges tagged Straight follow the block's counter-clockwise order and are reversed
first; Curved wall edges are used as authored.
*/
func Extrude(topo *topology2D.Topology, halfThickness float64) (m *Mesh, err error) {
	if !utils.IsFinite(halfThickness) || halfThickness <= 0 {
		return nil, types.NewConfigError("HalfThickness", halfThickness, "must be positive and finite")
	}
	var (
		sec    = topo.Section
		N      = sec.NumPoints()
		layout = topo.Layout
	)
	m = &Mesh{
		Topology:      topo,
		NumPoints2D:   N,
		HalfThickness: halfThickness,
		Vertices:      make([]r3.Vec, 2*N),
		Blocks:        make([]Hex, len(layout.Blocks)),
		Resolutions:   append([]topology2D.Resolution(nil), topo.Resolutions...),
		Arcs:          make([]geometry2D.Arc, 0, 2*len(sec.Arcs)),
		Walls:         make([]Quad, len(layout.Walls)),
	}
	for i, p := range sec.Points {
		m.Vertices[i] = r3.Vec{X: p.X, Y: p.Y, Z: halfThickness}
		m.Vertices[i+N] = r3.Vec{X: p.X, Y: p.Y, Z: -halfThickness}
	}
	for k, b := range layout.Blocks {
		m.Blocks[k] = Hex{b[0] + N, b[1] + N, b[2] + N, b[3] + N, b[0], b[1], b[2], b[3]}
	}
	m.Arcs = append(m.Arcs, sec.Arcs...)
	for _, a := range sec.Arcs {
		m.Arcs = append(m.Arcs, a.Offset(N))
	}
	m.Inlet = m.sideQuad(layout.Inlet)
	m.Outlet = m.sideQuad(layout.Outlet)
	for i, w := range layout.Walls {
		e := w.Edge
		if w.Section == types.Straight {
			e = e.Reverse()
		}
		m.Walls[i] = m.sideQuad(e)
	}
	return
}

func (m *Mesh) sideQuad(e topology2D.Edge) Quad {
	N := m.NumPoints2D
	return Quad{e[0], e[1], e[1] + N, e[0] + N}
}

// AddFrontAndBack collects the outward layer faces of every block as one
// empty patch, the usual treatment for a single layer 2D case.
func (m *Mesh) AddFrontAndBack() {
	m.FrontAndBack = make([]Quad, 0, 2*len(m.Blocks))
	for _, h := range m.Blocks {
		faces := HexFaces(h)
		m.FrontAndBack = append(m.FrontAndBack, faces[0], faces[1])
	}
}

// Patches lists the boundary patches in output order.
func (m *Mesh) Patches() (patches []Patch) {
	patches = []Patch{
		{Name: types.BC_In.PatchName(), Flag: types.BC_In, Faces: []Quad{m.Inlet}},
		{Name: types.BC_Out.PatchName(), Flag: types.BC_Out, Faces: []Quad{m.Outlet}},
		{Name: types.BC_Wall.PatchName(), Flag: types.BC_Wall, Faces: m.Walls},
	}
	if len(m.FrontAndBack) != 0 {
		patches = append(patches,
			Patch{Name: types.BC_Empty.PatchName(), Flag: types.BC_Empty, Faces: m.FrontAndBack})
	}
	return
}

func (m *Mesh) NumCells() (n int) {
	for _, res := range m.Resolutions {
		n += res[0] * res[1] * res[2]
	}
	return
}

func (m *Mesh) PrintStatistics() {
	fmt.Printf("Mesh Statistics:\n")
	fmt.Printf("  Variant: %s\n", m.Topology.Section.Variant)
	fmt.Printf("  Resolution policy: %s\n", m.Topology.Policy)
	fmt.Printf("  Vertices: %d\n", len(m.Vertices))
	fmt.Printf("  Blocks: %d\n", len(m.Blocks))
	fmt.Printf("  Arcs: %d\n", len(m.Arcs))
	fmt.Printf("  Cells: %d\n", m.NumCells())
	fmt.Printf("  Patches:\n")
	for _, p := range m.Patches() {
		fmt.Printf("    %s (%s): %d faces\n", p.Name, p.Flag.FoamType(), len(p.Faces))
	}
}
