package topology2D

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/teslamesh/geometry2D"
	"github.com/notargets/teslamesh/types"
)

// ResolutionPolicy decides how many cells each block gets.
type ResolutionPolicy uint8

const (
	// Uniform gives every block density cells in x and y
	Uniform ResolutionPolicy = iota
	// Tuned scales the variant's hand tuned table by density
	Tuned
	// Graded treats density as cells per unit length along each edge
	Graded
)

var policyNames = map[string]ResolutionPolicy{
	"uniform": Uniform,
	"tuned":   Tuned,
	"graded":  Graded,
}

func NewResolutionPolicy(label string) (ResolutionPolicy, error) {
	if p, ok := policyNames[strings.ToLower(strings.TrimSpace(label))]; ok {
		return p, nil
	}
	return Uniform, fmt.Errorf("%w: unknown resolution policy %q, want uniform, tuned or graded",
		types.ErrConfig, label)
}

func (p ResolutionPolicy) String() string {
	switch p {
	case Uniform:
		return "uniform"
	case Tuned:
		return "tuned"
	case Graded:
		return "graded"
	}
	return fmt.Sprintf("ResolutionPolicy(%d)", uint8(p))
}

// MaxCells bounds the cell count along any one block edge.
const MaxCells = math.MaxInt32

// cellCount rounds density*scale to a cell count, at least one.
func cellCount(density, scale float64) (int, error) {
	x := density * scale
	if !(x <= MaxCells) {
		return 0, types.NewConfigError("Density", density,
			fmt.Sprintf("gives %g cells along one block edge, more than %d", x, MaxCells))
	}
	return max(1, int(math.Round(x))), nil
}

// Resolutions assigns one (nx, ny, 1) triple per block of the layout.
func (p ResolutionPolicy) Resolutions(sec *geometry2D.Section, layout *Layout,
	density float64) (res []Resolution, err error) {
	if !(density > 0) || math.IsInf(density, 0) {
		return nil, types.NewConfigError("Density", density, "must be positive and finite")
	}
	if p != Graded && density != math.Trunc(density) {
		return nil, types.NewConfigError("Density", density,
			fmt.Sprintf("must be a whole number of cells for the %s policy", p))
	}
	res = make([]Resolution, len(layout.Blocks))
	switch p {
	case Uniform:
		var n int
		if n, err = cellCount(density, 1); err != nil {
			return nil, err
		}
		for k := range res {
			res[k] = Resolution{n, n, 1}
		}
	case Tuned:
		if layout.Tuned == nil {
			return Uniform.Resolutions(sec, layout, density)
		}
		if len(layout.Tuned) != len(layout.Blocks) {
			return nil, fmt.Errorf("%w: tuned table has %d entries for %d blocks",
				ErrTopology, len(layout.Tuned), len(layout.Blocks))
		}
		for k, t := range layout.Tuned {
			res[k][2] = 1
			for i := 0; i < 2; i++ {
				if res[k][i], err = cellCount(density, float64(t[i])); err != nil {
					return nil, err
				}
			}
		}
	case Graded:
		return gradedResolutions(sec, layout, density)
	default:
		return nil, fmt.Errorf("%w: unknown resolution policy %d", types.ErrConfig, uint8(p))
	}
	return
}

/*
gradedResolutions sizes cells to a target spacing of 1/density. The edges of a
block come in two opposite pairs which must carry equal counts, and an edge
shared by two blocks must carry one count in both. Joining those with a
union-find over edge keys leaves classes that all need one count; each class
takes the count of its longest member, measured along the arc when it is curved.
*/
func gradedResolutions(sec *geometry2D.Section, layout *Layout, density float64) (res []Resolution, err error) {
	uf := newEdgeUnion()
	for _, b := range layout.Blocks {
		uf.union(b.Edge(0).Key(), b.Edge(2).Key())
		uf.union(b.Edge(1).Key(), b.Edge(3).Key())
	}
	longest := make(map[types.EdgeKey]float64)
	for _, b := range layout.Blocks {
		for f := 0; f < NFaces; f++ {
			e := b.Edge(f)
			root := uf.find(e.Key())
			longest[root] = math.Max(longest[root], edgeLength(sec, e))
		}
	}
	res = make([]Resolution, len(layout.Blocks))
	for k, b := range layout.Blocks {
		res[k][2] = 1
		for i := 0; i < 2; i++ {
			if res[k][i], err = cellCount(density, longest[uf.find(b.Edge(i).Key())]); err != nil {
				return nil, err
			}
		}
	}
	return
}

func edgeLength(sec *geometry2D.Section, e Edge) float64 {
	if a, ok := sec.ArcFor(e[0], e[1]); ok {
		return sec.Circle(a).ArcLength()
	}
	return r2.Norm(r2.Sub(sec.Points[e[1]], sec.Points[e[0]]))
}

// edgeUnion is a disjoint set forest over edge keys with path halving.
type edgeUnion struct {
	parent map[types.EdgeKey]types.EdgeKey
}

func newEdgeUnion() *edgeUnion {
	return &edgeUnion{parent: make(map[types.EdgeKey]types.EdgeKey)}
}

func (uf *edgeUnion) find(k types.EdgeKey) types.EdgeKey {
	if _, ok := uf.parent[k]; !ok {
		uf.parent[k] = k
		return k
	}
	for uf.parent[k] != k {
		uf.parent[k] = uf.parent[uf.parent[k]]
		k = uf.parent[k]
	}
	return k
}

func (uf *edgeUnion) union(a, b types.EdgeKey) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	// the smaller key wins so roots do not depend on visit order
	if rb < ra {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
}
