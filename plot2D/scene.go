package plot2D

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/teslamesh/geometry2D"
	"github.com/notargets/teslamesh/topology2D"
	"github.com/notargets/teslamesh/types"
)

type ColorName uint8

const (
	White ColorName = iota
	Blue
	Red
	Green
	Black
	Gray
)

func GetColor(name ColorName) (c color.RGBA) {
	switch name {
	case White:
		c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case Blue:
		c = color.RGBA{R: 50, G: 0, B: 255, A: 255}
	case Red:
		c = color.RGBA{R: 255, G: 0, B: 50, A: 255}
	case Green:
		c = color.RGBA{R: 25, G: 255, B: 25, A: 255}
	case Black:
		c = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	case Gray:
		c = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}
	return
}

// FlagColor is the line color used for edges of each patch type.
func FlagColor(flag types.BCFLAG) color.RGBA {
	switch flag {
	case types.BC_In:
		return GetColor(Green)
	case types.BC_Out:
		return GetColor(Red)
	case types.BC_Wall:
		return GetColor(Black)
	}
	return GetColor(Blue)
}

type RenderText struct {
	Color color.RGBA
	Text  string
	Pitch uint32
	X, Y  float32
}

// Scene is a set of line segments, stored as x1,y1,x2,y2 runs per color, plus labels.
type Scene struct {
	Lines                  map[color.RGBA][]float32
	Text                   []RenderText
	XMin, XMax, YMin, YMax float32
}

type Options struct {
	PointLabels bool
	BlockLabels bool
	// ArcSegments is the number of straight pieces drawn per arc
	ArcSegments int
}

func DefaultOptions() Options {
	return Options{PointLabels: true, ArcSegments: 16}
}

func (sc *Scene) AddLine(p1, p2 r2.Vec, col color.RGBA) {
	sc.Lines[col] = append(sc.Lines[col],
		float32(p1.X), float32(p1.Y),
		float32(p2.X), float32(p2.Y),
	)
}

func (sc *Scene) AddCrossHair(p r2.Vec, size float64, col color.RGBA) {
	sc.AddLine(r2.Vec{X: p.X - size, Y: p.Y}, r2.Vec{X: p.X + size, Y: p.Y}, col)
	sc.AddLine(r2.Vec{X: p.X, Y: p.Y - size}, r2.Vec{X: p.X, Y: p.Y + size}, col)
}

func (sc *Scene) AddPolyline(pts []r2.Vec, col color.RGBA) {
	for i := 1; i < len(pts); i++ {
		sc.AddLine(pts[i-1], pts[i], col)
	}
}

func (sc *Scene) NumSegments() (n int) {
	for _, line := range sc.Lines {
		n += len(line) / 4
	}
	return
}

/*
SectionScene draws every block edge of the topology. Edges carried by an arc are
drawn as sampled polylines. Boundary edges take the color of their patch and
interior edges are blue.
*/
func SectionScene(topo *topology2D.Topology, opts Options) (sc *Scene) {
	var (
		sec   = topo.Section
		flags = make(map[types.EdgeKey]types.BCFLAG)
	)
	sc = &Scene{Lines: make(map[color.RGBA][]float32)}
	edges, ff := topo.Layout.BoundaryEdges()
	for i, e := range edges {
		flags[e.Key()] = ff[i]
	}
	for _, e := range topo.Edges() {
		col := FlagColor(flags[e.Key()])
		if a, ok := sec.ArcFor(e[0], e[1]); ok {
			sc.AddPolyline(sec.Circle(a).Sample(opts.ArcSegments), col)
			continue
		}
		sc.AddLine(sec.Points[e[0]], sec.Points[e[1]], col)
	}
	box := geometry2D.NewBoundingBox(sec.Points).Scale(1.1).Square()
	sc.XMin, sc.YMin = float32(box.XMin.X), float32(box.XMin.Y)
	sc.XMax, sc.YMax = float32(box.XMax.X), float32(box.XMax.Y)

	size := 0.005 * float64(sc.XMax-sc.XMin)
	for i, p := range sec.Points {
		sc.AddCrossHair(p, size, GetColor(Gray))
		if opts.PointLabels {
			sc.Text = append(sc.Text, RenderText{Color: GetColor(Black), Text: fmt.Sprint(i),
				Pitch: 12, X: float32(p.X + size), Y: float32(p.Y + size)})
		}
	}
	if opts.BlockLabels {
		for k := range topo.Layout.Blocks {
			ct := geometry2D.NewBoundingBox(topo.BlockPolygon(k)).Centroid()
			sc.Text = append(sc.Text, RenderText{Color: GetColor(Blue), Text: fmt.Sprintf("B%d", k),
				Pitch: 14, X: float32(ct.X), Y: float32(ct.Y)})
		}
	}
	return
}
