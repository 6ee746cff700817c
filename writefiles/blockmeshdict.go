package writefiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/notargets/teslamesh/mesh3D"
	"github.com/notargets/teslamesh/types"
	"github.com/notargets/teslamesh/utils"
)

const DefaultFileName = "blockMeshDict"

const foamHeader = `/*--------------------------------*- C++ -*----------------------------------*\
| =========                 |                                                 |
| \\      /  F ield         | OpenFOAM: The Open Source CFD Toolbox           |
|  \\    /   O peration     |                                                 |
|   \\  /    A nd           | Web:      www.OpenFOAM.org                      |
|    \\/     M anipulation  |                                                 |
\*---------------------------------------------------------------------------*/

FoamFile
{
    version     2.0;
    format      ascii;
    class       dictionary;
    object      blockMeshDict;
}

// * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * //

`

// Summary counts what went into a written dictionary.
type Summary struct {
	Path     string
	Vertices int
	Blocks   int
	Edges    int
}

func (s Summary) String() string {
	return fmt.Sprintf("blockMeshDict written to '%s' with %d vertices, %d blocks, %d edges.",
		s.Path, s.Vertices, s.Blocks, s.Edges)
}

func joinInts(vals []int) string {
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = fmt.Sprint(v)
	}
	return strings.Join(s, " ")
}

// WriteBlockMeshDict serializes the mesh in blockMesh dictionary syntax.
func WriteBlockMeshDict(w io.Writer, m *mesh3D.Mesh, convertToMeters float64) (err error) {
	if !utils.IsFinite(convertToMeters) || convertToMeters <= 0 {
		return types.NewConfigError("ConvertToMeters", convertToMeters, "must be positive and finite")
	}
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, foamHeader)
	fmt.Fprintf(bw, "convertToMeters %v;\n\n", convertToMeters)

	fmt.Fprintf(bw, "vertices\n(\n")
	for i, v := range m.Vertices {
		fmt.Fprintf(bw, "    (%v %v %v) // vertex %d\n", v.X, v.Y, v.Z, i)
	}
	fmt.Fprintf(bw, ");\n\n")

	fmt.Fprintf(bw, "blocks\n(\n")
	for k, h := range m.Blocks {
		res := m.Resolutions[k]
		fmt.Fprintf(bw, "    hex (%s) (%d %d %d) simpleGrading (1 1 1) // block %d\n",
			joinInts(h[:]), res[0], res[1], res[2], k)
	}
	fmt.Fprintf(bw, ");\n\n")

	fmt.Fprintf(bw, "edges\n(\n")
	for i, a := range m.Arcs {
		through := m.Vertices[a.Through]
		fmt.Fprintf(bw, "    arc %d %d (%v %v %v) // edge %d\n",
			a.Start, a.End, through.X, through.Y, through.Z, i)
	}
	fmt.Fprintf(bw, ");\n\n")

	fmt.Fprintf(bw, "boundary\n(\n")
	for _, p := range m.Patches() {
		fmt.Fprintf(bw, "    %s\n    {\n        type %s;\n        faces\n        (\n", p.Name, p.Flag.FoamType())
		for _, q := range p.Faces {
			fmt.Fprintf(bw, "            (%s)\n", joinInts(q[:]))
		}
		fmt.Fprintf(bw, "        );\n    }\n")
	}
	fmt.Fprintf(bw, ");\n\n")

	fmt.Fprintf(bw, "mergePatchPairs\n(\n);\n\n")
	fmt.Fprintf(bw, "// ************************************************************************* //\n")
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("writing blockMeshDict: %w", err)
	}
	return nil
}

/*
WriteBlockMeshDictFile writes the dictionary to path, or to path/blockMeshDict
when path is a directory. The content goes to a temporary file beside the target
which is renamed into place only after everything was written, so a failed
write never leaves a partial dictionary behind.
*/
func WriteBlockMeshDictFile(path string, m *mesh3D.Mesh, convertToMeters float64) (sum Summary, err error) {
	if fi, serr := os.Stat(path); serr == nil && fi.IsDir() {
		path = filepath.Join(path, DefaultFileName)
	}
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0755); err != nil {
		return sum, fmt.Errorf("creating output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return sum, fmt.Errorf("creating temporary output: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if err = WriteBlockMeshDict(tmp, m, convertToMeters); err != nil {
		return
	}
	if err = tmp.Chmod(0644); err != nil {
		return sum, fmt.Errorf("setting permissions on %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return sum, fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return sum, fmt.Errorf("moving blockMeshDict into place: %w", err)
	}
	committed = true
	sum = Summary{Path: path, Vertices: len(m.Vertices), Blocks: len(m.Blocks), Edges: len(m.Arcs)}
	utils.Logger().Debug("wrote blockMeshDict", "path", path, "cells", m.NumCells())
	return
}
