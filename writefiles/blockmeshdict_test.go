package writefiles

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/teslamesh/geometry2D"
	"github.com/notargets/teslamesh/mesh3D"
	"github.com/notargets/teslamesh/readfiles"
	"github.com/notargets/teslamesh/topology2D"
	"github.com/notargets/teslamesh/types"
)

func generate(t *testing.T, variant geometry2D.Variant) *mesh3D.Mesh {
	t.Helper()
	m, err := mesh3D.Generate(mesh3D.Config{
		Valve: geometry2D.ValveParams{Variant: variant, ValveLength: 3, Diameter: 1,
			EndLength: 4, BendAngle: math.Pi / 4},
		Policy:        topology2D.Tuned,
		Density:       1,
		HalfThickness: 0.05,
	})
	require.NoError(t, err)
	return m
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteBlockMeshDict(t *testing.T) {
	m := generate(t, geometry2D.SingleBend)
	var buf bytes.Buffer
	require.NoError(t, WriteBlockMeshDict(&buf, m, 0.001))
	out := buf.String()
	for _, section := range []string{"\nvertices\n(", "\nblocks\n(", "\nedges\n(", "\nboundary\n(",
		"\nmergePatchPairs\n("} {
		assert.Equal(t, 1, strings.Count(out, section), section)
	}
	for _, patch := range []string{"inlet", "outlet", "pipe"} {
		assert.Equal(t, 1, strings.Count(out, "\n    "+patch+"\n    {\n"), patch)
	}
	assert.Contains(t, out, "convertToMeters 0.001;")
	assert.Contains(t, out, "type wall;")
	assert.Equal(t, 2, strings.Count(out, "type patch;"))
	assert.Equal(t, len(m.Blocks), strings.Count(out, "simpleGrading (1 1 1)"))
	assert.Equal(t, len(m.Arcs), strings.Count(out, "    arc "))
}

func TestWriteBlockMeshDictErrors(t *testing.T) {
	m := generate(t, geometry2D.SingleBend)
	err := WriteBlockMeshDict(failingWriter{}, m, 1)
	assert.Error(t, err)

	err = WriteBlockMeshDict(&bytes.Buffer{}, m, 0)
	var ce *types.ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "ConvertToMeters", ce.Param)
}

func TestWriteBlockMeshDictFile(t *testing.T) {
	for _, variant := range []geometry2D.Variant{geometry2D.SingleBend, geometry2D.DoubleBend} {
		m := generate(t, variant)
		dir := filepath.Join(t.TempDir(), "system")
		path := filepath.Join(dir, DefaultFileName)
		sum, err := WriteBlockMeshDictFile(path, m, 1)
		require.NoError(t, err)
		assert.Equal(t, path, sum.Path)
		assert.Equal(t, len(m.Vertices), sum.Vertices)
		assert.Equal(t, len(m.Blocks), sum.Blocks)
		assert.Equal(t, len(m.Arcs), sum.Edges)
		assert.Contains(t, sum.String(), "vertices")

		bmd, err := readfiles.ReadBlockMeshDict(path)
		require.NoError(t, err)
		assert.Len(t, bmd.Vertices, len(m.Vertices))
		assert.Equal(t, 0, len(bmd.Vertices)%2)
		require.Len(t, bmd.Hexes, len(m.Blocks))
		for k, h := range bmd.Hexes {
			seen := make(map[int]bool)
			for _, ind := range h {
				assert.True(t, ind >= 0 && ind < len(bmd.Vertices))
				seen[ind] = true
			}
			assert.Len(t, seen, 8)
			assert.Equal(t, [3]int(m.Resolutions[k]), bmd.Resolutions[k])
		}
		assert.Len(t, bmd.Arcs, len(m.Arcs))
		require.Len(t, bmd.Patches, 3)
		assert.Len(t, bmd.Patch("inlet").Faces, 1)
		assert.Len(t, bmd.Patch("outlet").Faces, 1)
		assert.Len(t, bmd.Patch("pipe").Faces, len(m.Walls))
		assert.Equal(t, "wall", bmd.Patch("pipe").Type)
		for i, v := range m.Vertices {
			assert.Equal(t, v, bmd.Vertices[i])
		}

		// Writing into an existing directory names the file for it
		sum, err = WriteBlockMeshDictFile(dir, m, 1)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, DefaultFileName), sum.Path)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "no temporary files are left behind")
	}
}

func TestWriteBlockMeshDictFileFailure(t *testing.T) {
	m := generate(t, geometry2D.SingleBend)
	dir := t.TempDir()
	blocker := filepath.Join(dir, "notadir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	path := filepath.Join(blocker, "system", DefaultFileName)
	_, err := WriteBlockMeshDictFile(path, m, 1)
	assert.Error(t, err)
	_, serr := os.Stat(path)
	assert.Error(t, serr)

	path = filepath.Join(dir, DefaultFileName)
	_, err = WriteBlockMeshDictFile(path, m, -1)
	assert.Error(t, err)
	_, serr = os.Stat(path)
	assert.True(t, os.IsNotExist(serr))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
