package readfiles

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrDictFormat is wrapped by every parse failure.
var ErrDictFormat = errors.New("malformed blockMeshDict")

type ArcEdge struct {
	Start, End int
	Through    r3.Vec
}

type DictPatch struct {
	Name, Type string
	Faces      [][4]int
}

// BlockMeshDict holds the parts of a blockMesh dictionary this tool writes.
type BlockMeshDict struct {
	ConvertToMeters float64
	Vertices        []r3.Vec
	Hexes           [][8]int
	Resolutions     [][3]int
	Arcs            []ArcEdge
	Patches         []DictPatch
}

// Patch returns the named patch or nil.
func (bmd *BlockMeshDict) Patch(name string) *DictPatch {
	for i := range bmd.Patches {
		if bmd.Patches[i].Name == name {
			return &bmd.Patches[i]
		}
	}
	return nil
}

func (bmd *BlockMeshDict) PrintStatistics() {
	var cells int
	for _, res := range bmd.Resolutions {
		cells += res[0] * res[1] * res[2]
	}
	fmt.Printf("blockMeshDict Statistics:\n")
	fmt.Printf("  convertToMeters: %v\n", bmd.ConvertToMeters)
	fmt.Printf("  Vertices: %d\n", len(bmd.Vertices))
	fmt.Printf("  Blocks: %d\n", len(bmd.Hexes))
	fmt.Printf("  Arcs: %d\n", len(bmd.Arcs))
	fmt.Printf("  Cells: %d\n", cells)
	fmt.Printf("  Patches:\n")
	for _, p := range bmd.Patches {
		fmt.Printf("    %s (%s): %d faces\n", p.Name, p.Type, len(p.Faces))
	}
}

func ReadBlockMeshDict(filename string) (bmd *BlockMeshDict, err error) {
	var file *os.File
	if file, err = os.Open(filename); err != nil {
		return nil, err
	}
	defer file.Close()
	if bmd, err = ParseBlockMeshDict(bufio.NewReader(file)); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return
}

type dictReader struct {
	reader    *bufio.Reader
	lineNum   int
	inComment bool
}

// getLine returns the next non blank line with comments removed, or io.EOF.
func (dr *dictReader) getLine() (line string, err error) {
	for {
		if line, err = dr.reader.ReadString('\n'); err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		dr.lineNum++
		line = dr.stripComments(line)
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
		if err == io.EOF {
			return "", err
		}
	}
}

func (dr *dictReader) stripComments(line string) string {
	var sb strings.Builder
	for len(line) > 0 {
		if dr.inComment {
			ind := strings.Index(line, "*/")
			if ind < 0 {
				return sb.String()
			}
			line = line[ind+2:]
			dr.inComment = false
			continue
		}
		lc, bc := strings.Index(line, "//"), strings.Index(line, "/*")
		switch {
		case bc >= 0 && (lc < 0 || bc < lc):
			sb.WriteString(line[:bc])
			line = line[bc+2:]
			dr.inComment = true
		case lc >= 0:
			sb.WriteString(line[:lc])
			return sb.String()
		default:
			sb.WriteString(line)
			return sb.String()
		}
	}
	return sb.String()
}

func (dr *dictReader) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrDictFormat, dr.lineNum, fmt.Sprintf(format, args...))
}

func (dr *dictReader) expect(token string) error {
	line, err := dr.getLine()
	if err != nil {
		return dr.errorf("expected %q: %v", token, err)
	}
	if line != token {
		return dr.errorf("expected %q, found %q", token, line)
	}
	return nil
}

// readList calls parse on every entry of a parenthesised list.
func (dr *dictReader) readList(parse func(line string) error) error {
	if err := dr.expect("("); err != nil {
		return err
	}
	for {
		line, err := dr.getLine()
		if err != nil {
			return dr.errorf("unterminated list: %v", err)
		}
		if line == ");" {
			return nil
		}
		if err = parse(line); err != nil {
			return err
		}
	}
}

// ParseBlockMeshDict reads the dictionary layout written by writefiles.
func ParseBlockMeshDict(reader *bufio.Reader) (bmd *BlockMeshDict, err error) {
	var (
		dr   = &dictReader{reader: reader}
		line string
	)
	bmd = &BlockMeshDict{ConvertToMeters: 1}
	for {
		if line, err = dr.getLine(); err == io.EOF {
			return bmd, nil
		} else if err != nil {
			return nil, err
		}
		keyword := strings.Fields(line)[0]
		switch keyword {
		case "FoamFile":
			for line != "}" {
				if line, err = dr.getLine(); err != nil {
					return nil, dr.errorf("unterminated FoamFile header")
				}
			}
		case "convertToMeters", "scale":
			if _, err = fmt.Sscanf(line, keyword+" %g;", &bmd.ConvertToMeters); err != nil {
				return nil, dr.errorf("reading %s: %v", keyword, err)
			}
		case "vertices":
			err = dr.readList(func(line string) error {
				var v r3.Vec
				if _, err := fmt.Sscanf(line, "(%g %g %g)", &v.X, &v.Y, &v.Z); err != nil {
					return dr.errorf("reading vertex %d: %v", len(bmd.Vertices), err)
				}
				bmd.Vertices = append(bmd.Vertices, v)
				return nil
			})
		case "blocks":
			err = dr.readList(func(line string) error {
				var (
					h   [8]int
					res [3]int
				)
				if _, err := fmt.Sscanf(line, "hex (%d %d %d %d %d %d %d %d) (%d %d %d)",
					&h[0], &h[1], &h[2], &h[3], &h[4], &h[5], &h[6], &h[7],
					&res[0], &res[1], &res[2]); err != nil {
					return dr.errorf("reading block %d: %v", len(bmd.Hexes), err)
				}
				bmd.Hexes = append(bmd.Hexes, h)
				bmd.Resolutions = append(bmd.Resolutions, res)
				return nil
			})
		case "edges":
			err = dr.readList(func(line string) error {
				var a ArcEdge
				if _, err := fmt.Sscanf(line, "arc %d %d (%g %g %g)",
					&a.Start, &a.End, &a.Through.X, &a.Through.Y, &a.Through.Z); err != nil {
					return dr.errorf("reading edge %d: %v", len(bmd.Arcs), err)
				}
				bmd.Arcs = append(bmd.Arcs, a)
				return nil
			})
		case "boundary":
			err = dr.readList(func(name string) error {
				return dr.readPatch(bmd, name)
			})
		case "mergePatchPairs":
			err = dr.readList(func(line string) error { return nil })
		default:
			return nil, dr.errorf("unknown entry %q", keyword)
		}
		if err != nil {
			return nil, err
		}
	}
}

func (dr *dictReader) readPatch(bmd *BlockMeshDict, name string) (err error) {
	p := DictPatch{Name: name}
	if err = dr.expect("{"); err != nil {
		return
	}
	for {
		var line string
		if line, err = dr.getLine(); err != nil {
			return dr.errorf("unterminated patch %s", name)
		}
		switch {
		case line == "}":
			bmd.Patches = append(bmd.Patches, p)
			return nil
		case strings.HasPrefix(line, "type"):
			if _, err = fmt.Sscanf(strings.TrimSuffix(line, ";"), "type %s", &p.Type); err != nil {
				return dr.errorf("reading type of patch %s: %v", name, err)
			}
		case line == "faces":
			err = dr.readList(func(line string) error {
				var f [4]int
				if _, err := fmt.Sscanf(line, "(%d %d %d %d)", &f[0], &f[1], &f[2], &f[3]); err != nil {
					return dr.errorf("reading face %d of patch %s: %v", len(p.Faces), name, err)
				}
				p.Faces = append(p.Faces, f)
				return nil
			})
			if err != nil {
				return
			}
		default:
			return dr.errorf("unknown patch entry %q in %s", line, name)
		}
	}
}
