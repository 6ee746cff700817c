package mesh3D

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrMesh is wrapped by structural faults in the extruded mesh.
	ErrMesh = errors.New("invalid extruded mesh")
	// ErrOrientation is wrapped when a block or a boundary face winds the wrong way.
	ErrOrientation = errors.New("wrong orientation")
)

// HexFaces returns the six faces of a hex, each wound so its normal points out.
// Faces 0 and 1 are the back and front layer faces.
func HexFaces(h Hex) [6]Quad {
	return [6]Quad{
		{h[0], h[3], h[2], h[1]}, // Face 0 (back)
		{h[4], h[5], h[6], h[7]}, // Face 1 (front)
		{h[0], h[1], h[5], h[4]}, // Face 2
		{h[1], h[2], h[6], h[5]}, // Face 3
		{h[2], h[3], h[7], h[6]}, // Face 4
		{h[3], h[0], h[4], h[7]}, // Face 5
	}
}

// FaceNormal is the area weighted normal of a polygon by Newell's method.
func FaceNormal(pts []r3.Vec) (n r3.Vec) {
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		n.X += (p.Y - q.Y) * (p.Z + q.Z)
		n.Y += (p.Z - q.Z) * (p.X + q.X)
		n.Z += (p.X - q.X) * (p.Y + q.Y)
	}
	return r3.Scale(0.5, n)
}

func (m *Mesh) facePoints(q Quad) []r3.Vec {
	return []r3.Vec{m.Vertices[q[0]], m.Vertices[q[1]], m.Vertices[q[2]], m.Vertices[q[3]]}
}

func centroid(pts []r3.Vec) (c r3.Vec) {
	for _, p := range pts {
		c = r3.Add(c, p)
	}
	return r3.Scale(1/float64(len(pts)), c)
}

// HexVolume by the divergence theorem over the six faces, exact for planar faces.
func (m *Mesh) HexVolume(h Hex) (vol float64) {
	for _, f := range HexFaces(h) {
		pts := m.facePoints(f)
		vol += r3.Dot(centroid(pts), FaceNormal(pts))
	}
	return vol / 3
}

func (m *Mesh) HexCentroid(h Hex) r3.Vec {
	pts := make([]r3.Vec, 8)
	for i, ind := range h {
		pts[i] = m.Vertices[ind]
	}
	return centroid(pts)
}

type faceKey [4]int

func newFaceKey(q Quad) faceKey {
	k := faceKey(q)
	sort.Ints(k[:])
	return k
}

// sameCycle reports whether b is a rotation of a, and whether it is a rotation
// of a reversed.
func sameCycle(a, b Quad) (same, reversed bool) {
	for s := 0; s < 4; s++ {
		fwd, rev := true, true
		for i := 0; i < 4; i++ {
			if a[i] != b[(s+i)%4] {
				fwd = false
			}
			if a[i] != b[(s-i+4)%4] {
				rev = false
			}
		}
		if fwd {
			return true, false
		}
		if rev {
			return false, true
		}
	}
	return
}

type hexFace struct {
	block, local int
	face         Quad
	count        int
}

/*
Validate checks the invariants blockMesh relies on:

  - every index is in range and every hex has 8 distinct corners with positive volume
  - every patch face is an outward wound face of exactly one hex
  - every exterior side face of the block structure lies in exactly one patch

Layer faces are left to blockMesh's default patch unless FrontAndBack holds them.
*/
func (m *Mesh) Validate() error {
	nv := len(m.Vertices)
	if nv != 2*m.NumPoints2D {
		return fmt.Errorf("%w: %d vertices for %d section points", ErrMesh, nv, m.NumPoints2D)
	}
	for i := 0; i < m.NumPoints2D; i++ {
		f, b := m.Vertices[i], m.Vertices[i+m.NumPoints2D]
		if f.X != b.X || f.Y != b.Y || f.Z != -b.Z {
			return fmt.Errorf("%w: vertex %d does not mirror vertex %d", ErrMesh, i+m.NumPoints2D, i)
		}
	}
	inRange := func(ind int) bool { return ind >= 0 && ind < nv }
	for _, a := range m.Arcs {
		for _, ind := range a.Indices() {
			if !inRange(ind) {
				return fmt.Errorf("%w: arc %v references vertex %d of %d", ErrMesh, a, ind, nv)
			}
		}
	}
	faces := make(map[faceKey]*hexFace)
	for k, h := range m.Blocks {
		seen := make(map[int]bool, 8)
		for _, ind := range h {
			if !inRange(ind) {
				return fmt.Errorf("%w: block %d references vertex %d of %d", ErrMesh, k, ind, nv)
			}
			if seen[ind] {
				return fmt.Errorf("%w: block %d repeats vertex %d", ErrMesh, k, ind)
			}
			seen[ind] = true
		}
		if vol := m.HexVolume(h); !(vol > 0) {
			return fmt.Errorf("%w: block %d has volume %g", ErrOrientation, k, vol)
		}
		for local, f := range HexFaces(h) {
			key := newFaceKey(f)
			if hf, ok := faces[key]; ok {
				hf.count++
				continue
			}
			faces[key] = &hexFace{block: k, local: local, face: f, count: 1}
		}
	}
	patched := make(map[faceKey]string)
	for _, p := range m.Patches() {
		for _, q := range p.Faces {
			for _, ind := range q {
				if !inRange(ind) {
					return fmt.Errorf("%w: %s face %v references vertex %d of %d", ErrMesh, p.Name, q, ind, nv)
				}
			}
			key := newFaceKey(q)
			hf, ok := faces[key]
			if !ok {
				return fmt.Errorf("%w: %s face %v is not a block face", ErrMesh, p.Name, q)
			}
			if hf.count != 1 {
				return fmt.Errorf("%w: %s face %v is interior to blocks", ErrMesh, p.Name, q)
			}
			if prev, ok := patched[key]; ok {
				return fmt.Errorf("%w: %s face %v is already in patch %s", ErrMesh, p.Name, q, prev)
			}
			patched[key] = p.Name
			same, reversed := sameCycle(hf.face, q)
			if reversed {
				return fmt.Errorf("%w: %s face %v points into block %d", ErrOrientation, p.Name, q, hf.block)
			}
			if !same {
				return fmt.Errorf("%w: %s face %v is twisted against block %d", ErrMesh, p.Name, q, hf.block)
			}
		}
	}
	for key, hf := range faces {
		if hf.count != 1 {
			continue
		}
		if hf.local < 2 && len(m.FrontAndBack) == 0 {
			continue
		}
		if _, ok := patched[key]; !ok {
			return fmt.Errorf("%w: face %d of block %d is on the boundary but in no patch",
				ErrMesh, hf.local, hf.block)
		}
	}
	return nil
}
