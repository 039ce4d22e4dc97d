package solid

import (
	"fmt"

	"github.com/chazu/solidkernel/pkg/geom"
)

// Solid is an ordered list of faces, intended to be a closed orientable
// polyhedron. The kernel enforces only per-face invariants, not global
// 2-manifoldness.
type Solid struct {
	Faces []Face
}

// Transformed returns s with t applied to every face.
func (s Solid) Transformed(t geom.Transform) Solid {
	out := Solid{Faces: make([]Face, len(s.Faces))}
	for i, f := range s.Faces {
		out.Faces[i] = f.Transformed(t)
	}
	return out
}

// Box constructs an axis-aligned box of size (sx,sy,sz) centered at the
// origin, with each face's normal pointing away from the box center.
func Box(sx, sy, sz float64) Solid {
	s1 := geom.NewVector(sx/2, sy/2, sz/2)
	s2 := geom.NewVector(-sx/2, -sy/2, -sz/2)

	p := [8]geom.Point{
		{Pos: geom.NewVector(s1.C[0], s1.C[1], s1.C[2])},
		{Pos: geom.NewVector(s1.C[0], s1.C[1], s2.C[2])},
		{Pos: geom.NewVector(s1.C[0], s2.C[1], s1.C[2])},
		{Pos: geom.NewVector(s1.C[0], s2.C[1], s2.C[2])},
		{Pos: geom.NewVector(s2.C[0], s1.C[1], s1.C[2])},
		{Pos: geom.NewVector(s2.C[0], s1.C[1], s2.C[2])},
		{Pos: geom.NewVector(s2.C[0], s2.C[1], s1.C[2])},
		{Pos: geom.NewVector(s2.C[0], s2.C[1], s2.C[2])},
	}

	e := [12]geom.Edge{
		{A: p[0], B: p[1]}, {A: p[2], B: p[3]}, {A: p[4], B: p[5]}, {A: p[6], B: p[7]},
		{A: p[0], B: p[2]}, {A: p[1], B: p[3]}, {A: p[4], B: p[6]}, {A: p[5], B: p[7]},
		{A: p[0], B: p[4]}, {A: p[1], B: p[5]}, {A: p[2], B: p[6]}, {A: p[3], B: p[7]},
	}

	faceEdges := [6][4]geom.Edge{
		{e[0], e[1], e[4], e[5]},
		{e[2], e[3], e[6], e[7]},
		{e[0], e[2], e[8], e[9]},
		{e[1], e[3], e[10], e[11]},
		{e[4], e[6], e[8], e[10]},
		{e[5], e[7], e[9], e[11]},
	}

	var center geom.Point
	faces := make([]Face, len(faceEdges))
	for i, fe := range faceEdges {
		f, err := FaceFromEdges(fe[:])
		if err != nil {
			panic(fmt.Sprintf("solid: box face %d failed to assemble: %v", i, err))
		}
		faces[i] = orientOutward(f, center)
	}
	return Solid{Faces: faces}
}

// orientOutward flips f's loops (and its plane normal) if the normal
// points toward center instead of away from it.
func orientOutward(f Face, center geom.Point) Face {
	if f.Plane.Normal.V.Dot(f.Plane.Point.Sub(center)) < 0 {
		f.Plane.Normal = f.Plane.Normal.Neg()
		for _, l := range f.Loops {
			reverseLoop(l)
		}
	}
	return f
}
