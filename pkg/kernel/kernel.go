// Package kernel defines the triangulated render-mesh representation
// that bridges the solid-modeling core (pkg/solid) to the external
// viewer. Building and operating on Solids is the core's job; this
// package only flattens a triangle list into the GPU-friendly layout a
// viewer expects.
package kernel

import "github.com/chazu/solidkernel/pkg/solid"

// MeshFromTriangles converts a flat triangle list into a Mesh with flat
// per-vertex normals (one normal per triangle, duplicated across its
// three vertices — no vertex sharing, matching the kernel's no-stitching
// boolean output).
func MeshFromTriangles(tris []solid.Triangle) *Mesh {
	m := &Mesh{
		Vertices: make([]float32, 0, len(tris)*9),
		Normals:  make([]float32, 0, len(tris)*9),
		Indices:  make([]uint32, 0, len(tris)*3),
	}
	for i, tri := range tris {
		n := tri.B.Sub(tri.A).Cross(tri.C.Sub(tri.A))
		if l := n.Len(); l > 0 {
			n = n.Scale(1 / l)
		}
		nx, ny, nz := float32(n.C[0]), float32(n.C[1]), float32(n.C[2])
		for j, v := range [3]struct{ X, Y, Z float64 }{
			{tri.A.Pos.C[0], tri.A.Pos.C[1], tri.A.Pos.C[2]},
			{tri.B.Pos.C[0], tri.B.Pos.C[1], tri.B.Pos.C[2]},
			{tri.C.Pos.C[0], tri.C.Pos.C[1], tri.C.Pos.C[2]},
		} {
			m.Vertices = append(m.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			m.Normals = append(m.Normals, nx, ny, nz)
			m.Indices = append(m.Indices, uint32(i*3+j))
		}
	}
	return m
}
