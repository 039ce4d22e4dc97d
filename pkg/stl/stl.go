// Package stl writes triangle meshes in ASCII STL format, the only
// persisted format the kernel supports.
package stl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/chazu/solidkernel/pkg/geom"
	"github.com/chazu/solidkernel/pkg/solid"
)

// Write emits tris to w as an ASCII STL solid named name. The facet
// normal is unit((v1-v0) x (v2-v0)); triangles are written in the
// winding order given, which callers must have already made CCW viewed
// from +normal.
func Write(w io.Writer, tris []solid.Triangle, name string) error {
	if _, err := fmt.Fprintf(w, "solid %s\n", name); err != nil {
		return err
	}
	for _, tri := range tris {
		normal := geom.NewUnit(tri.B.Sub(tri.A).Cross(tri.C.Sub(tri.A)))
		if _, err := fmt.Fprintf(w, "facet normal %s %s %s\n",
			formatFloat(normal.V.C[0]), formatFloat(normal.V.C[1]), formatFloat(normal.V.C[2])); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, "  outer loop\n"); err != nil {
			return err
		}
		for _, v := range [3]geom.Point{tri.A, tri.B, tri.C} {
			if _, err := fmt.Fprintf(w, "    vertex %s %s %s\n",
				formatFloat(v.Pos.C[0]), formatFloat(v.Pos.C[1]), formatFloat(v.Pos.C[2])); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "  endloop\nendfacet\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "endsolid %s\n", name)
	return err
}

// formatFloat matches the host's default floating-point formatting: the
// shortest decimal representation that round-trips exactly.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
