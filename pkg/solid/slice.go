package solid

import (
	"math"
	"sort"

	"github.com/chazu/solidkernel/pkg/geom"
)

// Slice intersects s with plane p and returns the intersection curve as
// a Face on p. This is the known-brittle step described in spec §4.5: it
// assumes each face contributes an even number of pairable crossings,
// which degenerate or grazing faces can violate. When the resulting
// edges don't assemble into a valid face, Slice returns an empty face on
// p rather than failing.
func Slice(s Solid, p geom.Plane) Face {
	x := p.Point.Pos.Dot(p.Normal.V)

	var edges []geom.Edge
	for _, f := range s.Faces {
		d := p.Normal.V.Cross(f.Plane.Normal.V)
		if d.Dot(d) < geom.Epsilon {
			continue // face's plane is parallel to p
		}
		dir := geom.NewUnit(d)

		var pts []geom.Point
		for _, edge := range f.Edges() {
			a := edge.A.Pos.Dot(p.Normal.V)
			b := edge.B.Pos.Dot(p.Normal.V)
			denom := b - a
			if math.Abs(denom) < geom.Epsilon {
				continue
			}
			t := (x - a) / denom
			if t >= -geom.Epsilon && t <= 1+geom.Epsilon {
				pts = append(pts, geom.Point{Pos: edge.A.Pos.Scale(1 - t).Add(edge.B.Pos.Scale(t))})
			}
		}

		sort.Slice(pts, func(i, j int) bool {
			return pts[i].Pos.Dot(dir.V) < pts[j].Pos.Dot(dir.V)
		})

		for i := 0; i+1 < len(pts); i += 2 {
			edges = append(edges, geom.Edge{A: pts[i], B: pts[i+1]})
		}
	}

	face, err := FaceFromEdges(edges)
	if err != nil {
		return Face{Plane: p}
	}
	if face.Plane.Normal.V.Dot(p.Normal.V) < 0 {
		for _, l := range face.Loops {
			reverseLoop(l)
		}
	}
	face.Plane = p
	return face
}
