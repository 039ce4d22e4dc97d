package solid

import "github.com/chazu/solidkernel/pkg/geom"

// Triangle is a single output triangle from triangulation.
type Triangle struct {
	A, B, C geom.Point
}

type idxEdge struct{ a, b int }

// Triangulate produces a triangle fan covering the interior of a
// (possibly multi-loop) planar face. It is O(n³) worst case and assumes
// generic position; it is sufficient for the small faces CSG of boxes
// produces (spec §4.9).
func Triangulate(f Face) []Triangle {
	points, base := distillFace(f)
	n := len(points)

	baseSet := make(map[idxEdge]bool, len(base)*2)
	for _, e := range base {
		baseSet[e] = true
		baseSet[idxEdge{e.b, e.a}] = true
	}

	edges := append([]idxEdge(nil), base...)

	for i := 0; i < n; i++ {
	pairs:
		for j := i + 1; j < n; j++ {
			if baseSet[idxEdge{i, j}] {
				continue
			}
			a, b := points[i], points[j]
			for _, e := range edges {
				p1, p2 := points[e.a], points[e.b]
				d0 := p1.Sub(a)
				d1 := b.Sub(p1)
				d2 := p2.Sub(b)
				d3 := a.Sub(p2)
				ref := d0.Cross(d1)
				if d1.Cross(d2).Dot(ref) > 0 && d2.Cross(d3).Dot(ref) > 0 && d3.Cross(d0).Dot(ref) > 0 {
					continue pairs
				}
			}
			mid := geom.Point{Pos: a.Pos.Add(b.Pos).Scale(0.5)}
			if !f.Contains(mid).Despair() {
				continue
			}
			edges = append(edges, idxEdge{i, j})
		}
	}

	return triangleFan(n, points, edges)
}

// triangleFan consumes edges incident to each point in turn, emitting a
// triangle for every pair of that point's neighbors that are themselves
// joined by a remaining edge. Removing a point's incident edges before
// moving to the next point ensures each triangle is emitted exactly
// once.
func triangleFan(n int, points []geom.Point, edges []idxEdge) []Triangle {
	var tris []Triangle
	for i := 0; i < n; i++ {
		var adjacent []int
		var kept []idxEdge
		for _, e := range edges {
			switch {
			case e.a == i:
				adjacent = append(adjacent, e.b)
			case e.b == i:
				adjacent = append(adjacent, e.a)
			default:
				kept = append(kept, e)
			}
		}
		edges = kept
		for _, e := range edges {
			if containsInt(adjacent, e.a) && containsInt(adjacent, e.b) {
				tris = append(tris, Triangle{A: points[i], B: points[e.a], C: points[e.b]})
			}
		}
	}
	return tris
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// distillFace flattens a face's loops into a deduplicated point table
// and the base edge set (one per loop segment).
func distillFace(f Face) ([]geom.Point, []idxEdge) {
	var points []geom.Point
	indexOf := func(p geom.Point) int {
		for i, q := range points {
			if q.Equal(p) {
				return i
			}
		}
		points = append(points, p)
		return len(points) - 1
	}

	var base []idxEdge
	for _, l := range f.Loops {
		m := len(l)
		idx := make([]int, m)
		for i, p := range l {
			idx[i] = indexOf(p)
		}
		for i := 0; i < m; i++ {
			base = append(base, idxEdge{idx[i], idx[(i+1)%m]})
		}
	}
	return points, base
}

// TriangulateSolid triangulates every face of s.
func TriangulateSolid(s Solid) []Triangle {
	var out []Triangle
	for _, f := range s.Faces {
		out = append(out, Triangulate(f)...)
	}
	return out
}
