// Package solid implements the boundary-representation topology on top
// of pkg/geom: faces assembled from edge bags, planar containment,
// slicing, coplanar and 3D booleans, and triangulation.
package solid

import (
	"fmt"
	"math"

	"github.com/chazu/solidkernel/pkg/geom"
)

// Loop is an ordered, closed polyline of points. The closing edge from
// the last point back to the first is implicit.
type Loop []geom.Point

// Face is a plane together with an ordered list of loops, all coplanar
// with the plane within geom.Epsilon. Outer loops wind CCW viewed from
// +Normal; holes wind CW; nesting parity determines which is which.
type Face struct {
	Plane geom.Plane
	Loops []Loop
}

// AssemblyError reports that face assembly could not fit a plane to, or
// confirm the coplanarity of, an edge bag. It carries the input edges
// unchanged, per the "soft failure" contract: callers (Slice,
// FaceBoolean) turn this into an empty face on the nominal plane rather
// than propagating it further.
type AssemblyError struct {
	Edges []geom.Edge
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("solid: cannot fit a coplanar face to %d edges", len(e.Edges))
}

// FaceFromEdges converts an unordered bag of edges, believed to be
// coplanar and to form one or more closed loops, into a normalized
// multi-loop Face. It fails with *AssemblyError (edges unchanged) if no
// plane fits or the edges are not coplanar within geom.Epsilon. An edge
// list that runs out before a chain closes is a fatal topology error and
// panics rather than returning an error.
func FaceFromEdges(edges []geom.Edge) (Face, error) {
	if len(edges) < 2 {
		return Face{}, &AssemblyError{Edges: edges}
	}

	a := edges[0].A.Sub(edges[0].B)
	var b geom.Vector
	found := false
	for i := 1; i < len(edges); i++ {
		b = edges[i].A.Sub(edges[i].B)
		if c := a.Cross(b); c.Dot(c) >= geom.Epsilon {
			found = true
			break
		}
	}
	if !found {
		return Face{}, &AssemblyError{Edges: edges}
	}
	normal := geom.NewUnit(a.Cross(b))

	x := edges[0].A.Pos.Dot(normal.V)
	var maxDev float64
	for _, e := range edges {
		if d := math.Abs(e.A.Pos.Dot(normal.V) - x); d > maxDev {
			maxDev = d
		}
		if d := math.Abs(e.B.Pos.Dot(normal.V) - x); d > maxDev {
			maxDev = d
		}
	}
	if maxDev >= geom.Epsilon {
		return Face{}, &AssemblyError{Edges: edges}
	}

	plane := geom.Plane{Point: edges[0].A, Normal: normal}
	loops := distillLoops(edges)
	normalizeWinding(loops, plane)

	return Face{Plane: plane, Loops: loops}, nil
}

// distillLoops deduplicates edge endpoints into a point table and
// chains edges into closed loops. An edge bag exhausted before a chain
// closes is a fatal topology error.
func distillLoops(edges []geom.Edge) []Loop {
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

	type idxEdge struct{ a, b int }
	remaining := make([]idxEdge, len(edges))
	for i, e := range edges {
		remaining[i] = idxEdge{a: indexOf(e.A), b: indexOf(e.B)}
	}

	var loops []Loop
	for len(remaining) > 0 {
		last := remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
		chain := []int{last.a, last.b}

		for chain[0] != chain[len(chain)-1] {
			tail := chain[len(chain)-1]
			found := -1
			next := 0
			for i, e := range remaining {
				if e.a == tail {
					found, next = i, e.b
					break
				}
				if e.b == tail {
					found, next = i, e.a
					break
				}
			}
			if found < 0 {
				panic("solid: face assembly exhausted edges before a loop closed")
			}
			remaining = append(remaining[:found], remaining[found+1:]...)
			chain = append(chain, next)
		}
		chain = chain[:len(chain)-1] // drop the closing duplicate

		loop := make(Loop, len(chain))
		for i, idx := range chain {
			loop[i] = points[idx]
		}
		loops = append(loops, loop)
	}
	return loops
}

// normalizeWinding reverses each loop whose winding disagrees with its
// nesting parity: even ancestor count wants CCW, odd wants CW.
func normalizeWinding(loops []Loop, plane geom.Plane) {
	for i, l := range loops {
		if len(l) == 0 {
			continue
		}
		ancestors := 0
		for j, other := range loops {
			if i == j {
				continue
			}
			if windingTern([]Loop{other}, plane, l[0]).Hope() {
				ancestors++
			}
		}
		wantCCW := ancestors%2 == 0
		isCCW := loopTurningNumber(l, plane.Normal) > 0
		if wantCCW != isCCW {
			reverseLoop(l)
		}
	}
}

func reverseLoop(l Loop) {
	for i, j := 0, len(l)-1; i < j; i, j = i+1, j-1 {
		l[i], l[j] = l[j], l[i]
	}
}

// loopTurningNumber computes the signed turning number of l about
// plane.Normal: the sum over consecutive point triples of the signed
// angle between successive edge tangents, divided by 2π. Its sign is
// the CCW/CW indicator.
func loopTurningNumber(l Loop, n geom.Unit) float64 {
	m := len(l)
	if m < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < m; i++ {
		p0, p1, p2 := l[i], l[(i+1)%m], l[(i+2)%m]
		t1 := p1.Sub(p0)
		t2 := p2.Sub(p1)
		sum += math.Atan2(n.V.Dot(t1.Cross(t2)), t1.Dot(t2))
	}
	return sum / (2 * math.Pi)
}

// windingTern implements the containment algorithm of spec §4.4 against
// an explicit loop set and plane, so it can serve both Face.Contains and
// the nesting test used during winding normalization.
func windingTern(loops []Loop, plane geom.Plane, p geom.Point) Tern {
	if !plane.Contains(p) {
		return No
	}

	var crossings int
	for _, l := range loops {
		m := len(l)
		if m == 0 {
			continue
		}
		var turn float64
		for i := 0; i < m; i++ {
			a := l[i].Sub(p)
			b := l[(i+1)%m].Sub(p)
			cross := plane.Normal.V.Dot(a.Cross(b))
			dot := a.Dot(b)
			if math.Abs(cross) < geom.Epsilon && dot < geom.Epsilon {
				return Maybe
			}
			turn += math.Atan2(cross, dot)
		}
		turn /= 2 * math.Pi
		nearest := math.Round(turn)
		if math.Abs(turn-nearest) > geom.Epsilon {
			panic(fmt.Sprintf("solid: containment turning residual %g exceeds epsilon", turn-nearest))
		}
		crossings += int(nearest)
	}
	if crossings%2 != 0 {
		return Yes
	}
	return No
}

// Contains classifies p against f: YES (inside), NO (outside), or MAYBE
// (coincident with a boundary edge or vertex).
func (f Face) Contains(p geom.Point) Tern {
	return windingTern(f.Loops, f.Plane, p)
}

// Edges reconstructs f's edge list: each loop's consecutive pairs plus
// its implicit closing edge.
func (f Face) Edges() []geom.Edge {
	var edges []geom.Edge
	for _, l := range f.Loops {
		m := len(l)
		for i := 0; i < m; i++ {
			edges = append(edges, geom.Edge{A: l[i], B: l[(i+1)%m]})
		}
	}
	return edges
}

// Transformed returns f with t applied to its plane and every loop
// point.
func (f Face) Transformed(t geom.Transform) Face {
	out := Face{Plane: t.ApplyPlane(f.Plane), Loops: make([]Loop, len(f.Loops))}
	for i, l := range f.Loops {
		nl := make(Loop, len(l))
		for j, p := range l {
			nl[j] = t.ApplyPoint(p)
		}
		out.Loops[i] = nl
	}
	return out
}
