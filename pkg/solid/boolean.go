package solid

import "github.com/chazu/solidkernel/pkg/geom"

// Op identifies a boolean combination.
type Op int

const (
	Union Op = iota
	Intersection
	Difference
)

func (op Op) String() string {
	switch op {
	case Union:
		return "union"
	case Intersection:
		return "intersection"
	case Difference:
		return "difference"
	default:
		return "invalid"
	}
}

// FaceBoolean computes the 2D boolean of two faces sharing a plane. a
// and b must have equal planes; a mismatch is a precondition violation
// and panics.
//
// The MAYBE resolution is deliberately asymmetric: fragments of a use
// "hope" (boundary counts as inside), fragments of b use "despair"
// (boundary counts as outside). Together they keep boundary-coincident
// fragments from being duplicated or lost (spec §4.6).
func FaceBoolean(a, b Face, op Op) Face {
	if !a.Plane.Equal(b.Plane) {
		panic("solid: FaceBoolean requires two faces on the same plane")
	}

	aFrag := Shatter(a, b.Edges())
	bFrag := Shatter(b, a.Edges())

	var kept []geom.Edge
	for _, e := range aFrag {
		c := b.Contains(midpoint(e))
		var keep bool
		switch op {
		case Intersection:
			keep = c.Hope()
		case Union, Difference:
			keep = !c.Hope()
		}
		if keep {
			kept = append(kept, e)
		}
	}
	for _, e := range bFrag {
		c := a.Contains(midpoint(e))
		var keep bool
		switch op {
		case Union:
			keep = !c.Despair()
		case Intersection, Difference:
			keep = c.Despair()
		}
		if keep {
			kept = append(kept, e)
		}
	}

	face, err := FaceFromEdges(kept)
	if err != nil {
		return Face{Plane: a.Plane}
	}
	if face.Plane.Normal.V.Dot(a.Plane.Normal.V) < 0 {
		for _, l := range face.Loops {
			reverseLoop(l)
		}
	}
	face.Plane = a.Plane
	return face
}

func midpoint(e geom.Edge) geom.Point {
	return geom.Point{Pos: e.A.Pos.Add(e.B.Pos).Scale(0.5)}
}

// cut classifies every face of target against tool's stamp on that
// face's plane, returning the faces lying inside tool and the faces
// lying outside it. Faces whose boolean result is empty are dropped.
func cut(target, tool Solid) (inside, outside []Face) {
	for _, f := range target.Faces {
		stamp := Slice(tool, f.Plane)
		out := FaceBoolean(f, stamp, Difference)
		in := FaceBoolean(f, stamp, Intersection)
		if len(out.Loops) > 0 {
			outside = append(outside, out)
		}
		if len(in.Loops) > 0 {
			inside = append(inside, in)
		}
	}
	return inside, outside
}

// Boolean computes the 3D CSG combination of a and b via per-face
// slicing and classification against the opposing solid (spec §4.8).
// The resulting face list is concatenated with no stitching or
// shared-vertex deduplication: each face already carries its own
// oriented loops.
func Boolean(a, b Solid, op Op) Solid {
	aIn, aOut := cut(a, b)
	bIn, bOut := cut(b, a)

	var faces []Face
	switch op {
	case Union:
		faces = append(faces, aOut...)
		faces = append(faces, bOut...)
	case Intersection:
		faces = append(faces, aIn...)
		faces = append(faces, bIn...)
	case Difference:
		faces = append(faces, aOut...)
		faces = append(faces, bIn...)
	}
	return Solid{Faces: faces}
}
