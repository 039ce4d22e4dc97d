package geom

import "math"

// Transform is an affine map: three column Vectors plus a translation.
// Col[i] is the image of the i-th standard basis vector under the
// linear part of the map.
type Transform struct {
	Col   [3]Vector
	Trans Vector
}

// Identity returns the transform that leaves every value unchanged.
func Identity() Transform {
	return Transform{
		Col: [3]Vector{NewVector(1, 0, 0), NewVector(0, 1, 0), NewVector(0, 0, 1)},
	}
}

// Translation returns the transform that translates by v.
func Translation(v Vector) Transform {
	t := Identity()
	t.Trans = v
	return t
}

// RotateX returns the transform that rotates by angle radians about the
// X axis: columns (1,0,0), (0,cosθ,sinθ), (0,−sinθ,cosθ).
func RotateX(angle float64) Transform {
	s, c := math.Sin(angle), math.Cos(angle)
	return Transform{Col: [3]Vector{
		NewVector(1, 0, 0),
		NewVector(0, c, s),
		NewVector(0, -s, c),
	}}
}

// RotateY returns the transform that rotates by angle radians about the
// Y axis.
func RotateY(angle float64) Transform {
	s, c := math.Sin(angle), math.Cos(angle)
	return Transform{Col: [3]Vector{
		NewVector(c, 0, -s),
		NewVector(0, 1, 0),
		NewVector(s, 0, c),
	}}
}

// RotateZ returns the transform that rotates by angle radians about the
// Z axis.
func RotateZ(angle float64) Transform {
	s, c := math.Sin(angle), math.Cos(angle)
	return Transform{Col: [3]Vector{
		NewVector(c, s, 0),
		NewVector(-s, c, 0),
		NewVector(0, 0, 1),
	}}
}

// ApplyVector maps a free vector; translation does not apply.
func (t Transform) ApplyVector(v Vector) Vector {
	return t.Col[0].Scale(v.C[0]).Add(t.Col[1].Scale(v.C[1])).Add(t.Col[2].Scale(v.C[2]))
}

// ApplyPoint maps a position: linear part plus translation.
func (t Transform) ApplyPoint(p Point) Point {
	return Point{Pos: t.ApplyVector(p.Pos).Add(t.Trans)}
}

// ApplyUnit maps a direction, renormalizing the result.
func (t Transform) ApplyUnit(u Unit) Unit {
	return NewUnit(t.ApplyVector(u.V))
}

// ApplyEdge maps both endpoints of e.
func (t Transform) ApplyEdge(e Edge) Edge {
	return Edge{A: t.ApplyPoint(e.A), B: t.ApplyPoint(e.B)}
}

// ApplyPlane rewrites pl's point and normal.
func (t Transform) ApplyPlane(pl Plane) Plane {
	return Plane{Point: t.ApplyPoint(pl.Point), Normal: t.ApplyUnit(pl.Normal)}
}

// Compose returns the transform equivalent to applying t first, then o.
func (t Transform) Compose(o Transform) Transform {
	return Transform{
		Col:   [3]Vector{o.ApplyVector(t.Col[0]), o.ApplyVector(t.Col[1]), o.ApplyVector(t.Col[2])},
		Trans: o.ApplyVector(t.Trans).Add(o.Trans),
	}
}
