package solid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chazu/solidkernel/pkg/geom"
)

func TestOpString(t *testing.T) {
	require.Equal(t, "union", Union.String())
	require.Equal(t, "intersection", Intersection.String())
	require.Equal(t, "difference", Difference.String())
	require.Equal(t, "invalid", Op(99).String())
}

func TestFaceBooleanPanicsOnUnequalPlanes(t *testing.T) {
	a := squareFace(t)
	b := a.Transformed(geom.Translation(geom.NewVector(0, 0, 1)))

	require.Panics(t, func() {
		FaceBoolean(a, b, Union)
	})
}

func TestFaceBooleanUnionOfOverlappingSquares(t *testing.T) {
	a := squareFace(t) // (0,0)-(4,4)
	bEdges := []geom.Edge{
		{A: geom.NewPoint(2, 0, 0), B: geom.NewPoint(6, 0, 0)},
		{A: geom.NewPoint(6, 0, 0), B: geom.NewPoint(6, 4, 0)},
		{A: geom.NewPoint(6, 4, 0), B: geom.NewPoint(2, 4, 0)},
		{A: geom.NewPoint(2, 4, 0), B: geom.NewPoint(2, 0, 0)},
	}
	b, err := FaceFromEdges(bEdges)
	require.NoError(t, err)

	union := FaceBoolean(a, b, Union)
	require.Equal(t, Yes, union.Contains(geom.NewPoint(1, 1, 0)))
	require.Equal(t, Yes, union.Contains(geom.NewPoint(5, 1, 0)))
	require.Equal(t, No, union.Contains(geom.NewPoint(10, 10, 0)))

	intersection := FaceBoolean(a, b, Intersection)
	require.Equal(t, Yes, intersection.Contains(geom.NewPoint(3, 1, 0)))
	require.Equal(t, No, intersection.Contains(geom.NewPoint(1, 1, 0)))

	difference := FaceBoolean(a, b, Difference)
	require.Equal(t, Yes, difference.Contains(geom.NewPoint(1, 1, 0)))
	require.Equal(t, No, difference.Contains(geom.NewPoint(3, 1, 0)))
}

func TestBooleanUnionOfDisjointBoxes(t *testing.T) {
	a := Box(2, 2, 2)
	b := Box(2, 2, 2).Transformed(geom.Translation(geom.NewVector(10, 0, 0)))

	u := Boolean(a, b, Union)
	require.NotEmpty(t, u.Faces)
	require.Len(t, u.Faces, len(a.Faces)+len(b.Faces))
}

func TestBooleanIntersectionOfDisjointBoxesIsEmpty(t *testing.T) {
	a := Box(2, 2, 2)
	b := Box(2, 2, 2).Transformed(geom.Translation(geom.NewVector(10, 0, 0)))

	i := Boolean(a, b, Intersection)
	require.Empty(t, i.Faces)
}

func TestBooleanDifferenceOfOverlappingBoxes(t *testing.T) {
	a := Box(4, 4, 4)
	b := Box(4, 4, 4).Transformed(geom.Translation(geom.NewVector(2, 0, 0)))

	d := Boolean(a, b, Difference)
	require.NotEmpty(t, d.Faces)
}
