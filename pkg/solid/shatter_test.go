package solid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chazu/solidkernel/pkg/geom"
)

func squareFace(t *testing.T) Face {
	t.Helper()
	f, err := FaceFromEdges(squareFaceEdges())
	require.NoError(t, err)
	return f
}

func squareFaceEdges() []geom.Edge {
	p00 := geom.NewPoint(0, 0, 0)
	p40 := geom.NewPoint(4, 0, 0)
	p44 := geom.NewPoint(4, 4, 0)
	p04 := geom.NewPoint(0, 4, 0)
	return []geom.Edge{
		{A: p00, B: p40},
		{A: p40, B: p44},
		{A: p44, B: p04},
		{A: p04, B: p00},
	}
}

func TestShatterSplitsCrossedEdge(t *testing.T) {
	f := squareFace(t)
	splitter := []geom.Edge{
		{A: geom.NewPoint(2, -1, 0), B: geom.NewPoint(2, 1, 0)},
	}

	fragments := Shatter(f, splitter)

	split := geom.NewPoint(2, 0, 0)
	var touches int
	for _, e := range fragments {
		if e.A.Equal(split) || e.B.Equal(split) {
			touches++
		}
	}
	require.Equal(t, 2, touches, "expected exactly two fragments to meet at the split point")
	require.Len(t, fragments, 5, "one of the 4 base edges should have split into 2")
}

func TestShatterIgnoresParallelSplitter(t *testing.T) {
	f := squareFace(t)
	// Runs below the square, parallel to its bottom/top edges; the
	// parallel pair is skipped outright and the perpendicular pairs miss
	// because their crossing parameter falls outside [0,1].
	splitter := []geom.Edge{
		{A: geom.NewPoint(0, -1, 0), B: geom.NewPoint(4, -1, 0)},
	}

	fragments := Shatter(f, splitter)
	require.Len(t, fragments, 4, "a non-intersecting splitter should not split any edge")
}

func TestShatterNoSplittersReturnsOriginalEdges(t *testing.T) {
	f := squareFace(t)
	fragments := Shatter(f, nil)
	require.Len(t, fragments, 4)
}
