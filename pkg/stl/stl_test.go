package stl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chazu/solidkernel/pkg/geom"
	"github.com/chazu/solidkernel/pkg/solid"
)

func TestWriteSingleTriangle(t *testing.T) {
	tri := solid.Triangle{
		A: geom.NewPoint(0, 0, 0),
		B: geom.NewPoint(1, 0, 0),
		C: geom.NewPoint(0, 1, 0),
	}

	var sb strings.Builder
	err := Write(&sb, []solid.Triangle{tri}, "cube")
	require.NoError(t, err)

	out := sb.String()
	require.True(t, strings.HasPrefix(out, "solid cube\n"))
	require.True(t, strings.HasSuffix(out, "endsolid cube\n"))
	require.Contains(t, out, "facet normal 0 0 1")
	require.Contains(t, out, "outer loop")
	require.Contains(t, out, "vertex 0 0 0")
	require.Contains(t, out, "vertex 1 0 0")
	require.Contains(t, out, "vertex 0 1 0")
	require.Equal(t, 1, strings.Count(out, "endfacet"))
}

func TestWriteEmptyTriangleList(t *testing.T) {
	var sb strings.Builder
	err := Write(&sb, nil, "empty")
	require.NoError(t, err)
	require.Equal(t, "solid empty\nendsolid empty\n", sb.String())
}

func TestWriteMultipleTrianglesEachGetsAFacet(t *testing.T) {
	tris := []solid.Triangle{
		{A: geom.NewPoint(0, 0, 0), B: geom.NewPoint(1, 0, 0), C: geom.NewPoint(0, 1, 0)},
		{A: geom.NewPoint(0, 0, 1), B: geom.NewPoint(1, 0, 1), C: geom.NewPoint(0, 1, 1)},
	}
	var sb strings.Builder
	require.NoError(t, Write(&sb, tris, "two"))
	require.Equal(t, 2, strings.Count(sb.String(), "facet normal"))
	require.Equal(t, 2, strings.Count(sb.String(), "endfacet"))
}
