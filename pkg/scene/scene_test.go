package scene

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chazu/solidkernel/pkg/solid"
)

func TestNewSceneIsEmpty(t *testing.T) {
	s := New()
	require.Empty(t, s.Snapshots)
	require.Empty(t, s.Written)
}

func TestDisplayAppendsSnapshotAndReturnsUniqueID(t *testing.T) {
	s := New()
	box := solid.Box(1, 1, 1)

	id1 := s.Display("a", box)
	id2 := s.Display("b", box)

	require.Len(t, s.Snapshots, 2)
	require.NotEqual(t, id1, id2)
	require.Equal(t, "a", s.Snapshots[0].Name)
	require.Equal(t, "b", s.Snapshots[1].Name)
	require.Equal(t, id1, s.Snapshots[0].ID)
}

func TestRecordWriteAppendsWrittenFile(t *testing.T) {
	s := New()
	s.RecordWrite("out.stl", 12)
	s.RecordWrite("other.stl", 6)

	require.Len(t, s.Written, 2)
	require.Equal(t, WrittenFile{Path: "out.stl", FacetCount: 12}, s.Written[0])
	require.Equal(t, WrittenFile{Path: "other.stl", FacetCount: 6}, s.Written[1])
}
