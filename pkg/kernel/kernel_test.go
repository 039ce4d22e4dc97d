package kernel

import (
	"testing"

	"github.com/chazu/solidkernel/pkg/geom"
	"github.com/chazu/solidkernel/pkg/solid"
)

func TestMeshVertexCount(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		want     int
	}{
		{"empty", nil, 0},
		{"one vertex", []float32{1, 2, 3}, 1},
		{"four vertices", []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Vertices: tt.vertices}
			if got := m.VertexCount(); got != tt.want {
				t.Errorf("VertexCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshTriangleCount(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint32
		want    int
	}{
		{"empty", nil, 0},
		{"one triangle", []uint32{0, 1, 2}, 1},
		{"two triangles", []uint32{0, 1, 2, 2, 3, 0}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Indices: tt.indices}
			if got := m.TriangleCount(); got != tt.want {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshIsEmpty(t *testing.T) {
	t.Run("empty mesh", func(t *testing.T) {
		m := &Mesh{}
		if !m.IsEmpty() {
			t.Error("IsEmpty() = false for empty mesh, want true")
		}
	})
	t.Run("non-empty mesh", func(t *testing.T) {
		m := &Mesh{Vertices: []float32{1, 2, 3}}
		if m.IsEmpty() {
			t.Error("IsEmpty() = true for non-empty mesh, want false")
		}
	})
}

func TestMeshFromTriangles(t *testing.T) {
	tri := solid.Triangle{
		A: geom.NewPoint(0, 0, 0),
		B: geom.NewPoint(1, 0, 0),
		C: geom.NewPoint(0, 1, 0),
	}
	m := MeshFromTriangles([]solid.Triangle{tri})

	if m.VertexCount() != 3 {
		t.Fatalf("VertexCount() = %d, want 3", m.VertexCount())
	}
	if m.TriangleCount() != 1 {
		t.Fatalf("TriangleCount() = %d, want 1", m.TriangleCount())
	}
	for i := 0; i < 3; i++ {
		nx, ny, nz := m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2]
		if nx != 0 || ny != 0 || nz != 1 {
			t.Errorf("vertex %d normal = (%g,%g,%g), want (0,0,1)", i, nx, ny, nz)
		}
	}
}

func TestMeshFromTrianglesEmpty(t *testing.T) {
	m := MeshFromTriangles(nil)
	if !m.IsEmpty() {
		t.Error("MeshFromTriangles(nil) should be empty")
	}
}
