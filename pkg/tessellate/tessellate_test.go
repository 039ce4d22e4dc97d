package tessellate_test

import (
	"testing"

	"github.com/chazu/solidkernel/pkg/scene"
	"github.com/chazu/solidkernel/pkg/solid"
	"github.com/chazu/solidkernel/pkg/tessellate"
)

func TestTessellateNilScene(t *testing.T) {
	meshes, err := tessellate.Tessellate(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meshes != nil {
		t.Errorf("expected nil meshes for nil scene, got %v", meshes)
	}
}

func TestTessellateEmptyScene(t *testing.T) {
	sc := scene.New()
	meshes, err := tessellate.Tessellate(sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meshes) != 0 {
		t.Errorf("expected 0 meshes, got %d", len(meshes))
	}
}

func TestTessellateOneBox(t *testing.T) {
	sc := scene.New()
	sc.Display("cube", solid.Box(10, 10, 10))

	meshes, err := tessellate.Tessellate(sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(meshes))
	}
	m := meshes[0]
	if m.Name != "cube" {
		t.Errorf("Name = %q, want %q", m.Name, "cube")
	}
	if m.IsEmpty() {
		t.Error("expected a non-empty mesh for a box")
	}
	// A box has 6 faces; each face triangulates to at least 2 triangles.
	if m.TriangleCount() < 12 {
		t.Errorf("TriangleCount() = %d, want at least 12", m.TriangleCount())
	}
}

func TestTessellateMultipleSnapshotsPreservesOrder(t *testing.T) {
	sc := scene.New()
	sc.Display("first", solid.Box(1, 1, 1))
	sc.Display("second", solid.Box(2, 2, 2))

	meshes, err := tessellate.Tessellate(sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meshes) != 2 {
		t.Fatalf("expected 2 meshes, got %d", len(meshes))
	}
	if meshes[0].Name != "first" || meshes[1].Name != "second" {
		t.Errorf("unexpected mesh order: %q, %q", meshes[0].Name, meshes[1].Name)
	}
}
