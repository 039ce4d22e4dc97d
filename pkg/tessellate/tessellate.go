// Package tessellate converts a scene's solids into triangle meshes for
// an external viewer. One mesh is produced per snapshot.
package tessellate

import (
	"fmt"

	"github.com/chazu/solidkernel/pkg/kernel"
	"github.com/chazu/solidkernel/pkg/scene"
	"github.com/chazu/solidkernel/pkg/solid"
)

// Tessellate triangulates every snapshot in sc and flattens the result
// into render meshes, in snapshot order. It is read-only and never
// mutates sc.
func Tessellate(sc *scene.Scene) ([]*kernel.Mesh, error) {
	if sc == nil {
		return nil, nil
	}

	meshes := make([]*kernel.Mesh, 0, len(sc.Snapshots))
	for _, snap := range sc.Snapshots {
		mesh, err := meshFromSnapshot(snap)
		if err != nil {
			return nil, fmt.Errorf("tessellate: snapshot %q: %w", snap.Name, err)
		}
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

func meshFromSnapshot(snap scene.Snapshot) (*kernel.Mesh, error) {
	tris := solid.TriangulateSolid(snap.Solid)
	mesh := kernel.MeshFromTriangles(tris)
	mesh.Name = snap.Name
	return mesh, nil
}
