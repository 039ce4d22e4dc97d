// Package scene records what a single script evaluation displayed and
// wrote: a flat list of snapshots and written files, not a deferred-
// evaluation design graph. The script layer (pkg/engine) is a sequence
// of kernel calls, not a DAG of joinery operations, so its visible
// result is correspondingly flat.
package scene

import (
	"github.com/chazu/solidkernel/pkg/solid"
	"github.com/google/uuid"
)

// Snapshot is a one-shot value produced by a script's display() call.
// Per spec §5, the kernel does not observe or coordinate with the
// viewer beyond producing this value; Scene merely accumulates them for
// the CLI to report.
type Snapshot struct {
	ID    uuid.UUID
	Name  string
	Solid solid.Solid
}

// WrittenFile records one write_stl() call.
type WrittenFile struct {
	Path       string
	FacetCount int
}

// Scene accumulates the side effects of one Engine.Evaluate call.
type Scene struct {
	Snapshots []Snapshot
	Written   []WrittenFile
}

// New returns an empty Scene.
func New() *Scene {
	return &Scene{}
}

// Display appends a new named snapshot and returns its ID.
func (s *Scene) Display(name string, sol solid.Solid) uuid.UUID {
	id := uuid.New()
	s.Snapshots = append(s.Snapshots, Snapshot{ID: id, Name: name, Solid: sol})
	return id
}

// RecordWrite appends a record of a completed write_stl() call.
func (s *Scene) RecordWrite(path string, facetCount int) {
	s.Written = append(s.Written, WrittenFile{Path: path, FacetCount: facetCount})
}
