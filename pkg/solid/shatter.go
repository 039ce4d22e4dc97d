package solid

import "github.com/chazu/solidkernel/pkg/geom"

// Shatter fragments target's edges so that no remaining fragment crosses
// the interior of any splitter edge in k. Parallel or colinear
// fragment/splitter pairs are skipped and left to containment tests
// downstream — a known, deliberate robustness limitation (spec §4.7,
// §7 "Unsupported case").
func Shatter(target Face, k []geom.Edge) []geom.Edge {
	fragments := target.Edges()
	n := target.Plane.Normal.V

	i := 0
	for i < len(fragments) {
		for _, kEdge := range k {
			fEdge := fragments[i]
			fDir := fEdge.B.Sub(fEdge.A)
			kDir := kEdge.B.Sub(kEdge.A)

			cr := fDir.Cross(kDir)
			if cr.Dot(cr) < geom.Epsilon {
				continue // parallel/colinear
			}

			denom := cr.Dot(n)
			if denom == 0 {
				continue
			}
			t := kEdge.A.Sub(fEdge.A).Cross(kDir).Dot(n) / denom
			if t <= geom.Epsilon || t >= 1-geom.Epsilon {
				continue
			}

			pt := geom.Point{Pos: fEdge.A.Pos.Add(fDir.Scale(t))}
			u := pt.Sub(kEdge.A).Dot(kDir) / kDir.Dot(kDir)
			if u < -geom.Epsilon || u > 1+geom.Epsilon {
				continue
			}

			fragments[i] = geom.Edge{A: fEdge.A, B: pt}
			fragments = append(fragments, geom.Edge{A: pt, B: fEdge.B})
		}
		i++
	}
	return fragments
}
