package solid

// Tern is the ternary outcome of a planar containment test: a point may
// be definitively inside or outside a face, or it may coincide with an
// edge or vertex, in which case neither YES nor NO is well defined.
type Tern int

const (
	// No means the point is definitely outside.
	No Tern = iota
	// Yes means the point is definitely inside.
	Yes
	// Maybe means the point coincides with a boundary edge or vertex.
	Maybe
)

func (t Tern) String() string {
	switch t {
	case Yes:
		return "YES"
	case No:
		return "NO"
	case Maybe:
		return "MAYBE"
	default:
		return "INVALID"
	}
}

// Hope resolves MAYBE optimistically: boundary counts as inside.
func (t Tern) Hope() bool { return t == Yes || t == Maybe }

// Despair resolves MAYBE pessimistically: boundary counts as outside.
func (t Tern) Despair() bool { return t == Yes }
