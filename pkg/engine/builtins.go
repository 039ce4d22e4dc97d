package engine

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/chazu/solidkernel/pkg/geom"
	"github.com/chazu/solidkernel/pkg/scene"
	"github.com/chazu/solidkernel/pkg/solid"
	"github.com/chazu/solidkernel/pkg/stl"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms script source before handing it to zygomys:
// kebab-case identifiers become underscore identifiers (zygomys reads a
// bare hyphen as subtraction) and ';' line comments become zygomys's '//'
// style. Both rewrites respect string literal boundaries so hyphens and
// semicolons inside quoted strings pass through untouched.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing kernel values through zygomys
// ---------------------------------------------------------------------------

type sexpSolid struct{ s solid.Solid }

func (v *sexpSolid) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(solid %d faces)", len(v.s.Faces))
}
func (v *sexpSolid) Type() *zygo.RegisteredType { return nil }

type sexpFace struct{ f solid.Face }

func (v *sexpFace) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(face %d loops)", len(v.f.Loops))
}
func (v *sexpFace) Type() *zygo.RegisteredType { return nil }

type sexpPlane struct{ p geom.Plane }

func (v *sexpPlane) SexpString(ps *zygo.PrintState) string {
	n := v.p.Normal.V
	return fmt.Sprintf("(plane normal %.3f %.3f %.3f)", n.C[0], n.C[1], n.C[2])
}
func (v *sexpPlane) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

func toSolid(s zygo.Sexp) (solid.Solid, error) {
	if v, ok := s.(*sexpSolid); ok {
		return v.s, nil
	}
	return solid.Solid{}, fmt.Errorf("expected solid, got %T (%s)", s, s.SexpString(nil))
}

func toPlane(s zygo.Sexp) (geom.Plane, error) {
	if v, ok := s.(*sexpPlane); ok {
		return v.p, nil
	}
	return geom.Plane{}, fmt.Errorf("expected plane, got %T (%s)", s, s.SexpString(nil))
}

func wantArgs(name string, args []zygo.Sexp, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s requires exactly %d arguments, got %d", name, n, len(args))
	}
	return nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the script-to-kernel bridge: Box, Plane,
// rotate_x/y/z, translate, union/intersection/difference, slice,
// display, write_stl, and print. Callers must preprocess script source
// with preprocessSource before evaluation.
func registerBuiltins(env *zygo.Zlisp, sc *scene.Scene) {
	env.AddFunction("Box", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs(name, args, 3); err != nil {
			return zygo.SexpNull, err
		}
		l, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("Box: length: %w", err)
		}
		w, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("Box: width: %w", err)
		}
		h, err := toFloat64(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("Box: height: %w", err)
		}
		return &sexpSolid{s: solid.Box(l, w, h)}, nil
	})

	// Plane(x,y,z) builds the plane through (x,y,z) with normal
	// (1,1,1)/sqrt(3).
	env.AddFunction("Plane", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs(name, args, 3); err != nil {
			return zygo.SexpNull, err
		}
		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("Plane: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("Plane: y: %w", err)
		}
		z, err := toFloat64(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("Plane: z: %w", err)
		}
		p := geom.Plane{
			Point:  geom.NewPoint(x, y, z),
			Normal: geom.NewUnit(geom.NewVector(1, 1, 1)),
		}
		return &sexpPlane{p: p}, nil
	})

	registerRotation(env, "rotate_x", geom.RotateX)
	registerRotation(env, "rotate_y", geom.RotateY)
	registerRotation(env, "rotate_z", geom.RotateZ)

	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs(name, args, 4); err != nil {
			return zygo.SexpNull, err
		}
		s, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: %w", err)
		}
		dx, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: dx: %w", err)
		}
		dy, err := toFloat64(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: dy: %w", err)
		}
		dz, err := toFloat64(args[3])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: dz: %w", err)
		}
		t := geom.Translation(geom.NewVector(dx, dy, dz))
		return &sexpSolid{s: s.Transformed(t)}, nil
	})

	registerBoolean(env, "union", solid.Union)
	registerBoolean(env, "intersection", solid.Intersection)
	registerBoolean(env, "difference", solid.Difference)

	env.AddFunction("slice", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs(name, args, 2); err != nil {
			return zygo.SexpNull, err
		}
		s, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("slice: %w", err)
		}
		p, err := toPlane(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("slice: %w", err)
		}
		return &sexpFace{f: solid.Slice(s, p)}, nil
	})

	env.AddFunction("display", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 || len(args) > 2 {
			return zygo.SexpNull, fmt.Errorf("display requires a solid and an optional name")
		}
		s, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("display: %w", err)
		}
		label := fmt.Sprintf("solid_%d", len(sc.Snapshots))
		if len(args) == 2 {
			label, err = toString(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("display: name: %w", err)
			}
		}
		sc.Display(label, s)
		return zygo.SexpNull, nil
	})

	env.AddFunction("write_stl", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs(name, args, 2); err != nil {
			return zygo.SexpNull, err
		}
		s, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("write_stl: %w", err)
		}
		path, err := toString(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("write_stl: filename: %w", err)
		}

		tris := solid.TriangulateSolid(s)
		f, err := os.Create(path)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("write_stl: %w", err)
		}
		defer f.Close()

		base := strings.TrimSuffix(path, ".stl")
		if err := stl.Write(f, tris, base); err != nil {
			return zygo.SexpNull, fmt.Errorf("write_stl: %w", err)
		}
		sc.RecordWrite(path, len(tris))
		return zygo.SexpNull, nil
	})

	env.AddFunction("print", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) == 0 {
			fmt.Println()
			return zygo.SexpNull, nil
		}
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.SexpString(nil)
		}
		fmt.Println(strings.Join(parts, " "))
		return zygo.SexpNull, nil
	})
}

func registerRotation(env *zygo.Zlisp, name string, makeTransform func(float64) geom.Transform) {
	env.AddFunction(name, func(env *zygo.Zlisp, fname string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs(fname, args, 2); err != nil {
			return zygo.SexpNull, err
		}
		s, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
		}
		angle, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: angle: %w", name, err)
		}
		return &sexpSolid{s: s.Transformed(makeTransform(angle * math.Pi / 180))}, nil
	})
}

func registerBoolean(env *zygo.Zlisp, name string, op solid.Op) {
	env.AddFunction(name, func(env *zygo.Zlisp, fname string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs(fname, args, 2); err != nil {
			return zygo.SexpNull, err
		}
		a, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: a: %w", name, err)
		}
		b, err := toSolid(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: b: %w", name, err)
		}
		return &sexpSolid{s: solid.Boolean(a, b, op)}, nil
	})
}
