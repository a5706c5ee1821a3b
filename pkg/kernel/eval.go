package kernel

import (
	"fmt"

	"github.com/jeremy-asher/dactyl-keyboard/pkg/csg"
)

// Evaluate lowers a shape tree onto a geometry kernel and returns the
// resulting solid. Color nodes are transparent here; color survives only
// through the tessellation layer. Degenerate nodes that slipped past
// construction-time checks fail with a DegenerateGeometryError.
func Evaluate(k Kernel, s csg.Shape) (Solid, error) {
	switch n := s.(type) {
	case csg.Box:
		return k.Box(n.Size.X, n.Size.Y, n.Size.Z), nil

	case csg.Cylinder:
		return k.Cylinder(n.Height, n.Radius), nil

	case csg.Extrude:
		if len(n.Profile.Points) < 3 {
			return nil, &csg.DegenerateGeometryError{
				Op:   "extrude",
				Got:  len(n.Profile.Points),
				Want: 3,
			}
		}
		pts := make([][2]float64, len(n.Profile.Points))
		for i, p := range n.Profile.Points {
			pts[i] = [2]float64{p.X, p.Y}
		}
		return k.Extrude(pts, n.Height)

	case csg.Union:
		return fold(k, "union", n.Shapes, k.Union)

	case csg.Difference:
		return fold(k, "difference", n.Shapes, k.Difference)

	case csg.Intersection:
		return fold(k, "intersection", n.Shapes, k.Intersection)

	case csg.Hull:
		if len(n.Shapes) < 2 {
			return nil, &csg.DegenerateGeometryError{
				Op:   "hull",
				Got:  len(n.Shapes),
				Want: 2,
			}
		}
		return fold(k, "hull", n.Shapes, k.Hull)

	case csg.Translate:
		child, err := Evaluate(k, n.Shape)
		if err != nil {
			return nil, err
		}
		return k.Translate(child, n.Offset.X, n.Offset.Y, n.Offset.Z), nil

	case csg.Rotate:
		child, err := Evaluate(k, n.Shape)
		if err != nil {
			return nil, err
		}
		return k.Rotate(child, n.Angles.X, n.Angles.Y, n.Angles.Z), nil

	case csg.Color:
		return Evaluate(k, n.Shape)

	default:
		return nil, fmt.Errorf("kernel: unknown shape node %T", s)
	}
}

// fold evaluates members left to right and combines them pairwise.
func fold(k Kernel, op string, shapes []csg.Shape, combine func(a, b Solid) Solid) (Solid, error) {
	if len(shapes) == 0 {
		return nil, &csg.DegenerateGeometryError{Op: op, Got: 0, Want: 1}
	}
	acc, err := Evaluate(k, shapes[0])
	if err != nil {
		return nil, err
	}
	for _, s := range shapes[1:] {
		next, err := Evaluate(k, s)
		if err != nil {
			return nil, err
		}
		acc = combine(acc, next)
	}
	return acc, nil
}
