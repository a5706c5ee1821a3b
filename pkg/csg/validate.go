package csg

import "fmt"

// DegenerateGeometryError reports a node that cannot produce valid solid
// geometry: a hull or polygon below its minimum arity, or a primitive with
// a non-positive dimension.
type DegenerateGeometryError struct {
	Op     string // node kind, e.g. "hull", "polygon", "box"
	Got    int    // member/point count for arity failures
	Want   int    // minimum required count
	Detail string // extra context for dimension failures
}

func (e *DegenerateGeometryError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("degenerate %s: %s", e.Op, e.Detail)
	}
	return fmt.Sprintf("degenerate %s: %d inputs, need at least %d", e.Op, e.Got, e.Want)
}

// Validate walks a shape tree and collects every degenerate node. A nil
// result means the tree is geometrically viable. Constructors catch most of
// these at build time; Validate re-checks trees assembled from literals.
func Validate(s Shape) []*DegenerateGeometryError {
	var errs []*DegenerateGeometryError
	walk(s, &errs)
	return errs
}

func walk(s Shape, errs *[]*DegenerateGeometryError) {
	switch n := s.(type) {
	case Box:
		if n.Size.X <= 0 || n.Size.Y <= 0 || n.Size.Z <= 0 {
			*errs = append(*errs, &DegenerateGeometryError{
				Op:     "box",
				Detail: fmt.Sprintf("non-positive dimensions %+v", n.Size),
			})
		}
	case Cylinder:
		if n.Height <= 0 || n.Radius <= 0 {
			*errs = append(*errs, &DegenerateGeometryError{
				Op:     "cylinder",
				Detail: fmt.Sprintf("height %.3f, radius %.3f", n.Height, n.Radius),
			})
		}
	case Extrude:
		if len(n.Profile.Points) < 3 {
			*errs = append(*errs, &DegenerateGeometryError{
				Op:   "polygon",
				Got:  len(n.Profile.Points),
				Want: 3,
			})
		}
		if n.Height <= 0 {
			*errs = append(*errs, &DegenerateGeometryError{
				Op:     "extrude",
				Detail: fmt.Sprintf("non-positive height %.3f", n.Height),
			})
		}
	case Union:
		walkAll(n.Shapes, errs)
	case Difference:
		walkAll(n.Shapes, errs)
	case Intersection:
		walkAll(n.Shapes, errs)
	case Hull:
		if len(n.Shapes) < 2 {
			*errs = append(*errs, &DegenerateGeometryError{
				Op:   "hull",
				Got:  len(n.Shapes),
				Want: 2,
			})
		}
		walkAll(n.Shapes, errs)
	case Translate:
		walk(n.Shape, errs)
	case Rotate:
		walk(n.Shape, errs)
	case Color:
		walk(n.Shape, errs)
	}
}

func walkAll(shapes []Shape, errs *[]*DegenerateGeometryError) {
	for _, m := range shapes {
		walk(m, errs)
	}
}
