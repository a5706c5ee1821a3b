package csg

// Shape is the sealed interface implemented by every node of the CSG tree.
// The marker method restricts implementations to this package so that the
// set of node kinds is closed and exhaustively switchable.
type Shape interface {
	shape()
}

// ---------------------------------------------------------------------------
// Primitives
// ---------------------------------------------------------------------------

// Box is a rectangular solid centered at the origin.
type Box struct {
	Size Vec3 `json:"size"`
}

func (Box) shape() {}

// Cylinder is a solid cylinder along the Z axis, centered at the origin.
type Cylinder struct {
	Height float64 `json:"height"`
	Radius float64 `json:"radius"`
}

func (Cylinder) shape() {}

// Polygon is a closed 2D profile used by Extrude. It is deliberately not a
// Shape: 2D profiles never appear bare in a 3D tree.
type Polygon struct {
	Points []Vec2 `json:"points"`
}

// Extrude is a linear extrusion of a polygon profile. The extrusion is not
// centered: it spans z = 0 to z = Height.
type Extrude struct {
	Profile Polygon `json:"profile"`
	Height  float64 `json:"height"`
}

func (Extrude) shape() {}

// ---------------------------------------------------------------------------
// Boolean operators
// ---------------------------------------------------------------------------

// Union is the boolean union of its member shapes.
type Union struct {
	Shapes []Shape `json:"shapes"`
}

func (Union) shape() {}

// Difference subtracts all later members from the first.
type Difference struct {
	Shapes []Shape `json:"shapes"`
}

func (Difference) shape() {}

// Intersection is the boolean intersection of its member shapes.
type Intersection struct {
	Shapes []Shape `json:"shapes"`
}

func (Intersection) shape() {}

// Hull is the convex hull of its member shapes. A hull with fewer than two
// members is degenerate; use NewHull to construct one with that checked.
type Hull struct {
	Shapes []Shape `json:"shapes"`
}

func (Hull) shape() {}

// ---------------------------------------------------------------------------
// Affine operators
// ---------------------------------------------------------------------------

// Translate moves its child by Offset.
type Translate struct {
	Offset Vec3  `json:"offset"`
	Shape  Shape `json:"shape"`
}

func (Translate) shape() {}

// Rotate rotates its child by Euler angles in radians, applied X then Y
// then Z. Transform builders emit one axis per node so step order stays
// explicit.
type Rotate struct {
	Angles Vec3  `json:"angles"`
	Shape  Shape `json:"shape"`
}

func (Rotate) shape() {}

// ---------------------------------------------------------------------------
// Color
// ---------------------------------------------------------------------------

// Color tags its child with a display color. Cosmetic only; carries no
// geometric meaning.
type Color struct {
	Name  string `json:"name"`
	Shape Shape  `json:"shape"`
}

func (Color) shape() {}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewBox returns a centered box with the given dimensions.
func NewBox(x, y, z float64) Box {
	return Box{Size: Vec3{x, y, z}}
}

// NewCylinder returns a centered Z-axis cylinder.
func NewCylinder(height, radius float64) Cylinder {
	return Cylinder{Height: height, Radius: radius}
}

// NewPolygon returns a polygon profile. A profile needs at least three
// points to bound any area.
func NewPolygon(points []Vec2) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, &DegenerateGeometryError{
			Op:   "polygon",
			Got:  len(points),
			Want: 3,
		}
	}
	return Polygon{Points: points}, nil
}

// NewHull returns the convex hull of the given shapes. A hull of fewer than
// two shapes is degenerate and rejected.
func NewHull(shapes ...Shape) (Hull, error) {
	if len(shapes) < 2 {
		return Hull{}, &DegenerateGeometryError{
			Op:   "hull",
			Got:  len(shapes),
			Want: 2,
		}
	}
	return Hull{Shapes: shapes}, nil
}

// UnionOf returns the union of the given shapes.
func UnionOf(shapes ...Shape) Union {
	return Union{Shapes: shapes}
}

// IntersectionOf returns the intersection of the given shapes.
func IntersectionOf(shapes ...Shape) Intersection {
	return Intersection{Shapes: shapes}
}

// DifferenceOf subtracts the remaining shapes from the first.
func DifferenceOf(shapes ...Shape) Difference {
	return Difference{Shapes: shapes}
}

// Colored tags a shape with a display color.
func Colored(name string, s Shape) Color {
	return Color{Name: name, Shape: s}
}

// bottomHullPlate is the thickness of the ground-plane projection plate used
// by BottomHull.
const bottomHullPlate = 0.1

// BottomHull extends a shape down to the ground plane: the hull of the shape
// and its footprint resting on z = 0. The result always touches the floor
// regardless of the shape's elevation.
func BottomHull(s Shape) Shape {
	b := BoundingBox(s)
	sz := b.Size()
	plate := Translate{
		Offset: Vec3{
			X: (b.Min.X + b.Max.X) / 2,
			Y: (b.Min.Y + b.Max.Y) / 2,
			Z: bottomHullPlate / 2,
		},
		Shape: Box{Size: Vec3{sz.X, sz.Y, bottomHullPlate}},
	}
	return Hull{Shapes: []Shape{s, plate}}
}
