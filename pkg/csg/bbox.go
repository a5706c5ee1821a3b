package csg

import "math"

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min Vec3
	Max Vec3
}

// Size returns the extent of the bounds on each axis.
func (b Bounds) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Contains reports whether other lies entirely within b.
func (b Bounds) Contains(other Bounds) bool {
	return other.Min.X >= b.Min.X && other.Max.X <= b.Max.X &&
		other.Min.Y >= b.Min.Y && other.Max.Y <= b.Max.Y &&
		other.Min.Z >= b.Min.Z && other.Max.Z <= b.Max.Z
}

// union returns the smallest bounds containing both a and b.
func (b Bounds) union(other Bounds) Bounds {
	return Bounds{
		Min: Vec3{
			math.Min(b.Min.X, other.Min.X),
			math.Min(b.Min.Y, other.Min.Y),
			math.Min(b.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			math.Max(b.Max.X, other.Max.X),
			math.Max(b.Max.Y, other.Max.Y),
			math.Max(b.Max.Z, other.Max.Z),
		},
	}
}

// intersect returns the overlap of a and b, clamped to empty at the
// midpoint when they do not overlap on some axis.
func (b Bounds) intersect(other Bounds) Bounds {
	out := Bounds{
		Min: Vec3{
			math.Max(b.Min.X, other.Min.X),
			math.Max(b.Min.Y, other.Min.Y),
			math.Max(b.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			math.Min(b.Max.X, other.Max.X),
			math.Min(b.Max.Y, other.Max.Y),
			math.Min(b.Max.Z, other.Max.Z),
		},
	}
	if out.Min.X > out.Max.X {
		out.Min.X, out.Max.X = (out.Min.X+out.Max.X)/2, (out.Min.X+out.Max.X)/2
	}
	if out.Min.Y > out.Max.Y {
		out.Min.Y, out.Max.Y = (out.Min.Y+out.Max.Y)/2, (out.Min.Y+out.Max.Y)/2
	}
	if out.Min.Z > out.Max.Z {
		out.Min.Z, out.Max.Z = (out.Min.Z+out.Max.Z)/2, (out.Min.Z+out.Max.Z)/2
	}
	return out
}

// BoundingBox computes the axis-aligned bounding box of a shape tree.
// Boolean bounds are conservative: a difference keeps its first member's
// bounds, and a hull's bounds equal the union of its members' bounds, which
// is exact for convex hulls.
func BoundingBox(s Shape) Bounds {
	switch n := s.(type) {
	case Box:
		h := n.Size.Scale(0.5)
		return Bounds{Min: h.Neg(), Max: h}
	case Cylinder:
		return Bounds{
			Min: Vec3{-n.Radius, -n.Radius, -n.Height / 2},
			Max: Vec3{n.Radius, n.Radius, n.Height / 2},
		}
	case Extrude:
		return extrudeBounds(n)
	case Union:
		return memberBounds(n.Shapes)
	case Hull:
		return memberBounds(n.Shapes)
	case Difference:
		if len(n.Shapes) == 0 {
			return Bounds{}
		}
		return BoundingBox(n.Shapes[0])
	case Intersection:
		if len(n.Shapes) == 0 {
			return Bounds{}
		}
		out := BoundingBox(n.Shapes[0])
		for _, m := range n.Shapes[1:] {
			out = out.intersect(BoundingBox(m))
		}
		return out
	case Translate:
		inner := BoundingBox(n.Shape)
		return Bounds{Min: inner.Min.Add(n.Offset), Max: inner.Max.Add(n.Offset)}
	case Rotate:
		return rotateBounds(n)
	case Color:
		return BoundingBox(n.Shape)
	default:
		return Bounds{}
	}
}

func memberBounds(shapes []Shape) Bounds {
	if len(shapes) == 0 {
		return Bounds{}
	}
	out := BoundingBox(shapes[0])
	for _, m := range shapes[1:] {
		out = out.union(BoundingBox(m))
	}
	return out
}

func extrudeBounds(e Extrude) Bounds {
	if len(e.Profile.Points) == 0 {
		return Bounds{}
	}
	p0 := e.Profile.Points[0]
	out := Bounds{
		Min: Vec3{p0.X, p0.Y, 0},
		Max: Vec3{p0.X, p0.Y, e.Height},
	}
	for _, p := range e.Profile.Points[1:] {
		out.Min.X = math.Min(out.Min.X, p.X)
		out.Min.Y = math.Min(out.Min.Y, p.Y)
		out.Max.X = math.Max(out.Max.X, p.X)
		out.Max.Y = math.Max(out.Max.Y, p.Y)
	}
	return out
}

// rotateBounds rotates the eight corners of the child's bounds and takes
// their extent.
func rotateBounds(r Rotate) Bounds {
	inner := BoundingBox(r.Shape)
	corners := [8]Vec3{
		{inner.Min.X, inner.Min.Y, inner.Min.Z},
		{inner.Min.X, inner.Min.Y, inner.Max.Z},
		{inner.Min.X, inner.Max.Y, inner.Min.Z},
		{inner.Min.X, inner.Max.Y, inner.Max.Z},
		{inner.Max.X, inner.Min.Y, inner.Min.Z},
		{inner.Max.X, inner.Min.Y, inner.Max.Z},
		{inner.Max.X, inner.Max.Y, inner.Min.Z},
		{inner.Max.X, inner.Max.Y, inner.Max.Z},
	}
	var out Bounds
	for i, c := range corners {
		c = rotZ(rotY(rotX(c, r.Angles.X), r.Angles.Y), r.Angles.Z)
		if i == 0 {
			out = Bounds{Min: c, Max: c}
			continue
		}
		out.Min.X = math.Min(out.Min.X, c.X)
		out.Min.Y = math.Min(out.Min.Y, c.Y)
		out.Min.Z = math.Min(out.Min.Z, c.Z)
		out.Max.X = math.Max(out.Max.X, c.X)
		out.Max.Y = math.Max(out.Max.Y, c.Y)
		out.Max.Z = math.Max(out.Max.Z, c.Z)
	}
	return out
}
