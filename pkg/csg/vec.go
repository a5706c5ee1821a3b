package csg

import "math"

// Vec2 is a 2D vector or point in millimetres.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec3 is a 3D vector or point in millimetres.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v scaled by f.
func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// XY projects v onto the ground plane.
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Scale returns v scaled by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// rotX rotates v about the X axis by angle radians.
func rotX(v Vec3, angle float64) Vec3 {
	s, c := math.Sin(angle), math.Cos(angle)
	return Vec3{v.X, c*v.Y - s*v.Z, s*v.Y + c*v.Z}
}

// rotY rotates v about the Y axis by angle radians.
func rotY(v Vec3, angle float64) Vec3 {
	s, c := math.Sin(angle), math.Cos(angle)
	return Vec3{c*v.X + s*v.Z, v.Y, -s*v.X + c*v.Z}
}

// rotZ rotates v about the Z axis by angle radians.
func rotZ(v Vec3, angle float64) Vec3 {
	s, c := math.Sin(angle), math.Cos(angle)
	return Vec3{c*v.X - s*v.Y, s*v.X + c*v.Y, v.Z}
}
