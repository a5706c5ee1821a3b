// Package csg defines the constructive-solid-geometry shape tree.
// A shape is an immutable tree of primitives, boolean operators, and
// affine operators, built bottom-up during a generation pass and never
// mutated afterwards. Trees can be introspected, compared, and validated
// without invoking a geometry kernel.
package csg
