package csg

// StepKind enumerates the operations a Transform step can perform.
type StepKind int

const (
	StepTranslate StepKind = iota
	StepRotateX
	StepRotateY
	StepRotateZ
)

func (k StepKind) String() string {
	switch k {
	case StepTranslate:
		return "translate"
	case StepRotateX:
		return "rotate-x"
	case StepRotateY:
		return "rotate-y"
	case StepRotateZ:
		return "rotate-z"
	default:
		return "unknown"
	}
}

// Step is a single translate or single-axis rotate operation.
type Step struct {
	Kind   StepKind
	Offset Vec3    // StepTranslate only
	Angle  float64 // rotation steps only, radians
}

// Transform is an explicit ordered composition of translate and rotate
// steps. The first step is applied first (innermost). Composition is
// associative but not commutative: reordering steps changes the result, so
// each placement documents its fixed step order.
//
// Builder methods return a new Transform and never mutate the receiver.
type Transform []Step

// Translate appends a translation step.
func (t Transform) Translate(v Vec3) Transform {
	return t.push(Step{Kind: StepTranslate, Offset: v})
}

// RotateX appends a rotation about the X axis, in radians.
func (t Transform) RotateX(angle float64) Transform {
	return t.push(Step{Kind: StepRotateX, Angle: angle})
}

// RotateY appends a rotation about the Y axis, in radians.
func (t Transform) RotateY(angle float64) Transform {
	return t.push(Step{Kind: StepRotateY, Angle: angle})
}

// RotateZ appends a rotation about the Z axis, in radians.
func (t Transform) RotateZ(angle float64) Transform {
	return t.push(Step{Kind: StepRotateZ, Angle: angle})
}

// push copies the step list so shared prefixes cannot alias.
func (t Transform) push(s Step) Transform {
	out := make(Transform, len(t)+1)
	copy(out, t)
	out[len(t)] = s
	return out
}

// Apply wraps a shape in the transform's steps, first step innermost.
func (t Transform) Apply(s Shape) Shape {
	for _, st := range t {
		switch st.Kind {
		case StepTranslate:
			s = Translate{Offset: st.Offset, Shape: s}
		case StepRotateX:
			s = Rotate{Angles: Vec3{X: st.Angle}, Shape: s}
		case StepRotateY:
			s = Rotate{Angles: Vec3{Y: st.Angle}, Shape: s}
		case StepRotateZ:
			s = Rotate{Angles: Vec3{Z: st.Angle}, Shape: s}
		}
	}
	return s
}

// ApplyVec runs a point through the transform's steps in order.
func (t Transform) ApplyVec(v Vec3) Vec3 {
	for _, st := range t {
		switch st.Kind {
		case StepTranslate:
			v = v.Add(st.Offset)
		case StepRotateX:
			v = rotX(v, st.Angle)
		case StepRotateY:
			v = rotY(v, st.Angle)
		case StepRotateZ:
			v = rotZ(v, st.Angle)
		}
	}
	return v
}

// Inverse returns the algebraic inverse: steps reversed and negated.
// Inverse().Apply composed with Apply is the identity up to floating-point
// error.
func (t Transform) Inverse() Transform {
	out := make(Transform, len(t))
	for i, st := range t {
		j := len(t) - 1 - i
		switch st.Kind {
		case StepTranslate:
			out[j] = Step{Kind: StepTranslate, Offset: st.Offset.Neg()}
		default:
			out[j] = Step{Kind: st.Kind, Angle: -st.Angle}
		}
	}
	return out
}
