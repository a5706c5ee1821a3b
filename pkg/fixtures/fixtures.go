// Package fixtures places the auxiliary hardware features of the keyboard
// case: the MCU bay, back plate, LED strip, signal connector, foot plates,
// and USB bay. Each fixture is an independent, pure function of the
// configuration and the coordinate frame, producing immutable CSG trees of
// positive (material) and negative (clearance) volumes.
//
// Placement relies on ordered transform composition. Transform steps are
// not commutative; each fixture documents its fixed step order and small
// sign or order errors silently produce unprintable parts, so the orders
// here are deliberate.
package fixtures

import (
	"github.com/jeremy-asher/dactyl-keyboard/pkg/csg"
)

// postSize is the edge length of the marker cubes hulled together to form
// structural webs between anchor points.
const postSize = 1.0

// post returns a marker cube at an absolute position, for use as a hull
// anchor.
func post(at csg.Vec3) csg.Shape {
	return csg.Translate{Offset: at, Shape: csg.NewBox(postSize, postSize, postSize)}
}
