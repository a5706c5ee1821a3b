// Package frame defines the coordinate-engine boundary. The key-matrix
// engine resolves cluster coordinates and wall/corner addresses into
// absolute positions; fixtures consume it only through the Frame interface,
// so the curved production engine and the planar reference implementation
// are interchangeable.
package frame

import (
	"github.com/jeremy-asher/dactyl-keyboard/pkg/compass"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/csg"
)

// Coord addresses one key within a cluster's matrix.
type Coord struct {
	Column int
	Row    int
}

// Frame resolves matrix coordinates and wall addresses to absolute
// positions. All results are in case coordinates, millimetres.
type Frame interface {
	// KeyPosition returns the center of a key's mounting plate.
	KeyPosition(cluster string, c Coord) (csg.Vec3, error)

	// WallPosition returns the wall-surface center adjacent to a key on
	// the given side.
	WallPosition(cluster string, c Coord, side compass.Direction) (csg.Vec3, error)

	// WallCorner returns the interior wall corner of a key in the given
	// compass direction.
	WallCorner(cluster string, c Coord, corner compass.Direction) (csg.Vec3, error)
}
