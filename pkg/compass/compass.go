// Package compass defines the sixteen-point compass rose used to address
// wall surfaces, key corners, and cardinal offsets. Direction is a closed
// enum: every conversion is a total function, so invalid direction tokens
// cannot survive past configuration parsing.
package compass

import (
	"fmt"
	"math"
	"strings"
)

// Direction is one of the sixteen compass points, clockwise from north.
type Direction uint8

const (
	North Direction = iota
	NorthNortheast
	Northeast
	EastNortheast
	East
	EastSoutheast
	Southeast
	SouthSoutheast
	South
	SouthSouthwest
	Southwest
	WestSouthwest
	West
	WestNorthwest
	Northwest
	NorthNorthwest

	count = 16
)

var names = [count]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

func (d Direction) String() string {
	if int(d) < len(names) {
		return names[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Parse converts a compass token such as "N" or "wsw" to a Direction.
func Parse(s string) (Direction, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range names {
		if n == up {
			return Direction(i), nil
		}
	}
	return North, fmt.Errorf("compass: unknown direction %q", s)
}

// Radians returns the direction's angle, measured clockwise from north.
// North is 0, east is π/2.
func (d Direction) Radians() float64 {
	return float64(d) * math.Pi / 8
}

// GridVec maps the direction onto the 2D unit grid: north is (0,1), east is
// (1,0), and every non-cardinal point is a diagonal. Intermediate points
// address the same grid corner as their neighboring intercardinal — WNW and
// NW both map to (-1,1) — which is what corner addressing on a rectangular
// key matrix needs.
func (d Direction) GridVec() (x, y int) {
	a := d.Radians()
	return int(math.Round(math.Sqrt2 * math.Sin(a))), int(math.Round(math.Sqrt2 * math.Cos(a)))
}

// TurnRight returns the direction rotated 45° clockwise, two positions
// along the sixteen-point ring.
func (d Direction) TurnRight() Direction {
	return (d + 2) % count
}

// TurnLeft returns the direction rotated 45° counterclockwise.
func (d Direction) TurnLeft() Direction {
	return (d + count - 2) % count
}

// Opposite returns the direction rotated 180°.
func (d Direction) Opposite() Direction {
	return (d + count/2) % count
}

// Cardinal returns the nearest of N, E, S, W, rounding clockwise on exact
// intercardinals. NE maps to E, NW maps to N.
func (d Direction) Cardinal() Direction {
	return ((d + 2) / 4 * 4) % count
}

// IsCardinal reports whether d is one of N, E, S, W.
func (d Direction) IsCardinal() bool {
	return d%4 == 0
}
