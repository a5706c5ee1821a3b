package compass

import (
	"math"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	for d := North; d < Direction(16); d++ {
		got, err := Parse(d.String())
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", d.String(), err)
		}
		if got != d {
			t.Errorf("Parse(%q) = %v, want %v", d.String(), got, d)
		}
	}
}

func TestParseCaseAndWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"n", North},
		{"wsw", WestSouthwest},
		{" NE ", Northeast},
		{"sSe", SouthSoutheast},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "NNNE", "north-by-northwest", "Q"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}

func TestRadians(t *testing.T) {
	tests := []struct {
		d    Direction
		want float64
	}{
		{North, 0},
		{NorthNortheast, math.Pi / 8},
		{East, math.Pi / 2},
		{South, math.Pi},
		{West, 3 * math.Pi / 2},
	}
	for _, tt := range tests {
		if got := tt.d.Radians(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%v.Radians() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestGridVec(t *testing.T) {
	tests := []struct {
		d    Direction
		x, y int
	}{
		{North, 0, 1},
		{East, 1, 0},
		{South, 0, -1},
		{West, -1, 0},
		{Northeast, 1, 1},
		{Southwest, -1, -1},
		// Intermediate points land on the neighboring diagonal corner.
		{WestNorthwest, -1, 1},
		{WestSouthwest, -1, -1},
		{NorthNortheast, 1, 1},
		{SouthSoutheast, 1, -1},
	}
	for _, tt := range tests {
		x, y := tt.d.GridVec()
		if x != tt.x || y != tt.y {
			t.Errorf("%v.GridVec() = (%d, %d), want (%d, %d)", tt.d, x, y, tt.x, tt.y)
		}
	}
}

func TestTurns(t *testing.T) {
	if got := North.TurnRight(); got != Northeast {
		t.Errorf("North.TurnRight() = %v, want NE", got)
	}
	if got := North.TurnLeft(); got != Northwest {
		t.Errorf("North.TurnLeft() = %v, want NW", got)
	}
	// Two turns are a quarter turn; eight turns come back around.
	if got := East.TurnLeft().TurnLeft(); got != North {
		t.Errorf("East turned left twice = %v, want N", got)
	}
	d := SouthSouthwest
	for i := 0; i < 8; i++ {
		d = d.TurnRight()
	}
	if d != SouthSouthwest {
		t.Errorf("eight right turns = %v, want SSW", d)
	}
	// TurnLeft and TurnRight cancel for every point.
	for d := North; d < Direction(16); d++ {
		if got := d.TurnLeft().TurnRight(); got != d {
			t.Errorf("%v.TurnLeft().TurnRight() = %v", d, got)
		}
	}
}

func TestOpposite(t *testing.T) {
	tests := []struct{ d, want Direction }{
		{North, South},
		{East, West},
		{NorthNortheast, SouthSouthwest},
		{WestNorthwest, EastSoutheast},
	}
	for _, tt := range tests {
		if got := tt.d.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.d, got, tt.want)
		}
		if got := tt.d.Opposite().Opposite(); got != tt.d {
			t.Errorf("%v.Opposite().Opposite() = %v", tt.d, got)
		}
	}
}

func TestCardinal(t *testing.T) {
	tests := []struct{ d, want Direction }{
		{North, North},
		{NorthNortheast, North},
		{Northeast, East}, // exact intercardinal rounds clockwise
		{EastNortheast, East},
		{East, East},
		{Southeast, South},
		{Southwest, West},
		{Northwest, North},
		{NorthNorthwest, North},
		{WestSouthwest, West},
	}
	for _, tt := range tests {
		if got := tt.d.Cardinal(); got != tt.want {
			t.Errorf("%v.Cardinal() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestIsCardinal(t *testing.T) {
	cardinals := map[Direction]bool{North: true, East: true, South: true, West: true}
	for d := North; d < Direction(16); d++ {
		if got := d.IsCardinal(); got != cardinals[d] {
			t.Errorf("%v.IsCardinal() = %v, want %v", d, got, cardinals[d])
		}
	}
}
