package frame

import (
	"errors"
	"testing"

	"github.com/jeremy-asher/dactyl-keyboard/pkg/compass"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/csg"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/param"
)

func testConfig(t *testing.T) *param.Config {
	t.Helper()
	cfg, err := param.Parse([]byte(`
matrix:
  columns:
    - rows: 4
    - rows: 4
    - rows: 3
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return cfg
}

func TestKeyPositionGrid(t *testing.T) {
	f := NewPlanar(testConfig(t))
	tests := []struct {
		coord Coord
		want  csg.Vec3
	}{
		{Coord{0, 0}, csg.Vec3{}},
		{Coord{1, 0}, csg.Vec3{X: DefaultPitch}},
		{Coord{0, 3}, csg.Vec3{Y: 3 * DefaultPitch}},
		{Coord{2, 2}, csg.Vec3{X: 2 * DefaultPitch, Y: 2 * DefaultPitch}},
	}
	for _, tt := range tests {
		got, err := f.KeyPosition(param.DefaultCluster, tt.coord)
		if err != nil {
			t.Errorf("KeyPosition(%+v) error = %v", tt.coord, err)
			continue
		}
		if got != tt.want {
			t.Errorf("KeyPosition(%+v) = %+v, want %+v", tt.coord, got, tt.want)
		}
	}
}

func TestKeyPositionOutOfRange(t *testing.T) {
	f := NewPlanar(testConfig(t))
	bad := []Coord{
		{Column: 3, Row: 0},
		{Column: -1, Row: 0},
		{Column: 2, Row: 3},
		{Column: 0, Row: -1},
	}
	for _, c := range bad {
		_, err := f.KeyPosition(param.DefaultCluster, c)
		if err == nil {
			t.Errorf("KeyPosition(%+v) succeeded, want error", c)
			continue
		}
		var refErr *param.ReferenceError
		if !errors.As(err, &refErr) {
			t.Errorf("KeyPosition(%+v) error = %v, want *param.ReferenceError", c, err)
		}
	}
}

func TestWallPositionCardinals(t *testing.T) {
	f := NewPlanar(testConfig(t))
	c := Coord{Column: 1, Row: 1}
	key, err := f.KeyPosition(param.DefaultCluster, c)
	if err != nil {
		t.Fatalf("KeyPosition() error = %v", err)
	}

	d := DefaultPitch/2 + DefaultWallInset
	tests := []struct {
		side compass.Direction
		want csg.Vec3
	}{
		{compass.North, key.Add(csg.Vec3{Y: d})},
		{compass.East, key.Add(csg.Vec3{X: d})},
		{compass.South, key.Add(csg.Vec3{Y: -d})},
		{compass.West, key.Add(csg.Vec3{X: -d})},
		{compass.Northeast, key.Add(csg.Vec3{X: d, Y: d})},
		{compass.WestSouthwest, key.Add(csg.Vec3{X: -d, Y: -d})},
	}
	for _, tt := range tests {
		got, err := f.WallPosition(param.DefaultCluster, c, tt.side)
		if err != nil {
			t.Errorf("WallPosition(%v) error = %v", tt.side, err)
			continue
		}
		if got != tt.want {
			t.Errorf("WallPosition(%v) = %+v, want %+v", tt.side, got, tt.want)
		}
	}
}

func TestWallCornerMatchesDiagonalWall(t *testing.T) {
	f := NewPlanar(testConfig(t))
	c := Coord{Column: 0, Row: 0}
	for _, dir := range []compass.Direction{compass.Northwest, compass.SouthSoutheast} {
		corner, err := f.WallCorner(param.DefaultCluster, c, dir)
		if err != nil {
			t.Fatalf("WallCorner(%v) error = %v", dir, err)
		}
		wall, err := f.WallPosition(param.DefaultCluster, c, dir)
		if err != nil {
			t.Fatalf("WallPosition(%v) error = %v", dir, err)
		}
		if corner != wall {
			t.Errorf("WallCorner(%v) = %+v, WallPosition = %+v", dir, corner, wall)
		}
	}
}

func TestKeysStayOnGroundPlane(t *testing.T) {
	f := NewPlanar(testConfig(t))
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			pos, err := f.KeyPosition(param.DefaultCluster, Coord{Column: col, Row: row})
			if err != nil {
				t.Fatalf("KeyPosition(%d,%d) error = %v", col, row, err)
			}
			if pos.Z != 0 {
				t.Errorf("KeyPosition(%d,%d).Z = %v, want 0", col, row, pos.Z)
			}
		}
	}
}
