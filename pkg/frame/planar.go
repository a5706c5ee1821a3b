package frame

import (
	"fmt"

	"github.com/jeremy-asher/dactyl-keyboard/pkg/compass"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/csg"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/param"
)

// Planar layout constants, millimetres.
const (
	// DefaultPitch is the center-to-center key spacing.
	DefaultPitch = 19.0
	// DefaultWallInset is the distance from a key's footprint edge to the
	// interior wall surface.
	DefaultWallInset = 2.5
)

// Compile-time interface check.
var _ Frame = (*Planar)(nil)

// Planar is a flat reference implementation of Frame: keys on a regular
// grid at z = 0, walls offset outward from the outermost keys. It stands in
// for the curved production engine during development and in tests; being
// purely arithmetic, it is deterministic by construction.
type Planar struct {
	cfg   *param.Config
	pitch float64
	inset float64
}

// NewPlanar returns a planar frame over the configured matrix.
func NewPlanar(cfg *param.Config) *Planar {
	return &Planar{cfg: cfg, pitch: DefaultPitch, inset: DefaultWallInset}
}

// check validates that the coordinate exists in the configured matrix.
func (p *Planar) check(cluster string, c Coord) error {
	rows := p.cfg.RowsInColumn(c.Column)
	if rows == 0 {
		return &param.ReferenceError{
			Path:   "matrix.columns",
			Detail: fmt.Sprintf("column %d has no rows", c.Column),
		}
	}
	if c.Row < 0 || c.Row >= rows {
		return &param.ReferenceError{
			Path:   "matrix.columns",
			Detail: fmt.Sprintf("row %d outside column %d", c.Row, c.Column),
		}
	}
	return nil
}

// KeyPosition places key (0,0) at the origin, columns along +X, rows
// along +Y.
func (p *Planar) KeyPosition(cluster string, c Coord) (csg.Vec3, error) {
	if err := p.check(cluster, c); err != nil {
		return csg.Vec3{}, err
	}
	return csg.Vec3{
		X: float64(c.Column) * p.pitch,
		Y: float64(c.Row) * p.pitch,
	}, nil
}

// wallDistance is the distance from a key center to the interior wall
// surface on a cardinal side.
func (p *Planar) wallDistance() float64 {
	return p.pitch/2 + p.inset
}

// WallPosition offsets the key center to the interior wall surface on the
// given side. Diagonal sides offset on both axes.
func (p *Planar) WallPosition(cluster string, c Coord, side compass.Direction) (csg.Vec3, error) {
	key, err := p.KeyPosition(cluster, c)
	if err != nil {
		return csg.Vec3{}, err
	}
	gx, gy := side.GridVec()
	d := p.wallDistance()
	return key.Add(csg.Vec3{X: float64(gx) * d, Y: float64(gy) * d}), nil
}

// WallCorner resolves an interior wall corner. On the planar frame corners
// coincide with diagonal wall positions.
func (p *Planar) WallCorner(cluster string, c Coord, corner compass.Direction) (csg.Vec3, error) {
	return p.WallPosition(cluster, c, corner)
}
