package fixtures

import (
	"github.com/jeremy-asher/dactyl-keyboard/pkg/compass"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/csg"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/frame"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/param"
)

// FootPlates builds the flat support feet under the case from configured
// key-corner polygons.
type FootPlates struct {
	cfg *param.Config
	f   frame.Frame
}

// NewFootPlates returns foot plates over the given configuration and frame.
func NewFootPlates(cfg *param.Config, f frame.Frame) *FootPlates {
	return &FootPlates{cfg: cfg, f: f}
}

// resolvePoint resolves one polygon point: the aliased key's wall corner
// projected to the ground plane, displaced by the configured 2D offset.
// Resolution is affine in the offset.
func (fp *FootPlates) resolvePoint(pt param.FootPoint) (csg.Vec2, error) {
	ref, err := fp.cfg.ResolveAlias(pt.KeyAlias)
	if err != nil {
		return csg.Vec2{}, err
	}
	corner, err := compass.Parse(pt.KeyCorner)
	if err != nil {
		return csg.Vec2{}, &param.ReferenceError{
			Path:   "case.foot-plates.polygons",
			Detail: err.Error(),
		}
	}
	at, err := fp.f.WallCorner(ref.Cluster, frame.Coord{Column: ref.Column, Row: ref.Row}, corner)
	if err != nil {
		return csg.Vec2{}, err
	}
	return at.XY().Add(csg.Vec2{X: pt.Offset[0], Y: pt.Offset[1]}), nil
}

// Plates returns the union of all configured foot polygons, each extruded
// from the ground plane to the configured foot height.
func (fp *FootPlates) Plates() (csg.Shape, error) {
	cfg := fp.cfg.Case.FootPlates
	shapes := make([]csg.Shape, 0, len(cfg.Polygons))
	for _, poly := range cfg.Polygons {
		pts := make([]csg.Vec2, 0, len(poly.Points))
		for _, pt := range poly.Points {
			v, err := fp.resolvePoint(pt)
			if err != nil {
				return nil, err
			}
			pts = append(pts, v)
		}
		profile, err := csg.NewPolygon(pts)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, csg.Extrude{Profile: profile, Height: cfg.Height})
	}
	return csg.UnionOf(shapes...), nil
}
