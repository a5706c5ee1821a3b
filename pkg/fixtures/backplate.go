package fixtures

import (
	"math"

	"github.com/jeremy-asher/dactyl-keyboard/pkg/compass"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/csg"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/frame"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/param"
)

// Back-plate geometry constants.
const (
	backPlateDepth    = 8.0  // interior protrusion
	backPlateBevel    = 1.0  // taper at both edges
	backBossInset     = 10.0 // nut boss distance behind the plate face
	backBossHeight    = 4.0  // nut boss recess depth
	backHoleSlack     = 2.0  // fastener bore length beyond the plate
	hexAcrossCorners  = 1.2  // nut circumradius relative to bolt diameter
)

// BackPlate places the mounting plate for the rigid connecting beam that
// joins the two keyboard halves.
type BackPlate struct {
	cfg *param.Config
	f   frame.Frame
}

// NewBackPlate returns a back plate over the given configuration and frame.
func NewBackPlate(cfg *param.Config, f frame.Frame) *BackPlate {
	return &BackPlate{cfg: cfg, f: f}
}

// Place positions a shape at the plate anchor. Fixed step order: translate
// to the aliased key's north wall center, shift down half the beam height,
// then apply the configured offset.
func (p *BackPlate) Place(s csg.Shape) (csg.Shape, error) {
	bp := p.cfg.Case.BackPlate
	ref, err := p.cfg.ResolveAlias(bp.Position.KeyAlias)
	if err != nil {
		return nil, err
	}
	wall, err := p.f.WallPosition(ref.Cluster, frame.Coord{Column: ref.Column, Row: ref.Row}, compass.North)
	if err != nil {
		return nil, err
	}
	t := csg.Transform{}.
		Translate(wall).
		Translate(csg.Vec3{Z: -bp.BeamHeight / 2}).
		Translate(p.cfg.BackPlateOffset())
	return t.Apply(s), nil
}

// dimensions derives the plate's width and height from the fastener
// distance and beam height.
func (p *BackPlate) dimensions() (width, height float64) {
	bp := p.cfg.Case.BackPlate
	return bp.Fasteners.Distance + bp.BeamHeight, bp.BeamHeight
}

// Shape returns the unplaced plate: a hull of three stacked boxes that
// tapers 1 mm at the exterior edge and at the end of the 8 mm interior
// protrusion.
func (p *BackPlate) Shape() csg.Shape {
	w, h := p.dimensions()
	exterior := csg.Translate{
		Offset: csg.Vec3{Y: backPlateBevel / 2},
		Shape:  csg.NewBox(w-2*backPlateBevel, backPlateBevel, h-2*backPlateBevel),
	}
	body := csg.Translate{
		Offset: csg.Vec3{Y: -backPlateDepth / 2},
		Shape:  csg.NewBox(w, backPlateDepth-backPlateBevel, h),
	}
	interior := csg.Translate{
		Offset: csg.Vec3{Y: -backPlateDepth + backPlateBevel/2},
		Shape:  csg.NewBox(w-2*backPlateBevel, backPlateBevel, h-2*backPlateBevel),
	}
	// Arity is fixed at three; no degenerate check needed.
	return csg.Hull{Shapes: []csg.Shape{exterior, body, interior}}
}

// FastenerHoles returns the placed negative space for the two beam
// fasteners: parallel bores at the configured distance, optionally paired
// with hexagonal nut-boss recesses 10 mm inward, all rotated 90° to run
// along the beam axis.
func (p *BackPlate) FastenerHoles() (csg.Shape, error) {
	fast := p.cfg.Case.BackPlate.Fasteners
	bore := csg.Rotate{
		Angles: csg.Vec3{X: math.Pi / 2},
		Shape:  csg.NewCylinder(backPlateDepth+2*backHoleSlack, fast.Diameter/2),
	}

	var shapes []csg.Shape
	for _, side := range []float64{-1, 1} {
		x := side * fast.Distance / 2
		shapes = append(shapes, csg.Translate{
			Offset: csg.Vec3{X: x, Y: -backPlateDepth / 2},
			Shape:  bore,
		})
		if fast.Bosses {
			boss, err := p.nutBoss(fast.Diameter)
			if err != nil {
				return nil, err
			}
			shapes = append(shapes, csg.Translate{
				Offset: csg.Vec3{X: x, Y: -backBossInset},
				Shape:  boss,
			})
		}
	}
	return p.Place(csg.UnionOf(shapes...))
}

// nutBoss builds a hexagonal recess for a nut of the given bolt diameter,
// extruded along the beam axis.
func (p *BackPlate) nutBoss(diameter float64) (csg.Shape, error) {
	r := diameter * hexAcrossCorners
	pts := make([]csg.Vec2, 6)
	for i := range pts {
		a := float64(i) * math.Pi / 3
		pts[i] = csg.Vec2{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	hex, err := csg.NewPolygon(pts)
	if err != nil {
		return nil, err
	}
	// Extrusions rise from z = 0; stand the recess up along Y and center it.
	return csg.Rotate{
		Angles: csg.Vec3{X: math.Pi / 2},
		Shape: csg.Translate{
			Offset: csg.Vec3{Z: -backBossHeight / 2},
			Shape:  csg.Extrude{Profile: hex, Height: backBossHeight},
		},
	}, nil
}

// Block returns the placed plate flattened to the ground plane. The bottom
// hull guarantees floor contact whatever the plate's elevation, so the
// minimum z of the result is always 0.
func (p *BackPlate) Block() (csg.Shape, error) {
	placed, err := p.Place(p.Shape())
	if err != nil {
		return nil, err
	}
	return csg.BottomHull(placed), nil
}
