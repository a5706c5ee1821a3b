package fixtures

import (
	"math"

	"github.com/jeremy-asher/dactyl-keyboard/pkg/compass"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/csg"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/frame"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/param"
)

// LED channel geometry constants.
const (
	ledChannelReach  = 10.0 // channel extent beyond the outer wall surface
	ledChannelHeight = 50.0 // vertical extrusion of the channel envelope
	ledRaise         = 5.0  // housing clearance above the case floor
	ledBoreSlack     = 4.0  // emitter bore length beyond the wall
)

// LEDStrip places the row of diode housings and emitter bores along the
// case's west wall.
type LEDStrip struct {
	cfg *param.Config
	f   frame.Frame
}

// NewLEDStrip returns an LED strip over the given configuration and frame.
func NewLEDStrip(cfg *param.Config, f frame.Frame) *LEDStrip {
	return &LEDStrip{cfg: cfg, f: f}
}

// wallChannel builds the vertical channel envelope along the west wall: for
// each row at column 0, the WSW and WNW corners pushed outward through the
// wall, and a parallel boundary a further 10 mm out. The two point lists
// close into a polygon extruded upward from the floor.
func (l *LEDStrip) wallChannel() (csg.Shape, error) {
	rows := l.cfg.RowsInColumn(0)
	if rows == 0 {
		return nil, &param.ReferenceError{
			Path:   "matrix.columns[0]",
			Detail: "column has no rows",
		}
	}
	web := l.cfg.Case.WebThickness

	inner := make([]csg.Vec2, 0, 2*rows)
	outer := make([]csg.Vec2, 0, 2*rows)
	for r := 0; r < rows; r++ {
		coord := frame.Coord{Column: 0, Row: r}
		for _, corner := range []compass.Direction{compass.WestSouthwest, compass.WestNorthwest} {
			c, err := l.f.WallCorner(param.DefaultCluster, coord, corner)
			if err != nil {
				return nil, err
			}
			inner = append(inner, csg.Vec2{X: c.X, Y: c.Y})
			outer = append(outer, csg.Vec2{X: c.X - web - ledChannelReach, Y: c.Y})
		}
	}

	// Close the loop: inner boundary south to north, outer boundary back.
	pts := make([]csg.Vec2, 0, len(inner)+len(outer))
	pts = append(pts, inner...)
	for i := len(outer) - 1; i >= 0; i-- {
		pts = append(pts, outer[i])
	}
	poly, err := csg.NewPolygon(pts)
	if err != nil {
		return nil, err
	}
	return csg.Extrude{Profile: poly, Height: ledChannelHeight}, nil
}

// housingPosition returns the center of housing ordinal: the first row's
// WNW corner pushed to mid-wall, advanced ordinal × interval along the
// wall's run, raised to half the housing size plus the floor clearance.
func (l *LEDStrip) housingPosition(ordinal int) (csg.Vec3, error) {
	leds := l.cfg.Case.LEDs
	web := l.cfg.Case.WebThickness
	c, err := l.f.WallCorner(param.DefaultCluster, frame.Coord{Column: 0, Row: 0}, compass.WestNorthwest)
	if err != nil {
		return csg.Vec3{}, err
	}
	return csg.Vec3{
		X: c.X - web/2,
		Y: c.Y + float64(ordinal)*leds.Interval,
		Z: leds.HousingSize/2 + ledRaise,
	}, nil
}

// HousingChannel returns the diode housing cut for one ordinal: a box of
// housing-size cross-section spanning the wall thickness.
func (l *LEDStrip) HousingChannel(ordinal int) (csg.Shape, error) {
	pos, err := l.housingPosition(ordinal)
	if err != nil {
		return nil, err
	}
	s := l.cfg.Case.LEDs.HousingSize
	web := l.cfg.Case.WebThickness
	return csg.Translate{Offset: pos, Shape: csg.NewBox(web, s, s)}, nil
}

// EmitterChannel returns the emitter bore for one ordinal: a cylinder of
// emitter diameter rotated to run horizontally through the wall.
func (l *LEDStrip) EmitterChannel(ordinal int) (csg.Shape, error) {
	pos, err := l.housingPosition(ordinal)
	if err != nil {
		return nil, err
	}
	leds := l.cfg.Case.LEDs
	web := l.cfg.Case.WebThickness
	return csg.Translate{
		Offset: pos,
		Shape: csg.Rotate{
			Angles: csg.Vec3{Y: math.Pi / 2},
			Shape:  csg.NewCylinder(web+ledBoreSlack, leds.EmitterDiameter/2),
		},
	}, nil
}

// Holes returns the strip's negative space: housing boxes clipped to the
// wall channel envelope, plus the unclipped emitter bores.
func (l *LEDStrip) Holes() (csg.Shape, error) {
	channel, err := l.wallChannel()
	if err != nil {
		return nil, err
	}
	amount := l.cfg.Case.LEDs.Amount
	housings := make([]csg.Shape, 0, amount)
	emitters := make([]csg.Shape, 0, amount)
	for i := 0; i < amount; i++ {
		h, err := l.HousingChannel(i)
		if err != nil {
			return nil, err
		}
		housings = append(housings, h)
		e, err := l.EmitterChannel(i)
		if err != nil {
			return nil, err
		}
		emitters = append(emitters, e)
	}
	clipped := csg.IntersectionOf(channel, csg.UnionOf(housings...))
	return csg.UnionOf(clipped, csg.UnionOf(emitters...)), nil
}
