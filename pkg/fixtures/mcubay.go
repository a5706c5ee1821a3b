package fixtures

import (
	"math"

	"github.com/jeremy-asher/dactyl-keyboard/pkg/csg"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/frame"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/param"
)

// MCUBoard describes a known microcontroller module. Dimensions are the
// bare PCB; the connector block is the integrated USB female.
type MCUBoard struct {
	Width           float64
	Length          float64
	Thickness       float64
	ConnectorWidth  float64
	ConnectorLength float64
	ConnectorHeight float64
	OnboardUSB      bool
}

// mcuBoards is the table of supported MCU modules, selected by mcu.type.
// The teensy++ is mounted deep in the case and gets a separate panel
// connector via the USB bay instead of exposing its own.
var mcuBoards = map[string]MCUBoard{
	"promicro": {18, 33, 1.6, 8, 5.6, 3.2, true},
	"teensy":   {17.8, 30.5, 1.6, 8, 5.6, 3.2, true},
	"teensy++": {17.8, 53.3, 1.6, 8, 5.6, 3.2, false},
}

// Clearance tolerances. Every negative volume is padded by these so the
// printed cavity stays strictly larger than the part it clears.
const (
	mcuNotchTolerance   = 0.5 // board notch padding per axis
	mcuChannelTolerance = 1.0 // USB channel padding per axis
	mcuAlcoveMargin     = 2.0 // service alcove margin around the channel
	mcuAlcoveDepth      = 6.0
)

// Holder geometry.
const (
	mcuGripDepth  = 1.0
	mcuGripHeight = 4.0
	mcuBaseHeight = 6.0
)

// MCUBay places the cavity and holder for the microcontroller module.
type MCUBay struct {
	cfg *param.Config
	f   frame.Frame
}

// NewMCUBay returns an MCU bay over the given configuration and frame.
func NewMCUBay(cfg *param.Config, f frame.Frame) *MCUBay {
	return &MCUBay{cfg: cfg, f: f}
}

// Board returns the configured MCU module.
func (b *MCUBay) Board() (MCUBoard, error) {
	board, ok := mcuBoards[b.cfg.MCU.Type]
	if !ok {
		return MCUBoard{}, &param.ReferenceError{
			Path:   "mcu.type",
			Detail: "unknown module " + b.cfg.MCU.Type,
		}
	}
	return board, nil
}

// anchor builds the bay's placement transform. The step order is fixed and
// the steps do not commute:
//
//  1. translate the connector edge to the origin
//  2. rotate 90° about Y to stand the board on its long edge
//  3. translate along the thickness axis to clear the mounting wall
//  4. rotate about Z by the negated connector-direction angle
//  5. translate to the wall anchor at the finger column's last row
//  6. apply the configured offset
func (b *MCUBay) anchor() (csg.Transform, error) {
	board, err := b.Board()
	if err != nil {
		return nil, err
	}
	dir, err := b.cfg.ConnectorDirection()
	if err != nil {
		return nil, err
	}
	col := b.cfg.MCU.FingerColumn
	last, err := b.cfg.LastRow(col)
	if err != nil {
		return nil, err
	}
	wall, err := b.f.WallPosition(param.DefaultCluster, frame.Coord{Column: col, Row: last}, dir)
	if err != nil {
		return nil, err
	}
	web := b.cfg.Case.WebThickness

	return csg.Transform{}.
		Translate(csg.Vec3{Y: -board.Length / 2}).
		RotateY(math.Pi / 2).
		Translate(csg.Vec3{X: board.Thickness/2 + web}).
		RotateZ(-dir.Radians()).
		Translate(wall).
		Translate(b.cfg.MCUOffset()), nil
}

// Position applies the bay's anchor transform to any shape modeled in
// board coordinates: board centered at the origin, connector at the +Y
// edge on the top face.
func (b *MCUBay) Position(s csg.Shape) (csg.Shape, error) {
	t, err := b.anchor()
	if err != nil {
		return nil, err
	}
	return t.Apply(s), nil
}

// Visualization returns a positioned solid model of the board and its
// connector, for preview and collision checking only.
func (b *MCUBay) Visualization() (csg.Shape, error) {
	board, err := b.Board()
	if err != nil {
		return nil, err
	}
	slab := csg.NewBox(board.Width, board.Length, board.Thickness)
	conn := csg.Translate{
		Offset: csg.Vec3{
			Y: (board.Length - board.ConnectorLength) / 2,
			Z: (board.Thickness + board.ConnectorHeight) / 2,
		},
		Shape: csg.NewBox(board.ConnectorWidth, board.ConnectorLength, board.ConnectorHeight),
	}
	return b.Position(csg.UnionOf(slab, conn))
}

// Negative returns the positioned clearance volume: the USB channel through
// the wall, a service alcove so the connector is reachable rather than a
// blind pocket, the board notch, and an angled wire-exit bore.
func (b *MCUBay) Negative() (csg.Shape, error) {
	board, err := b.Board()
	if err != nil {
		return nil, err
	}
	web := b.cfg.Case.WebThickness
	connZ := (board.Thickness + board.ConnectorHeight) / 2

	channel := csg.Translate{
		Offset: csg.Vec3{Y: board.Length/2 + web/2, Z: connZ},
		Shape: csg.NewBox(
			board.ConnectorWidth+2*mcuChannelTolerance,
			web+2*mcuChannelTolerance,
			board.ConnectorHeight+2*mcuChannelTolerance,
		),
	}
	alcove := csg.Translate{
		Offset: csg.Vec3{Y: board.Length/2 - mcuAlcoveDepth/2, Z: connZ},
		Shape: csg.NewBox(
			board.ConnectorWidth+2*mcuAlcoveMargin,
			mcuAlcoveDepth,
			board.ConnectorHeight+mcuAlcoveMargin,
		),
	}
	notch := csg.NewBox(
		board.Width+mcuNotchTolerance,
		board.Length+mcuNotchTolerance,
		board.Thickness+mcuNotchTolerance,
	)
	wire := csg.Translate{
		Offset: csg.Vec3{Y: -board.Length / 2, Z: -4},
		Shape: csg.Rotate{
			Angles: csg.Vec3{X: -math.Pi / 4},
			Shape:  csg.NewCylinder(15, 2),
		},
	}
	return b.Position(csg.UnionOf(channel, alcove, notch, wire))
}

// Support returns the physical holder: a shallow gripper on half the board
// width placed clear of the mounting holes, a base block beneath it, and a
// hull tying the base to two wall corners reached by two consecutive 90°
// turns opposite the connector direction. The hull forms a continuous
// spine from the case floor to the finger-well wall.
func (b *MCUBay) Support() (csg.Shape, error) {
	board, err := b.Board()
	if err != nil {
		return nil, err
	}
	dir, err := b.cfg.ConnectorDirection()
	if err != nil {
		return nil, err
	}
	col := b.cfg.MCU.FingerColumn
	last, err := b.cfg.LastRow(col)
	if err != nil {
		return nil, err
	}
	coord := frame.Coord{Column: col, Row: last}

	grip := csg.Translate{
		Offset: csg.Vec3{
			Y: -board.Length/2 + mcuGripDepth/2 + 3, // inboard of the corner holes
			Z: -(board.Thickness + mcuGripHeight) / 2,
		},
		Shape: csg.NewBox(board.Width/2, mcuGripDepth, mcuGripHeight),
	}
	base := csg.Translate{
		Offset: csg.Vec3{
			Y: -board.Length/2 + mcuGripDepth/2 + 3,
			Z: -board.Thickness/2 - mcuGripHeight - mcuBaseHeight/2,
		},
		Shape: csg.NewBox(board.Width/2, mcuGripDepth+2, mcuBaseHeight),
	}

	placedGrip, err := b.Position(grip)
	if err != nil {
		return nil, err
	}
	placedBase, err := b.Position(base)
	if err != nil {
		return nil, err
	}

	// Walk backward around the matrix: two 90° turns away from the
	// connector direction, each one being two steps on the compass ring.
	d1 := dir.TurnLeft().TurnLeft()
	d2 := d1.TurnLeft().TurnLeft()
	c1, err := b.f.WallCorner(param.DefaultCluster, coord, d1)
	if err != nil {
		return nil, err
	}
	c2, err := b.f.WallCorner(param.DefaultCluster, coord, d2)
	if err != nil {
		return nil, err
	}
	spine, err := csg.NewHull(placedBase, post(c1), post(c2))
	if err != nil {
		return nil, err
	}
	return csg.UnionOf(placedGrip, placedBase, spine), nil
}
