package fixtures

import (
	"github.com/jeremy-asher/dactyl-keyboard/pkg/csg"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/frame"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/param"
)

// Piece is one named, color-tagged fixture tree, ready for tessellation or
// export. Color is cosmetic layering only.
type Piece struct {
	Name     string
	Negative bool
	Shape    csg.Shape
}

// Assembly is the composition root: it runs every enabled fixture and
// unions the results into positive and negative trees. Fixtures are
// independent; union order carries no geometric meaning.
type Assembly struct {
	cfg *param.Config
	f   frame.Frame

	mcu   *MCUBay
	plate *BackPlate
	leds  *LEDStrip
	conn  *Connector
	feet  *FootPlates
	usb   *USBBay
}

// NewAssembly builds the composition root over a configuration and frame.
func NewAssembly(cfg *param.Config, f frame.Frame) *Assembly {
	return &Assembly{
		cfg:   cfg,
		f:     f,
		mcu:   NewMCUBay(cfg, f),
		plate: NewBackPlate(cfg, f),
		leds:  NewLEDStrip(cfg, f),
		conn:  NewConnector(cfg, f),
		feet:  NewFootPlates(cfg, f),
		usb:   NewUSBBay(cfg, f),
	}
}

// Pieces runs every enabled fixture and returns its named trees. A fixture
// that cannot resolve its configuration aborts the whole pass; partial
// geometry is worse than no geometry.
func (a *Assembly) Pieces() ([]Piece, error) {
	var pieces []Piece
	add := func(name, color string, negative bool, s csg.Shape, err error) error {
		if err != nil {
			return err
		}
		pieces = append(pieces, Piece{Name: name, Negative: negative, Shape: csg.Colored(color, s)})
		return nil
	}

	board, err := a.mcu.Board()
	if err != nil {
		return nil, err
	}

	vis, err := a.mcu.Visualization()
	if err := add("mcu-visualization", "#2ECC71", false, vis, err); err != nil {
		return nil, err
	}
	sup, err := a.mcu.Support()
	if err := add("mcu-support", "#E67E22", false, sup, err); err != nil {
		return nil, err
	}
	neg, err := a.mcu.Negative()
	if err := add("mcu-negative", "#E74C3C", true, neg, err); err != nil {
		return nil, err
	}

	if a.cfg.Case.BackPlate.Include {
		block, err := a.plate.Block()
		if err := add("back-plate", "#4A90D9", false, block, err); err != nil {
			return nil, err
		}
		holes, err := a.plate.FastenerHoles()
		if err := add("back-plate-holes", "#E74C3C", true, holes, err); err != nil {
			return nil, err
		}
	}

	if a.cfg.Case.LEDs.Include {
		holes, err := a.leds.Holes()
		if err := add("led-holes", "#9B59B6", true, holes, err); err != nil {
			return nil, err
		}
	}

	if a.cfg.Connection.Include {
		meta, err := a.conn.Metasocket()
		if err := add("connection-metasocket", "#1ABC9C", false, meta, err); err != nil {
			return nil, err
		}
		sock, err := a.conn.Socket()
		if err := add("connection-socket", "#E74C3C", true, sock, err); err != nil {
			return nil, err
		}
	}

	if a.cfg.Case.FootPlates.Include {
		feet, err := a.feet.Plates()
		if err := add("foot-plates", "#F39C12", false, feet, err); err != nil {
			return nil, err
		}
	}

	if !board.OnboardUSB {
		pos, err := a.usb.Positive()
		if err := add("usb-bay", "#3498DB", false, pos, err); err != nil {
			return nil, err
		}
		neg, err := a.usb.Negative()
		if err := add("usb-bay-negative", "#E74C3C", true, neg, err); err != nil {
			return nil, err
		}
	}

	return pieces, nil
}

// Positive returns the union of all material and support volumes.
func (a *Assembly) Positive() (csg.Shape, error) {
	return a.union(false)
}

// Negative returns the union of all clearance volumes, for subtraction
// from the case shell.
func (a *Assembly) Negative() (csg.Shape, error) {
	return a.union(true)
}

func (a *Assembly) union(negative bool) (csg.Shape, error) {
	pieces, err := a.Pieces()
	if err != nil {
		return nil, err
	}
	var shapes []csg.Shape
	for _, p := range pieces {
		if p.Negative == negative {
			shapes = append(shapes, p.Shape)
		}
	}
	return csg.UnionOf(shapes...), nil
}
