package fixtures

import (
	"github.com/jeremy-asher/dactyl-keyboard/pkg/csg"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/frame"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/param"
)

// Standalone USB connector envelope, used when the configured MCU module
// has no onboard connector.
const (
	usbWidth      = 12.1
	usbHeight     = 4.6
	usbMountDepth = 10.0
)

// USBBay places the fixed-size cavity and holder for a standalone USB
// connector.
//
// An alternate clearance volume for a male connector plug existed upstream
// but was never enabled; it stays excluded here.
type USBBay struct {
	cfg *param.Config
	f   frame.Frame
}

// NewUSBBay returns a USB bay over the given configuration and frame.
func NewUSBBay(cfg *param.Config, f frame.Frame) *USBBay {
	return &USBBay{cfg: cfg, f: f}
}

// anchor returns the bay's placement transform: the key-matrix origin,
// forward by half the mount depth, raised by half the combined connector
// height and wall web.
func (u *USBBay) anchor() (csg.Transform, error) {
	key, err := u.f.KeyPosition(param.DefaultCluster, frame.Coord{Column: 0, Row: 0})
	if err != nil {
		return nil, err
	}
	web := u.cfg.Case.WebThickness
	return csg.Transform{}.
		Translate(key).
		Translate(csg.Vec3{Y: usbMountDepth / 2, Z: (usbHeight + web) / 2}), nil
}

// Positive returns the placed structural holder: the connector envelope
// padded by the wall web in width and height.
func (u *USBBay) Positive() (csg.Shape, error) {
	t, err := u.anchor()
	if err != nil {
		return nil, err
	}
	web := u.cfg.Case.WebThickness
	return t.Apply(csg.NewBox(usbWidth+web, usbMountDepth, usbHeight+web)), nil
}

// Negative returns the placed clearance: the unpadded connector envelope.
func (u *USBBay) Negative() (csg.Shape, error) {
	t, err := u.anchor()
	if err != nil {
		return nil, err
	}
	return t.Apply(csg.NewBox(usbWidth, usbMountDepth, usbHeight)), nil
}
