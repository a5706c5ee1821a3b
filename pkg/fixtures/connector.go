package fixtures

import (
	"github.com/jeremy-asher/dactyl-keyboard/pkg/compass"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/csg"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/frame"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/param"
)

// Connector socket constants.
const (
	// nookDepth is how many corner units the nook recedes into the rear
	// housing wall.
	nookDepth = 3.0
	// metasocketPad is the cavity padding over the socket in the two
	// non-insertion axes; twice the wall web so the shell still closes
	// around the cavity.
	metasocketPadFactor = 2.0
	// socketWireInset shrinks the wire-exit channel relative to the socket
	// body.
	socketWireInset = 2.0
)

// Connector places the socket for the external signalling port, either
// recessed into the rear housing or anchored to an aliased key's wall
// corner.
type Connector struct {
	cfg *param.Config
	f   frame.Frame
}

// NewConnector returns a connector over the given configuration and frame.
func NewConnector(cfg *param.Config, f frame.Frame) *Connector {
	return &Connector{cfg: cfg, f: f}
}

// corner parses the configured corner token.
func (c *Connector) corner() (compass.Direction, error) {
	d, err := compass.Parse(c.cfg.Connection.Position.Corner)
	if err != nil {
		return d, &param.ReferenceError{Path: "connection.position.corner", Detail: err.Error()}
	}
	return d, nil
}

// anchorCorner resolves the aliased key's wall corner.
func (c *Connector) anchorCorner(corner compass.Direction) (csg.Vec3, error) {
	ref, err := c.cfg.ResolveAlias(c.cfg.Connection.Position.KeyAlias)
	if err != nil {
		return csg.Vec3{}, err
	}
	return c.f.WallCorner(ref.Cluster, frame.Coord{Column: ref.Column, Row: ref.Row}, corner)
}

// nookInset returns the lateral recess applied when the socket sits in the
// rear housing: half the sum of wall web and socket depth, signed by the
// corner's grid direction so the socket backs away from the corner into
// the wall. Without a rear housing the inset is exactly zero.
func (c *Connector) nookInset(corner compass.Direction) csg.Vec3 {
	if !c.usesRearHousing() {
		return csg.Vec3{}
	}
	gx, gy := corner.GridVec()
	inset := (c.cfg.Case.WebThickness + c.cfg.SocketSize().Y) / 2
	return csg.Vec3{X: -float64(gx) * inset, Y: -float64(gy) * inset}
}

// usesRearHousing reports whether the socket anchors to the rear housing.
func (c *Connector) usesRearHousing() bool {
	return c.cfg.Case.RearHousing.Include && c.cfg.Connection.Position.PreferRearHousing
}

// Nook computes the socket anchor position. With a rear housing the anchor
// recedes 3 corner units into the housing wall plus the lateral inset;
// otherwise it is the aliased key's wall corner, uninset.
func (c *Connector) Nook() (csg.Vec3, error) {
	corner, err := c.corner()
	if err != nil {
		return csg.Vec3{}, err
	}
	at, err := c.anchorCorner(corner)
	if err != nil {
		return csg.Vec3{}, err
	}
	if !c.usesRearHousing() {
		return at, nil
	}
	gx, gy := corner.GridVec()
	depth := csg.Vec3{X: -float64(gx) * nookDepth, Y: -float64(gy) * nookDepth}
	return at.Add(depth).Add(c.nookInset(corner)), nil
}

// Position places a socket-space shape at the nook. Fixed step order:
// configured pre-rotation, align the socket's center-bottom with the wall
// midline, face the corner's primary compass direction, translate to the
// nook, then the configured offset.
func (c *Connector) Position(s csg.Shape) (csg.Shape, error) {
	corner, err := c.corner()
	if err != nil {
		return nil, err
	}
	nook, err := c.Nook()
	if err != nil {
		return nil, err
	}
	rot := c.cfg.ConnectionRotation()
	size := c.cfg.SocketSize()
	web := c.cfg.Case.WebThickness

	t := csg.Transform{}.
		RotateX(rot.X).RotateY(rot.Y).RotateZ(rot.Z).
		Translate(csg.Vec3{Y: -web / 2, Z: size.Z / 2}).
		RotateZ(-corner.Cardinal().Radians()).
		Translate(nook).
		Translate(c.cfg.ConnectionOffset())
	return t.Apply(s), nil
}

// Metasocket returns the placed receiving cavity: the socket envelope
// padded by twice the wall web in width and height, facing north before
// placement. It is unioned into the shell so the socket has material to
// sit in.
func (c *Connector) Metasocket() (csg.Shape, error) {
	size := c.cfg.SocketSize()
	pad := metasocketPadFactor * c.cfg.Case.WebThickness
	return c.Position(csg.NewBox(size.X+pad, size.Y, size.Z+pad))
}

// Socket returns the placed negative space: the socket body plus a smaller
// interior box shifted inward, forming the wire-exit channel into the case.
func (c *Connector) Socket() (csg.Shape, error) {
	size := c.cfg.SocketSize()
	body := csg.NewBox(size.X, size.Y, size.Z)
	exit := csg.Translate{
		Offset: csg.Vec3{Y: -size.Y / 2},
		Shape:  csg.NewBox(size.X-socketWireInset, size.Y, size.Z-socketWireInset),
	}
	return c.Position(csg.UnionOf(body, exit))
}
