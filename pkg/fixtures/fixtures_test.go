package fixtures

import (
	"errors"
	"math"
	"testing"

	"github.com/jeremy-asher/dactyl-keyboard/pkg/csg"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/frame"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/param"
)

// Configuration fragments, concatenated per test so overrides never
// produce duplicate YAML keys.
const matrixYAML = `
matrix:
  columns:
    - rows: 4
    - rows: 4
    - rows: 4
    - rows: 4
    - rows: 3

key-aliases:
  back-corner:
    column: 4
    row: 2
  front-left:
    column: 0
    row: 0
  front-right:
    column: 4
    row: 0
`

const defaultCaseYAML = `
case:
  web-thickness: 4
  back-plate:
    include: true
    position:
      key-alias: back-corner
    fasteners:
      diameter: 6
      distance: 30
      bosses: true
  leds:
    include: true
    amount: 3
    interval: 12
    emitter-diameter: 5
    housing-size: 5.5
  foot-plates:
    include: true
    polygons:
      - points:
          - key-alias: front-left
            key-corner: WSW
          - key-alias: front-left
            key-corner: SSW
          - key-alias: front-right
            key-corner: SSE
          - key-alias: front-right
            key-corner: ESE
`

const defaultMCUYAML = `
mcu:
  finger-column: 2
  offset: [0, 0, 12]
`

const defaultConnYAML = `
connection:
  include: true
  socket-size: [10.9, 13.7, 6.75]
  position:
    corner: NE
    key-alias: back-corner
`

func parseConfig(t *testing.T, caseBlock, mcuBlock, connBlock string) (*param.Config, frame.Frame) {
	t.Helper()
	if caseBlock == "" {
		caseBlock = defaultCaseYAML
	}
	if mcuBlock == "" {
		mcuBlock = defaultMCUYAML
	}
	if connBlock == "" {
		connBlock = defaultConnYAML
	}
	cfg, err := param.Parse([]byte(matrixYAML + caseBlock + mcuBlock + connBlock))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return cfg, frame.NewPlanar(cfg)
}

func testSetup(t *testing.T) (*param.Config, frame.Frame) {
	return parseConfig(t, "", "", "")
}

// --- MCU bay ---

func TestMCUBoardLookup(t *testing.T) {
	cfg, f := testSetup(t)
	board, err := NewMCUBay(cfg, f).Board()
	if err != nil {
		t.Fatalf("Board() error = %v", err)
	}
	if board.Width != 18 || board.Length != 33 {
		t.Errorf("promicro board = %+v", board)
	}
	if !board.OnboardUSB {
		t.Error("promicro OnboardUSB = false, want true")
	}
}

func TestMCUBoardUnknownType(t *testing.T) {
	cfg, f := parseConfig(t, "", `
mcu:
  type: esp32
  finger-column: 2
`, "")
	_, err := NewMCUBay(cfg, f).Board()
	if err == nil {
		t.Fatal("Board() succeeded for unknown module")
	}
	var refErr *param.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("error = %v, want *param.ReferenceError", err)
	}
	if refErr.Path != "mcu.type" {
		t.Errorf("error path = %q, want mcu.type", refErr.Path)
	}
}

func TestMCUSharedAnchor(t *testing.T) {
	// Visualization and negative are placed by the same anchor transform,
	// whose final step is the configured offset, so changing the offset
	// moves both bounding boxes by exactly the offset delta.
	cfg1, f1 := testSetup(t)
	cfg2, f2 := parseConfig(t, "", `
mcu:
  finger-column: 2
  offset: [7, -3, 20]
`, "")
	delta := csg.Vec3{X: 7, Y: -3, Z: 8}

	parts := []struct {
		name  string
		build func(*MCUBay) (csg.Shape, error)
	}{
		{"visualization", (*MCUBay).Visualization},
		{"negative", (*MCUBay).Negative},
	}
	for _, tt := range parts {
		s1, err := tt.build(NewMCUBay(cfg1, f1))
		if err != nil {
			t.Fatalf("%s error = %v", tt.name, err)
		}
		s2, err := tt.build(NewMCUBay(cfg2, f2))
		if err != nil {
			t.Fatalf("%s error = %v", tt.name, err)
		}
		got := csg.BoundingBox(s2).Center().Sub(csg.BoundingBox(s1).Center())
		if !nearVec(got, delta, 1e-9) {
			t.Errorf("%s moved by %+v, want %+v", tt.name, got, delta)
		}
	}
}

func TestMCUNegativeWiderThanBoard(t *testing.T) {
	cfg, f := testSetup(t)
	bay := NewMCUBay(cfg, f)
	vis, err := bay.Visualization()
	if err != nil {
		t.Fatalf("Visualization() error = %v", err)
	}
	neg, err := bay.Negative()
	if err != nil {
		t.Fatalf("Negative() error = %v", err)
	}
	vb := csg.BoundingBox(vis)
	nb := csg.BoundingBox(neg)
	// Every clearance volume is padded beyond the part it clears, so the
	// negative envelope strictly exceeds the visualization envelope.
	if nb.Size().X <= vb.Size().X || nb.Size().Y <= vb.Size().Y || nb.Size().Z <= vb.Size().Z {
		t.Errorf("negative size %+v does not exceed visualization size %+v", nb.Size(), vb.Size())
	}
}

func TestMCUSupportReachesFloor(t *testing.T) {
	cfg, f := testSetup(t)
	sup, err := NewMCUBay(cfg, f).Support()
	if err != nil {
		t.Fatalf("Support() error = %v", err)
	}
	if errs := csg.Validate(sup); errs != nil {
		t.Fatalf("Support() geometry invalid: %v", errs)
	}
	b := csg.BoundingBox(sup)
	if b.Size().X == 0 || b.Size().Y == 0 || b.Size().Z == 0 {
		t.Errorf("support has a collapsed axis: %+v", b)
	}
	// The spine hulls down to wall-corner posts on the ground plane, so the
	// support must extend below the raised board.
	vis, err := NewMCUBay(cfg, f).Visualization()
	if err != nil {
		t.Fatalf("Visualization() error = %v", err)
	}
	if b.Min.Z >= csg.BoundingBox(vis).Min.Z {
		t.Errorf("support bottom %v not below board bottom %v", b.Min.Z, csg.BoundingBox(vis).Min.Z)
	}
}

func TestMCUEmptyFingerColumn(t *testing.T) {
	cfg, f := parseConfig(t, "", `
mcu:
  finger-column: 9
`, "")
	_, err := NewMCUBay(cfg, f).Visualization()
	if err == nil {
		t.Fatal("Visualization() succeeded with missing column")
	}
	var refErr *param.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("error = %v, want *param.ReferenceError", err)
	}
}

// --- Back plate ---

func TestBackPlateBlockRestsOnFloor(t *testing.T) {
	cfg, f := parseConfig(t, `
case:
  web-thickness: 4
  back-plate:
    include: true
    position:
      key-alias: back-corner
      offset: [0, 0, 30]
    fasteners:
      diameter: 6
      distance: 30
      bosses: true
`, "", "")
	block, err := NewBackPlate(cfg, f).Block()
	if err != nil {
		t.Fatalf("Block() error = %v", err)
	}
	// The plate itself floats between z = 10 and z = 30; the bottom hull
	// pulls it down to the ground plane.
	b := csg.BoundingBox(block)
	if math.Abs(b.Min.Z) > 1e-9 {
		t.Errorf("Block min Z = %v, want 0", b.Min.Z)
	}
	if math.Abs(b.Max.Z-30) > 1e-9 {
		t.Errorf("Block max Z = %v, want 30", b.Max.Z)
	}
}

func TestBackPlateOffsetIsAffine(t *testing.T) {
	cfg1, f1 := testSetup(t)
	cfg2, f2 := parseConfig(t, `
case:
  web-thickness: 4
  back-plate:
    include: true
    position:
      key-alias: back-corner
      offset: [5, 0, -2]
    fasteners:
      diameter: 6
      distance: 30
      bosses: true
`, "", "")

	p1, err := NewBackPlate(cfg1, f1).Place(csg.NewBox(1, 1, 1))
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	p2, err := NewBackPlate(cfg2, f2).Place(csg.NewBox(1, 1, 1))
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	got := csg.BoundingBox(p2).Center().Sub(csg.BoundingBox(p1).Center())
	if !nearVec(got, csg.Vec3{X: 5, Z: -2}, 1e-9) {
		t.Errorf("offset moved plate by %+v, want (5, 0, -2)", got)
	}
}

func TestBackPlateShape(t *testing.T) {
	cfg, f := testSetup(t)
	b := csg.BoundingBox(NewBackPlate(cfg, f).Shape())
	// Width is fastener distance plus beam height; height is beam height.
	if math.Abs(b.Size().X-50) > 1e-9 {
		t.Errorf("plate width = %v, want 50", b.Size().X)
	}
	if math.Abs(b.Size().Z-20) > 1e-9 {
		t.Errorf("plate height = %v, want 20", b.Size().Z)
	}
}

func TestBackPlateFastenerHoles(t *testing.T) {
	cfg, f := testSetup(t)
	holes, err := NewBackPlate(cfg, f).FastenerHoles()
	if err != nil {
		t.Fatalf("FastenerHoles() error = %v", err)
	}
	if errs := csg.Validate(holes); errs != nil {
		t.Fatalf("holes invalid: %v", errs)
	}
	// The pair straddles the anchor at the configured distance, so the X
	// extent covers at least the distance plus one bore diameter.
	b := csg.BoundingBox(holes)
	if b.Size().X < 30+6 {
		t.Errorf("hole pair X extent = %v, want >= 36", b.Size().X)
	}
}

func TestBackPlateUnknownAlias(t *testing.T) {
	cfg, f := parseConfig(t, `
case:
  web-thickness: 4
  back-plate:
    include: true
    position:
      key-alias: nowhere
`, "", "")
	_, err := NewBackPlate(cfg, f).Block()
	if err == nil {
		t.Fatal("Block() succeeded with unknown alias")
	}
	var refErr *param.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("error = %v, want *param.ReferenceError", err)
	}
}

// --- LED strip ---

func TestLEDHousingSpacing(t *testing.T) {
	cfg, f := testSetup(t)
	strip := NewLEDStrip(cfg, f)

	var prev csg.Vec3
	for i := 0; i < cfg.Case.LEDs.Amount; i++ {
		h, err := strip.HousingChannel(i)
		if err != nil {
			t.Fatalf("HousingChannel(%d) error = %v", i, err)
		}
		center := csg.BoundingBox(h).Center()
		if i > 0 {
			step := center.Sub(prev)
			if !nearVec(step, csg.Vec3{Y: 12}, 1e-9) {
				t.Errorf("housing %d step = %+v, want (0, 12, 0)", i, step)
			}
		}
		prev = center
	}
}

func TestLEDHousingsStayInChannel(t *testing.T) {
	cfg, f := parseConfig(t, `
case:
  web-thickness: 4
  leds:
    include: true
    amount: 2
    interval: 10
    emitter-diameter: 5
    housing-size: 5.5
`, "", "")
	strip := NewLEDStrip(cfg, f)

	channel, err := strip.wallChannel()
	if err != nil {
		t.Fatalf("wallChannel() error = %v", err)
	}
	cb := csg.BoundingBox(channel)

	for i := 0; i < 2; i++ {
		h, err := strip.HousingChannel(i)
		if err != nil {
			t.Fatalf("HousingChannel(%d) error = %v", i, err)
		}
		hb := csg.BoundingBox(h)
		if hb.Min.X < cb.Min.X || hb.Max.X > cb.Max.X {
			t.Errorf("housing %d X span [%v, %v] outside channel [%v, %v]",
				i, hb.Min.X, hb.Max.X, cb.Min.X, cb.Max.X)
		}
	}

	holes, err := strip.Holes()
	if err != nil {
		t.Fatalf("Holes() error = %v", err)
	}
	if errs := csg.Validate(holes); errs != nil {
		t.Fatalf("holes invalid: %v", errs)
	}
}

func TestLEDChannelNeedsRows(t *testing.T) {
	cfg, err := param.Parse([]byte(`
matrix:
  columns:
    - rows: 0
    - rows: 4
case:
  leds:
    include: true
    amount: 1
    interval: 10
    emitter-diameter: 5
    housing-size: 5
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	strip := NewLEDStrip(cfg, frame.NewPlanar(cfg))
	_, err = strip.Holes()
	if err == nil {
		t.Fatal("Holes() succeeded with empty column 0")
	}
	var refErr *param.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("error = %v, want *param.ReferenceError", err)
	}
}

// --- Connector ---

func TestConnectorNookInsetWithoutRearHousing(t *testing.T) {
	cfg, f := testSetup(t)
	conn := NewConnector(cfg, f)
	corner, err := conn.corner()
	if err != nil {
		t.Fatalf("corner() error = %v", err)
	}
	if inset := conn.nookInset(corner); inset != (csg.Vec3{}) {
		t.Errorf("nookInset = %+v, want zero without rear housing", inset)
	}

	nook, err := conn.Nook()
	if err != nil {
		t.Fatalf("Nook() error = %v", err)
	}
	want, err := f.WallCorner(param.DefaultCluster, frame.Coord{Column: 4, Row: 2}, corner)
	if err != nil {
		t.Fatalf("WallCorner() error = %v", err)
	}
	if nook != want {
		t.Errorf("Nook() = %+v, want wall corner %+v", nook, want)
	}
}

func TestConnectorNookRecedesIntoRearHousing(t *testing.T) {
	cfg, f := parseConfig(t, `
case:
  web-thickness: 4
  rear-housing:
    include: true
`, "", `
connection:
  include: true
  socket-size: [10.9, 13.7, 6.75]
  position:
    corner: NE
    key-alias: back-corner
    prefer-rear-housing: true
`)
	conn := NewConnector(cfg, f)
	corner, err := conn.corner()
	if err != nil {
		t.Fatalf("corner() error = %v", err)
	}
	inset := conn.nookInset(corner)
	// NE grid vector is (1, 1); the inset is half of web plus socket depth,
	// signed away from the corner.
	wantMag := (4 + 13.7) / 2
	if !nearVec(inset, csg.Vec3{X: -wantMag, Y: -wantMag}, 1e-9) {
		t.Errorf("nookInset = %+v, want (-%v, -%v, 0)", inset, wantMag, wantMag)
	}

	nook, err := conn.Nook()
	if err != nil {
		t.Fatalf("Nook() error = %v", err)
	}
	at, err := f.WallCorner(param.DefaultCluster, frame.Coord{Column: 4, Row: 2}, corner)
	if err != nil {
		t.Fatalf("WallCorner() error = %v", err)
	}
	want := at.Add(csg.Vec3{X: -3, Y: -3}).Add(inset)
	if !nearVec(nook, want, 1e-9) {
		t.Errorf("Nook() = %+v, want %+v", nook, want)
	}
}

func TestConnectorSocketInsideMetasocket(t *testing.T) {
	cfg, f := testSetup(t)
	conn := NewConnector(cfg, f)
	meta, err := conn.Metasocket()
	if err != nil {
		t.Fatalf("Metasocket() error = %v", err)
	}
	sock, err := conn.Socket()
	if err != nil {
		t.Fatalf("Socket() error = %v", err)
	}
	mb := csg.BoundingBox(meta)
	sb := csg.BoundingBox(sock)
	// The NE corner faces east after placement, so the insertion axis lands
	// on X; the padded width and height end up on Y and Z. The socket's
	// wire exit pokes through on the insertion axis only.
	if sb.Min.Y < mb.Min.Y || sb.Max.Y > mb.Max.Y {
		t.Errorf("socket Y span [%v, %v] outside metasocket [%v, %v]",
			sb.Min.Y, sb.Max.Y, mb.Min.Y, mb.Max.Y)
	}
	if sb.Min.Z < mb.Min.Z || sb.Max.Z > mb.Max.Z {
		t.Errorf("socket Z span [%v, %v] outside metasocket [%v, %v]",
			sb.Min.Z, sb.Max.Z, mb.Min.Z, mb.Max.Z)
	}
	if sb.Size().X <= mb.Size().X {
		t.Errorf("socket X extent %v not past metasocket %v", sb.Size().X, mb.Size().X)
	}
}

func TestConnectorBadCorner(t *testing.T) {
	cfg, f := parseConfig(t, "", "", `
connection:
  include: true
  socket-size: [10, 10, 6]
  position:
    corner: NOPE
    key-alias: back-corner
`)
	_, err := NewConnector(cfg, f).Socket()
	if err == nil {
		t.Fatal("Socket() succeeded with bad corner token")
	}
	var refErr *param.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("error = %v, want *param.ReferenceError", err)
	}
	if refErr.Path != "connection.position.corner" {
		t.Errorf("error path = %q", refErr.Path)
	}
}

// --- Foot plates ---

func TestFootPlatesLieOnGround(t *testing.T) {
	cfg, f := testSetup(t)
	plates, err := NewFootPlates(cfg, f).Plates()
	if err != nil {
		t.Fatalf("Plates() error = %v", err)
	}
	b := csg.BoundingBox(plates)
	if b.Min.Z != 0 {
		t.Errorf("plates min Z = %v, want 0", b.Min.Z)
	}
	if b.Max.Z != cfg.Case.FootPlates.Height {
		t.Errorf("plates max Z = %v, want %v", b.Max.Z, cfg.Case.FootPlates.Height)
	}
}

func TestFootPointOffsetIsAffine(t *testing.T) {
	cfg, f := testSetup(t)
	fp := NewFootPlates(cfg, f)

	base, err := fp.resolvePoint(param.FootPoint{KeyAlias: "front-left", KeyCorner: "WSW"})
	if err != nil {
		t.Fatalf("resolvePoint() error = %v", err)
	}
	shifted, err := fp.resolvePoint(param.FootPoint{
		KeyAlias:  "front-left",
		KeyCorner: "WSW",
		Offset:    [2]float64{-2.5, 7},
	})
	if err != nil {
		t.Fatalf("resolvePoint() error = %v", err)
	}
	if math.Abs(shifted.X-base.X+2.5) > 1e-9 || math.Abs(shifted.Y-base.Y-7) > 1e-9 {
		t.Errorf("offset displaced point by (%v, %v), want (-2.5, 7)",
			shifted.X-base.X, shifted.Y-base.Y)
	}
}

func TestFootPlatesDegeneratePolygon(t *testing.T) {
	cfg, f := parseConfig(t, `
case:
  web-thickness: 4
  foot-plates:
    include: true
    polygons:
      - points:
          - key-alias: front-left
            key-corner: WSW
          - key-alias: front-right
            key-corner: ESE
`, "", "")
	_, err := NewFootPlates(cfg, f).Plates()
	if err == nil {
		t.Fatal("Plates() succeeded with a two-point polygon")
	}
	var degErr *csg.DegenerateGeometryError
	if !errors.As(err, &degErr) {
		t.Fatalf("error = %v, want *csg.DegenerateGeometryError", err)
	}
}

func TestFootPlatesBadCorner(t *testing.T) {
	cfg, f := parseConfig(t, `
case:
  web-thickness: 4
  foot-plates:
    include: true
    polygons:
      - points:
          - key-alias: front-left
            key-corner: Q
          - key-alias: front-left
            key-corner: SSW
          - key-alias: front-right
            key-corner: SSE
`, "", "")
	_, err := NewFootPlates(cfg, f).Plates()
	if err == nil {
		t.Fatal("Plates() succeeded with bad corner token")
	}
	var refErr *param.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("error = %v, want *param.ReferenceError", err)
	}
	if refErr.Path != "case.foot-plates.polygons" {
		t.Errorf("error path = %q", refErr.Path)
	}
}

// --- USB bay ---

func TestUSBBayPositiveWrapsNegative(t *testing.T) {
	cfg, f := testSetup(t)
	bay := NewUSBBay(cfg, f)
	pos, err := bay.Positive()
	if err != nil {
		t.Fatalf("Positive() error = %v", err)
	}
	neg, err := bay.Negative()
	if err != nil {
		t.Fatalf("Negative() error = %v", err)
	}
	pb := csg.BoundingBox(pos)
	nb := csg.BoundingBox(neg)

	// Same anchor: centers coincide exactly.
	if !nearVec(pb.Center(), nb.Center(), 1e-9) {
		t.Errorf("positive center %+v != negative center %+v", pb.Center(), nb.Center())
	}
	if !pb.Contains(nb) {
		t.Errorf("positive %+v does not contain negative %+v", pb, nb)
	}
	// The holder pads width and height by the wall web; depth matches.
	web := cfg.Case.WebThickness
	if math.Abs(pb.Size().X-nb.Size().X-web) > 1e-9 {
		t.Errorf("width padding = %v, want %v", pb.Size().X-nb.Size().X, web)
	}
	if math.Abs(pb.Size().Z-nb.Size().Z-web) > 1e-9 {
		t.Errorf("height padding = %v, want %v", pb.Size().Z-nb.Size().Z, web)
	}
	if math.Abs(pb.Size().Y-nb.Size().Y) > 1e-9 {
		t.Errorf("depth differs: %v vs %v", pb.Size().Y, nb.Size().Y)
	}
}

// --- Assembly ---

func TestAssemblyPieces(t *testing.T) {
	cfg, f := testSetup(t)
	pieces, err := NewAssembly(cfg, f).Pieces()
	if err != nil {
		t.Fatalf("Pieces() error = %v", err)
	}

	want := map[string]bool{
		"mcu-visualization":     false,
		"mcu-support":           false,
		"mcu-negative":          true,
		"back-plate":            false,
		"back-plate-holes":      true,
		"led-holes":             true,
		"connection-metasocket": false,
		"connection-socket":     true,
		"foot-plates":           false,
	}
	got := map[string]bool{}
	for _, p := range pieces {
		got[p.Name] = p.Negative
		if errs := csg.Validate(p.Shape); errs != nil {
			t.Errorf("piece %s invalid: %v", p.Name, errs)
		}
		if _, ok := p.Shape.(csg.Color); !ok {
			t.Errorf("piece %s is not color-tagged", p.Name)
		}
	}
	for name, negative := range want {
		gotNeg, ok := got[name]
		if !ok {
			t.Errorf("missing piece %s", name)
			continue
		}
		if gotNeg != negative {
			t.Errorf("piece %s negative = %v, want %v", name, gotNeg, negative)
		}
	}
	// The promicro has an onboard connector, so no USB bay.
	if _, ok := got["usb-bay"]; ok {
		t.Error("usb-bay placed for a module with onboard USB")
	}
}

func TestAssemblyUSBBayForOffboardModule(t *testing.T) {
	cfg, f := parseConfig(t, "", `
mcu:
  type: teensy++
  finger-column: 2
`, "")
	pieces, err := NewAssembly(cfg, f).Pieces()
	if err != nil {
		t.Fatalf("Pieces() error = %v", err)
	}
	names := map[string]bool{}
	for _, p := range pieces {
		names[p.Name] = true
	}
	if !names["usb-bay"] || !names["usb-bay-negative"] {
		t.Errorf("usb bay pieces missing for teensy++: %v", names)
	}
}

func TestAssemblyGating(t *testing.T) {
	cfg, f := parseConfig(t, `
case:
  web-thickness: 4
  back-plate:
    include: false
  leds:
    include: false
  foot-plates:
    include: false
`, "", `
connection:
  include: false
`)
	pieces, err := NewAssembly(cfg, f).Pieces()
	if err != nil {
		t.Fatalf("Pieces() error = %v", err)
	}
	for _, p := range pieces {
		switch p.Name {
		case "mcu-visualization", "mcu-support", "mcu-negative":
		default:
			t.Errorf("unexpected piece %s with everything disabled", p.Name)
		}
	}
}

func TestAssemblyPositiveNegativeSplit(t *testing.T) {
	cfg, f := testSetup(t)
	asm := NewAssembly(cfg, f)

	pos, err := asm.Positive()
	if err != nil {
		t.Fatalf("Positive() error = %v", err)
	}
	neg, err := asm.Negative()
	if err != nil {
		t.Fatalf("Negative() error = %v", err)
	}

	posUnion, ok := pos.(csg.Union)
	if !ok {
		t.Fatalf("Positive() is %T, want Union", pos)
	}
	negUnion, ok := neg.(csg.Union)
	if !ok {
		t.Fatalf("Negative() is %T, want Union", neg)
	}
	pieces, err := asm.Pieces()
	if err != nil {
		t.Fatalf("Pieces() error = %v", err)
	}
	if len(posUnion.Shapes)+len(negUnion.Shapes) != len(pieces) {
		t.Errorf("split %d + %d pieces, want %d total",
			len(posUnion.Shapes), len(negUnion.Shapes), len(pieces))
	}
}

func TestAssemblyAbortsOnBrokenFixture(t *testing.T) {
	cfg, f := parseConfig(t, "", `
mcu:
  type: unknown-module
  finger-column: 2
`, "")
	_, err := NewAssembly(cfg, f).Pieces()
	if err == nil {
		t.Fatal("Pieces() succeeded with broken MCU configuration")
	}
	var refErr *param.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("error = %v, want *param.ReferenceError", err)
	}
}

func nearVec(a, b csg.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}
