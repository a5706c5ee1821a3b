// Package param defines the immutable configuration consumed by the fixture
// modules. Configuration is loaded once, from YAML or a script, finalized
// (defaults applied, derived lookups precomputed), and then passed by
// reference into every placement function. There is no ambient or global
// parameter state.
package param

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jeremy-asher/dactyl-keyboard/pkg/compass"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/csg"
)

// DefaultCluster is the key cluster assumed when an alias omits one.
const DefaultCluster = "finger"

// Config is the complete, immutable parameter tree for one generation pass.
type Config struct {
	Matrix     Matrix            `yaml:"matrix"`
	KeyAliases map[string]KeyRef `yaml:"key-aliases"`
	Case       Case              `yaml:"case"`
	MCU        MCU               `yaml:"mcu"`
	Connection Connection        `yaml:"connection"`
}

// Matrix describes the key matrix layout: a list of columns, each with a
// number of rows. The coordinate engine owns actual key positions; the
// matrix here only answers "which rows exist in which column".
type Matrix struct {
	Columns []Column `yaml:"columns"`
}

// Column is one key-matrix column.
type Column struct {
	Rows int `yaml:"rows"`
}

// KeyRef is the resolution of a key alias: a cluster identifier plus a
// matrix coordinate.
type KeyRef struct {
	Cluster string `yaml:"cluster"`
	Column  int    `yaml:"column"`
	Row     int    `yaml:"row"`
}

// Case groups the case-body fixture options.
type Case struct {
	WebThickness float64     `yaml:"web-thickness"`
	RearHousing  RearHousing `yaml:"rear-housing"`
	BackPlate    BackPlate   `yaml:"back-plate"`
	LEDs         LEDs        `yaml:"leds"`
	FootPlates   FootPlates  `yaml:"foot-plates"`
}

// RearHousing toggles the rear housing shell.
type RearHousing struct {
	Include bool `yaml:"include"`
}

// BackPlate configures the beam mounting plate.
type BackPlate struct {
	Include    bool       `yaml:"include"`
	Position   Anchor     `yaml:"position"`
	BeamHeight float64    `yaml:"beam-height"`
	Fasteners  Fasteners  `yaml:"fasteners"`
}

// Anchor is an alias-addressed position with an optional offset.
type Anchor struct {
	KeyAlias string     `yaml:"key-alias"`
	Offset   [3]float64 `yaml:"offset"`
}

// Fasteners configures the back-plate fastener pair.
type Fasteners struct {
	Diameter float64 `yaml:"diameter"`
	Distance float64 `yaml:"distance"`
	Bosses   bool    `yaml:"bosses"`
}

// LEDs configures the west-wall LED strip.
type LEDs struct {
	Include         bool    `yaml:"include"`
	Amount          int     `yaml:"amount"`
	Interval        float64 `yaml:"interval"`
	EmitterDiameter float64 `yaml:"emitter-diameter"`
	HousingSize     float64 `yaml:"housing-size"`
}

// FootPlates configures the support-foot polygons.
type FootPlates struct {
	Include  bool          `yaml:"include"`
	Height   float64       `yaml:"height"`
	Polygons []FootPolygon `yaml:"polygons"`
}

// FootPolygon is one foot plate, defined by an ordered point list.
type FootPolygon struct {
	Points []FootPoint `yaml:"points"`
}

// FootPoint references a key corner with an optional 2D offset.
type FootPoint struct {
	KeyAlias  string     `yaml:"key-alias"`
	KeyCorner string     `yaml:"key-corner"`
	Offset    [2]float64 `yaml:"offset"`
}

// MCU configures the microcontroller bay.
type MCU struct {
	Type               string     `yaml:"type"`
	Offset             [3]float64 `yaml:"offset"`
	ConnectorDirection string     `yaml:"connector-direction"`
	FingerColumn       int        `yaml:"finger-column"`
}

// Connection configures the external signal-connector socket.
type Connection struct {
	Include    bool               `yaml:"include"`
	SocketSize [3]float64         `yaml:"socket-size"`
	Position   ConnectionPosition `yaml:"position"`
}

// ConnectionPosition places the socket nook.
type ConnectionPosition struct {
	Corner            string     `yaml:"corner"`
	KeyAlias          string     `yaml:"key-alias"`
	PreferRearHousing bool       `yaml:"prefer-rear-housing"`
	Rotation          [3]float64 `yaml:"rotation"`
	Offset            [3]float64 `yaml:"offset"`
}

// Load reads and finalizes a YAML configuration file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("param: reading %s: %w", path, err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("param: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration bytes and finalizes the result.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := cfg.finalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// finalize applies defaults and validates cross-references that every
// fixture depends on. Fixture-specific references (aliases, directions)
// are resolved lazily so one broken fixture does not abort the rest.
func (c *Config) finalize() error {
	if c.Case.WebThickness == 0 {
		c.Case.WebThickness = 4
	}
	if c.Case.BackPlate.BeamHeight == 0 {
		c.Case.BackPlate.BeamHeight = 20
	}
	if c.Case.FootPlates.Height == 0 {
		c.Case.FootPlates.Height = 4
	}
	if c.MCU.Type == "" {
		c.MCU.Type = "promicro"
	}
	if c.MCU.ConnectorDirection == "" {
		c.MCU.ConnectorDirection = "N"
	}
	if c.Case.WebThickness < 0 {
		return refErrf("case.web-thickness", "must be positive, got %.3f", c.Case.WebThickness)
	}
	for name, ref := range c.KeyAliases {
		if ref.Cluster == "" {
			ref.Cluster = DefaultCluster
			c.KeyAliases[name] = ref
		}
	}
	for name, ref := range c.KeyAliases {
		if ref.Column < 0 || ref.Column >= len(c.Matrix.Columns) {
			return refErrf("key-aliases."+name, "column %d outside matrix", ref.Column)
		}
		if ref.Row < 0 || ref.Row >= c.Matrix.Columns[ref.Column].Rows {
			return refErrf("key-aliases."+name, "row %d outside column %d", ref.Row, ref.Column)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Derived lookups
// ---------------------------------------------------------------------------

// RowsInColumn returns the number of rows in the given matrix column, or 0
// if the column does not exist.
func (c *Config) RowsInColumn(col int) int {
	if col < 0 || col >= len(c.Matrix.Columns) {
		return 0
	}
	return c.Matrix.Columns[col].Rows
}

// LastRow returns the index of the last row in a column. A missing or empty
// column is a ReferenceError: geometry anchored to it cannot be computed.
func (c *Config) LastRow(col int) (int, error) {
	rows := c.RowsInColumn(col)
	if rows == 0 {
		return 0, refErrf(fmt.Sprintf("matrix.columns[%d]", col), "column has no rows")
	}
	return rows - 1, nil
}

// ResolveAlias resolves a symbolic key alias to its cluster and coordinate.
func (c *Config) ResolveAlias(name string) (KeyRef, error) {
	ref, ok := c.KeyAliases[name]
	if !ok {
		return KeyRef{}, refErrf("key-aliases."+name, "alias not defined")
	}
	return ref, nil
}

// ConnectorDirection parses the MCU connector direction token.
func (c *Config) ConnectorDirection() (compass.Direction, error) {
	d, err := compass.Parse(c.MCU.ConnectorDirection)
	if err != nil {
		return d, refErrf("mcu.connector-direction", "%v", err)
	}
	return d, nil
}

// vec3 converts a YAML triple to a csg vector.
func vec3(a [3]float64) csg.Vec3 {
	return csg.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// MCUOffset returns the configured MCU bay offset.
func (c *Config) MCUOffset() csg.Vec3 { return vec3(c.MCU.Offset) }

// BackPlateOffset returns the configured back-plate offset.
func (c *Config) BackPlateOffset() csg.Vec3 { return vec3(c.Case.BackPlate.Position.Offset) }

// SocketSize returns the signal-connector socket dimensions.
func (c *Config) SocketSize() csg.Vec3 { return vec3(c.Connection.SocketSize) }

// ConnectionRotation returns the socket pre-rotation in radians.
func (c *Config) ConnectionRotation() csg.Vec3 { return vec3(c.Connection.Position.Rotation) }

// ConnectionOffset returns the socket post-placement offset.
func (c *Config) ConnectionOffset() csg.Vec3 { return vec3(c.Connection.Position.Offset) }
