package magellan

import (
	"github.com/jeffersonsimaogoncalves/go-magellan/pkg/ewkb"
	"github.com/jeffersonsimaogoncalves/go-magellan/pkg/geometry"
	"github.com/jeffersonsimaogoncalves/go-magellan/pkg/logger"
	"github.com/jeffersonsimaogoncalves/go-magellan/pkg/sqlgen"
)

// ColumnType is the storage kind of a spatial column.
type ColumnType string

const (
	GeometryColumn  ColumnType = "geometry"
	GeographyColumn ColumnType = "geography"
)

// Defaults applied to column configurations that leave a field unset.
const (
	DefaultSRID int32 = geometry.WGS84
	DefaultType       = GeometryColumn
)

// SQLGenerator produces the SQL constructor calls for a target backend.
// sqlgen.Generator is the PostGIS implementation; the active one is
// selected on the Config.
type SQLGenerator interface {
	GeometrySQL(g geometry.Geometry, srid int32) (string, error)
	GeographySQL(g geometry.Geometry, srid int32) (string, error)
	TransformSQL(expr string, srid int32) string
}

// ColumnConfig declares how one spatial column is stored. Zero fields
// fall back to the Config defaults.
type ColumnConfig struct {
	Type ColumnType
	SRID int32
}

// Config holds everything the write and read paths need: the function
// schema, per-column declarations, defaults for undeclared fields, and
// the SRID mismatch policy. Pass it explicitly; there is no ambient
// state.
type Config struct {
	// Schema qualifies the constructor function names; empty means
	// "public".
	Schema string

	// DefaultSRID and DefaultType fill zero fields of declared columns.
	DefaultSRID int32
	DefaultType ColumnType

	// AutoTransform wraps generated expressions in ST_Transform when the
	// geometry's SRID differs from the column's instead of failing.
	AutoTransform bool

	// Columns maps column keys to their declarations. A lookup for an
	// undeclared key fails with *MissingColumnConfigError.
	Columns map[string]ColumnConfig

	// Generator defaults to the PostGIS sqlgen.Generator for Schema.
	Generator SQLGenerator

	// Logger, when set, receives debug output such as auto-transform
	// decisions.
	Logger logger.Interface
}

// NewConfig returns a Config with the stock defaults: public schema,
// geometry columns, SRID 4326.
func NewConfig() *Config {
	return &Config{
		Schema:      sqlgen.DefaultSchema,
		DefaultSRID: DefaultSRID,
		DefaultType: DefaultType,
		Columns:     map[string]ColumnConfig{},
	}
}

// Declare registers a column configuration and returns the Config for
// chaining.
func (c *Config) Declare(column string, cfg ColumnConfig) *Config {
	if c.Columns == nil {
		c.Columns = map[string]ColumnConfig{}
	}
	c.Columns[column] = cfg
	return c
}

// Column resolves a declared column, filling unset fields from the
// defaults.
func (c *Config) Column(column string) (ColumnConfig, error) {
	cc, ok := c.Columns[column]
	if !ok {
		return ColumnConfig{}, &MissingColumnConfigError{Column: column}
	}
	if cc.Type == "" {
		cc.Type = c.DefaultType
		if cc.Type == "" {
			cc.Type = DefaultType
		}
	}
	if cc.SRID == 0 {
		cc.SRID = c.DefaultSRID
		if cc.SRID == 0 {
			cc.SRID = DefaultSRID
		}
	}
	return cc, nil
}

func (c *Config) generator() SQLGenerator {
	if c.Generator != nil {
		return c.Generator
	}
	return sqlgen.Generator{Schema: c.Schema}
}

// ColumnSQL renders the SQL expression that stores g into the column.
// Geometry collections are rejected on the geography path before any
// text is generated. A geometry without an SRID inherits the column's;
// a conflicting SRID is either transformed in-database (AutoTransform)
// or refused with *SRIDMismatchError.
func (c *Config) ColumnSQL(column string, g geometry.Geometry) (string, error) {
	cc, err := c.Column(column)
	if err != nil {
		return "", err
	}
	if cc.Type == GeographyColumn {
		if _, ok := g.(*geometry.GeometryCollection); ok {
			return "", &GeographyUnsupportedError{Shape: g.ShapeType()}
		}
	}

	srid := cc.SRID
	if g.HasSRID() && g.SRID() != 0 {
		srid = g.SRID()
	}
	if srid != cc.SRID && !c.AutoTransform {
		return "", &SRIDMismatchError{GeometrySRID: srid, ColumnSRID: cc.SRID}
	}

	gen := c.generator()
	var expr string
	switch cc.Type {
	case GeographyColumn:
		expr, err = gen.GeographySQL(g, srid)
	default:
		expr, err = gen.GeometrySQL(g, srid)
	}
	if err != nil {
		return "", err
	}
	if srid != cc.SRID {
		if c.Logger != nil {
			c.Logger.Debug("transforming geometry to column SRID",
				"column", column, "geometry_srid", srid, "column_srid", cc.SRID)
		}
		expr = gen.TransformSQL(expr, cc.SRID)
	}
	return expr, nil
}

// DecodeColumn parses a value read from the column, accepting both raw
// and hex-encoded EWKB. A geometry that arrives without an SRID inherits
// the column's configured one.
func (c *Config) DecodeColumn(column string, src []byte) (geometry.Geometry, error) {
	cc, err := c.Column(column)
	if err != nil {
		return nil, err
	}
	g, err := decodeAny(src)
	if err != nil {
		return nil, err
	}
	if !g.HasSRID() {
		g.SetSRID(cc.SRID)
	}
	return g, nil
}

// decodeAny sniffs the EWKB envelope: a raw buffer starts with the byte
// order marker 0 or 1, anything else is the hex text form.
func decodeAny(src []byte) (geometry.Geometry, error) {
	if len(src) > 0 && (src[0] == 0 || src[0] == 1) {
		return ewkb.Decode(src)
	}
	return ewkb.DecodeHex(string(src))
}
