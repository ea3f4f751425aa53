package magellan

import (
	"database/sql/driver"
	"fmt"

	"github.com/jeffersonsimaogoncalves/go-magellan/pkg/ewkb"
	"github.com/jeffersonsimaogoncalves/go-magellan/pkg/geometry"
)

// Value adapts a geometry tree to database/sql. It scans both raw and
// hex EWKB and binds as hex EWKB, which the PostGIS input functions
// accept directly. The zero Value is SQL NULL.
type Value struct {
	Geometry geometry.Geometry
	Valid    bool
}

// NewValue wraps a geometry for binding.
func NewValue(g geometry.Geometry) Value {
	return Value{Geometry: g, Valid: g != nil}
}

func (v Value) Value() (driver.Value, error) {
	if !v.Valid || v.Geometry == nil {
		return nil, nil
	}
	return ewkb.EncodeHex(v.Geometry)
}

func (v *Value) Scan(src any) error {
	switch src := src.(type) {
	case nil:
		*v = Value{}
		return nil
	case []byte:
		g, err := decodeAny(src)
		if err != nil {
			return err
		}
		*v = Value{Geometry: g, Valid: true}
		return nil
	case string:
		g, err := ewkb.DecodeHex(src)
		if err != nil {
			return err
		}
		*v = Value{Geometry: g, Valid: true}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into a geometry value", src)
	}
}

// ScanGeometry and GeometryValue let the pgx codec move Values without
// reflection.
func (v *Value) ScanGeometry(src Value) error {
	*v = src
	return nil
}

func (v Value) GeometryValue() (Value, error) {
	return v, nil
}
