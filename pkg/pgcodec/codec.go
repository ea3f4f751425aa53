// Package pgcodec plugs the EWKB codec into a pgx v5 type map, so
// geometry and geography columns scan into and bind from magellan
// values without manual conversion.
package pgcodec

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	magellan "github.com/jeffersonsimaogoncalves/go-magellan"
	"github.com/jeffersonsimaogoncalves/go-magellan/pkg/ewkb"
)

// GeometryScanner is implemented by scan targets; *magellan.Value is the
// canonical one.
type GeometryScanner interface {
	ScanGeometry(v magellan.Value) error
}

// GeometryValuer is implemented by bind sources; magellan.Value is the
// canonical one.
type GeometryValuer interface {
	GeometryValue() (magellan.Value, error)
}

// Codec implements pgtype.Codec for the PostGIS geometry and geography
// types: raw EWKB on the binary protocol, hex EWKB on the text protocol.
type Codec struct{}

// Register adds the codec for the geometry and geography types. The OIDs
// are installation-specific; look them up from pg_type once per pool.
func Register(m *pgtype.Map, geometryOID, geographyOID uint32) {
	m.RegisterType(&pgtype.Type{Name: "geometry", OID: geometryOID, Codec: Codec{}})
	m.RegisterType(&pgtype.Type{Name: "geography", OID: geographyOID, Codec: Codec{}})
}

func (Codec) FormatSupported(format int16) bool {
	return format == pgtype.TextFormatCode || format == pgtype.BinaryFormatCode
}

func (Codec) PreferredFormat() int16 {
	return pgtype.BinaryFormatCode
}

func (Codec) PlanEncode(_ *pgtype.Map, _ uint32, format int16, value any) pgtype.EncodePlan {
	if _, ok := value.(GeometryValuer); !ok {
		return nil
	}

	switch format {
	case pgtype.BinaryFormatCode:
		return encodePlanBinary{}
	case pgtype.TextFormatCode:
		return encodePlanText{}
	}

	return nil
}

type encodePlanBinary struct{}

func (encodePlanBinary) Encode(value any, buf []byte) (newBuf []byte, err error) {
	v, err := value.(GeometryValuer).GeometryValue()
	if err != nil {
		return nil, err
	}
	if !v.Valid {
		return nil, nil
	}

	data, err := ewkb.Encode(v.Geometry)
	if err != nil {
		return nil, err
	}
	return append(buf, data...), nil
}

type encodePlanText struct{}

func (encodePlanText) Encode(value any, buf []byte) (newBuf []byte, err error) {
	v, err := value.(GeometryValuer).GeometryValue()
	if err != nil {
		return nil, err
	}
	if !v.Valid {
		return nil, nil
	}

	s, err := ewkb.EncodeHex(v.Geometry)
	if err != nil {
		return nil, err
	}
	return append(buf, s...), nil
}

func (Codec) PlanScan(_ *pgtype.Map, _ uint32, format int16, target any) pgtype.ScanPlan {
	switch format {
	case pgtype.BinaryFormatCode:
		if _, ok := target.(GeometryScanner); ok {
			return scanPlanBinary{}
		}
	case pgtype.TextFormatCode:
		if _, ok := target.(GeometryScanner); ok {
			return scanPlanText{}
		}
	}

	return nil
}

type scanPlanBinary struct{}

func (scanPlanBinary) Scan(src []byte, dst any) error {
	scanner := dst.(GeometryScanner)

	if src == nil {
		return scanner.ScanGeometry(magellan.Value{})
	}

	g, err := ewkb.Decode(src)
	if err != nil {
		return err
	}
	return scanner.ScanGeometry(magellan.Value{Geometry: g, Valid: true})
}

type scanPlanText struct{}

func (scanPlanText) Scan(src []byte, dst any) error {
	scanner := dst.(GeometryScanner)

	if src == nil {
		return scanner.ScanGeometry(magellan.Value{})
	}

	b, err := hex.DecodeString(string(src))
	if err != nil {
		return err
	}
	g, err := ewkb.Decode(b)
	if err != nil {
		return err
	}
	return scanner.ScanGeometry(magellan.Value{Geometry: g, Valid: true})
}

func (c Codec) DecodeDatabaseSQLValue(m *pgtype.Map, oid uint32, format int16, src []byte) (driver.Value, error) {
	if src == nil {
		return nil, nil
	}

	var v magellan.Value
	if err := codecScan(c, m, oid, format, src, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (c Codec) DecodeValue(m *pgtype.Map, oid uint32, format int16, src []byte) (any, error) {
	if src == nil {
		return nil, nil
	}

	var v magellan.Value
	if err := codecScan(c, m, oid, format, src, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func codecScan(c pgtype.Codec, m *pgtype.Map, oid uint32, format int16, src []byte, dst any) error {
	scanPlan := c.PlanScan(m, oid, format, dst)
	if scanPlan == nil {
		return fmt.Errorf("no scan plan for format %d into %T", format, dst)
	}
	return scanPlan.Scan(src, dst)
}
