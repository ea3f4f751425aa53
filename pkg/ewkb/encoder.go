package ewkb

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"github.com/jeffersonsimaogoncalves/go-magellan/pkg/geometry"
)

// EncodeOption adjusts encoding output.
type EncodeOption func(*encoder)

// Order selects the byte order of the output; little-endian is the
// default and matches what PostGIS emits.
func Order(order binary.ByteOrder) EncodeOption {
	return func(e *encoder) { e.order = order }
}

// Encode serializes a geometry tree to extended WKB. The SRID is written
// once, on the outermost type word; nested geometries carry Z/M flags but
// no SRID field.
func Encode(g geometry.Geometry, opts ...EncodeOption) ([]byte, error) {
	if g == nil {
		return nil, fmt.Errorf("ewkb: cannot encode a nil geometry")
	}
	e := &encoder{order: binary.LittleEndian}
	for _, opt := range opts {
		opt(e)
	}
	var buf bytes.Buffer
	if err := e.geometry(&buf, g, true); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeHex returns the uppercase hex form Postgres accepts and emits on
// the text protocol.
func EncodeHex(g geometry.Geometry, opts ...EncodeOption) (string, error) {
	data, err := Encode(g, opts...)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(data)), nil
}

type encoder struct {
	order binary.ByteOrder
}

func (e *encoder) geometry(buf *bytes.Buffer, g geometry.Geometry, root bool) error {
	if e.order == binary.LittleEndian {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}

	typeWord := uint32(g.ShapeType())
	dim := g.Dimension()
	if dim.HasZ() {
		typeWord |= flagZ
	}
	if dim.Measured() {
		typeWord |= flagM
	}
	withSRID := root && g.HasSRID()
	if withSRID {
		typeWord |= flagSRID
	}
	e.uint32(buf, typeWord)
	if withSRID {
		e.uint32(buf, uint32(g.SRID()))
	}

	switch g := g.(type) {
	case *geometry.Point:
		e.point(buf, g)
	case *geometry.LineString:
		e.ring(buf, g)
	case *geometry.Polygon:
		e.uint32(buf, uint32(len(g.Rings())))
		for _, ring := range g.Rings() {
			e.ring(buf, ring)
		}
	case *geometry.MultiPoint:
		e.uint32(buf, uint32(len(g.Points())))
		for _, p := range g.Points() {
			if err := e.geometry(buf, p, false); err != nil {
				return err
			}
		}
	case *geometry.MultiLineString:
		e.uint32(buf, uint32(len(g.LineStrings())))
		for _, l := range g.LineStrings() {
			if err := e.geometry(buf, l, false); err != nil {
				return err
			}
		}
	case *geometry.MultiPolygon:
		e.uint32(buf, uint32(len(g.Polygons())))
		for _, p := range g.Polygons() {
			if err := e.geometry(buf, p, false); err != nil {
				return err
			}
		}
	case *geometry.GeometryCollection:
		e.uint32(buf, uint32(len(g.Geometries())))
		for _, child := range g.Geometries() {
			if child == nil {
				return fmt.Errorf("ewkb: nil geometry inside a GeometryCollection")
			}
			if err := e.geometry(buf, child, false); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("ewkb: cannot encode %T", g)
	}
	return nil
}

// point writes the coordinate tuple only; the header was written by the
// caller. An empty point goes out as NaN coordinates, matching PostGIS.
func (e *encoder) point(buf *bytes.Buffer, p *geometry.Point) {
	e.float64(buf, p.X())
	e.float64(buf, p.Y())
	if z, ok := p.Z(); ok {
		e.float64(buf, z)
	}
	if m, ok := p.M(); ok {
		e.float64(buf, m)
	}
}

func (e *encoder) ring(buf *bytes.Buffer, ring *geometry.LineString) {
	e.uint32(buf, uint32(len(ring.Points())))
	for _, p := range ring.Points() {
		e.point(buf, p)
	}
}

func (e *encoder) uint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	e.order.PutUint32(b[:], v)
	buf.Write(b[:])
}

func (e *encoder) float64(buf *bytes.Buffer, v float64) {
	var b [8]byte
	e.order.PutUint64(b[:], math.Float64bits(v))
	buf.Write(b[:])
}
