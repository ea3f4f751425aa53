package ewkb

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/jeffersonsimaogoncalves/go-magellan/pkg/geometry"
)

// EWKB type word flags. PostGIS stores the Z/M/SRID markers in the top
// bits of the 4-byte type word; the low bits are the base shape code.
const (
	flagZ    uint32 = 0x80000000
	flagM    uint32 = 0x40000000
	flagSRID uint32 = 0x20000000

	flagMask = flagZ | flagM | flagSRID
)

// Option adjusts decoding strictness.
type Option func(*decoder)

// WithStrictRings makes Decode reject polygons whose rings are not
// closed (first coordinate != last coordinate).
func WithStrictRings() Option {
	return func(d *decoder) { d.strictRings = true }
}

// Decode parses a PostGIS extended WKB buffer into a geometry tree.
// Declared element counts are treated as untrusted and bounded against
// the remaining buffer before anything is allocated. Failures wrap
// ErrMalformed and never return a partially built tree.
func Decode(data []byte, opts ...Option) (geometry.Geometry, error) {
	d := &decoder{buf: data}
	for _, opt := range opts {
		opt(d)
	}
	g, err := d.geometry(nil)
	if err != nil {
		return nil, err
	}
	if d.pos != len(d.buf) {
		return nil, d.malformed("%d trailing bytes after geometry", len(d.buf)-d.pos)
	}
	return g, nil
}

// DecodeHex parses the hex form Postgres uses on the text protocol.
func DecodeHex(s string, opts ...Option) (geometry.Geometry, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, &MalformedError{Reason: fmt.Sprintf("invalid hex: %v", err)}
	}
	return Decode(data, opts...)
}

type decoder struct {
	buf         []byte
	pos         int
	strictRings bool
}

// geometry decodes one complete geometry starting at the current offset.
// srid is the SRID inherited from the enclosing geometry; nested shapes
// never carry their own SRID field, the outermost one is threaded down.
func (d *decoder) geometry(srid *int32) (geometry.Geometry, error) {
	order, err := d.byteOrder()
	if err != nil {
		return nil, err
	}
	typeWord, err := d.uint32(order)
	if err != nil {
		return nil, err
	}

	dim := geometry.DimensionFromFlags(typeWord&flagZ != 0, typeWord&flagM != 0)
	if typeWord&flagSRID != 0 {
		v, err := d.int32(order)
		if err != nil {
			return nil, err
		}
		srid = &v
	}

	var g geometry.Geometry
	switch code := geometry.ShapeType(typeWord &^ flagMask); code {
	case geometry.ShapePoint:
		g, err = d.point(order, dim)
	case geometry.ShapeLineString:
		g, err = d.lineString(order, dim)
	case geometry.ShapePolygon:
		g, err = d.polygon(order, dim)
	case geometry.ShapeMultiPoint:
		g, err = d.multiPoint(order, dim, srid)
	case geometry.ShapeMultiLineString:
		g, err = d.multiLineString(order, dim, srid)
	case geometry.ShapeMultiPolygon:
		g, err = d.multiPolygon(order, dim, srid)
	case geometry.ShapeGeometryCollection:
		g, err = d.collection(order, dim, srid)
	default:
		return nil, d.malformed("unknown geometry type code %d", uint32(code))
	}
	if err != nil {
		return nil, err
	}
	if srid != nil {
		g.SetSRID(*srid)
	}
	return g, nil
}

func (d *decoder) point(order binary.ByteOrder, dim geometry.Dimension) (*geometry.Point, error) {
	x, err := d.float64(order)
	if err != nil {
		return nil, err
	}
	y, err := d.float64(order)
	if err != nil {
		return nil, err
	}
	z, m := math.NaN(), math.NaN()
	if dim.HasZ() {
		if z, err = d.float64(order); err != nil {
			return nil, err
		}
	}
	if dim.Measured() {
		if m, err = d.float64(order); err != nil {
			return nil, err
		}
	}
	switch dim {
	case geometry.DimZ:
		return geometry.NewPointZ(x, y, z), nil
	case geometry.DimM:
		return geometry.NewPointM(x, y, m), nil
	case geometry.DimZM:
		return geometry.NewPointZM(x, y, z, m), nil
	default:
		return geometry.NewPoint(x, y), nil
	}
}

// ring reads a count-prefixed coordinate sequence. Both line strings and
// polygon rings use this layout.
func (d *decoder) ring(order binary.ByteOrder, dim geometry.Dimension) (*geometry.LineString, error) {
	n, err := d.count(order, "coordinate tuples", dim.Size()*8)
	if err != nil {
		return nil, err
	}
	points := make([]*geometry.Point, n)
	for i := range points {
		if points[i], err = d.point(order, dim); err != nil {
			return nil, err
		}
	}
	return geometry.NewLineString(points...), nil
}

func (d *decoder) lineString(order binary.ByteOrder, dim geometry.Dimension) (*geometry.LineString, error) {
	return d.ring(order, dim)
}

func (d *decoder) polygon(order binary.ByteOrder, dim geometry.Dimension) (*geometry.Polygon, error) {
	// a ring is at least its own 4-byte count
	n, err := d.count(order, "rings", 4)
	if err != nil {
		return nil, err
	}
	rings := make([]*geometry.LineString, n)
	for i := range rings {
		if rings[i], err = d.ring(order, dim); err != nil {
			return nil, err
		}
		if d.strictRings {
			if err := d.checkClosed(rings[i]); err != nil {
				return nil, err
			}
		}
	}
	return geometry.NewPolygon(rings...), nil
}

func (d *decoder) checkClosed(ring *geometry.LineString) error {
	points := ring.Points()
	if len(points) == 0 {
		return nil
	}
	if len(points) < 4 {
		return d.malformed("ring has %d points, a closed ring needs at least 4", len(points))
	}
	first, last := points[0], points[len(points)-1]
	if first.X() != last.X() || first.Y() != last.Y() {
		return d.malformed("ring is not closed: starts at (%v %v), ends at (%v %v)",
			first.X(), first.Y(), last.X(), last.Y())
	}
	return nil
}

// child decodes a nested geometry and checks the composite invariants:
// the child is a complete WKB geometry without an SRID field of its own,
// and its dimension matches the parent's.
func (d *decoder) child(srid *int32, dim geometry.Dimension, parent geometry.ShapeType) (geometry.Geometry, error) {
	g, err := d.geometry(srid)
	if err != nil {
		return nil, err
	}
	if g.Dimension() != dim {
		return nil, d.malformed("%s child has dimension %s, parent declares %s",
			parent, g.Dimension(), dim)
	}
	return g, nil
}

// minimum size of a nested geometry: byte order byte plus type word.
const minChildSize = 5

func (d *decoder) multiPoint(order binary.ByteOrder, dim geometry.Dimension, srid *int32) (*geometry.MultiPoint, error) {
	n, err := d.count(order, "points", minChildSize)
	if err != nil {
		return nil, err
	}
	points := make([]*geometry.Point, n)
	for i := range points {
		g, err := d.child(srid, dim, geometry.ShapeMultiPoint)
		if err != nil {
			return nil, err
		}
		p, ok := g.(*geometry.Point)
		if !ok {
			return nil, d.malformed("MultiPoint child is a %s, want Point", g.ShapeType())
		}
		points[i] = p
	}
	return geometry.NewMultiPoint(points...), nil
}

func (d *decoder) multiLineString(order binary.ByteOrder, dim geometry.Dimension, srid *int32) (*geometry.MultiLineString, error) {
	n, err := d.count(order, "line strings", minChildSize)
	if err != nil {
		return nil, err
	}
	lines := make([]*geometry.LineString, n)
	for i := range lines {
		g, err := d.child(srid, dim, geometry.ShapeMultiLineString)
		if err != nil {
			return nil, err
		}
		l, ok := g.(*geometry.LineString)
		if !ok {
			return nil, d.malformed("MultiLineString child is a %s, want LineString", g.ShapeType())
		}
		lines[i] = l
	}
	return geometry.NewMultiLineString(lines...), nil
}

func (d *decoder) multiPolygon(order binary.ByteOrder, dim geometry.Dimension, srid *int32) (*geometry.MultiPolygon, error) {
	n, err := d.count(order, "polygons", minChildSize)
	if err != nil {
		return nil, err
	}
	polygons := make([]*geometry.Polygon, n)
	for i := range polygons {
		g, err := d.child(srid, dim, geometry.ShapeMultiPolygon)
		if err != nil {
			return nil, err
		}
		p, ok := g.(*geometry.Polygon)
		if !ok {
			return nil, d.malformed("MultiPolygon child is a %s, want Polygon", g.ShapeType())
		}
		polygons[i] = p
	}
	return geometry.NewMultiPolygon(polygons...), nil
}

func (d *decoder) collection(order binary.ByteOrder, dim geometry.Dimension, srid *int32) (*geometry.GeometryCollection, error) {
	n, err := d.count(order, "geometries", minChildSize)
	if err != nil {
		return nil, err
	}
	geometries := make([]geometry.Geometry, n)
	for i := range geometries {
		if geometries[i], err = d.child(srid, dim, geometry.ShapeGeometryCollection); err != nil {
			return nil, err
		}
	}
	return geometry.NewGeometryCollection(geometries...), nil
}

func (d *decoder) malformed(format string, args ...any) *MalformedError {
	return &MalformedError{Reason: fmt.Sprintf(format, args...), Offset: d.pos}
}

func (d *decoder) remaining() int {
	return len(d.buf) - d.pos
}

func (d *decoder) byteOrder() (binary.ByteOrder, error) {
	if d.remaining() < 1 {
		return nil, d.malformed("buffer ends before byte order marker")
	}
	b := d.buf[d.pos]
	d.pos++
	switch b {
	case 0:
		return binary.BigEndian, nil
	case 1:
		return binary.LittleEndian, nil
	default:
		return nil, d.malformed("invalid byte order marker %d", b)
	}
}

func (d *decoder) uint32(order binary.ByteOrder) (uint32, error) {
	if d.remaining() < 4 {
		return 0, d.malformed("buffer ends inside a 4-byte field")
	}
	v := order.Uint32(d.buf[d.pos:])
	d.pos += 4
	return v, nil
}

func (d *decoder) int32(order binary.ByteOrder) (int32, error) {
	v, err := d.uint32(order)
	return int32(v), err
}

func (d *decoder) float64(order binary.ByteOrder) (float64, error) {
	if d.remaining() < 8 {
		return 0, d.malformed("buffer ends inside a coordinate value")
	}
	v := math.Float64frombits(order.Uint64(d.buf[d.pos:]))
	d.pos += 8
	return v, nil
}

// count reads a 4-byte element count and rejects values the remaining
// buffer cannot possibly hold, so a corrupted count never drives an
// over-allocation.
func (d *decoder) count(order binary.ByteOrder, what string, minElemSize int) (int, error) {
	n, err := d.uint32(order)
	if err != nil {
		return 0, err
	}
	if int64(n)*int64(minElemSize) > int64(d.remaining()) {
		return 0, d.malformed("declared %d %s exceeds the %d remaining bytes", n, what, d.remaining())
	}
	return int(n), nil
}
