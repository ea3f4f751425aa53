package geometry

import "reflect"

// ShapeType identifies one of the OGC shapes. The numeric values are the
// base type codes used by the WKB type word.
type ShapeType uint32

const (
	ShapePoint              ShapeType = 1
	ShapeLineString         ShapeType = 2
	ShapePolygon            ShapeType = 3
	ShapeMultiPoint         ShapeType = 4
	ShapeMultiLineString    ShapeType = 5
	ShapeMultiPolygon       ShapeType = 6
	ShapeGeometryCollection ShapeType = 7
)

var shapeNames = map[ShapeType]string{
	ShapePoint:              "Point",
	ShapeLineString:         "LineString",
	ShapePolygon:            "Polygon",
	ShapeMultiPoint:         "MultiPoint",
	ShapeMultiLineString:    "MultiLineString",
	ShapeMultiPolygon:       "MultiPolygon",
	ShapeGeometryCollection: "GeometryCollection",
}

func (s ShapeType) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "Unknown"
}

// WGS84 is the SRID of the GPS lat/lng coordinate system. SRID 0 means
// "unspecified" and is treated as geodetic for accessor purposes.
const WGS84 int32 = 4326

// Geometry is the closed set of OGC shapes: Point, LineString, Polygon,
// MultiPoint, MultiLineString, MultiPolygon and GeometryCollection. Every
// shape carries an optional SRID and a Dimension next to its coordinate
// payload. The set is sealed; no type outside this package implements it.
type Geometry interface {
	ShapeType() ShapeType

	// HasSRID reports whether an SRID was assigned explicitly. A shape
	// without an SRID inherits whatever default the consumer configures.
	HasSRID() bool
	SRID() int32
	// SetSRID assigns the SRID; on composites it propagates to every
	// child, since a tree always carries a single SRID.
	SetSRID(srid int32)

	Dimension() Dimension
	Is3D() bool
	IsMeasured() bool

	// IsEmpty reports the NaN sentinel on a Point and a zero-length
	// child sequence on every composite.
	IsEmpty() bool

	sealed()
}

// base holds the fields every shape shares.
type base struct {
	srid    int32
	hasSRID bool
	dim     Dimension
}

func (b *base) HasSRID() bool {
	return b.hasSRID
}

func (b *base) SRID() int32 {
	return b.srid
}

func (b *base) setSRID(srid int32) {
	b.srid = srid
	b.hasSRID = true
}

func (b *base) Dimension() Dimension {
	return b.dim
}

func (b *base) Is3D() bool {
	return b.dim.HasZ()
}

func (b *base) IsMeasured() bool {
	return b.dim.Measured()
}

func (b *base) sealed() {}

// childDimension picks the dimension a composite derives from its
// children: the first child's, or 2D when there are none.
func childDimension[G Geometry](children []G) Dimension {
	if len(children) == 0 {
		return Dim2D
	}
	return children[0].Dimension()
}

// nonNil drops nil children, so a stray nil argument to a composite
// constructor cannot poison the tree.
func nonNil[E any](in []*E) []*E {
	out := make([]*E, 0, len(in))
	for _, e := range in {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

// nonNilGeometries is nonNil over the interface, catching both nil
// interface values and typed nil pointers.
func nonNilGeometries(in []Geometry) []Geometry {
	out := make([]Geometry, 0, len(in))
	for _, g := range in {
		if g == nil {
			continue
		}
		if v := reflect.ValueOf(g); v.Kind() == reflect.Pointer && v.IsNil() {
			continue
		}
		out = append(out, g)
	}
	return out
}
