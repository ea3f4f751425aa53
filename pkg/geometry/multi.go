package geometry

// MultiPoint is a sequence of points.
type MultiPoint struct {
	base
	points []*Point
}

func NewMultiPoint(points ...*Point) *MultiPoint {
	points = nonNil(points)
	return &MultiPoint{base: base{dim: childDimension(points)}, points: points}
}

func (m *MultiPoint) ShapeType() ShapeType {
	return ShapeMultiPoint
}

func (m *MultiPoint) SetSRID(srid int32) {
	m.setSRID(srid)
	for _, p := range m.points {
		p.SetSRID(srid)
	}
}

func (m *MultiPoint) IsEmpty() bool {
	return len(m.points) == 0
}

func (m *MultiPoint) Points() []*Point {
	return m.points
}

// MultiLineString is a sequence of line strings.
type MultiLineString struct {
	base
	lines []*LineString
}

func NewMultiLineString(lines ...*LineString) *MultiLineString {
	lines = nonNil(lines)
	return &MultiLineString{base: base{dim: childDimension(lines)}, lines: lines}
}

func (m *MultiLineString) ShapeType() ShapeType {
	return ShapeMultiLineString
}

func (m *MultiLineString) SetSRID(srid int32) {
	m.setSRID(srid)
	for _, l := range m.lines {
		l.SetSRID(srid)
	}
}

func (m *MultiLineString) IsEmpty() bool {
	return len(m.lines) == 0
}

func (m *MultiLineString) LineStrings() []*LineString {
	return m.lines
}

// MultiPolygon is a sequence of polygons.
type MultiPolygon struct {
	base
	polygons []*Polygon
}

func NewMultiPolygon(polygons ...*Polygon) *MultiPolygon {
	polygons = nonNil(polygons)
	return &MultiPolygon{base: base{dim: childDimension(polygons)}, polygons: polygons}
}

func (m *MultiPolygon) ShapeType() ShapeType {
	return ShapeMultiPolygon
}

func (m *MultiPolygon) SetSRID(srid int32) {
	m.setSRID(srid)
	for _, p := range m.polygons {
		p.SetSRID(srid)
	}
}

func (m *MultiPolygon) IsEmpty() bool {
	return len(m.polygons) == 0
}

func (m *MultiPolygon) Polygons() []*Polygon {
	return m.polygons
}
