package geometry

// LineString is an ordered sequence of points. Children are expected to
// share the parent's SRID and Dimension; the wire codec enforces that.
type LineString struct {
	base
	points []*Point
}

// NewLineString returns a line string over the given points, nil points
// dropped. The dimension is taken from the first point, 2D when there
// are none.
func NewLineString(points ...*Point) *LineString {
	points = nonNil(points)
	return &LineString{base: base{dim: childDimension(points)}, points: points}
}

func (l *LineString) ShapeType() ShapeType {
	return ShapeLineString
}

func (l *LineString) SetSRID(srid int32) {
	l.setSRID(srid)
	for _, p := range l.points {
		p.SetSRID(srid)
	}
}

func (l *LineString) IsEmpty() bool {
	return len(l.points) == 0
}

func (l *LineString) Points() []*Point {
	return l.points
}
