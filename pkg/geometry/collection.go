package geometry

// GeometryCollection holds arbitrary, possibly mixed and nested shapes.
// Unlike the Multi* shapes it is not accepted by geography columns; the
// consumer rejects it before generating geography SQL.
type GeometryCollection struct {
	base
	geometries []Geometry
}

func NewGeometryCollection(geometries ...Geometry) *GeometryCollection {
	geometries = nonNilGeometries(geometries)
	return &GeometryCollection{base: base{dim: childDimension(geometries)}, geometries: geometries}
}

func (c *GeometryCollection) ShapeType() ShapeType {
	return ShapeGeometryCollection
}

func (c *GeometryCollection) SetSRID(srid int32) {
	c.setSRID(srid)
	for _, g := range c.geometries {
		g.SetSRID(srid)
	}
}

func (c *GeometryCollection) IsEmpty() bool {
	return len(c.geometries) == 0
}

func (c *GeometryCollection) Geometries() []Geometry {
	return c.geometries
}
