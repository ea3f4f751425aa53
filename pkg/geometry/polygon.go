package geometry

// Polygon is a sequence of linear rings. Ring 0 is the exterior boundary,
// the remaining rings are holes.
type Polygon struct {
	base
	rings []*LineString
}

// NewPolygon returns a polygon over the given rings, nil rings dropped.
func NewPolygon(rings ...*LineString) *Polygon {
	rings = nonNil(rings)
	return &Polygon{base: base{dim: childDimension(rings)}, rings: rings}
}

func (p *Polygon) ShapeType() ShapeType {
	return ShapePolygon
}

func (p *Polygon) SetSRID(srid int32) {
	p.setSRID(srid)
	for _, r := range p.rings {
		r.SetSRID(srid)
	}
}

func (p *Polygon) IsEmpty() bool {
	return len(p.rings) == 0
}

func (p *Polygon) Rings() []*LineString {
	return p.rings
}

// ExteriorRing returns ring 0, or nil for the empty polygon.
func (p *Polygon) ExteriorRing() *LineString {
	if len(p.rings) == 0 {
		return nil
	}
	return p.rings[0]
}

// InteriorRings returns the hole rings.
func (p *Polygon) InteriorRings() []*LineString {
	if len(p.rings) < 2 {
		return nil
	}
	return p.rings[1:]
}
