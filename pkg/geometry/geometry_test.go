package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeEmptiness(t *testing.T) {
	assert.True(t, NewLineString().IsEmpty())
	assert.True(t, NewPolygon().IsEmpty())
	assert.True(t, NewMultiPoint().IsEmpty())
	assert.True(t, NewMultiLineString().IsEmpty())
	assert.True(t, NewMultiPolygon().IsEmpty())
	assert.True(t, NewGeometryCollection().IsEmpty())

	l := NewLineString(NewPoint(0, 0), NewPoint(1, 1))
	assert.False(t, l.IsEmpty())
}

func TestCompositeDimensionFromChildren(t *testing.T) {
	l := NewLineString(NewPointZ(0, 0, 1), NewPointZ(1, 1, 2))
	assert.Equal(t, DimZ, l.Dimension())
	assert.True(t, l.Is3D())

	mp := NewMultiPoint(NewPointM(0, 0, 5))
	assert.Equal(t, DimM, mp.Dimension())
	assert.True(t, mp.IsMeasured())

	empty := NewGeometryCollection()
	assert.Equal(t, Dim2D, empty.Dimension())
}

func TestConstructorsDropNilChildren(t *testing.T) {
	assert.True(t, NewLineString(nil).IsEmpty())
	assert.True(t, NewPolygon(nil).IsEmpty())
	assert.True(t, NewMultiPoint(nil).IsEmpty())
	assert.True(t, NewMultiLineString(nil).IsEmpty())
	assert.True(t, NewMultiPolygon(nil).IsEmpty())
	assert.True(t, NewGeometryCollection(nil).IsEmpty())

	// a typed nil inside the interface is dropped too
	var p *Point
	assert.True(t, NewGeometryCollection(p).IsEmpty())

	l := NewLineString(nil, NewPointZ(1, 2, 3))
	require.Len(t, l.Points(), 1)
	assert.Equal(t, DimZ, l.Dimension())
}

func TestSetSRIDPropagates(t *testing.T) {
	ring := NewLineString(NewPoint(0, 0), NewPoint(0, 1), NewPoint(1, 1), NewPoint(0, 0))
	poly := NewPolygon(ring)
	collection := NewGeometryCollection(poly, NewPoint(5, 5))

	collection.SetSRID(25832)

	require.True(t, collection.HasSRID())
	assert.Equal(t, int32(25832), collection.SRID())
	assert.Equal(t, int32(25832), poly.SRID())
	assert.Equal(t, int32(25832), ring.SRID())
	for _, p := range ring.Points() {
		assert.Equal(t, int32(25832), p.SRID())
	}
}

func TestPolygonRings(t *testing.T) {
	exterior := NewLineString(NewPoint(0, 0), NewPoint(0, 4), NewPoint(4, 4), NewPoint(0, 0))
	hole := NewLineString(NewPoint(1, 1), NewPoint(1, 2), NewPoint(2, 2), NewPoint(1, 1))
	poly := NewPolygon(exterior, hole)

	assert.Same(t, exterior, poly.ExteriorRing())
	require.Len(t, poly.InteriorRings(), 1)
	assert.Same(t, hole, poly.InteriorRings()[0])

	assert.Nil(t, NewPolygon().ExteriorRing())
	assert.Nil(t, NewPolygon(exterior).InteriorRings())
}

func TestShapeTypeNames(t *testing.T) {
	assert.Equal(t, "Point", ShapePoint.String())
	assert.Equal(t, "GeometryCollection", ShapeGeometryCollection.String())
	assert.Equal(t, "Unknown", ShapeType(42).String())
}
