package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointConstructors(t *testing.T) {
	p := NewPoint(1, 2)
	assert.Equal(t, Dim2D, p.Dimension())
	assert.False(t, p.HasSRID())
	assert.False(t, p.IsEmpty())

	pz := NewPointZ(1, 2, 3)
	assert.Equal(t, DimZ, pz.Dimension())
	assert.True(t, pz.Is3D())
	assert.False(t, pz.IsMeasured())

	pm := NewPointM(1, 2, 9)
	assert.Equal(t, DimM, pm.Dimension())
	assert.True(t, pm.IsMeasured())

	pzm := NewPointZM(1, 2, 3, 9)
	assert.Equal(t, DimZM, pzm.Dimension())
	assert.True(t, pzm.Is3D())
	assert.True(t, pzm.IsMeasured())
}

func TestEmptyPoint(t *testing.T) {
	p := NewEmptyPoint(DimZ)
	assert.True(t, p.IsEmpty())
	assert.True(t, math.IsNaN(p.X()))
	assert.True(t, math.IsNaN(p.Y()))
	assert.True(t, p.Is3D())

	z, ok := p.Z()
	require.True(t, ok)
	assert.True(t, math.IsNaN(z))
}

func TestPointSettersRederiveDimension(t *testing.T) {
	p := NewPoint(1, 2)
	require.Equal(t, Dim2D, p.Dimension())

	p.SetX(7)
	p.SetY(8)
	assert.Equal(t, Dim2D, p.Dimension(), "x/y setters must not touch the dimension")

	p.SetZ(3)
	assert.Equal(t, DimZ, p.Dimension())
	z, ok := p.Z()
	require.True(t, ok)
	assert.Equal(t, 3.0, z)

	p.SetM(4)
	assert.Equal(t, DimZM, p.Dimension())
	m, ok := p.M()
	require.True(t, ok)
	assert.Equal(t, 4.0, m)
}

func TestGeodeticAccessors(t *testing.T) {
	t.Run("geodetic point", func(t *testing.T) {
		p := NewGeodeticPoint(52.5, 13.4)
		require.True(t, p.HasSRID())
		assert.Equal(t, WGS84, p.SRID())

		lat, err := p.Latitude()
		require.NoError(t, err)
		assert.Equal(t, 52.5, lat)

		lng, err := p.Longitude()
		require.NoError(t, err)
		assert.Equal(t, 13.4, lng)
	})

	t.Run("geodetic point zm", func(t *testing.T) {
		p := NewGeodeticPointZM(52.5, 13.4, 40.0, 7.0)
		assert.Equal(t, WGS84, p.SRID())
		assert.Equal(t, DimZM, p.Dimension())

		alt, err := p.Altitude()
		require.NoError(t, err)
		assert.Equal(t, 40.0, alt)

		m, ok := p.M()
		require.True(t, ok)
		assert.Equal(t, 7.0, m)
	})

	t.Run("unset SRID is treated as geodetic", func(t *testing.T) {
		p := NewPoint(13.4, 52.5)
		lat, err := p.Latitude()
		require.NoError(t, err)
		assert.Equal(t, 52.5, lat)
	})

	t.Run("SRID 0 is treated as geodetic", func(t *testing.T) {
		p := NewPoint(13.4, 52.5)
		p.SetSRID(0)
		_, err := p.Latitude()
		require.NoError(t, err)
	})

	t.Run("non-geodetic SRID fails and names it", func(t *testing.T) {
		p := NewPoint(1489202.0, 6894025.0)
		p.SetSRID(3857)

		_, err := p.Latitude()
		var geodeticErr *GeodeticMismatchError
		require.ErrorAs(t, err, &geodeticErr)
		assert.Equal(t, int32(3857), geodeticErr.SRID)
		assert.Contains(t, err.Error(), "3857")

		_, err = p.Longitude()
		assert.Error(t, err)
		_, err = p.Altitude()
		assert.Error(t, err)
		assert.Error(t, p.SetLatitude(1))
		assert.Error(t, p.SetLongitude(1))
		assert.Error(t, p.SetAltitude(1))
	})

	t.Run("altitude", func(t *testing.T) {
		p := NewGeodeticPointZ(52.5, 13.4, 40.0)
		alt, err := p.Altitude()
		require.NoError(t, err)
		assert.Equal(t, 40.0, alt)

		flat := NewGeodeticPoint(52.5, 13.4)
		alt, err = flat.Altitude()
		require.NoError(t, err)
		assert.True(t, math.IsNaN(alt))

		require.NoError(t, flat.SetAltitude(12.0))
		assert.Equal(t, DimZ, flat.Dimension())
	})
}
