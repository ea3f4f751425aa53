package ewkb

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffersonsimaogoncalves/go-magellan/pkg/geometry"
)

// wkbBuf builds little-endian test buffers field by field.
type wkbBuf struct {
	b []byte
}

func (w *wkbBuf) byte(v byte) *wkbBuf {
	w.b = append(w.b, v)
	return w
}

func (w *wkbBuf) u32(v uint32) *wkbBuf {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	w.b = append(w.b, tmp[:]...)
	return w
}

func (w *wkbBuf) f64(v float64) *wkbBuf {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
	w.b = append(w.b, tmp[:]...)
	return w
}

func TestDecodePointWithSRID(t *testing.T) {
	// little-endian 2D point, has-SRID set, SRID 4326, x=9.1 y=48.7
	buf := new(wkbBuf).
		byte(1).
		u32(uint32(geometry.ShapePoint) | flagSRID).
		u32(4326).
		f64(9.1).
		f64(48.7)

	g, err := Decode(buf.b)
	require.NoError(t, err)

	p, ok := g.(*geometry.Point)
	require.True(t, ok)
	assert.Equal(t, 9.1, p.X())
	assert.Equal(t, 48.7, p.Y())
	assert.Equal(t, geometry.Dim2D, p.Dimension())
	require.True(t, p.HasSRID())
	assert.Equal(t, int32(4326), p.SRID())

	// re-encoding reproduces the input byte for byte
	out, err := Encode(p)
	require.NoError(t, err)
	assert.Equal(t, buf.b, out)
}

func TestDecodeHexPoint(t *testing.T) {
	g, err := DecodeHex("0101000020E610000066666666666622409A99999999594840")
	require.NoError(t, err)

	p := g.(*geometry.Point)
	assert.Equal(t, 9.2, p.X())
	assert.Equal(t, 48.7, p.Y())
	assert.Equal(t, int32(4326), p.SRID())
}

func TestDecodeZMFlags(t *testing.T) {
	tests := []struct {
		name string
		word uint32
		dim  geometry.Dimension
	}{
		{"z", uint32(geometry.ShapePoint) | flagZ, geometry.DimZ},
		{"m", uint32(geometry.ShapePoint) | flagM, geometry.DimM},
		{"zm", uint32(geometry.ShapePoint) | flagZ | flagM, geometry.DimZM},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(wkbBuf).byte(1).u32(tt.word).f64(1).f64(2)
			if tt.dim.HasZ() {
				buf.f64(3)
			}
			if tt.dim.Measured() {
				buf.f64(4)
			}
			g, err := Decode(buf.b)
			require.NoError(t, err)
			assert.Equal(t, tt.dim, g.Dimension())
			assert.False(t, g.HasSRID())
		})
	}
}

func TestDecodeSRIDInheritance(t *testing.T) {
	// MultiPoint with SRID 25832 whose children carry no SRID field
	buf := new(wkbBuf).
		byte(1).
		u32(uint32(geometry.ShapeMultiPoint) | flagSRID).
		u32(25832).
		u32(2).
		byte(1).u32(uint32(geometry.ShapePoint)).f64(1).f64(2).
		byte(1).u32(uint32(geometry.ShapePoint)).f64(3).f64(4)

	g, err := Decode(buf.b)
	require.NoError(t, err)

	mp := g.(*geometry.MultiPoint)
	require.True(t, mp.HasSRID())
	assert.Equal(t, int32(25832), mp.SRID())
	require.Len(t, mp.Points(), 2)
	for _, p := range mp.Points() {
		require.True(t, p.HasSRID(), "children must inherit the outer SRID")
		assert.Equal(t, int32(25832), p.SRID())
	}
}

func TestDecodeNestedCollection(t *testing.T) {
	buf := new(wkbBuf).
		byte(1).
		u32(uint32(geometry.ShapeGeometryCollection)|flagSRID).
		u32(4326).
		u32(2).
		// nested collection holding one point
		byte(1).u32(uint32(geometry.ShapeGeometryCollection)).u32(1).
		byte(1).u32(uint32(geometry.ShapePoint)).f64(1).f64(2).
		// line string
		byte(1).u32(uint32(geometry.ShapeLineString)).u32(2).
		f64(0).f64(0).f64(1).f64(1)

	g, err := Decode(buf.b)
	require.NoError(t, err)

	gc := g.(*geometry.GeometryCollection)
	require.Len(t, gc.Geometries(), 2)

	inner, ok := gc.Geometries()[0].(*geometry.GeometryCollection)
	require.True(t, ok)
	require.Len(t, inner.Geometries(), 1)
	assert.Equal(t, int32(4326), inner.Geometries()[0].SRID())

	line, ok := gc.Geometries()[1].(*geometry.LineString)
	require.True(t, ok)
	assert.Equal(t, int32(4326), line.SRID())
}

func TestDecodeBigEndian(t *testing.T) {
	p := geometry.NewPointZ(9.1, 48.7, 301.5)
	p.SetSRID(4326)

	data, err := Encode(p, Order(binary.BigEndian))
	require.NoError(t, err)
	assert.Equal(t, byte(0), data[0])

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestDecodeMalformed(t *testing.T) {
	validPoint := new(wkbBuf).
		byte(1).
		u32(uint32(geometry.ShapePoint) | flagSRID).
		u32(4326).
		f64(9.1).
		f64(48.7)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty buffer", nil},
		{"invalid byte order marker", []byte{7}},
		{"truncated type word", []byte{1, 1, 0}},
		{"truncated before final coordinate", validPoint.b[:len(validPoint.b)-4]},
		{"truncated srid", new(wkbBuf).byte(1).u32(uint32(geometry.ShapePoint) | flagSRID).b},
		{"unknown shape code", new(wkbBuf).byte(1).u32(99).b},
		{
			"count past buffer end",
			new(wkbBuf).byte(1).u32(uint32(geometry.ShapeLineString)).u32(0xFFFFFFFF).f64(1).f64(2).b,
		},
		{
			"ring count past buffer end",
			new(wkbBuf).byte(1).u32(uint32(geometry.ShapePolygon)).u32(1 << 30).b,
		},
		{
			"multipoint child is not a point",
			new(wkbBuf).byte(1).u32(uint32(geometry.ShapeMultiPoint)).u32(1).
				byte(1).u32(uint32(geometry.ShapeLineString)).u32(0).b,
		},
		{
			"mixed dimension children",
			new(wkbBuf).byte(1).u32(uint32(geometry.ShapeMultiPoint)).u32(1).
				byte(1).u32(uint32(geometry.ShapePoint) | flagZ).f64(1).f64(2).f64(3).b,
		},
		{"trailing bytes", append(append([]byte{}, validPoint.b...), 0xAB)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Decode(tt.data)
			require.Nil(t, g, "a malformed buffer must never yield a partial geometry")
			require.ErrorIs(t, err, ErrMalformed)

			var malformed *MalformedError
			require.ErrorAs(t, err, &malformed)
			assert.NotEmpty(t, malformed.Reason)
		})
	}
}

func TestDecodeHexRejectsBadInput(t *testing.T) {
	_, err := DecodeHex("zz01")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestStrictRings(t *testing.T) {
	open := new(wkbBuf).
		byte(1).
		u32(uint32(geometry.ShapePolygon)).
		u32(1).
		u32(4).
		f64(0).f64(0).
		f64(0).f64(1).
		f64(1).f64(1).
		f64(2).f64(2) // does not return to the start

	t.Run("lenient by default", func(t *testing.T) {
		_, err := Decode(open.b)
		require.NoError(t, err)
	})

	t.Run("strict rejects open rings", func(t *testing.T) {
		_, err := Decode(open.b, WithStrictRings())
		require.ErrorIs(t, err, ErrMalformed)
		assert.Contains(t, err.Error(), "not closed")
	})

	t.Run("strict rejects too few points", func(t *testing.T) {
		short := new(wkbBuf).
			byte(1).
			u32(uint32(geometry.ShapePolygon)).
			u32(1).
			u32(2).
			f64(0).f64(0).
			f64(0).f64(0)
		_, err := Decode(short.b, WithStrictRings())
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("strict accepts closed rings", func(t *testing.T) {
		closed := new(wkbBuf).
			byte(1).
			u32(uint32(geometry.ShapePolygon)).
			u32(1).
			u32(4).
			f64(0).f64(0).
			f64(0).f64(1).
			f64(1).f64(1).
			f64(0).f64(0)
		_, err := Decode(closed.b, WithStrictRings())
		require.NoError(t, err)
	})
}

func TestDecodeEmptyPoint(t *testing.T) {
	buf := new(wkbBuf).
		byte(1).
		u32(uint32(geometry.ShapePoint)).
		f64(math.NaN()).
		f64(math.NaN())

	g, err := Decode(buf.b)
	require.NoError(t, err)
	assert.True(t, g.IsEmpty())
}
