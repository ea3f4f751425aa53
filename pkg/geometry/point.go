package geometry

import "math"

// Point is a single coordinate tuple. X and Y are always present; Z and M
// existence is tracked by the point's Dimension. The empty point is the
// all-NaN sentinel.
type Point struct {
	base
	x, y, z, m float64
}

// NewPoint returns a 2D point.
func NewPoint(x, y float64) *Point {
	return &Point{x: x, y: y}
}

// NewPointZ returns a 3D point.
func NewPointZ(x, y, z float64) *Point {
	return &Point{base: base{dim: DimZ}, x: x, y: y, z: z}
}

// NewPointM returns a measured 2D point.
func NewPointM(x, y, m float64) *Point {
	return &Point{base: base{dim: DimM}, x: x, y: y, m: m}
}

// NewPointZM returns a measured 3D point.
func NewPointZM(x, y, z, m float64) *Point {
	return &Point{base: base{dim: DimZM}, x: x, y: y, z: z, m: m}
}

// NewEmptyPoint returns the empty point of the given dimension: every
// component the dimension declares is NaN.
func NewEmptyPoint(dim Dimension) *Point {
	nan := math.NaN()
	p := &Point{base: base{dim: dim}, x: nan, y: nan}
	if dim.HasZ() {
		p.z = nan
	}
	if dim.Measured() {
		p.m = nan
	}
	return p
}

// NewGeodeticPoint returns a 2D WGS84 point from latitude and longitude.
func NewGeodeticPoint(latitude, longitude float64) *Point {
	p := NewPoint(longitude, latitude)
	p.setSRID(WGS84)
	return p
}

// NewGeodeticPointZ returns a 3D WGS84 point; altitude maps to Z.
func NewGeodeticPointZ(latitude, longitude, altitude float64) *Point {
	p := NewPointZ(longitude, latitude, altitude)
	p.setSRID(WGS84)
	return p
}

// NewGeodeticPointZM returns a measured 3D WGS84 point.
func NewGeodeticPointZM(latitude, longitude, altitude, m float64) *Point {
	p := NewPointZM(longitude, latitude, altitude, m)
	p.setSRID(WGS84)
	return p
}

func (p *Point) ShapeType() ShapeType {
	return ShapePoint
}

func (p *Point) SetSRID(srid int32) {
	p.setSRID(srid)
}

// IsEmpty reports the NaN sentinel.
func (p *Point) IsEmpty() bool {
	return math.IsNaN(p.x) && math.IsNaN(p.y)
}

func (p *Point) X() float64 {
	return p.x
}

func (p *Point) Y() float64 {
	return p.y
}

// Z returns the Z component and whether the point's dimension declares one.
func (p *Point) Z() (float64, bool) {
	return p.z, p.dim.HasZ()
}

// M returns the M component and whether the point's dimension declares one.
func (p *Point) M() (float64, bool) {
	return p.m, p.dim.Measured()
}

// SetX replaces the X component. The dimension is untouched.
func (p *Point) SetX(x float64) {
	p.x = x
}

// SetY replaces the Y component. The dimension is untouched.
func (p *Point) SetY(y float64) {
	p.y = y
}

// SetZ assigns the Z component and re-derives the dimension, so a 2D
// point becomes 3D.
func (p *Point) SetZ(z float64) {
	p.z = z
	var m *float64
	if p.dim.Measured() {
		m = &p.m
	}
	p.dim = FromCoordinates(p.x, p.y, &z, m)
}

// SetM assigns the M component and re-derives the dimension.
func (p *Point) SetM(m float64) {
	p.m = m
	var z *float64
	if p.dim.HasZ() {
		z = &p.z
	}
	p.dim = FromCoordinates(p.x, p.y, z, &m)
}

// geodetic reports whether the lat/lng accessors apply: SRID unset, 0, or
// WGS84.
func (p *Point) geodetic() bool {
	return !p.hasSRID || p.srid == 0 || p.srid == WGS84
}

// Latitude returns the Y component of a geodetic point. A point in any
// other SRID fails with *GeodeticMismatchError.
func (p *Point) Latitude() (float64, error) {
	if !p.geodetic() {
		return 0, &GeodeticMismatchError{SRID: p.srid}
	}
	return p.y, nil
}

// Longitude returns the X component of a geodetic point.
func (p *Point) Longitude() (float64, error) {
	if !p.geodetic() {
		return 0, &GeodeticMismatchError{SRID: p.srid}
	}
	return p.x, nil
}

// Altitude returns the Z component of a geodetic point. On a point
// without a Z dimension it returns NaN.
func (p *Point) Altitude() (float64, error) {
	if !p.geodetic() {
		return 0, &GeodeticMismatchError{SRID: p.srid}
	}
	if !p.dim.HasZ() {
		return math.NaN(), nil
	}
	return p.z, nil
}

func (p *Point) SetLatitude(latitude float64) error {
	if !p.geodetic() {
		return &GeodeticMismatchError{SRID: p.srid}
	}
	p.y = latitude
	return nil
}

func (p *Point) SetLongitude(longitude float64) error {
	if !p.geodetic() {
		return &GeodeticMismatchError{SRID: p.srid}
	}
	p.x = longitude
	return nil
}

func (p *Point) SetAltitude(altitude float64) error {
	if !p.geodetic() {
		return &GeodeticMismatchError{SRID: p.srid}
	}
	p.SetZ(altitude)
	return nil
}
