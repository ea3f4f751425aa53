package geometry

// Dimension classifies the components of a coordinate tuple. Plain 2D
// tuples carry X and Y only; the Z and M axes are tracked independently,
// so a tuple can be 3D, measured, or both.
type Dimension int

const (
	Dim2D Dimension = iota
	DimZ
	DimM
	DimZM
)

// FromCoordinates derives the Dimension of a coordinate tuple. Only the
// presence of the optional z and m components matters; their values do
// not, so a present-but-NaN component still counts towards the result.
func FromCoordinates(_, _ float64, z, m *float64) Dimension {
	return DimensionFromFlags(z != nil, m != nil)
}

// DimensionFromFlags maps the has-Z/has-M pair to a Dimension.
func DimensionFromFlags(hasZ, hasM bool) Dimension {
	switch {
	case hasZ && hasM:
		return DimZM
	case hasZ:
		return DimZ
	case hasM:
		return DimM
	default:
		return Dim2D
	}
}

// HasZ reports whether tuples of this dimension carry a Z component.
func (d Dimension) HasZ() bool {
	return d == DimZ || d == DimZM
}

// Measured reports whether tuples of this dimension carry an M component.
func (d Dimension) Measured() bool {
	return d == DimM || d == DimZM
}

// Size returns the number of doubles in a single coordinate tuple.
func (d Dimension) Size() int {
	n := 2
	if d.HasZ() {
		n++
	}
	if d.Measured() {
		n++
	}
	return n
}

// Suffix returns the OGC WKT dimension suffix: "", "Z", "M" or "ZM".
func (d Dimension) Suffix() string {
	switch d {
	case DimZ:
		return "Z"
	case DimM:
		return "M"
	case DimZM:
		return "ZM"
	default:
		return ""
	}
}

func (d Dimension) String() string {
	if d == Dim2D {
		return "2D"
	}
	return d.Suffix()
}
