package geometry

import "fmt"

// GeodeticMismatchError is returned when a latitude/longitude/altitude
// accessor is used on a point whose SRID is neither WGS84 nor unspecified.
type GeodeticMismatchError struct {
	SRID int32
}

func (e *GeodeticMismatchError) Error() string {
	return fmt.Sprintf("geodetic accessor on point with SRID %d: only SRID %d (or unspecified) is geodetic", e.SRID, WGS84)
}
