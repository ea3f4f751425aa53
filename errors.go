package magellan

import (
	"fmt"

	"github.com/jeffersonsimaogoncalves/go-magellan/pkg/geometry"
)

// MissingColumnConfigError is returned when a column has no declared
// configuration.
type MissingColumnConfigError struct {
	Column string
}

func (e *MissingColumnConfigError) Error() string {
	return fmt.Sprintf("no configuration declared for column %q", e.Column)
}

// SRIDMismatchError is returned when a geometry's SRID differs from the
// target column's and auto-transform is disabled.
type SRIDMismatchError struct {
	GeometrySRID int32
	ColumnSRID   int32
}

func (e *SRIDMismatchError) Error() string {
	return fmt.Sprintf("geometry SRID %d does not match column SRID %d and auto-transform is disabled", e.GeometrySRID, e.ColumnSRID)
}

// GeographyUnsupportedError is returned when a shape the geography column
// type cannot store is routed to the geography path.
type GeographyUnsupportedError struct {
	Shape geometry.ShapeType
}

func (e *GeographyUnsupportedError) Error() string {
	return fmt.Sprintf("geography columns do not support %s; use a geometry column", e.Shape)
}
