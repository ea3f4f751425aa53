// Package sqlgen renders geometry trees as the SQL constructor calls the
// PostGIS geometry and geography column types accept.
package sqlgen

import (
	"fmt"

	"github.com/jeffersonsimaogoncalves/go-magellan/pkg/geometry"
)

// DefaultSchema is where a stock PostGIS install puts its functions.
const DefaultSchema = "public"

// Generator builds schema-qualified constructor calls. It emits whatever
// SRID it is handed; reconciling the geometry's SRID with the target
// column's is the caller's job, as is keeping GeometryCollection off the
// geography path.
type Generator struct {
	Schema string
}

func (g Generator) schema() string {
	if g.Schema == "" {
		return DefaultSchema
	}
	return g.Schema
}

// GeometrySQL returns `<schema>.ST_GeomFromText('<wkt>', <srid>)`.
func (g Generator) GeometrySQL(geom geometry.Geometry, srid int32) (string, error) {
	wkt, err := MarshalWKT(geom)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s.ST_GeomFromText('%s', %d)", g.schema(), wkt, srid), nil
}

// GeographySQL returns `<schema>.ST_GeogFromText('<wkt>', <srid>)`.
func (g Generator) GeographySQL(geom geometry.Geometry, srid int32) (string, error) {
	wkt, err := MarshalWKT(geom)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s.ST_GeogFromText('%s', %d)", g.schema(), wkt, srid), nil
}

// TransformSQL wraps an already generated expression in the database's
// reprojection function.
func (g Generator) TransformSQL(expr string, srid int32) string {
	return fmt.Sprintf("%s.ST_Transform(%s, %d)", g.schema(), expr, srid)
}
