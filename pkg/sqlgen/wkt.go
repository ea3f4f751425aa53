package sqlgen

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jeffersonsimaogoncalves/go-magellan/pkg/geometry"
)

var wktKeywords = map[geometry.ShapeType]string{
	geometry.ShapePoint:              "POINT",
	geometry.ShapeLineString:         "LINESTRING",
	geometry.ShapePolygon:            "POLYGON",
	geometry.ShapeMultiPoint:         "MULTIPOINT",
	geometry.ShapeMultiLineString:    "MULTILINESTRING",
	geometry.ShapeMultiPolygon:       "MULTIPOLYGON",
	geometry.ShapeGeometryCollection: "GEOMETRYCOLLECTION",
}

// MarshalWKT renders a geometry tree as an OGC well-known-text literal.
// The empty point renders as POINT EMPTY, empty composites as their
// keyword followed by EMPTY. A NaN coordinate anywhere but the whole
// empty-point sentinel is an error.
func MarshalWKT(g geometry.Geometry) (string, error) {
	if g == nil {
		return "", fmt.Errorf("wkt: cannot render a nil geometry")
	}
	var sb strings.Builder
	if err := writeGeometry(&sb, g); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeGeometry(sb *strings.Builder, g geometry.Geometry) error {
	sb.WriteString(wktKeywords[g.ShapeType()])
	if suffix := g.Dimension().Suffix(); suffix != "" {
		sb.WriteByte(' ')
		sb.WriteString(suffix)
	}
	if g.IsEmpty() {
		sb.WriteString(" EMPTY")
		return nil
	}
	if g.Dimension().Suffix() != "" {
		sb.WriteByte(' ')
	}
	return writeBody(sb, g)
}

func writeBody(sb *strings.Builder, g geometry.Geometry) error {
	switch g := g.(type) {
	case *geometry.Point:
		sb.WriteByte('(')
		if err := writeTuple(sb, g); err != nil {
			return err
		}
		sb.WriteByte(')')
	case *geometry.LineString:
		return writeRing(sb, g)
	case *geometry.Polygon:
		return writeRings(sb, g.Rings())
	case *geometry.MultiPoint:
		sb.WriteByte('(')
		for i, p := range g.Points() {
			if i > 0 {
				sb.WriteByte(',')
			}
			// PostGIS emits and accepts empty members inside a MultiPoint
			if p.IsEmpty() {
				sb.WriteString("EMPTY")
				continue
			}
			sb.WriteByte('(')
			if err := writeTuple(sb, p); err != nil {
				return err
			}
			sb.WriteByte(')')
		}
		sb.WriteByte(')')
	case *geometry.MultiLineString:
		sb.WriteByte('(')
		for i, l := range g.LineStrings() {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := writeRing(sb, l); err != nil {
				return err
			}
		}
		sb.WriteByte(')')
	case *geometry.MultiPolygon:
		sb.WriteByte('(')
		for i, p := range g.Polygons() {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := writeRings(sb, p.Rings()); err != nil {
				return err
			}
		}
		sb.WriteByte(')')
	case *geometry.GeometryCollection:
		sb.WriteByte('(')
		for i, child := range g.Geometries() {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := writeGeometry(sb, child); err != nil {
				return err
			}
		}
		sb.WriteByte(')')
	default:
		return fmt.Errorf("wkt: cannot render %T", g)
	}
	return nil
}

func writeRings(sb *strings.Builder, rings []*geometry.LineString) error {
	sb.WriteByte('(')
	for i, ring := range rings {
		if i > 0 {
			sb.WriteByte(',')
		}
		if err := writeRing(sb, ring); err != nil {
			return err
		}
	}
	sb.WriteByte(')')
	return nil
}

func writeRing(sb *strings.Builder, ring *geometry.LineString) error {
	sb.WriteByte('(')
	for i, p := range ring.Points() {
		if i > 0 {
			sb.WriteByte(',')
		}
		if err := writeTuple(sb, p); err != nil {
			return err
		}
	}
	sb.WriteByte(')')
	return nil
}

func writeTuple(sb *strings.Builder, p *geometry.Point) error {
	if err := writeOrdinate(sb, p, p.X()); err != nil {
		return err
	}
	sb.WriteByte(' ')
	if err := writeOrdinate(sb, p, p.Y()); err != nil {
		return err
	}
	if z, ok := p.Z(); ok {
		sb.WriteByte(' ')
		if err := writeOrdinate(sb, p, z); err != nil {
			return err
		}
	}
	if m, ok := p.M(); ok {
		sb.WriteByte(' ')
		if err := writeOrdinate(sb, p, m); err != nil {
			return err
		}
	}
	return nil
}

func writeOrdinate(sb *strings.Builder, p *geometry.Point, v float64) error {
	// the all-NaN empty point never reaches here; a stray NaN does
	if math.IsNaN(v) {
		return fmt.Errorf("wkt: NaN coordinate in a non-empty %s", p.ShapeType())
	}
	sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	return nil
}
