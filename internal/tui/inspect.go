package tui

import (
	"fmt"
	"strings"

	"github.com/jeffersonsimaogoncalves/go-magellan/pkg/ewkb"
	"github.com/jeffersonsimaogoncalves/go-magellan/pkg/geometry"
	"github.com/jeffersonsimaogoncalves/go-magellan/pkg/sqlgen"
)

// inspection is everything the result panel shows for one decoded buffer.
type inspection struct {
	fields [][2]string
	wkt    string
	sql    string
}

// inspect decodes a pasted hex EWKB buffer and prepares the panel data.
func inspect(input string) (*inspection, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\t' || r == '\r' {
			return -1
		}
		return r
	}, input)

	g, err := ewkb.DecodeHex(cleaned)
	if err != nil {
		return nil, err
	}

	srid := "unset"
	if g.HasSRID() {
		srid = fmt.Sprintf("%d", g.SRID())
	}
	ins := &inspection{
		fields: [][2]string{
			{"shape", g.ShapeType().String()},
			{"dimension", g.Dimension().String()},
			{"srid", srid},
			{"empty", fmt.Sprintf("%v", g.IsEmpty())},
			{"size", fmt.Sprintf("%d bytes", len(cleaned)/2)},
		},
	}

	wkt, err := sqlgen.MarshalWKT(g)
	if err != nil {
		return nil, err
	}
	ins.wkt = wkt

	gen := sqlgen.Generator{}
	targetSRID := g.SRID()
	if !g.HasSRID() {
		targetSRID = geometry.WGS84
	}
	if _, ok := g.(*geometry.GeometryCollection); ok {
		ins.sql, err = gen.GeometrySQL(g, targetSRID)
	} else if g.HasSRID() && g.SRID() == geometry.WGS84 {
		ins.sql, err = gen.GeographySQL(g, targetSRID)
	} else {
		ins.sql, err = gen.GeometrySQL(g, targetSRID)
	}
	if err != nil {
		return nil, err
	}
	return ins, nil
}
