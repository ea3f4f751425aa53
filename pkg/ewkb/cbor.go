package ewkb

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/jeffersonsimaogoncalves/go-magellan/pkg/geometry"
)

// GeometryTag is the private CBOR tag number wrapping an EWKB byte
// string. It sits in the first-come-first-served tag range.
const GeometryTag uint64 = 27750

// CBOR wraps a geometry so decoded trees can be cached or shipped over a
// CBOR transport without re-reading the database. The tag content is the
// little-endian EWKB encoding of the tree.
type CBOR struct {
	Geometry geometry.Geometry
}

func (c CBOR) MarshalCBOR() ([]byte, error) {
	data, err := Encode(c.Geometry)
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(cbor.Tag{
		Number:  GeometryTag,
		Content: data,
	})
}

func (c *CBOR) UnmarshalCBOR(data []byte) error {
	var tag cbor.Tag
	if err := cbor.Unmarshal(data, &tag); err != nil {
		return err
	}
	if tag.Number != GeometryTag {
		return fmt.Errorf("unexpected tag number: got %d, want %d", tag.Number, GeometryTag)
	}
	raw, ok := tag.Content.([]byte)
	if !ok {
		return fmt.Errorf("unexpected content type: got %T, want []byte", tag.Content)
	}
	g, err := Decode(raw)
	if err != nil {
		return err
	}
	c.Geometry = g
	return nil
}
