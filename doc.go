// The [magellan] package moves geometries between PostGIS and Go values.
//
// # Data model
//
// The [github.com/jeffersonsimaogoncalves/go-magellan/pkg/geometry]
// package holds the closed shape set: Point, LineString, Polygon, the
// three Multi variants and GeometryCollection. Every shape carries an
// optional SRID and a Dimension (2D, Z, M or ZM) next to its coordinate
// payload.
//
// # Wire format
//
// PostGIS stores and returns geometries as extended WKB. The
// [github.com/jeffersonsimaogoncalves/go-magellan/pkg/ewkb] package
// decodes those buffers, in raw or hex form, into geometry trees and
// encodes trees back, byte-compatible with what the database emits.
//
// # Writing values
//
// Writes do not bind binary values; they go through SQL constructor
// calls generated by
// [github.com/jeffersonsimaogoncalves/go-magellan/pkg/sqlgen], so the
// database parses the WKT itself and reprojection can happen in-database
// via ST_Transform.
//
// [Config] ties the two together for a set of declared columns: it
// resolves per-column type and SRID, applies the auto-transform policy,
// and rejects shapes a column kind cannot store. [Value] adapts single
// geometries to database/sql, and
// [github.com/jeffersonsimaogoncalves/go-magellan/pkg/pgcodec] registers
// the codec with a pgx connection's type map.
package magellan
