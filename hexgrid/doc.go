// Package hexgrid implements the coordinate algebra for a 19-tile
// hexagonal settlement board, using the packed two-hex-digit coordinate
// system described in Robert S. Thomas's JSettlers dissertation
// (Appendix A).
//
// What:
//
//   - Three coexisting coordinate spaces — tiles, nodes (corners) and
//     edges (sides) — aliased over the same integers and disambiguated
//     by a LocType tag.
//   - A canonical bijection between tile identifiers 1..19 and tile
//     coordinates, laid out in 3-4-5-4-3 rows with identifiers running
//     counter-clockwise from the north-west corner.
//   - Fixed delta↔direction topology tables for the tile↔tile,
//     tile↔node and tile↔edge relations.
//   - Adjacency queries, nearest-tile reverse lookup, legal-coordinate
//     sets, coastal detection, and location formatting built on top.
//
// Why:
//
//   - Board editors and rule engines need to answer "which tile is east
//     of tile 5", "which edges of tile 1 face the sea", "what is a
//     human-readable name for node 0x38" without owning any game state.
//
// Complexity:
//
//   - Table lookups: O(1). Touching-coordinate enumeration: O(6).
//   - Nearest-tile lookup: O(n) over the candidate set (n ≤ 19).
//   - Legal/coastal set construction: O(19·6) per call.
//
// Everything is a pure function of package-level constant tables; all
// operations are safe for concurrent use.
//
// Errors:
//
//   - ErrInvalidTileID: tile identifier outside 1..19.
//   - ErrInvalidCoord: coordinate owned by no tile on reverse lookup.
//   - ErrInvalidOffset: delta absent from the relevant topology table.
//   - ErrInvalidDirection: direction label not in the relevant relation.
//   - ErrNoAdjacentTile: nearest-tile scan found no adjacent tile.
//   - ErrInvalidLocType: unsupported location-type tag.
package hexgrid
