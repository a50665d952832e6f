package hexgrid

import "errors"

// Sentinel errors for hexgrid operations. Branch with errors.Is; every
// returned error wraps exactly one of these with call-site context.
var (
	// ErrInvalidTileID indicates a tile identifier outside the canonical
	// 19-tile table (valid identifiers are 1..19).
	ErrInvalidTileID = errors.New("hexgrid: invalid tile id")
	// ErrInvalidCoord indicates a coordinate that no tile owns.
	ErrInvalidCoord = errors.New("hexgrid: coordinate not in canonical tile table")
	// ErrInvalidOffset indicates a coordinate delta absent from the
	// relevant topology table (the two locations are not adjacent).
	ErrInvalidOffset = errors.New("hexgrid: offset not in topology table")
	// ErrInvalidDirection indicates a direction label that is not part of
	// the relevant relation (e.g. N in the tile↔tile relation).
	ErrInvalidDirection = errors.New("hexgrid: direction not in topology table")
	// ErrNoAdjacentTile indicates a nearest-tile scan found no candidate
	// tile adjacent to the given node or edge coordinate.
	ErrNoAdjacentTile = errors.New("hexgrid: no adjacent tile found")
	// ErrInvalidLocType indicates an unsupported location-type tag.
	ErrInvalidLocType = errors.New("hexgrid: unsupported location type")
)

// Coord is a packed board coordinate: two base-16 digits per the
// dissertation's Appendix A scheme. The edge, node and tile coordinate
// spaces alias the same integers, so a bare Coord has no meaning without
// a LocType; persist and compare locations as (LocType, Coord) pairs.
type Coord int

// LocType disambiguates which coordinate space a Coord belongs to.
type LocType int

const (
	// LocEdge tags a coordinate as an edge (tile side).
	LocEdge LocType = iota
	// LocNode tags a coordinate as a node (tile corner).
	LocNode
	// LocTile tags a coordinate as a tile.
	LocTile
)

// String returns the lowercase name of the location type.
func (lt LocType) String() string {
	switch lt {
	case LocEdge:
		return "edge"
	case LocNode:
		return "node"
	case LocTile:
		return "tile"
	default:
		return "unknown"
	}
}

// Direction is one of six cardinal labels relating a tile to an adjacent
// tile, node or edge. Which six labels apply depends on the relation:
// tile↔tile and tile↔edge use NW/W/SW/SE/E/NE, tile↔node uses
// N/NW/SW/S/SE/NE.
type Direction string

// Cardinal direction labels.
const (
	N  Direction = "N"
	NE Direction = "NE"
	E  Direction = "E"
	SE Direction = "SE"
	S  Direction = "S"
	SW Direction = "SW"
	W  Direction = "W"
	NW Direction = "NW"
)
