package hexgrid

import "fmt"

// TileIDToCoord converts a tile identifier to its grid coordinate.
// Returns ErrInvalidTileID for identifiers outside 1..19.
// Complexity: O(1).
func TileIDToCoord(id int) (Coord, error) {
	c, ok := tileCoords[id]
	if !ok {
		return 0, fmt.Errorf("tile id %d: %w", id, ErrInvalidTileID)
	}
	return c, nil
}

// TileIDFromCoord converts a tile coordinate back to its identifier.
// Returns ErrInvalidCoord when no tile owns the coordinate.
// Complexity: O(1).
func TileIDFromCoord(coord Coord) (int, error) {
	id, ok := tileIDs[coord]
	if !ok {
		return 0, fmt.Errorf("coord 0x%02X: %w", int(coord), ErrInvalidCoord)
	}
	return id, nil
}
