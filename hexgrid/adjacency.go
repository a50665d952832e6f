package hexgrid

// TileInDirection returns the identifier of the tile adjacent to
// fromID in the given tile↔tile direction. Stepping off the 19-tile
// board is an expected outcome at the boundary, reported as ok=false
// with a nil error; only a bad identifier or direction is an error.
// Complexity: O(1).
func TileInDirection(fromID int, dir Direction) (toID int, ok bool, err error) {
	from, err := TileIDToCoord(fromID)
	if err != nil {
		return 0, false, err
	}
	offset, err := TileDirectionToOffset(dir)
	if err != nil {
		return 0, false, err
	}
	toID, found := tileIDs[from+offset]
	return toID, found, nil
}

// DirectionBetweenTiles returns the direction from fromID to toID.
// The two tiles must be adjacent; otherwise their coordinate difference
// is not a tile↔tile delta and ErrInvalidOffset is returned.
// Complexity: O(1).
func DirectionBetweenTiles(fromID, toID int) (Direction, error) {
	from, err := TileIDToCoord(fromID)
	if err != nil {
		return "", err
	}
	to, err := TileIDToCoord(toID)
	if err != nil {
		return "", err
	}
	return TileOffsetToDirection(to - from)
}

// NodesTouchingTile returns the six node coordinates at the corners of
// the given tile, in tile↔node table order (N, NW, SW, S, SE, NE).
// Boundary tiles still have six geometric corners, so the result always
// has six elements. Complexity: O(6).
func NodesTouchingTile(id int) ([]Coord, error) {
	return touching(id, tileNodeOffsets)
}

// EdgesTouchingTile returns the six edge coordinates along the sides of
// the given tile, in tile↔edge table order (NW, W, SW, SE, E, NE).
// Boundary tiles still have six geometric sides, so the result always
// has six elements. Complexity: O(6).
func EdgesTouchingTile(id int) ([]Coord, error) {
	return touching(id, tileEdgeOffsets)
}

func touching(id int, table []offsetDir) ([]Coord, error) {
	coord, err := TileIDToCoord(id)
	if err != nil {
		return nil, err
	}
	out := make([]Coord, 0, len(table))
	for _, od := range table {
		out = append(out, coord+od.Offset)
	}
	return out, nil
}
