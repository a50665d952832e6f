package hexgrid

import "fmt"

// TileOffsetToDirection returns the cardinal direction of a tile↔tile
// coordinate delta. The two tiles must be adjacent; an unknown delta
// yields ErrInvalidOffset. Complexity: O(1).
func TileOffsetToDirection(offset Coord) (Direction, error) {
	return offsetToDirection(tileTileByOffset, "tile-tile", offset)
}

// NodeOffsetToDirection returns the cardinal direction of a tile↔node
// coordinate delta (nodeCoord - tileCoord). The tile and node must be
// adjacent; an unknown delta yields ErrInvalidOffset. Complexity: O(1).
func NodeOffsetToDirection(offset Coord) (Direction, error) {
	return offsetToDirection(tileNodeByOffset, "tile-node", offset)
}

// EdgeOffsetToDirection returns the cardinal direction of a tile↔edge
// coordinate delta (edgeCoord - tileCoord). The tile and edge must be
// adjacent; an unknown delta yields ErrInvalidOffset. Complexity: O(1).
func EdgeOffsetToDirection(offset Coord) (Direction, error) {
	return offsetToDirection(tileEdgeByOffset, "tile-edge", offset)
}

// TileDirectionToOffset is the inverse of TileOffsetToDirection.
// Returns ErrInvalidDirection for labels outside the tile↔tile relation.
func TileDirectionToOffset(dir Direction) (Coord, error) {
	return directionToOffset(tileTileByDir, "tile-tile", dir)
}

// NodeDirectionToOffset is the inverse of NodeOffsetToDirection.
// Returns ErrInvalidDirection for labels outside the tile↔node relation.
func NodeDirectionToOffset(dir Direction) (Coord, error) {
	return directionToOffset(tileNodeByDir, "tile-node", dir)
}

// EdgeDirectionToOffset is the inverse of EdgeOffsetToDirection.
// Returns ErrInvalidDirection for labels outside the tile↔edge relation.
func EdgeDirectionToOffset(dir Direction) (Coord, error) {
	return directionToOffset(tileEdgeByDir, "tile-edge", dir)
}

func offsetToDirection(table map[Coord]Direction, relation string, offset Coord) (Direction, error) {
	dir, ok := table[offset]
	if !ok {
		return "", fmt.Errorf("%s offset %+#x: %w", relation, int(offset), ErrInvalidOffset)
	}
	return dir, nil
}

func directionToOffset(table map[Direction]Coord, relation string, dir Direction) (Coord, error) {
	offset, ok := table[dir]
	if !ok {
		return 0, fmt.Errorf("%s direction %q: %w", relation, dir, ErrInvalidDirection)
	}
	return offset, nil
}
