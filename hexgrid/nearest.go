package hexgrid

import "fmt"

// NearestTileToNode returns a tile identifier adjacent to the given node
// coordinate, scanning all 19 tiles in ascending identifier order.
// A node is shared by up to three tiles; the lowest adjacent identifier
// wins. Returns ErrNoAdjacentTile when the coordinate touches no tile.
// Complexity: O(19).
func NearestTileToNode(node Coord) (int, error) {
	return NearestTileToNodeAmong(LegalTileIDs(), node)
}

// NearestTileToEdge returns a tile identifier adjacent to the given edge
// coordinate, scanning all 19 tiles in ascending identifier order.
// An edge is shared by up to two tiles; the lowest adjacent identifier
// wins. Returns ErrNoAdjacentTile when the coordinate touches no tile.
// Complexity: O(19).
func NearestTileToEdge(edge Coord) (int, error) {
	return NearestTileToEdgeAmong(LegalTileIDs(), edge)
}

// NearestTileToNodeAmong returns the first tile in ids whose coordinate
// difference from node is a tile↔node delta. The scan honors the order
// of ids verbatim, so callers control which of several adjacent tiles is
// chosen. Returns ErrNoAdjacentTile when none matches.
// Complexity: O(len(ids)).
func NearestTileToNodeAmong(ids []int, node Coord) (int, error) {
	return nearestAmong(ids, node, tileNodeByOffset, "node")
}

// NearestTileToEdgeAmong returns the first tile in ids whose coordinate
// difference from edge is a tile↔edge delta. The scan honors the order
// of ids verbatim. Returns ErrNoAdjacentTile when none matches.
// Complexity: O(len(ids)).
func NearestTileToEdgeAmong(ids []int, edge Coord) (int, error) {
	return nearestAmong(ids, edge, tileEdgeByOffset, "edge")
}

// nearestAmong is a linear scan rather than an arithmetic inverse: the
// node and edge spaces are non-bijective images of the tile space under
// the six-delta tables, so a coordinate can be reached from several
// tiles and only a search with a fixed candidate order is deterministic.
func nearestAmong(ids []int, target Coord, table map[Coord]Direction, kind string) (int, error) {
	for _, id := range ids {
		coord, err := TileIDToCoord(id)
		if err != nil {
			return 0, err
		}
		if _, ok := table[target-coord]; ok {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%s 0x%02X: %w", kind, int(target), ErrNoAdjacentTile)
}
