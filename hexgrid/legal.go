package hexgrid

import "sort"

// LegalTileIDs returns the 19 legal tile identifiers in ascending order.
// Complexity: O(19·log 19).
func LegalTileIDs() []int {
	ids := make([]int, 0, len(tileCoords))
	for id := range tileCoords {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// LegalTileCoords returns the set of the 19 legal tile coordinates.
// The set is rebuilt per call; the result is the caller's to mutate.
// Complexity: O(19).
func LegalTileCoords() map[Coord]struct{} {
	coords := make(map[Coord]struct{}, len(tileCoords))
	for _, c := range tileCoords {
		coords[c] = struct{}{}
	}
	return coords
}

// LegalNodeCoords returns the set of every node coordinate touching one
// of the 19 tiles (54 nodes on the canonical board).
// Complexity: O(19·6).
func LegalNodeCoords() map[Coord]struct{} {
	return legalTouching(tileNodeOffsets)
}

// LegalEdgeCoords returns the set of every edge coordinate touching one
// of the 19 tiles (72 edges on the canonical board).
// Complexity: O(19·6).
func LegalEdgeCoords() map[Coord]struct{} {
	return legalTouching(tileEdgeOffsets)
}

func legalTouching(table []offsetDir) map[Coord]struct{} {
	coords := make(map[Coord]struct{}, len(tileCoords)*len(table))
	for _, c := range tileCoords {
		for _, od := range table {
			coords[c+od.Offset] = struct{}{}
		}
	}
	return coords
}

// CoastalCoord names one coastal edge as the (tile, direction) pair it
// is seen from. The tile is always on the board; the direction points
// off it.
type CoastalCoord struct {
	TileID int
	Dir    Direction
}

// CoastalEdges returns the coastal edge coordinates of the given tile:
// those of its six edges beyond which no tile lies. Interior tiles
// return an empty slice. Directions are probed in tile↔edge table order
// (NW, W, SW, SE, E, NE), which fixes the result order.
// Complexity: O(6).
func CoastalEdges(tileID int) ([]Coord, error) {
	coord, err := TileIDToCoord(tileID)
	if err != nil {
		return nil, err
	}
	var edges []Coord
	for _, od := range tileEdgeOffsets {
		// The edge in direction d is coastal iff no tile lies in the
		// tile↔tile direction with the same label.
		if _, ok := tileIDs[coord+tileTileByDir[od.Dir]]; !ok {
			edges = append(edges, coord+od.Offset)
		}
	}
	return edges, nil
}

// CoastalTileIDs returns the identifiers of every tile with at least one
// coastal edge, ascending. On the canonical board this is the outer ring
// 1..12. Complexity: O(19·6).
func CoastalTileIDs() []int {
	var ids []int
	for _, id := range LegalTileIDs() {
		edges, _ := CoastalEdges(id)
		if len(edges) > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// CoastalCoords returns one (tile, direction) pair per coastal edge
// across the whole board: tiles in ascending identifier order, each
// tile's directions in tile↔edge table order. The canonical board has
// 30 such pairs. Complexity: O(19·6).
func CoastalCoords() []CoastalCoord {
	var coast []CoastalCoord
	for _, id := range CoastalTileIDs() {
		coord, _ := TileIDToCoord(id)
		for _, od := range tileEdgeOffsets {
			if _, ok := tileIDs[coord+tileTileByDir[od.Dir]]; !ok {
				coast = append(coast, CoastalCoord{TileID: id, Dir: od.Dir})
			}
		}
	}
	return coast
}
