package hexgrid

// offsetDir pairs a coordinate delta with its direction label. Topology
// tables are ordered slices of these pairs; the order below is the
// canonical iteration order for every operation that enumerates a table
// (touching-coordinate lists, coastal direction order), so it is part of
// the public contract and must not be rearranged.
type offsetDir struct {
	Offset Coord
	Dir    Direction
}

// tileTileOffsets maps tileCoord(to) - tileCoord(from) to the direction
// of travel between two adjacent tiles.
var tileTileOffsets = []offsetDir{
	{-0x20, NW},
	{-0x22, W},
	{-0x02, SW},
	{+0x20, SE},
	{+0x22, E},
	{+0x02, NE},
}

// tileNodeOffsets maps nodeCoord - tileCoord to the direction of a node
// from the tile whose corner it is.
var tileNodeOffsets = []offsetDir{
	{+0x01, N},
	{-0x10, NW},
	{-0x01, SW},
	{+0x10, S},
	{+0x21, SE},
	{+0x12, NE},
}

// tileEdgeOffsets maps edgeCoord - tileCoord to the direction of an edge
// from the tile whose side it is.
var tileEdgeOffsets = []offsetDir{
	{-0x10, NW},
	{-0x11, W},
	{-0x01, SW},
	{+0x10, SE},
	{+0x11, E},
	{+0x01, NE},
}

// tileCoords is the canonical bijection between tile identifiers and
// tile coordinates. Identifiers 1..19 run counter-clockwise from the
// north-west corner; rows are laid out 3-4-5-4-3:
//
//	  1 12 11
//	 2 13 18 10
//	3 14 19 17  9
//	 4 15 16  8
//	  5  6  7
var tileCoords = map[int]Coord{
	1: 0x37, 12: 0x59, 11: 0x7B,
	2: 0x35, 13: 0x57, 18: 0x79, 10: 0x9B,
	3: 0x33, 14: 0x55, 19: 0x77, 17: 0x99, 9: 0xBB,
	4: 0x53, 15: 0x75, 16: 0x97, 8: 0xB9,
	5: 0x73, 6: 0x95, 7: 0xB7,
}

// Derived lookup maps, built once at package init and never mutated.
var (
	tileIDs = invertTileCoords()

	tileTileByOffset = byOffset(tileTileOffsets)
	tileNodeByOffset = byOffset(tileNodeOffsets)
	tileEdgeByOffset = byOffset(tileEdgeOffsets)

	tileTileByDir = byDir(tileTileOffsets)
	tileNodeByDir = byDir(tileNodeOffsets)
	tileEdgeByDir = byDir(tileEdgeOffsets)
)

func invertTileCoords() map[Coord]int {
	m := make(map[Coord]int, len(tileCoords))
	for id, c := range tileCoords {
		m[c] = id
	}
	return m
}

func byOffset(table []offsetDir) map[Coord]Direction {
	m := make(map[Coord]Direction, len(table))
	for _, od := range table {
		m[od.Offset] = od.Dir
	}
	return m
}

func byDir(table []offsetDir) map[Direction]Coord {
	m := make(map[Direction]Coord, len(table))
	for _, od := range table {
		m[od.Dir] = od.Offset
	}
	return m
}
