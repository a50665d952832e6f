package hexgrid_test

import (
	"testing"

	"github.com/boardwright/hexboard/hexgrid"
	"github.com/stretchr/testify/require"
)

// TestLegalSetCardinalities pins the size of the three legal coordinate
// sets: a 19-hex board has 19 tiles, 54 nodes and 72 edges.
func TestLegalSetCardinalities(t *testing.T) {
	require.Len(t, hexgrid.LegalTileIDs(), 19)
	require.Len(t, hexgrid.LegalTileCoords(), 19)
	require.Len(t, hexgrid.LegalNodeCoords(), 54)
	require.Len(t, hexgrid.LegalEdgeCoords(), 72)
}

// TestLegalTileIDs_Ascending verifies the documented identifier order.
func TestLegalTileIDs_Ascending(t *testing.T) {
	ids := hexgrid.LegalTileIDs()
	for i, id := range ids {
		require.Equal(t, i+1, id)
	}
}

// TestLegalSets_Idempotent verifies that recomputing a derived set with
// unchanged canonical data yields the same value.
func TestLegalSets_Idempotent(t *testing.T) {
	require.Equal(t, hexgrid.LegalTileCoords(), hexgrid.LegalTileCoords())
	require.Equal(t, hexgrid.LegalNodeCoords(), hexgrid.LegalNodeCoords())
	require.Equal(t, hexgrid.LegalEdgeCoords(), hexgrid.LegalEdgeCoords())
	require.Equal(t, hexgrid.CoastalCoords(), hexgrid.CoastalCoords())
}

// TestLegalSets_Closure verifies the sets are exactly the closure of
// "touching one of the 19 tiles": every tile's coordinate and all of
// its touching nodes/edges are members.
func TestLegalSets_Closure(t *testing.T) {
	tiles := hexgrid.LegalTileCoords()
	nodes := hexgrid.LegalNodeCoords()
	edges := hexgrid.LegalEdgeCoords()
	for _, id := range hexgrid.LegalTileIDs() {
		coord, err := hexgrid.TileIDToCoord(id)
		require.NoError(t, err)
		require.Contains(t, tiles, coord)

		ns, err := hexgrid.NodesTouchingTile(id)
		require.NoError(t, err)
		for _, n := range ns {
			require.Contains(t, nodes, n, "node of tile %d", id)
		}
		es, err := hexgrid.EdgesTouchingTile(id)
		require.NoError(t, err)
		for _, e := range es {
			require.Contains(t, edges, e, "edge of tile %d", id)
		}
	}
}

// TestCoastalTiles pins the coastal ring: the outer twelve tiles are
// coastal, the inner seven (13..19, center 14 included) are not.
func TestCoastalTiles(t *testing.T) {
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, hexgrid.CoastalTileIDs())

	// Corner tile 1 faces the sea on three sides; in tile↔edge probe
	// order those are NW, W and NE.
	edges, err := hexgrid.CoastalEdges(1)
	require.NoError(t, err)
	require.Equal(t, []hexgrid.Coord{0x27, 0x26, 0x38}, edges)

	// The center tile has six real neighbors and no coast.
	edges, err = hexgrid.CoastalEdges(14)
	require.NoError(t, err)
	require.Empty(t, edges)

	_, err = hexgrid.CoastalEdges(0)
	require.ErrorIs(t, err, hexgrid.ErrInvalidTileID)
}

// TestCoastalCoords verifies the full coastal (tile, direction) list:
// 30 pairs, tiles ascending, directions in tile↔edge table order, and
// every pair genuinely pointing off-board.
func TestCoastalCoords(t *testing.T) {
	coast := hexgrid.CoastalCoords()
	require.Len(t, coast, 30)

	require.Equal(t, hexgrid.CoastalCoord{TileID: 1, Dir: hexgrid.NW}, coast[0])
	require.Equal(t, hexgrid.CoastalCoord{TileID: 1, Dir: hexgrid.W}, coast[1])
	require.Equal(t, hexgrid.CoastalCoord{TileID: 1, Dir: hexgrid.NE}, coast[2])
	require.Equal(t, hexgrid.CoastalCoord{TileID: 12, Dir: hexgrid.NE}, coast[len(coast)-1])

	prev := 0
	for _, cc := range coast {
		require.GreaterOrEqual(t, cc.TileID, prev, "tiles must be ascending")
		prev = cc.TileID

		_, ok, err := hexgrid.TileInDirection(cc.TileID, cc.Dir)
		require.NoError(t, err)
		require.False(t, ok, "coastal pair (%d %s) must point off-board", cc.TileID, cc.Dir)
	}
}
