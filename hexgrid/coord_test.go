package hexgrid_test

import (
	"errors"
	"testing"

	"github.com/boardwright/hexboard/hexgrid"
	"github.com/stretchr/testify/require"
)

// TestTileIDCoordRoundTrip verifies the id↔coord bijection over all 19
// tiles and pins a few known coordinates from the canonical layout.
func TestTileIDCoordRoundTrip(t *testing.T) {
	for id := 1; id <= 19; id++ {
		coord, err := hexgrid.TileIDToCoord(id)
		require.NoError(t, err, "TileIDToCoord(%d)", id)
		back, err := hexgrid.TileIDFromCoord(coord)
		require.NoError(t, err, "TileIDFromCoord(0x%02X)", int(coord))
		require.Equal(t, id, back, "round trip for id %d", id)
	}

	pinned := map[int]hexgrid.Coord{
		1:  0x37, // north-west corner
		5:  0x73, // south-west corner
		14: 0x55, // geometric center
		19: 0x77,
	}
	for id, want := range pinned {
		coord, err := hexgrid.TileIDToCoord(id)
		require.NoError(t, err)
		require.Equal(t, want, coord, "coordinate of tile %d", id)
	}
}

// TestTileIDToCoord_Invalid checks that out-of-range identifiers fail
// with ErrInvalidTileID instead of defaulting silently.
func TestTileIDToCoord_Invalid(t *testing.T) {
	for _, id := range []int{0, -1, 20, 100} {
		_, err := hexgrid.TileIDToCoord(id)
		if !errors.Is(err, hexgrid.ErrInvalidTileID) {
			t.Errorf("TileIDToCoord(%d) error = %v; want ErrInvalidTileID", id, err)
		}
	}
}

// TestTileIDFromCoord_Invalid checks that coordinates owned by no tile
// fail with ErrInvalidCoord.
func TestTileIDFromCoord_Invalid(t *testing.T) {
	for _, coord := range []hexgrid.Coord{0x00, 0x36, 0xDD, -0x37} {
		_, err := hexgrid.TileIDFromCoord(coord)
		if !errors.Is(err, hexgrid.ErrInvalidCoord) {
			t.Errorf("TileIDFromCoord(0x%02X) error = %v; want ErrInvalidCoord", int(coord), err)
		}
	}
}
