package board_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/boardwright/hexboard/board"
	"github.com/stretchr/testify/require"
)

// TestSaveLoadRoundTrip edits a board, locks it, and checks it survives
// the YAML round trip.
func TestSaveLoadRoundTrip(t *testing.T) {
	b := board.New()
	_, err := b.CycleTerrain(1)
	require.NoError(t, err)
	_, err = b.CycleNumber(1)
	require.NoError(t, err)
	_, err = b.CycleNumber(1)
	require.NoError(t, err)
	b.Lock()

	var buf bytes.Buffer
	require.NoError(t, b.Save(&buf))

	loaded, err := board.Load(&buf)
	require.NoError(t, err)
	require.True(t, loaded.Locked())
	require.Equal(t, b.Tiles(), loaded.Tiles())

	tile, err := loaded.Tile(1)
	require.NoError(t, err)
	require.Equal(t, board.Wood, tile.Terrain)
	require.Equal(t, board.HexNumber(3), tile.Number)
}

// TestLoad_BadLayouts rejects short, duplicated and out-of-range
// layouts with ErrBadLayout.
func TestLoad_BadLayouts(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"TooFewTiles", "tiles:\n  - id: 1\n    terrain: desert\n    number: 0\n"},
		{"UnknownID", layoutWithTile("id: 99\n    terrain: desert\n    number: 0")},
		{"DuplicateID", layoutWithTile("id: 2\n    terrain: desert\n    number: 0")},
		{"UnknownTerrain", layoutWithTile("id: 1\n    terrain: lava\n    number: 0")},
		{"BadNumber", layoutWithTile("id: 1\n    terrain: desert\n    number: 7")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := board.Load(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, board.ErrBadLayout)
		})
	}
}

// layoutWithTile builds a 19-entry layout whose first entry is the
// given tile body and whose remaining entries are tiles 2..19 blank.
func layoutWithTile(first string) string {
	var sb strings.Builder
	sb.WriteString("tiles:\n  - " + first + "\n")
	for id := 2; id <= 19; id++ {
		fmt.Fprintf(&sb, "  - id: %d\n    terrain: desert\n    number: 0\n", id)
	}
	return sb.String()
}
