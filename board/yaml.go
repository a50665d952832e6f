package board

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/boardwright/hexboard/hexgrid"
)

// boardYAML is the serialized shape of a board layout.
type boardYAML struct {
	Locked bool   `yaml:"locked"`
	Tiles  []Tile `yaml:"tiles"`
}

// Save writes the board as a YAML layout document.
func (b *Board) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(boardYAML{Locked: b.locked, Tiles: b.Tiles()}); err != nil {
		return fmt.Errorf("board: encode layout: %w", err)
	}
	return enc.Close()
}

// Load reads a YAML layout document and validates it: exactly the 19
// canonical tile identifiers, each with a known terrain and number.
// Any violation fails with ErrBadLayout.
func Load(r io.Reader) (*Board, error) {
	var doc boardYAML
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("board: decode layout: %w", err)
	}
	if len(doc.Tiles) != 19 {
		return nil, fmt.Errorf("%w: %d tiles, want 19", ErrBadLayout, len(doc.Tiles))
	}

	b := New()
	seen := make(map[int]bool, 19)
	for _, t := range doc.Tiles {
		if _, err := hexgrid.TileIDToCoord(t.ID); err != nil {
			return nil, fmt.Errorf("%w: tile id %d", ErrBadLayout, t.ID)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("%w: duplicate tile id %d", ErrBadLayout, t.ID)
		}
		seen[t.ID] = true
		if terrainIndex(t.Terrain) == 0 && t.Terrain != Desert {
			return nil, fmt.Errorf("%w: unknown terrain %q on tile %d", ErrBadLayout, t.Terrain, t.ID)
		}
		if numberIndex(t.Number) == 0 && t.Number != NumberNone {
			return nil, fmt.Errorf("%w: invalid number %d on tile %d", ErrBadLayout, int(t.Number), t.ID)
		}
		b.tiles[t.ID-1] = t
	}
	b.locked = doc.Locked
	return b, nil
}
