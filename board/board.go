package board

import (
	"errors"
	"fmt"

	"github.com/boardwright/hexboard/hexgrid"
)

// Sentinel errors for board operations; branch with errors.Is.
var (
	// ErrUnknownTile indicates a tile identifier outside 1..19.
	ErrUnknownTile = errors.New("board: unknown tile id")
	// ErrBoardLocked indicates an edit attempted while the board is locked.
	ErrBoardLocked = errors.New("board: board is locked")
	// ErrBadLayout indicates a deserialized layout that is not a valid
	// 19-tile board.
	ErrBadLayout = errors.New("board: malformed layout")
)

// Terrain is the terrain kind of one tile.
type Terrain string

// Terrain kinds, in cycling order.
const (
	Desert Terrain = "desert"
	Wood   Terrain = "wood"
	Brick  Terrain = "brick"
	Wheat  Terrain = "wheat"
	Sheep  Terrain = "sheep"
	Ore    Terrain = "ore"
)

// terrainCycle fixes the order CycleTerrain steps through.
var terrainCycle = []Terrain{Desert, Wood, Brick, Wheat, Sheep, Ore}

// HexNumber is the number token on a tile; NumberNone marks a tile
// without one (desert). Seven never appears on a token.
type HexNumber int

// NumberNone is the absent number token.
const NumberNone HexNumber = 0

// numberCycle fixes the order CycleNumber steps through.
var numberCycle = []HexNumber{NumberNone, 2, 3, 4, 5, 6, 8, 9, 10, 11, 12}

// Tile is one hex of the board: its canonical identifier, terrain kind
// and number token. Position comes from hexgrid, never from the tile.
type Tile struct {
	ID      int       `yaml:"id"`
	Terrain Terrain   `yaml:"terrain"`
	Number  HexNumber `yaml:"number"`
}

// Board holds the 19 canonical tiles in identifier order plus an edit
// lock. The zero value is not usable; construct with New or Load.
type Board struct {
	tiles  []Tile
	locked bool
}

// New returns a blank modifiable board: all 19 tiles desert with no
// number token, ready for editor-style cycling.
func New() *Board {
	tiles := make([]Tile, 0, 19)
	for _, id := range hexgrid.LegalTileIDs() {
		tiles = append(tiles, Tile{ID: id, Terrain: Desert, Number: NumberNone})
	}
	return &Board{tiles: tiles}
}

// Tile returns a copy of the tile with the given identifier.
func (b *Board) Tile(id int) (Tile, error) {
	if id < 1 || id > len(b.tiles) {
		return Tile{}, fmt.Errorf("tile id %d: %w", id, ErrUnknownTile)
	}
	return b.tiles[id-1], nil
}

// Tiles returns a copy of all 19 tiles in identifier order.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// CycleTerrain advances a tile's terrain to the next kind, wrapping
// after Ore, and returns the new value. Refused with ErrBoardLocked on
// a locked board.
func (b *Board) CycleTerrain(id int) (Terrain, error) {
	if b.locked {
		return "", fmt.Errorf("cycle terrain of tile %d: %w", id, ErrBoardLocked)
	}
	t, err := b.Tile(id)
	if err != nil {
		return "", err
	}
	next := terrainCycle[(terrainIndex(t.Terrain)+1)%len(terrainCycle)]
	b.tiles[id-1].Terrain = next
	return next, nil
}

// CycleNumber advances a tile's number token to the next value,
// stepping none → 2 → … → 6 → 8 → … → 12 → none. Refused with
// ErrBoardLocked on a locked board.
func (b *Board) CycleNumber(id int) (HexNumber, error) {
	if b.locked {
		return 0, fmt.Errorf("cycle number of tile %d: %w", id, ErrBoardLocked)
	}
	t, err := b.Tile(id)
	if err != nil {
		return 0, err
	}
	next := numberCycle[(numberIndex(t.Number)+1)%len(numberCycle)]
	b.tiles[id-1].Number = next
	return next, nil
}

// Lock freezes the board against terrain/number edits, as when a game
// moves out of its setup phase.
func (b *Board) Lock() { b.locked = true }

// Unlock re-enables editing.
func (b *Board) Unlock() { b.locked = false }

// Locked reports whether edits are currently refused.
func (b *Board) Locked() bool { return b.locked }

// Direction returns the direction from one tile to an adjacent one,
// delegating to the coordinate algebra.
func (b *Board) Direction(fromID, toID int) (hexgrid.Direction, error) {
	return hexgrid.DirectionBetweenTiles(fromID, toID)
}

func terrainIndex(t Terrain) int {
	for i, c := range terrainCycle {
		if c == t {
			return i
		}
	}
	return 0
}

func numberIndex(n HexNumber) int {
	for i, c := range numberCycle {
		if c == n {
			return i
		}
	}
	return 0
}
