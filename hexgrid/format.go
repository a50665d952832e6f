package hexgrid

import (
	"fmt"
	"strconv"
)

// Location renders a coordinate as a human-readable string. Tile
// coordinates render as their decimal value. Node and edge coordinates
// render as "(tileID direction)", naming the lowest-identifier adjacent
// tile and the direction of the coordinate from it, e.g. "(1 NW)".
// Returns ErrInvalidLocType for unsupported tags and ErrNoAdjacentTile
// when a node/edge coordinate touches no tile.
func Location(lt LocType, coord Coord) (string, error) {
	switch lt {
	case LocTile:
		return strconv.Itoa(int(coord)), nil
	case LocNode:
		id, err := NearestTileToNode(coord)
		if err != nil {
			return "", err
		}
		tile, err := TileIDToCoord(id)
		if err != nil {
			return "", err
		}
		dir, err := NodeOffsetToDirection(coord - tile)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%d %s)", id, dir), nil
	case LocEdge:
		id, err := NearestTileToEdge(coord)
		if err != nil {
			return "", err
		}
		tile, err := TileIDToCoord(id)
		if err != nil {
			return "", err
		}
		dir, err := EdgeOffsetToDirection(coord - tile)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%d %s)", id, dir), nil
	default:
		return "", fmt.Errorf("location type %d: %w", int(lt), ErrInvalidLocType)
	}
}
