// Package board holds the editable tile model layered on top of the
// hexgrid coordinate algebra.
//
// What:
//
//   - Tile: identifier, terrain kind and number token for one hex.
//   - Board: the 19 canonical tiles plus a lock flag; terrain and
//     number cycling for editor-style interaction, refused while the
//     board is locked.
//   - Phase: the coarse game phase (pre-game, turn start, rolled,
//     post-game) with its two derived permissions.
//   - YAML save/load for board layouts.
//
// The package never interprets terrain or numbers; it only stores them
// and delegates all adjacency questions to hexgrid.
//
// Errors:
//
//   - ErrUnknownTile: tile identifier outside the 19-tile board.
//   - ErrBoardLocked: an edit was attempted on a locked board.
//   - ErrBadLayout: a loaded layout is not a valid 19-tile board.
package board
