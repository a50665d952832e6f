// Package hexboard is the coordinate and model layer for a 19-tile
// hexagonal settlement board.
//
// What's inside:
//
//	hexgrid/ — the coordinate algebra: tile/node/edge coordinate spaces,
//	           delta↔direction topology tables, adjacency queries,
//	           nearest-tile lookup, legal and coastal sets, and
//	           human-readable location formatting.
//	board/   — the editable tile model (terrain, number tokens, edit
//	           lock, game phase) with YAML layout save/load.
//	undo/    — a command stack for reversible board edits.
//
// hexgrid is the interesting part: everything else reads identifiers
// from it and stores values next to them. All hexgrid state is
// immutable constant tables, so every operation is a pure function and
// safe for concurrent use.
//
//	go get github.com/boardwright/hexboard
package hexboard
