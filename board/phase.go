package board

// Phase is the coarse state of a game around the board: two in-game
// states (turn start and after the roll) bracketed by pre- and
// post-game. It carries no data; only the two derived permissions
// below matter to callers.
type Phase int

const (
	// PreGame is before play begins; the board may still be edited.
	PreGame Phase = iota
	// TurnStart is in-game, before the current player has rolled.
	TurnStart
	// Rolled is in-game, after the roll; the turn may now be ended.
	Rolled
	// PostGame is after play ends.
	PostGame
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PreGame:
		return "pre-game"
	case TurnStart:
		return "turn-start"
	case Rolled:
		return "rolled"
	case PostGame:
		return "post-game"
	default:
		return "unknown"
	}
}

// InGame reports whether play is underway.
func (p Phase) InGame() bool {
	return p == TurnStart || p == Rolled
}

// EndTurnAllowed reports whether the current player may end the turn:
// only in-game and only after rolling.
func (p Phase) EndTurnAllowed() bool {
	return p == Rolled
}
