package minimax

// Other types, which didn't fit to the Minimax or ops files

// A move signature, game packages usually use a small integer type here
type MoveLike comparable

// Score of a position, from the maximizing player's perspective.
// Positive means the maximizer wins with perfect play, negative means
// the minimizer does, 0 is a draw. Win scores are offset by the ply
// distance from the search root, so faster wins score higher.
type Score = int

// Terminal state of the current position, reported by GameOperations.
// In an alternating two-player game a win always belongs to the side
// that made the last move, so no player identity is needed here.
type GameResult int8

const (
	// The position is not terminal, the game continues
	ResultNone GameResult = iota

	// The side that just moved completed a winning condition
	ResultWin

	// No winner and no legal moves left
	ResultDraw
)

func (r GameResult) String() string {
	switch r {
	case ResultWin:
		return "Win"
	case ResultDraw:
		return "Draw"
	}
	return "None"
}
