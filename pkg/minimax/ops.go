package minimax

// Game-specific operations the engine drives during the search.
// One instance owns one mutable position, the engine traverses it
// depth-first and always undoes its own moves, so after any Search
// call the position is bit-for-bit the same as before it.
type GameOperations[T MoveLike] interface {
	// Append every legal move in the current position to 'buf' and
	// return it. The order must be deterministic (game packages emit
	// ascending move signatures), since root tie-breaking keeps the
	// first best move encountered.
	GenerateMoves(buf []T) []T

	// Make a move on the internal position
	Traverse(T)

	// Go back up 1 time in the game tree (undo the move played in Traverse)
	BackTraverse()

	// Terminal state of the current position, see GameResult
	Result() GameResult
}
