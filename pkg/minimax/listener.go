package minimax

// Statistics passed to the listener callbacks after a root move
// has been fully scored
type ListenerSearchStats[T MoveLike] struct {
	// The root move that was just scored
	Move T

	// Its exact score
	Score Score

	// 1-based index of the move and the total root move count
	MoveNum int
	Total   int

	// Running counters
	Nodes   int
	Cutoffs int
	TimeMs  int
}

// Listener function callback, receives current search statistics
type ListenerFunc[T MoveLike] func(ListenerSearchStats[T])

// Progress hooks of the engine. An exact search has no iteration
// cycles, so the natural granularity is one callback per scored
// root move, plus one when the whole search is done
type SearchListener[T MoveLike] struct {
	// called after each root move has been scored
	onRootMove ListenerFunc[T]

	// called once, when every root move has been scored
	onStop ListenerFunc[T]
}

func NewSearchListener[T MoveLike]() SearchListener[T] {
	return SearchListener[T]{}
}

// Attach new 'root move scored' callback, called by the searching
// goroutine, so it must not block for long
func (listener *SearchListener[T]) OnRootMove(onRootMove ListenerFunc[T]) *SearchListener[T] {
	listener.onRootMove = onRootMove
	return listener
}

// Attach 'on search end' callback, receives the stats of the chosen move
func (listener *SearchListener[T]) OnStop(onStop ListenerFunc[T]) *SearchListener[T] {
	listener.onStop = onStop
	return listener
}
