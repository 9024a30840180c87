package minimax

import "fmt"

const (
	// Base value of a won position, the ply distance from the root is
	// subtracted from it, so a win in 1 ply scores WinScore - 1
	WinScore Score = 10

	// Alpha/beta sentinel, outside any reachable score
	Infinity Score = 1 << 20
)

// Exact depth-first minimax search with alpha-beta cutoffs over a
// user-defined game, see GameOperations. The maximizing player is the
// side to move at the root of each Search call and stays fixed while
// the recursion descends. Cutoffs never change the returned scores,
// only the number of visited nodes.
type Minimax[T MoveLike] struct {
	SearchStats
	listener *SearchListener[T]
	options  *Options
	ops      GameOperations[T]
	timer    *_Timer
	pv       [][]T
}

// Create a new engine driving the given game operations
func NewMinimax[T MoveLike](ops GameOperations[T]) *Minimax[T] {
	return &Minimax[T]{
		listener: &SearchListener[T]{},
		options:  DefaultOptions(),
		ops:      ops,
		timer:    _NewTimer(),
	}
}

func (mm *Minimax[T]) SetOptions(options *Options) *Minimax[T] {
	mm.options = options
	return mm
}

func (mm *Minimax[T]) Options() *Options {
	return mm.options
}

func (mm *Minimax[T]) Listener() *SearchListener[T] {
	return mm.listener
}

func (mm *Minimax[T]) SetListener(listener SearchListener[T]) {
	*mm.listener = listener
}

// Elapsed time of the last search in ms
func (mm *Minimax[T]) Elapsed() int {
	return mm.timer.Deltatime()
}

// The expected line of play found by the last search, starting with
// the chosen root move
func (mm *Minimax[T]) Pv() []T {
	if len(mm.pv) == 0 {
		return nil
	}
	pv := make([]T, len(mm.pv[0]))
	copy(pv, mm.pv[0])
	return pv
}

func (mm *Minimax[T]) String() string {
	return fmt.Sprintf("Minimax={Stats:{nodes=%d, cutoffs=%d, maxdepth=%d}, Options=%v, Pv=%v}",
		mm.Nodes(), mm.Cutoffs(), mm.MaxDepth(), mm.options, mm.Pv())
}

// Score every root move and pick the best one for the side to move.
// Returns (move, score, true), or ok == false when the position is
// already terminal and no move applies. Each root move is searched
// with a full window, so its reported score is exact even with
// pruning enabled. Ties keep the first best move encountered, which
// is the lowest move signature with ascending move generation.
func (mm *Minimax[T]) Search() (T, Score, bool) {
	var best T
	mm.setupSearch()

	if mm.ops.Result() != ResultNone {
		return best, 0, false
	}

	moves := mm.ops.GenerateMoves(nil)
	bestScore := -Infinity

	for i, move := range moves {
		mm.ops.Traverse(move)
		score := mm.alphaBeta(1, -Infinity, Infinity, false)
		mm.ops.BackTraverse()

		if score > bestScore {
			bestScore = score
			best = move
			mm.storePv(0, move)
		}

		mm.invokeListener(mm.listener.onRootMove, move, score, i+1, len(moves))
	}

	mm.invokeListener(mm.listener.onStop, best, bestScore, len(moves), len(moves))
	return best, bestScore, true
}

// This function only resets the counters, the timer and the pv,
// doesn't actually start the search
func (mm *Minimax[T]) setupSearch() {
	mm.SearchStats.reset()
	mm.timer.Reset()
	for i := range mm.pv {
		mm.pv[i] = mm.pv[i][:0]
	}
	mm.ensurePv(1)
}

// Actual search function implementation. 'depth' is the ply distance
// from the root, 'maximizing' tells whose turn it is at this node.
// The position held by mm.ops is always restored before returning.
func (mm *Minimax[T]) alphaBeta(depth int, alpha, beta Score, maximizing bool) Score {
	mm.nodes.Add(1)
	mm.observeDepth(int32(depth))

	switch mm.ops.Result() {
	case ResultWin:
		// The side that played the previous ply won. Shallower wins
		// score higher, shallower losses lower.
		mm.truncatePv(depth)
		if maximizing {
			return -WinScore + Score(depth)
		}
		return WinScore - Score(depth)
	case ResultDraw:
		mm.truncatePv(depth)
		return 0
	}

	if depth >= mm.options.MaxDepth {
		mm.truncatePv(depth)
		return 0
	}

	mm.ensurePv(depth + 1)
	moves := mm.ops.GenerateMoves(nil)
	if len(moves) == 0 {
		// Cannot happen in an alternating game with a correct
		// GameOperations, treated as a dead draw
		mm.truncatePv(depth)
		return 0
	}

	best := Infinity
	if maximizing {
		best = -Infinity
	}

	for _, move := range moves {
		mm.ops.Traverse(move)
		score := mm.alphaBeta(depth+1, alpha, beta, !maximizing)
		mm.ops.BackTraverse()

		if maximizing {
			if score > best {
				best = score
				mm.storePv(depth, move)
			}
			alpha = max(alpha, best)
		} else {
			if score < best {
				best = score
				mm.storePv(depth, move)
			}
			beta = min(beta, best)
		}

		if mm.options.Pruning && beta <= alpha {
			mm.cutoffs.Add(1)
			break
		}
	}

	return best
}

func (mm *Minimax[T]) invokeListener(f ListenerFunc[T], move T, score Score, num, total int) {
	if f != nil {
		f(ListenerSearchStats[T]{
			Move:    move,
			Score:   score,
			MoveNum: num,
			Total:   total,
			Nodes:   mm.Nodes(),
			Cutoffs: mm.Cutoffs(),
			TimeMs:  mm.timer.Deltatime(),
		})
	}
}

func (mm *Minimax[T]) ensurePv(depth int) {
	for len(mm.pv) <= depth {
		mm.pv = append(mm.pv, nil)
	}
}

// Clear the line at 'depth', so a parent improving on a leaf child
// doesn't pick up a stale continuation from an earlier sibling
func (mm *Minimax[T]) truncatePv(depth int) {
	if depth < len(mm.pv) {
		mm.pv[depth] = mm.pv[depth][:0]
	}
}

// Set line at 'depth' to 'move' followed by the best line of the
// child that produced it
func (mm *Minimax[T]) storePv(depth int, move T) {
	line := append(mm.pv[depth][:0], move)
	if depth+1 < len(mm.pv) {
		line = append(line, mm.pv[depth+1]...)
	}
	mm.pv[depth] = line
}
