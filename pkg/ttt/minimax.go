package ttt

import (
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// Binds a Position to the generic engine
type tttOperations struct {
	position *Position
}

func newTttOps(position *Position) *tttOperations {
	return &tttOperations{position: position}
}

func (ops *tttOperations) GenerateMoves(buf []PosType) []PosType {
	return append(buf, ops.position.GenerateMoves().Slice()...)
}

func (ops *tttOperations) Traverse(mv PosType) {
	ops.position.MakeMove(mv)
}

func (ops *tttOperations) BackTraverse() {
	ops.position.UndoMove()
}

func (ops *tttOperations) Result() minimax.GameResult {
	if ops.position.Winner() != None {
		return minimax.ResultWin
	}
	if ops.position.IsDraw() {
		return minimax.ResultDraw
	}
	return minimax.ResultNone
}

// Tic-tac-toe searcher, a thin wrapper over the generic engine bound
// to one Position. The position is mutated during a search but always
// restored before BestMove returns.
type Searcher struct {
	*minimax.Minimax[PosType]
	ops *tttOperations
}

func NewSearcher(position *Position) *Searcher {
	// Each engine instance must have its own operations instance
	ops := newTttOps(position)
	return &Searcher{
		Minimax: minimax.NewMinimax[PosType](minimax.GameOperations[PosType](ops)),
		ops:     ops,
	}
}

// Set the position, the engine keeps no per-position state so
// no reset is needed
func (s *Searcher) SetPosition(position *Position) {
	s.ops.position = position
}

func (s *Searcher) Position() *Position {
	return s.ops.position
}

// The optimal move and its exact score for the side to move,
// ok == false when the game is already finished
func (s *Searcher) BestMove() (PosType, minimax.Score, bool) {
	mv, score, ok := s.Search()
	if !ok {
		return PosIllegal, 0, false
	}
	return mv, score, true
}

/// One-shot convenience: score 'position' with default options.
// Returns (PosIllegal, 0, false) for terminal positions.
func BestMove(position *Position) (PosType, minimax.Score, bool) {
	return NewSearcher(position).BestMove()
}
