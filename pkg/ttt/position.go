package ttt

import (
	"errors"
	"math/bits"
)

const (
	_bitboardCrossIdx  = 0
	_bitboardCircleIdx = 1

	_fullBoard uint16 = 0b111111111
)

// Caller-supplied cells that cannot come from an alternating game:
// mark counts off by more than one, or both sides holding a line
var ErrIllegalPosition = errors.New("ttt: illegal position")

// A 3x3 board, one bitboard per player plus a mailbox array for
// rendering. Cross always moves first, so the side to move is derived
// from the mark counts alone.
type Position struct {
	board     [9]PlayerType
	bitboards [2]uint16
	history   []PosType
}

// Create an empty position, Cross to move
func NewPosition() *Position {
	return &Position{
		history: make([]PosType, 0, 9),
	}
}

// Build a position from caller-supplied cells. Unlike MakeMove, this
// validates: mark counts must satisfy the alternation rule and at most
// one side may have a completed line.
func FromBoard(cells [9]PlayerType) (*Position, error) {
	p := NewPosition()
	for i, cell := range cells {
		switch cell {
		case Cross:
			p.bitboards[_bitboardCrossIdx] |= 1 << i
		case Circle:
			p.bitboards[_bitboardCircleIdx] |= 1 << i
		case None:
			continue
		default:
			return nil, ErrIllegalPosition
		}
		p.board[i] = cell
	}

	crosses := bits.OnesCount16(p.bitboards[_bitboardCrossIdx])
	circles := bits.OnesCount16(p.bitboards[_bitboardCircleIdx])
	if crosses-circles < 0 || crosses-circles > 1 {
		return nil, ErrIllegalPosition
	}
	if p.hasLine(Cross) && p.hasLine(Circle) {
		return nil, ErrIllegalPosition
	}

	return p, nil
}

// Side to move: equal mark counts mean Cross, since Cross moves first
func (p *Position) Turn() TurnType {
	crosses := bits.OnesCount16(p.bitboards[_bitboardCrossIdx])
	circles := bits.OnesCount16(p.bitboards[_bitboardCircleIdx])
	return TurnType(crosses == circles)
}

// Place the mark of the side to move on 'mv', no legality check
func (p *Position) MakeMove(mv PosType) {
	idx := _bitboardCrossIdx
	player := Cross
	if p.Turn() == CircleTurn {
		player = Circle
		idx = _bitboardCircleIdx
	}

	p.bitboards[idx] ^= 1 << mv
	p.board[mv] = player
	p.history = append(p.history, mv)
}

// Take back the last move made through MakeMove, no-op if there is none
func (p *Position) UndoMove() {
	if len(p.history) == 0 {
		return
	}

	mv := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	idx := _bitboardCrossIdx
	if p.board[mv] == Circle {
		idx = _bitboardCircleIdx
	}
	p.bitboards[idx] ^= 1 << mv
	p.board[mv] = None
}

// The mark at the given square
func (p *Position) At(mv PosType) PlayerType {
	return p.board[mv]
}

// Copy of the cells, index = row*3 + col
func (p *Position) Board() [9]PlayerType {
	return p.board
}

// Number of occupied squares
func (p *Position) Occupied() int {
	return bits.OnesCount16(p.bitboards[0] | p.bitboards[1])
}

// Deep copy, no shared memory with the receiver
func (p *Position) Clone() *Position {
	clone := &Position{
		board:     p.board,
		bitboards: p.bitboards,
		history:   make([]PosType, len(p.history), cap(p.history)),
	}
	copy(clone.history, p.history)
	return clone
}
