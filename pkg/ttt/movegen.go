package ttt

import "math/bits"

type MoveList struct {
	Moves [9]PosType
	Size  uint8
}

func NewMoveList() *MoveList {
	return &MoveList{}
}

func (ml *MoveList) AppendMove(mv PosType) {
	ml.Moves[ml.Size] = mv
	ml.Size++
}

func (ml *MoveList) Slice() []PosType {
	return ml.Moves[:ml.Size]
}

// Every empty square as a legal move, in ascending square order
func (p *Position) GenerateMoves() *MoveList {
	movelist := NewMoveList()

	free := uint(_fullBoard ^ (p.bitboards[0] | p.bitboards[1]))
	for free != 0 {
		movelist.AppendMove(PosType(bits.TrailingZeros(free)))
		free &= free - 1
	}

	return movelist
}
