package ttt

// The 8 winning lines as bitboards, rows first, then columns,
// then diagonals. Fixed order keeps Winner deterministic.
var _winningBitboardPatterns = [8]uint16{
	0b111000000, 0b000111000, 0b000000111,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

// Check if the given side holds any of the 8 lines
func (p *Position) hasLine(player PlayerType) bool {
	idx := _bitboardCrossIdx
	if player == Circle {
		idx = _bitboardCircleIdx
	}

	bb := p.bitboards[idx]
	for i := range 8 {
		if bb&_winningBitboardPatterns[i] == _winningBitboardPatterns[i] {
			return true
		}
	}
	return false
}

// The side holding a completed line, None if there is no winner.
// Lines are checked rows, columns, diagonals, Cross before Circle.
func (p *Position) Winner() PlayerType {
	if p.hasLine(Cross) {
		return Cross
	}
	if p.hasLine(Circle) {
		return Circle
	}
	return None
}

// True iff there is no winner and every square is occupied
func (p *Position) IsDraw() bool {
	return p.Winner() == None && (p.bitboards[0]|p.bitboards[1]) == _fullBoard
}

// Check if the board is won or fully drawn
func (p *Position) IsTerminated() bool {
	if p.Winner() != None {
		return true
	}
	return (p.bitboards[0] | p.bitboards[1]) == _fullBoard
}
