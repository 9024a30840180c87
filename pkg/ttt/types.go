package ttt

type PosType uint8
type TurnType bool
type PlayerType uint8

const (
	CrossTurn  TurnType = true
	CircleTurn TurnType = false
)

const (
	None   PlayerType = 0
	Cross  PlayerType = 1
	Circle PlayerType = 2
)

// Enum for the squares, index = row*3 + col, row 3 on top
const (
	A3 PosType = iota
	B3
	C3
	A2
	B2
	C2
	A1
	B1
	C1
)

const (
	PosIllegal PosType = 255
)

var _squareNames = [9]string{
	"a3", "b3", "c3",
	"a2", "b2", "c2",
	"a1", "b1", "c1",
}

// Square name of the move, "-" for anything off the board
func (mv PosType) String() string {
	if mv >= 9 {
		return "-"
	}
	return _squareNames[mv]
}

// The side a turn belongs to
func (t TurnType) Player() PlayerType {
	if t == CrossTurn {
		return Cross
	}
	return Circle
}

func (p PlayerType) String() string {
	switch p {
	case Cross:
		return "X"
	case Circle:
		return "O"
	}
	return " "
}
