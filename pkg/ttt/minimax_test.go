package ttt

import (
	"testing"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPosition(t *testing.T, cells [9]PlayerType) *Position {
	t.Helper()
	p, err := FromBoard(cells)
	require.NoError(t, err)
	return p
}

func TestBestMoveForcedWin(t *testing.T) {
	x, o, e := Cross, Circle, None

	// cross completes the top row, a win in 1 ply scores WinScore - 1
	p := mustPosition(t, [9]PlayerType{
		x, x, e,
		o, o, e,
		e, e, e,
	})
	require.Equal(t, CrossTurn, p.Turn())

	move, score, ok := BestMove(p)
	require.True(t, ok)
	assert.Equal(t, C3, move)
	assert.Equal(t, minimax.WinScore-1, score)
}

func TestBestMoveForcedBlock(t *testing.T) {
	x, o, e := Cross, Circle, None

	// circle to move, cross threatens the top row and circle has no
	// win of its own, so the only non-losing family of moves starts
	// with the block
	p := mustPosition(t, [9]PlayerType{
		x, x, e,
		e, o, e,
		e, e, e,
	})
	require.Equal(t, CircleTurn, p.Turn())

	move, _, ok := BestMove(p)
	require.True(t, ok)
	assert.Equal(t, C3, move)
}

func TestBestMoveOnTerminalPositions(t *testing.T) {
	x, o, e := Cross, Circle, None

	won := mustPosition(t, [9]PlayerType{
		x, x, x,
		o, o, e,
		e, e, e,
	})
	move, score, ok := BestMove(won)
	assert.False(t, ok)
	assert.Equal(t, PosIllegal, move)
	assert.Equal(t, 0, score)

	drawn := mustPosition(t, [9]PlayerType{
		x, o, x,
		x, o, o,
		o, x, x,
	})
	_, _, ok = BestMove(drawn)
	assert.False(t, ok)
}

func TestEmptyBoardIsADraw(t *testing.T) {
	move, score, ok := BestMove(NewPosition())

	require.True(t, ok)
	// all first moves draw with perfect play, strict-greater selection
	// keeps the first candidate
	assert.Equal(t, A3, move)
	assert.Equal(t, 0, score)
}

func TestPerfectSelfPlayDraws(t *testing.T) {
	position := NewPosition()
	searcher := NewSearcher(position)

	for {
		move, _, ok := searcher.BestMove()
		if !ok {
			break
		}
		position.MakeMove(move)
	}

	assert.Equal(t, 9, position.Occupied())
	assert.Equal(t, None, position.Winner())
	assert.True(t, position.IsDraw())
}

func TestPrunedEqualsUnprunedOnBoards(t *testing.T) {
	x, o, e := Cross, Circle, None

	boards := [][9]PlayerType{
		{},
		{
			x, x, e,
			o, o, e,
			e, e, e,
		},
		{
			x, x, e,
			e, o, e,
			e, e, e,
		},
		{
			x, o, e,
			e, x, e,
			e, e, o,
		},
		{
			o, x, x,
			x, o, o,
			e, e, e,
		},
	}

	for _, cells := range boards {
		pruned := NewSearcher(mustPosition(t, cells))
		unpruned := NewSearcher(mustPosition(t, cells))
		unpruned.SetOptions(minimax.DefaultOptions().SetPruning(false))

		pMove, pScore, pOk := pruned.BestMove()
		uMove, uScore, uOk := unpruned.BestMove()

		require.Equal(t, uOk, pOk)
		assert.Equal(t, uMove, pMove)
		assert.Equal(t, uScore, pScore)
		assert.LessOrEqual(t, pruned.Nodes(), unpruned.Nodes())
	}
}

func TestSearchRestoresPosition(t *testing.T) {
	x, o, e := Cross, Circle, None

	p := mustPosition(t, [9]PlayerType{
		x, o, e,
		e, x, e,
		e, e, e,
	})
	before := p.Board()
	turn := p.Turn()

	_, _, ok := BestMove(p)
	require.True(t, ok)

	assert.Equal(t, before, p.Board())
	assert.Equal(t, turn, p.Turn())
	assert.Equal(t, 3, p.Occupied())
}

func TestSearcherPvIsPlayable(t *testing.T) {
	p := NewPosition()
	searcher := NewSearcher(p)

	move, _, ok := searcher.BestMove()
	require.True(t, ok)

	pv := searcher.Pv()
	require.NotEmpty(t, pv)
	assert.Equal(t, move, pv[0])

	// the line must consist of distinct legal squares
	seen := map[PosType]bool{}
	for _, mv := range pv {
		assert.Less(t, int(mv), 9)
		assert.False(t, seen[mv], "pv repeats square %v", mv)
		seen[mv] = true
	}
}
