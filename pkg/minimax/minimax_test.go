package minimax

import (
	"testing"
)

type Move int

// A dummy implementation of GameOperations for testing purposes:
// the take-away game. A pile of n tokens, each ply removes 1 or 2,
// whoever takes the last token wins. The side to move loses with
// perfect play iff n is a multiple of 3.
type NimGame struct {
	n       int
	history []Move
}

func NewNimGame(n int) *NimGame {
	return &NimGame{n: n}
}

func (g *NimGame) GenerateMoves(buf []Move) []Move {
	for take := 1; take <= 2 && take <= g.n; take++ {
		buf = append(buf, Move(take))
	}
	return buf
}

func (g *NimGame) Traverse(m Move) {
	g.n -= int(m)
	g.history = append(g.history, m)
}

func (g *NimGame) BackTraverse() {
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.n += int(last)
}

func (g *NimGame) Result() GameResult {
	if g.n == 0 {
		return ResultWin
	}
	return ResultNone
}

func TestNimScoreSigns(t *testing.T) {
	for n := 1; n <= 10; n++ {
		game := NewNimGame(n)
		mm := NewMinimax[Move](game)

		_, score, ok := mm.Search()
		if !ok {
			t.Fatalf("n=%d: expected a move on a non-terminal game", n)
		}

		if n%3 == 0 && score >= 0 {
			t.Errorf("n=%d: mover should lose, got score %d", n, score)
		}
		if n%3 != 0 && score <= 0 {
			t.Errorf("n=%d: mover should win, got score %d", n, score)
		}
	}
}

func TestNimExactScores(t *testing.T) {
	cases := []struct {
		n     int
		move  Move
		score Score
	}{
		{n: 1, move: 1, score: WinScore - 1},
		{n: 2, move: 2, score: WinScore - 1},
		// every move loses, both lose in 2 plies, first kept
		{n: 3, move: 1, score: -WinScore + 2},
		{n: 4, move: 1, score: WinScore - 3},
		{n: 5, move: 2, score: WinScore - 3},
	}

	for _, tc := range cases {
		game := NewNimGame(tc.n)
		move, score, ok := NewMinimax[Move](game).Search()

		if !ok {
			t.Fatalf("n=%d: expected a move", tc.n)
		}
		if move != tc.move || score != tc.score {
			t.Errorf("n=%d: got (move=%d, score=%d), want (move=%d, score=%d)",
				tc.n, move, score, tc.move, tc.score)
		}
	}
}

func TestSearchRestoresGameState(t *testing.T) {
	game := NewNimGame(8)
	mm := NewMinimax[Move](game)
	mm.Search()

	if game.n != 8 {
		t.Fatalf("game state not restored, n=%d", game.n)
	}
	if len(game.history) != 0 {
		t.Fatalf("history not unwound, %d entries left", len(game.history))
	}
}

func TestPrunedEqualsUnpruned(t *testing.T) {
	for n := 1; n <= 12; n++ {
		pruned := NewMinimax[Move](NewNimGame(n))
		unpruned := NewMinimax[Move](NewNimGame(n))
		unpruned.SetOptions(DefaultOptions().SetPruning(false))

		pMove, pScore, pOk := pruned.Search()
		uMove, uScore, uOk := unpruned.Search()

		if pOk != uOk || pMove != uMove || pScore != uScore {
			t.Errorf("n=%d: pruned (%d, %d, %v) != unpruned (%d, %d, %v)",
				n, pMove, pScore, pOk, uMove, uScore, uOk)
		}
		if pruned.Nodes() > unpruned.Nodes() {
			t.Errorf("n=%d: pruning visited more nodes (%d) than exhaustive search (%d)",
				n, pruned.Nodes(), unpruned.Nodes())
		}
	}
}

func TestTerminalPositionHasNoMove(t *testing.T) {
	game := NewNimGame(0)
	_, _, ok := NewMinimax[Move](game).Search()
	if ok {
		t.Fatal("expected ok == false on a terminal game")
	}
}

func TestPvStartsWithBestMove(t *testing.T) {
	game := NewNimGame(7)
	mm := NewMinimax[Move](game)
	move, _, ok := mm.Search()

	if !ok {
		t.Fatal("expected a move")
	}

	pv := mm.Pv()
	if len(pv) == 0 || pv[0] != move {
		t.Fatalf("pv %v does not start with best move %d", pv, move)
	}
}

func TestListenerCallbacks(t *testing.T) {
	game := NewNimGame(6)
	mm := NewMinimax[Move](game)

	rootMoves := 0
	stops := 0
	mm.Listener().
		OnRootMove(func(stats ListenerSearchStats[Move]) {
			rootMoves++
			if stats.Total != 2 {
				t.Errorf("expected 2 root moves, got total=%d", stats.Total)
			}
		}).
		OnStop(func(stats ListenerSearchStats[Move]) {
			stops++
		})

	mm.Search()

	if rootMoves != 2 {
		t.Errorf("OnRootMove called %d times, want 2", rootMoves)
	}
	if stops != 1 {
		t.Errorf("OnStop called %d times, want 1", stops)
	}
}

func TestMaxDepthHorizon(t *testing.T) {
	game := NewNimGame(9)
	mm := NewMinimax[Move](game)
	mm.SetOptions(DefaultOptions().SetMaxDepth(1))

	_, score, ok := mm.Search()
	if !ok {
		t.Fatal("expected a move")
	}
	// no root child is terminal at n=9, so everything scores 0 at the horizon
	if score != 0 {
		t.Fatalf("expected horizon score 0, got %d", score)
	}
	if mm.MaxDepth() != 1 {
		t.Fatalf("expected max depth 1, got %d", mm.MaxDepth())
	}
}
