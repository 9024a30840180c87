package main

/*

Tic-tac-toe self-play demo.

Both sides use the exact alpha-beta searcher, so every game ends in a
draw. Run with -no-pruning to see the node counts of the plain
exhaustive search.

*/

import (
	"flag"
	"fmt"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

func main() {
	noPruning := flag.Bool("no-pruning", false, "disable alpha-beta cutoffs")
	flag.Parse()

	fmt.Println("Tic Tac Toe Minimax Example")

	position := ttt.NewPosition()
	searcher := ttt.NewSearcher(position)
	searcher.SetOptions(minimax.DefaultOptions().SetPruning(!*noPruning))

	fmt.Println(position.Pretty())

	for {
		mover := position.Turn().Player()
		move, score, ok := searcher.BestMove()
		if !ok {
			break
		}

		fmt.Printf("%s plays %s (score %+d, nodes %d, cutoffs %d, time %dms, pv %v)\n",
			mover, move, score, searcher.Nodes(), searcher.Cutoffs(), searcher.Elapsed(), searcher.Pv())

		position.MakeMove(move)
		fmt.Println(position.Pretty())
	}

	if winner := position.Winner(); winner != ttt.None {
		fmt.Printf("%s wins\n", winner)
	} else {
		fmt.Println("Draw")
	}
}
