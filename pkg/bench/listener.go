package bench

import (
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// Per-worker progress snapshot passed to the listener callbacks
type VersusWorkerInfo[T minimax.MoveLike] struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	GameMoveNum   int
	Moves         []T
	P1Wins        int
	P2Wins        int
	Draws         int
	P1Name        string
	P2Name        string
}

type VersusSummaryInfo struct {
	TotalGames       int    `json:"total_games"`
	P1Wins           int    `json:"player1_wins"`
	P2Wins           int    `json:"player2_wins"`
	FirstToMoveWins  int    `json:"first_to_move_wins"`
	SecondToMoveWins int    `json:"second_to_move_wins"`
	Draws            int    `json:"draws"`
	Workers          int    `json:"workers"`
	P1Name           string `json:"player1_name"`
	P2Name           string `json:"player2_name"`
}

type ListenerLike[T minimax.MoveLike] interface {
	// called once before the workers start
	OnStart()
	// called after every move of every game of this worker
	OnMoveMade(info VersusWorkerInfo[T])
	// called when a game of this worker ends
	OnFinishedGame(info VersusWorkerInfo[T])
	// called when this worker has played all of its games
	OnFinishedWork(info VersusWorkerInfo[T])
	// called once by worker 0, after every worker finished
	Summary(info VersusSummaryInfo)
	// each worker gets its own copy
	Clone() ListenerLike[T]
}

// Listener that ignores everything, embed it to implement
// only the callbacks you care about
type SilentListener[T minimax.MoveLike] struct{}

func (s SilentListener[T]) OnStart()                                {}
func (s SilentListener[T]) OnMoveMade(info VersusWorkerInfo[T])     {}
func (s SilentListener[T]) OnFinishedGame(info VersusWorkerInfo[T]) {}
func (s SilentListener[T]) OnFinishedWork(info VersusWorkerInfo[T]) {}
func (s SilentListener[T]) Summary(info VersusSummaryInfo)          {}
func (s SilentListener[T]) Clone() ListenerLike[T]                  { return s }
