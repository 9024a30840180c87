package bench

import (
	"context"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

/*
Arena benchmark subpackage, plays a series of games between two
agent configurations (for example pruned vs unpruned search) and
tallies the results.
*/

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

// Mutable game position the arena can play out. MakeMove must be
// undone-free here: every game runs on its own Clone.
type PositionLike[T minimax.MoveLike, P any] interface {
	MakeMove(T)
	IsTerminated() bool
	IsDraw() bool
	Clone() P
}

// A playing agent. ChooseMove must return ok == false only for
// terminal positions.
type AgentLike[T minimax.MoveLike, P any] interface {
	Name() string
	ChooseMove(position P) (T, bool)
	// Clone itself, without any shared memory with the other object
	Clone() AgentLike[T, P]
}

type VersusArenaStats struct {
	p1Wins           uint32
	p2Wins           uint32
	draws            uint32
	firstToMoveWins  uint32
	secondToMoveWins uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(atomic.LoadUint32(&vas.p1Wins))
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(atomic.LoadUint32(&vas.p2Wins))
}

func (vas *VersusArenaStats) Draws() int {
	return int(atomic.LoadUint32(&vas.draws))
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(atomic.LoadUint32(&vas.firstToMoveWins))
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(atomic.LoadUint32(&vas.secondToMoveWins))
}

// represents result from the first-player's perspective in a single game
type GameOutcome struct {
	FirstPlayerWon bool
	IsDraw         bool
}

// determines the outcome from the final position and move count: in an
// alternating game a win belongs to the side that made the last move
func computeOutcome[T minimax.MoveLike, P PositionLike[T, P]](gamePos P, moveCount int) GameOutcome {
	if !gamePos.IsTerminated() {
		panic("computeOutcome: position not terminated")
	}

	if gamePos.IsDraw() {
		return GameOutcome{IsDraw: true}
	}

	return GameOutcome{FirstPlayerWon: moveCount%2 == 1}
}

type VersusArena[T minimax.MoveLike, P PositionLike[T, P]] struct {
	VersusArenaStats
	Player1  AgentLike[T, P]
	Player2  AgentLike[T, P]
	NGames   uint
	NThreads uint
	Position P
	wg       sync.WaitGroup
	finished atomic.Bool
	ctx      context.Context
}

func NewVersusArena[T minimax.MoveLike, P PositionLike[T, P]](
	position P, player1, player2 AgentLike[T, P],
) *VersusArena[T, P] {
	return &VersusArena[T, P]{
		Player1:  player1,
		Player2:  player2,
		NGames:   100,
		NThreads: 2,
		Position: position,
		ctx:      context.Background(),
	}
}

func (va *VersusArena[T, P]) WithContext(ctx context.Context) *VersusArena[T, P] {
	va.ctx = ctx
	return va
}

func (va *VersusArena[T, P]) Setup(nGames, nThreads uint) {
	va.NGames = nGames
	va.NThreads = max(1, nThreads)
}

// Block until every worker is done and the summary has been reported
func (va *VersusArena[T, P]) Wait() {
	va.wg.Wait()
	for !va.finished.Load() {
		runtime.Gosched()
	}
}

// Start equally distributed work between worker threads, to block
// until the series is done, call Wait
func (va *VersusArena[T, P]) Start(listener ListenerLike[T]) {
	va.finished.Store(false)
	listener.OnStart()

	nGames := va.NGames / va.NThreads
	rest := uint(0)
	if va.NThreads > 1 {
		rest = va.NGames % va.NThreads
	}

	for i := range va.NThreads {
		delta := uint(0)
		if rest > 0 {
			delta = 1
			rest--
		}
		va.wg.Add(1)

		// Always use clones, the agents keep mutable search state
		go va.worker(int(i), int(nGames+delta), listener.Clone(), va.Player1.Clone(), va.Player2.Clone())
	}
}

func (va *VersusArena[T, P]) worker(id, nGames int, listener ListenerLike[T], p1, p2 AgentLike[T, P]) {
	r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))
	localStats := VersusArenaStats{}

Loop:
	for i := range nGames {
		// Alternate which agent moves first, at random
		p1First := r.Int()%2 == 0

		var outcome GameOutcome
		if p1First {
			outcome = va.playGame(p1, p2, listener, id, nGames, i)
		} else {
			outcome = va.playGame(p2, p1, listener, id, nGames, i)
		}

		select {
		case <-va.ctx.Done():
			break Loop
		default:
		}

		switch {
		case outcome.IsDraw:
			atomic.AddUint32(&va.draws, 1)
			localStats.draws++
		case outcome.FirstPlayerWon:
			atomic.AddUint32(&va.firstToMoveWins, 1)
			if p1First {
				atomic.AddUint32(&va.p1Wins, 1)
				localStats.p1Wins++
			} else {
				atomic.AddUint32(&va.p2Wins, 1)
				localStats.p2Wins++
			}
		default:
			atomic.AddUint32(&va.secondToMoveWins, 1)
			if p1First {
				atomic.AddUint32(&va.p2Wins, 1)
				localStats.p2Wins++
			} else {
				atomic.AddUint32(&va.p1Wins, 1)
				localStats.p1Wins++
			}
		}

		listener.OnFinishedGame(va.workerInfo(id, nGames, &localStats, 0, nil))
	}

	va.wg.Done()
	listener.OnFinishedWork(va.workerInfo(id, nGames, &localStats, 0, nil))

	if id == 0 {
		va.wg.Wait()
		listener.Summary(VersusSummaryInfo{
			TotalGames:       va.Total(),
			P1Wins:           va.P1Wins(),
			P2Wins:           va.P2Wins(),
			FirstToMoveWins:  va.FirstToMoveWins(),
			SecondToMoveWins: va.SecondToMoveWins(),
			Draws:            va.Draws(),
			Workers:          int(va.NThreads),
			P1Name:           va.Player1.Name(),
			P2Name:           va.Player2.Name(),
		})
		va.finished.Store(true)
	}
}

// Play a single game between 'first' and 'second' on a fresh clone of
// the arena position, returns the outcome from first's perspective
func (va *VersusArena[T, P]) playGame(first, second AgentLike[T, P], listener ListenerLike[T], id, nGames, gameNum int) GameOutcome {
	gamePos := va.Position.Clone()
	moves := make([]T, 0, 16)
	mover, waiter := first, second

	for !gamePos.IsTerminated() {
		move, ok := mover.ChooseMove(gamePos)
		if !ok {
			break
		}

		gamePos.MakeMove(move)
		moves = append(moves, move)
		mover, waiter = waiter, mover

		listener.OnMoveMade(va.workerInfo(id, nGames, nil, len(moves), moves))

		select {
		case <-va.ctx.Done():
			return GameOutcome{IsDraw: true}
		default:
		}
	}

	return computeOutcome[T, P](gamePos, len(moves))
}

func (va *VersusArena[T, P]) workerInfo(id, nGames int, local *VersusArenaStats, moveNum int, moves []T) VersusWorkerInfo[T] {
	info := VersusWorkerInfo[T]{
		WorkerID:      id,
		NGames:        nGames,
		FinishedGames: va.Total(),
		GameMoveNum:   moveNum,
		Moves:         moves,
		P1Name:        va.Player1.Name(),
		P2Name:        va.Player2.Name(),
	}
	if local != nil {
		info.P1Wins = int(local.p1Wins)
		info.P2Wins = int(local.p2Wins)
		info.Draws = int(local.draws)
	}
	return info
}
