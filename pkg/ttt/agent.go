package ttt

import (
	"github.com/IlikeChooros/go-minimax/pkg/bench"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// Arena agent: plays whatever the searcher picks, with a fixed set
// of search options
type Agent struct {
	name     string
	options  minimax.Options
	searcher *Searcher
}

func NewAgent(name string, options *minimax.Options) *Agent {
	agent := &Agent{
		name:     name,
		options:  *options,
		searcher: NewSearcher(NewPosition()),
	}
	agent.searcher.SetOptions(&agent.options)
	return agent
}

func (a *Agent) Name() string {
	return a.name
}

func (a *Agent) ChooseMove(position *Position) (PosType, bool) {
	a.searcher.SetPosition(position)
	mv, _, ok := a.searcher.BestMove()
	return mv, ok
}

func (a *Agent) Clone() bench.AgentLike[PosType, *Position] {
	return NewAgent(a.name, &a.options)
}
