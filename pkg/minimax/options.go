package minimax

import (
	"encoding/json"
	"math"
	"strings"
)

type Options struct {
	MaxDepth int
	Pruning  bool
}

func (o Options) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(o)
	return builder.String()
}

const (
	DefaultDepthLimit int = math.MaxInt
)

func DefaultOptions() *Options {
	return &Options{
		MaxDepth: DefaultDepthLimit,
		Pruning:  true,
	}
}

// Set the maximum depth of the search, positions at the horizon
// that are not terminal score 0
func (o *Options) SetMaxDepth(depth int) *Options {
	o.MaxDepth = max(1, depth)
	return o
}

// Enable or disable alpha-beta cutoffs. Disabling never changes the
// returned scores, only the amount of work done to obtain them
func (o *Options) SetPruning(pruning bool) *Options {
	o.Pruning = pruning
	return o
}
