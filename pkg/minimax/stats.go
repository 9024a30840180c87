package minimax

import "sync/atomic"

// Counters of the last search, readable while a bench arena worker
// is still searching, hence the atomics
type SearchStats struct {
	nodes    atomic.Uint32
	cutoffs  atomic.Uint32
	maxdepth atomic.Int32
}

func (stats *SearchStats) reset() {
	stats.nodes.Store(0)
	stats.cutoffs.Store(0)
	stats.maxdepth.Store(0)
}

// Number of positions visited during the last search
func (stats *SearchStats) Nodes() int {
	return int(stats.nodes.Load())
}

// Number of times remaining siblings of a node were skipped
// because of a beta <= alpha cutoff
func (stats *SearchStats) Cutoffs() int {
	return int(stats.cutoffs.Load())
}

// Maximum ply distance from the root reached during the last search
func (stats *SearchStats) MaxDepth() int {
	return int(stats.maxdepth.Load())
}

func (stats *SearchStats) observeDepth(depth int32) {
	for {
		prev := stats.maxdepth.Load()
		if depth <= prev || stats.maxdepth.CompareAndSwap(prev, depth) {
			return
		}
	}
}
