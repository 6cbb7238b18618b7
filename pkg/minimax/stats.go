package minimax

import "sync/atomic"

// Counters collected during the search, safe to update from many goroutines
type SearchStats struct {
	nodes    atomic.Uint64
	leaves   atomic.Uint64
	maxdepth atomic.Int32
}

func (s *SearchStats) reset() {
	s.nodes.Store(0)
	s.leaves.Store(0)
	s.maxdepth.Store(0)
}

func (s *SearchStats) visit(depth int32, leaf bool) {
	s.nodes.Add(1)
	if leaf {
		s.leaves.Add(1)
	}

	// cas loop, keep the maximum
	for {
		current := s.maxdepth.Load()
		if depth <= current || s.maxdepth.CompareAndSwap(current, depth) {
			return
		}
	}
}

// Number of positions visited, the root included
func (s *SearchStats) Nodes() uint64 {
	return s.nodes.Load()
}

// Number of won or full positions reached
func (s *SearchStats) Leaves() uint64 {
	return s.leaves.Load()
}

// Deepest ply reached, the root being 0
func (s *SearchStats) MaxDepth() int {
	return int(s.maxdepth.Load())
}
