package minimax

import (
	"sync"

	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
)

// Root parallel scoring, each root candidate is an independent subtree.
// Workers write only their own slot in 'scores', so the merge below sees
// the same values in the same order as the serial search.
func (s *Searcher) scoreParallel(root *ttt.Board, player ttt.Cell, candidates []int, scores []Score) {
	threads := min(s.threads, len(candidates))
	jobs := make(chan int, len(candidates))
	for i := range candidates {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each worker has its own copy of the root
			board := root.Clone()
			for i := range jobs {
				scores[i] = s.scoreMove(board, ttt.Move{Index: candidates[i], Player: player}, 1)
			}
		}()
	}
	wg.Wait()
}

// Pick the best candidate, scanning in ascending index order
func merge(player ttt.Cell, candidates []int, scores []Score, onRootMove RootMoveListenerFunc) Result {
	best := Result{Score: initialBound(player)}
	for i, idx := range candidates {
		move := ttt.Move{Index: idx, Player: player}
		if better(player, scores[i], best.Score) {
			best = Result{Move: move, HasMove: true, Score: scores[i]}
		}

		if onRootMove != nil {
			onRootMove(RootMoveInfo{Move: move, Score: scores[i], Best: best})
		}
	}

	if !best.HasMove {
		// Only possible with no candidates, which the terminal check rules out
		panic("[MINIMAX] merge: no move selected on a non-terminal board")
	}
	return best
}
