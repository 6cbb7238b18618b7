package minimax

import (
	"fmt"

	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
)

// Exhaustive minimax search over the whole game tree. A Searcher may be
// reused, but not by two goroutines at once.
type Searcher struct {
	SearchStats
	listener *StatsListener
	threads  int
	timer    *_Timer
}

func NewSearcher() *Searcher {
	return &Searcher{
		listener: &StatsListener{},
		threads:  1,
		timer:    _NewTimer(),
	}
}

// Returns the optimal move for given player and the value of the position,
// assuming both sides play perfectly. Won and full boards have no move.
func Minimax(board *ttt.Board, player ttt.Cell) (Result, error) {
	return NewSearcher().Search(board, player)
}

func (s *Searcher) SetListener(listener StatsListener) {
	*s.listener = listener
}

func (s *Searcher) StatsListener() *StatsListener {
	return s.listener
}

// Number of goroutines used to score the root moves, 1 disables root parallelism
func (s *Searcher) SetThreads(threads int) *Searcher {
	s.threads = max(1, threads)
	return s
}

func (s *Searcher) Threads() int {
	return s.threads
}

// Search the position, the board itself is never modified
func (s *Searcher) Search(board *ttt.Board, player ttt.Cell) (Result, error) {
	if !player.IsPlayer() {
		return Result{}, fmt.Errorf("%w: %v", ttt.ErrInvalidPlayer, player)
	}

	s.SearchStats.reset()
	s.timer.Reset()

	result := s.run(board.Clone(), player, s.listener.invokeRootMove)
	s.listener.invokeStop(s.info(result))
	return result, nil
}

func (s *Searcher) info(result Result) SearchInfo {
	ms := s.timer.Deltatime()
	return SearchInfo{
		Result:   result,
		Nodes:    s.Nodes(),
		Leaves:   s.Leaves(),
		Maxdepth: s.MaxDepth(),
		TimeMs:   ms,
		Nps:      s.Nodes() * 1000 / uint64(ms),
	}
}

// Score of a won or full board, the previous mover is the one who completed the line
func terminalScore(board *ttt.Board, player ttt.Cell) (Score, bool) {
	if board.IsWon() {
		if player == ttt.Cross {
			return CircleWins, true
		}
		return CrossWins, true
	}
	if board.IsFull() {
		return Draw, true
	}
	return Draw, false
}

// Search from the root, the root moves may be scored in parallel
func (s *Searcher) run(root *ttt.Board, player ttt.Cell, onRootMove RootMoveListenerFunc) Result {
	if score, ok := terminalScore(root, player); ok {
		s.visit(0, true)
		return Result{Score: score}
	}
	s.visit(0, false)

	candidates := root.EmptyPositions()
	scores := make([]Score, len(candidates))
	if s.threads > 1 && len(candidates) > 1 {
		s.scoreParallel(root, player, candidates, scores)
	} else {
		for i, idx := range candidates {
			scores[i] = s.scoreMove(root, ttt.Move{Index: idx, Player: player}, 1)
		}
	}

	return merge(player, candidates, scores, onRootMove)
}

// Score the position after given move, the move must be legal
func (s *Searcher) scoreMove(board *ttt.Board, move ttt.Move, depth int32) Score {
	next, err := board.Apply(move)
	if err != nil {
		panic(fmt.Sprintf("[MINIMAX] illegal move %v generated: %v", move, err))
	}
	return s.minimax(next, move.Player.Opponent(), depth).Score
}

func (s *Searcher) minimax(board *ttt.Board, player ttt.Cell, depth int32) Result {
	if score, ok := terminalScore(board, player); ok {
		s.visit(depth, true)
		return Result{Score: score}
	}
	s.visit(depth, false)

	best := Result{Score: initialBound(player)}
	for _, idx := range board.EmptyPositions() {
		move := ttt.Move{Index: idx, Player: player}
		if score := s.scoreMove(board, move, depth+1); better(player, score, best.Score) {
			best = Result{Move: move, HasMove: true, Score: score}
		}
	}

	return best
}
