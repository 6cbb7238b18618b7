package bench

import (
	"errors"
	"math/rand"

	"github.com/IlikeChooros/go-tictactoe/pkg/minimax"
	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
)

var ErrNoMoves = errors.New("no legal moves")

// An arena participant. Each worker gets its own clone, so implementations
// don't need to be safe for concurrent use.
type Player interface {
	Name() string
	// Choose the cell index to play for 'side' on given board
	Choose(board *ttt.Board, side ttt.Cell) (int, error)
	Clone() Player
}

// Perfect player, plays the minimax move
type MinimaxPlayer struct {
	searcher *minimax.Searcher
}

func NewMinimaxPlayer() *MinimaxPlayer {
	return &MinimaxPlayer{searcher: minimax.NewSearcher()}
}

func (p *MinimaxPlayer) Name() string {
	return "minimax"
}

func (p *MinimaxPlayer) Choose(board *ttt.Board, side ttt.Cell) (int, error) {
	result, err := p.searcher.Search(board, side)
	if err != nil {
		return -1, err
	}
	if !result.HasMove {
		return -1, ErrNoMoves
	}
	return result.Move.Index, nil
}

func (p *MinimaxPlayer) Clone() Player {
	searcher := minimax.NewSearcher().SetThreads(p.searcher.Threads())
	return &MinimaxPlayer{searcher: searcher}
}

// Plays a uniformly random empty cell
type RandomPlayer struct {
	rand *rand.Rand
}

func NewRandomPlayer() *RandomPlayer {
	return &RandomPlayer{rand: rand.New(rand.NewSource(SeedGeneratorFn()))}
}

func (p *RandomPlayer) Name() string {
	return "random"
}

func (p *RandomPlayer) Choose(board *ttt.Board, side ttt.Cell) (int, error) {
	empty := board.EmptyPositions()
	if len(empty) == 0 {
		return -1, ErrNoMoves
	}
	return empty[p.rand.Intn(len(empty))], nil
}

// Sets the random generator
func (p *RandomPlayer) SetRand(r *rand.Rand) {
	p.rand = r
}

func (p *RandomPlayer) Clone() Player {
	return &RandomPlayer{rand: rand.New(rand.NewSource(p.rand.Int63()))}
}
