package game

import (
	"errors"
	"fmt"

	"github.com/IlikeChooros/go-tictactoe/pkg/minimax"
	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
)

var (
	ErrOccupied     = errors.New("cell is occupied")
	ErrGameOver     = errors.New("game is over")
	ErrNotYourTurn  = errors.New("not the human's turn")
	ErrNoEngineMove = errors.New("engine has no move")
)

// Game drives a single human vs engine game on one live board.
// Cross always moves first.
type Game struct {
	board    *ttt.Board
	human    ttt.Cell
	turn     ttt.Cell
	moves    []ttt.Move
	searcher *minimax.Searcher
}

// Start a new game, 'human' is the symbol played by the human
func New(human ttt.Cell) (*Game, error) {
	if !human.IsPlayer() {
		return nil, fmt.Errorf("%w: %v", ttt.ErrInvalidPlayer, human)
	}
	return &Game{
		board:    ttt.NewBoard(),
		human:    human,
		turn:     ttt.Cross,
		moves:    make([]ttt.Move, 0, ttt.NCells),
		searcher: minimax.NewSearcher(),
	}, nil
}

// Replace the engine's searcher, e.g. to attach a listener or more threads
func (g *Game) SetSearcher(s *minimax.Searcher) {
	if s != nil {
		g.searcher = s
	}
}

func (g *Game) Searcher() *minimax.Searcher {
	return g.searcher
}

// Side to move
func (g *Game) Turn() ttt.Cell {
	return g.turn
}

func (g *Game) Human() ttt.Cell {
	return g.human
}

func (g *Game) Engine() ttt.Cell {
	return g.human.Opponent()
}

// Copy of the live board
func (g *Game) Board() *ttt.Board {
	return g.board.Clone()
}

// Moves played so far
func (g *Game) Moves() []ttt.Move {
	return append([]ttt.Move(nil), g.moves...)
}

// Whether the board is won or full
func (g *Game) Over() bool {
	return g.board.IsWon() || g.board.IsFull()
}

// Winning symbol, Empty while undecided or drawn
func (g *Game) Winner() ttt.Cell {
	g.board.IsWon()
	return g.board.Winner()
}

// Human move at given cell index
func (g *Game) Play(index int) (ttt.Move, error) {
	if g.Over() {
		return ttt.Move{}, ErrGameOver
	}
	if g.turn != g.human {
		return ttt.Move{}, ErrNotYourTurn
	}
	return g.apply(index, g.human)
}

// Search and play the engine's move
func (g *Game) EngineMove() (ttt.Move, error) {
	if g.Over() {
		return ttt.Move{}, ErrGameOver
	}
	if g.turn != g.Engine() {
		return ttt.Move{}, fmt.Errorf("%w: %v to move", ErrNoEngineMove, g.turn)
	}

	result, err := g.searcher.Search(g.board, g.turn)
	if err != nil {
		return ttt.Move{}, err
	}
	if !result.HasMove {
		return ttt.Move{}, ErrNoEngineMove
	}
	return g.apply(result.Move.Index, result.Move.Player)
}

// Play a move for whoever is to move, used when both sides are driven
// from outside (e.g. the arena)
func (g *Game) MakeMove(index int) (ttt.Move, error) {
	return g.apply(index, g.turn)
}

func (g *Game) apply(index int, player ttt.Cell) (ttt.Move, error) {
	if g.Over() {
		return ttt.Move{}, ErrGameOver
	}

	move, err := ttt.NewMove(index, player)
	if err != nil {
		return ttt.Move{}, err
	}
	if c, _ := g.board.Get(index); c != ttt.Empty {
		return ttt.Move{}, fmt.Errorf("%w: %d holds %v", ErrOccupied, index, c)
	}

	_ = g.board.Set(move.Index, move.Player)
	g.moves = append(g.moves, move)
	g.turn = g.turn.Opponent()
	return move, nil
}

// Human readable state of the game
func (g *Game) Status() string {
	if g.Over() {
		switch g.Winner() {
		case ttt.Cross:
			return "Cross won"
		case ttt.Circle:
			return "Circle won"
		case ttt.Empty:
			return "Draw"
		}
	}
	return fmt.Sprintf("%v to move", g.turn)
}
