package minimax

import (
	"fmt"

	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
)

// Get the principal variation: both sides keep playing the searched move
// until the game ends. Returns the moves and the value of the starting position.
// The listener is not invoked.
func (s *Searcher) Pv(board *ttt.Board, player ttt.Cell) ([]ttt.Move, Score, error) {
	if !player.IsPlayer() {
		return nil, Draw, fmt.Errorf("%w: %v", ttt.ErrInvalidPlayer, player)
	}

	s.SearchStats.reset()
	s.timer.Reset()

	pos := board.Clone()
	pv := make([]ttt.Move, 0, ttt.NCells)
	result := s.run(pos, player, nil)
	score := result.Score

	for result.HasMove {
		if err := pos.Set(result.Move.Index, result.Move.Player); err != nil {
			return pv, score, err
		}
		pv = append(pv, result.Move)
		player = player.Opponent()
		result = s.run(pos, player, nil)
	}

	return pv, score, nil
}

// Principal variation with a fresh single-threaded searcher
func Pv(board *ttt.Board, player ttt.Cell) ([]ttt.Move, Score, error) {
	return NewSearcher().Pv(board, player)
}
