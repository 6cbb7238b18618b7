package minimax

import (
	"fmt"

	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
)

// Game-theoretic value of a position, from Cross's perspective.
// Cross maximizes, Circle minimizes.
type Score int

const (
	CircleWins Score = -1
	Draw       Score = 0
	CrossWins  Score = +1
)

// Starting values for the best score, outside of the score domain
const (
	_minBound Score = -10
	_maxBound Score = +10
)

func (s Score) String() string {
	switch s {
	case CircleWins:
		return "-1"
	case Draw:
		return "0"
	case CrossWins:
		return "+1"
	}
	return fmt.Sprintf("Score(%d)", int(s))
}

// Result of the search, Move is valid only if HasMove is set, which
// happens on every board that is neither won nor full
type Result struct {
	Move    ttt.Move
	HasMove bool
	Score   Score
}

func (r Result) String() string {
	if !r.HasMove {
		return fmt.Sprintf("move=none score=%v", r.Score)
	}
	return fmt.Sprintf("move=%v score=%v", r.Move, r.Score)
}

// Whether the candidate should replace the current best for given player.
// Uses >= and <=, so among equally scored moves the last one scanned wins.
func better(player ttt.Cell, candidate, best Score) bool {
	if player == ttt.Cross {
		return candidate >= best
	}
	return candidate <= best
}

func initialBound(player ttt.Cell) Score {
	if player == ttt.Cross {
		return _minBound
	}
	return _maxBound
}
