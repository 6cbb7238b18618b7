package ttt

import (
	"errors"
	"fmt"
)

// Number of cells on the board, indexed row-major: index = row*3 + col
const NCells = 9

// Enum for the cells, row-major order
const (
	A3 = iota
	B3
	C3
	A2
	B2
	C2
	A1
	B1
	C1
)

var (
	ErrIndexOutOfRange = errors.New("cell index out of range")
	ErrInvalidPlayer   = errors.New("invalid player")
	ErrInvalidNotation = errors.New("invalid notation")
)

// Cell value, the zero value is an empty cell
type Cell uint8

const (
	Empty  Cell = 0
	Cross  Cell = 1
	Circle Cell = 2
)

// Whether this cell value is one of the two playable symbols
func (c Cell) IsPlayer() bool {
	return c == Cross || c == Circle
}

// The other playable symbol, Empty stays Empty
func (c Cell) Opponent() Cell {
	switch c {
	case Cross:
		return Circle
	case Circle:
		return Cross
	case Empty:
		return Empty
	}
	panic(fmt.Sprintf("ttt: unknown cell value %d", uint8(c)))
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Cross:
		return "Cross"
	case Circle:
		return "Circle"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// Single character representation, used in notation and board printing
func (c Cell) Rune() rune {
	switch c {
	case Empty:
		return '.'
	case Cross:
		return 'x'
	case Circle:
		return 'o'
	}
	return '?'
}

// Parse a player symbol, accepts 'x'/'X' and 'o'/'O'
func PlayerFromRune(r rune) (Cell, error) {
	switch r {
	case 'x', 'X':
		return Cross, nil
	case 'o', 'O':
		return Circle, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrInvalidPlayer, r)
}

// Move is an immutable pair of cell index and the player's symbol
type Move struct {
	Index  int
	Player Cell
}

// Create a validated move
func NewMove(index int, player Cell) (Move, error) {
	if err := checkIndex(index); err != nil {
		return Move{}, err
	}
	if !player.IsPlayer() {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidPlayer, player)
	}
	return Move{Index: index, Player: player}, nil
}

func (m Move) String() string {
	return fmt.Sprintf("%c%d", m.Player.Rune(), m.Index)
}

func checkIndex(index int) error {
	if index < 0 || index >= NCells {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return nil
}
