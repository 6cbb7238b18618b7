package ttt

import (
	"fmt"
	"strings"
)

const (
	_bitboardCrossIdx  = 0
	_bitboardCircleIdx = 1
)

// Board holds the 3x3 state of a single game. It is a plain value
// and is not safe for concurrent mutation.
type Board struct {
	cells     [NCells]Cell
	bitboards [2]uint16
	winner    Cell
}

func NewBoard() *Board {
	return &Board{}
}

func bitboardIndex(player Cell) int {
	if player == Circle {
		return _bitboardCircleIdx
	}
	return _bitboardCrossIdx
}

// Write the player's symbol into the cell at given index. Callers should
// only do this on empty cells.
func (b *Board) Set(index int, player Cell) error {
	if err := checkIndex(index); err != nil {
		return err
	}
	if !player.IsPlayer() {
		return fmt.Errorf("%w: %v", ErrInvalidPlayer, player)
	}

	// Clear whatever was there, keeping the bitboards in sync with cells
	if prev := b.cells[index]; prev.IsPlayer() {
		b.bitboards[bitboardIndex(prev)] &^= 1 << index
	}

	b.cells[index] = player
	b.bitboards[bitboardIndex(player)] |= 1 << index
	return nil
}

// Get the cell value at given index
func (b *Board) Get(index int) (Cell, error) {
	if err := checkIndex(index); err != nil {
		return Empty, err
	}
	return b.cells[index], nil
}

// Make a copy of the board and apply the move on it, the receiver is left untouched
func (b *Board) Apply(m Move) (*Board, error) {
	next := b.Clone()
	if err := next.Set(m.Index, m.Player); err != nil {
		return nil, err
	}
	return next, nil
}

// Independent deep copy of the board
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Copy of the cell sequence
func (b *Board) Cells() [NCells]Cell {
	return b.cells
}

// Number of cells holding given value
func (b *Board) Count(c Cell) int {
	n := 0
	for _, v := range b.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Side to move, assuming Cross always opens the game
func (b *Board) Turn() Cell {
	if b.Count(Cross) > b.Count(Circle) {
		return Circle
	}
	return Cross
}

// Whether no cell is empty
func (b *Board) IsFull() bool {
	return (b.bitboards[_bitboardCrossIdx] | b.bitboards[_bitboardCircleIdx]) == _fullBitboard
}

// Three line grid, for logs and debugging
//
//	x x .
//	. o .
//	o . .
func (b *Board) String() string {
	builder := strings.Builder{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if col > 0 {
				builder.WriteByte(' ')
			}
			builder.WriteRune(b.cells[row*3+col].Rune())
		}
		if row != 2 {
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}
