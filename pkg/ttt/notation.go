package ttt

import (
	"fmt"
	"strings"
)

const StartingPosition = "3/3/3"

// String notation of the board, similar to the FEN of a chessboard.
// Rows go top to bottom separated by '/', 'x' and 'o' are the marks
// and a digit skips that many empty cells.
//
// For example:
//
//	x | x |
//	----------
//	  | o |
//	----------
//	o |   |
//
// is written as:
//
//	xx1/1o1/o2
func (b *Board) Notation() string {
	builder := strings.Builder{}

	for row := 0; row < 3; row++ {
		counter := 0
		for col := 0; col < 3; col++ {
			switch c := b.cells[row*3+col]; c {
			case Cross, Circle:
				if counter > 0 {
					builder.WriteByte('0' + byte(counter))
					counter = 0
				}
				builder.WriteRune(c.Rune())
			case Empty:
				counter++
			}
		}

		if counter > 0 {
			builder.WriteByte('0' + byte(counter))
		}

		if row != 2 {
			builder.WriteByte('/')
		}
	}

	return builder.String()
}

// Create the board from given notation string, "startpos" is accepted
// as an alias for the empty board
func FromNotation(notation string) (*Board, error) {
	board := NewBoard()
	return board, board.SetNotation(notation)
}

// Load the position from notation, replacing the current state
func (b *Board) SetNotation(notation string) error {
	if notation == "startpos" {
		notation = StartingPosition
	}

	*b = Board{}
	rows := strings.Split(strings.TrimSpace(notation), "/")
	if len(rows) != 3 {
		return fmt.Errorf("%w: expected 3 rows, got %d in %q", ErrInvalidNotation, len(rows), notation)
	}

	for row, str := range rows {
		col := 0
		for i, v := range str {
			switch {
			case v == 'x' || v == 'o' || v == 'X' || v == 'O':
				if col >= 3 {
					return fmt.Errorf("%w: row %d is too long in %q", ErrInvalidNotation, row+1, notation)
				}
				player, _ := PlayerFromRune(v)
				_ = b.Set(row*3+col, player)
				col++
			case '1' <= v && v <= '3':
				col += int(v - '0')
				if col > 3 {
					return fmt.Errorf("%w: skip of %c overflows row %d at token %d", ErrInvalidNotation, v, row+1, i)
				}
			default:
				return fmt.Errorf("%w: unexpected token %q in row %d", ErrInvalidNotation, v, row+1)
			}
		}

		if col != 3 {
			return fmt.Errorf("%w: row %d has %d cells, expected 3", ErrInvalidNotation, row+1, col)
		}
	}

	return nil
}
