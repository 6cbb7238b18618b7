package ttt

type Termination int

const (
	TerminationNone      Termination = 0
	TerminationCircleWon Termination = 1
	TerminationCrossWon  Termination = 2
	TerminationDraw      Termination = 4
)

func (t Termination) String() string {
	switch t {
	case TerminationNone:
		return "None"
	case TerminationCircleWon:
		return "CircleWon"
	case TerminationCrossWon:
		return "CrossWon"
	case TerminationDraw:
		return "Draw"
	}
	return "Unknown"
}

const _fullBitboard uint16 = 0b111111111

// Rows, then columns, then the two diagonals. The scan stops at the first
// complete line, so this order is observable through WinningLine.
var _winningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Check every line without touching the recorded winner, returns the winning
// symbol and its line
func (b *Board) WinningLine() (Cell, [3]int, bool) {
	for _, line := range _winningLines {
		c := b.cells[line[0]]
		if c != Empty && c == b.cells[line[1]] && c == b.cells[line[2]] {
			return c, line, true
		}
	}
	return Empty, [3]int{}, false
}

// Whether some line is complete, records the winner if so
func (b *Board) IsWon() bool {
	winner, _, ok := b.WinningLine()
	if ok {
		b.winner = winner
	}
	return ok
}

// Winner recorded by the last successful IsWon call, Empty if none
func (b *Board) Winner() Cell {
	return b.winner
}

// Derive the termination state from the cells
func (b *Board) Termination() Termination {
	if winner, _, ok := b.WinningLine(); ok {
		if winner == Cross {
			return TerminationCrossWon
		}
		return TerminationCircleWon
	}
	if b.IsFull() {
		return TerminationDraw
	}
	return TerminationNone
}

// Either won or full
func (b *Board) IsTerminated() bool {
	return b.Termination() != TerminationNone
}
