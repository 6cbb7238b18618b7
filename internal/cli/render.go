package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
)

type renderer struct {
	output *termenv.Output
}

func newRenderer(w io.Writer, plain bool) *renderer {
	if plain {
		return &renderer{output: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
	}
	return &renderer{output: termenv.NewOutput(w)}
}

func (r *renderer) cell(c ttt.Cell, index int, highlight bool) string {
	var style termenv.Style
	switch c {
	case ttt.Cross:
		style = r.output.String("X").Foreground(r.output.Color("4")).Bold()
	case ttt.Circle:
		style = r.output.String("O").Foreground(r.output.Color("1")).Bold()
	case ttt.Empty:
		style = r.output.String(fmt.Sprint(index)).Faint()
	}
	if highlight {
		style = style.Reverse()
	}
	return style.String()
}

// Draw the board, empty cells show their index, the winning line is highlighted
func (r *renderer) board(b *ttt.Board) string {
	cells := b.Cells()
	_, line, won := b.WinningLine()
	onLine := func(i int) bool {
		return won && (line[0] == i || line[1] == i || line[2] == i)
	}

	builder := strings.Builder{}
	for row := 0; row < 3; row++ {
		builder.WriteByte(' ')
		for col := 0; col < 3; col++ {
			i := row*3 + col
			if col > 0 {
				builder.WriteString(" | ")
			}
			builder.WriteString(r.cell(cells[i], i, onLine(i)))
		}
		builder.WriteByte('\n')
		if row != 2 {
			builder.WriteString("---+---+---\n")
		}
	}
	return builder.String()
}

func (r *renderer) status(s string) string {
	return r.output.String(s).Bold().String()
}

func (r *renderer) errorf(format string, a ...any) string {
	return r.output.String(fmt.Sprintf(format, a...)).Foreground(r.output.Color("1")).String()
}
