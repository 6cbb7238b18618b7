package ttt

import (
	"errors"
	"testing"
)

func TestNotation(t *testing.T) {
	tests := []struct {
		notation string
		cells    [NCells]Cell
	}{
		{"3/3/3", [NCells]Cell{}},
		{"xx1/1o1/o2", [NCells]Cell{Cross, Cross, Empty, Empty, Circle, Empty, Circle, Empty, Empty}},
		{"xox/xoo/oxx", [NCells]Cell{Cross, Circle, Cross, Cross, Circle, Circle, Circle, Cross, Cross}},
		{"2x/1o1/x2", [NCells]Cell{Empty, Empty, Cross, Empty, Circle, Empty, Cross, Empty, Empty}},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			b, err := FromNotation(tt.notation)
			if err != nil {
				t.Fatal(err)
			}
			if b.Cells() != tt.cells {
				t.Fatalf("cells=%v, want %v", b.Cells(), tt.cells)
			}
			if got := b.Notation(); got != tt.notation {
				t.Fatalf("Notation()=%q, want %q", got, tt.notation)
			}
		})
	}
}

func TestNotationStartpos(t *testing.T) {
	b, err := FromNotation("startpos")
	if err != nil {
		t.Fatal(err)
	}
	if b.Notation() != StartingPosition {
		t.Fatalf("startpos notation=%q", b.Notation())
	}
}

func TestInvalidNotation(t *testing.T) {
	for _, notation := range []string{
		"",
		"3/3",
		"3/3/3/3",
		"4/3/3",
		"xxxx/3/3",
		"x1/3/3",
		"2x1/3/3",
		"3/3/a2",
		"x0x/3/3",
	} {
		t.Run(notation, func(t *testing.T) {
			if _, err := FromNotation(notation); !errors.Is(err, ErrInvalidNotation) {
				t.Fatalf("FromNotation(%q) err=%v, want ErrInvalidNotation", notation, err)
			}
		})
	}
}

func TestBoardString(t *testing.T) {
	b, _ := FromNotation("xx1/1o1/o2")
	want := "x x .\n. o .\no . ."
	if b.String() != want {
		t.Fatalf("String()=\n%s\nwant\n%s", b, want)
	}
}
