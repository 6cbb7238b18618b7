package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := Root()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--no-color"))
	err := root.Execute()
	return out.String(), err
}

func TestSolve(t *testing.T) {
	out, err := run(t, "", "solve", "xx1/1o1/o2")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"bestmove 2 (Cross)", "score +1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSolveStartposPv(t *testing.T) {
	out, err := run(t, "", "solve", "startpos", "--pv", "--threads", "3")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "score 0") || !strings.Contains(out, "bestmove 8 (Cross)") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "pv x8") {
		t.Fatalf("pv missing:\n%s", out)
	}
}

func TestSolveTerminal(t *testing.T) {
	out, err := run(t, "", "solve", "xxx/oo1/3")
	if err != nil {
		t.Fatal(err)
	}
	// Circle is to move on a board Cross already won
	if !strings.Contains(out, "bestmove none") || !strings.Contains(out, "score +1") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestSolveErrors(t *testing.T) {
	if _, err := run(t, "", "solve", "3/3"); !errors.Is(err, ttt.ErrInvalidNotation) {
		t.Fatalf("err=%v, want ErrInvalidNotation", err)
	}
	if _, err := run(t, "", "solve", "3/3/3", "--player", "z"); !errors.Is(err, ttt.ErrInvalidPlayer) {
		t.Fatalf("err=%v, want ErrInvalidPlayer", err)
	}
}

func TestPlay(t *testing.T) {
	// Bad input is reported and the game goes on, the engine never loses
	out, err := run(t, "abc\n9\n0\n0\n1\n2\n3\n5\n6\n7\n8\n", "play")
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"not a cell number", "out of range", "engine plays"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Cross won") {
		t.Fatalf("engine lost:\n%s", out)
	}
}

func TestPlayQuit(t *testing.T) {
	out, err := run(t, "quit\n", "play", "--human", "o")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "engine plays") {
		t.Fatalf("engine did not open as Cross:\n%s", out)
	}
}

func TestArena(t *testing.T) {
	out, err := run(t, "", "arena", "--games", "6", "--threads", "2", "--seed", "7")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "minimax vs random (6 games, 2 workers)") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	if _, err := run(t, "", "arena", "--opponent", "nobody"); err == nil {
		t.Fatal("unknown opponent accepted")
	}
}
