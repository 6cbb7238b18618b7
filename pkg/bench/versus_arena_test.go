package bench

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
)

func TestMain(m *testing.M) {
	SetSeedGeneratorFn(func() int64 {
		return 42
	})
	fmt.Printf("Using seed %d\n", SeedGeneratorFn())

	os.Exit(m.Run())
}

type countingListener struct {
	DefaultListener
	finished *atomic.Int32
	moves    *atomic.Int32
	summary  *VersusSummaryInfo
}

func (c *countingListener) OnMoveMade(info VersusWorkerInfo)     { c.moves.Add(1) }
func (c *countingListener) OnFinishedGame(info VersusWorkerInfo) { c.finished.Add(1) }
func (c *countingListener) Summary(info VersusSummaryInfo)       { *c.summary = info }
func (c *countingListener) Clone() ListenerLike {
	return &countingListener{finished: c.finished, moves: c.moves, summary: c.summary}
}

func newCountingListener() *countingListener {
	return &countingListener{
		finished: &atomic.Int32{},
		moves:    &atomic.Int32{},
		summary:  &VersusSummaryInfo{},
	}
}

func TestMinimaxNeverLosesToRandom(t *testing.T) {
	arena := NewVersusArena(NewMinimaxPlayer(), NewRandomPlayer())
	arena.Setup(60, 4)

	listener := newCountingListener()
	arena.Start(listener)
	if err := arena.Wait(); err != nil {
		t.Fatal(err)
	}

	if arena.Total() != 60 {
		t.Fatalf("played %d games, want 60", arena.Total())
	}
	if arena.P2Wins() != 0 {
		t.Fatalf("minimax lost %d games to a random player", arena.P2Wins())
	}
	if arena.P1Wins() == 0 {
		t.Fatalf("minimax never beat a random player in 60 games")
	}
	if int(listener.finished.Load()) != 60 {
		t.Fatalf("OnFinishedGame called %d times", listener.finished.Load())
	}
	if listener.summary.TotalGames != 60 || listener.summary.P1Name != "minimax" || listener.summary.Workers != 4 {
		t.Fatalf("summary=%+v", *listener.summary)
	}
	if listener.moves.Load() < 5*60 {
		t.Fatalf("only %d moves reported for 60 games", listener.moves.Load())
	}
}

func TestMinimaxSelfPlayDraws(t *testing.T) {
	arena := NewVersusArena(NewMinimaxPlayer(), NewMinimaxPlayer())
	arena.Setup(6, 3)
	arena.Start(nil)
	if err := arena.Wait(); err != nil {
		t.Fatal(err)
	}

	if arena.Draws() != 6 {
		t.Fatalf("perfect self play: +%d -%d =%d, want only draws", arena.P1Wins(), arena.P2Wins(), arena.Draws())
	}
	if arena.FirstToMoveWins()+arena.SecondToMoveWins() != 0 {
		t.Fatal("decisive games counted in a drawn match")
	}
}

func TestArenaCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	arena := NewVersusArena(NewRandomPlayer(), NewRandomPlayer()).WithContext(ctx)
	arena.Setup(100, 2)
	arena.Start(&DefaultListener{})
	if err := arena.Wait(); err != nil {
		t.Fatal(err)
	}
	if arena.Total() != 0 {
		t.Fatalf("cancelled arena played %d games", arena.Total())
	}
}

type brokenPlayer struct{}

func (brokenPlayer) Name() string                                        { return "broken" }
func (brokenPlayer) Choose(board *ttt.Board, side ttt.Cell) (int, error) { return 9, nil }
func (b brokenPlayer) Clone() Player                                     { return b }

func TestArenaIllegalMove(t *testing.T) {
	arena := NewVersusArena(brokenPlayer{}, NewRandomPlayer())
	arena.Setup(4, 1)
	arena.Start(nil)
	if err := arena.Wait(); !errors.Is(err, ttt.ErrIndexOutOfRange) {
		t.Fatalf("err=%v, want ErrIndexOutOfRange", err)
	}
}

func TestToAgentResult(t *testing.T) {
	tests := []struct {
		outcome     GameOutcome
		p1WentFirst bool
		want        VersusMatchResult
	}{
		{GameOutcome{IsDraw: true}, true, VersusDraw},
		{GameOutcome{FirstPlayerWon: true}, true, VersusPl1Win},
		{GameOutcome{FirstPlayerWon: true}, false, VersusPl2Win},
		{GameOutcome{FirstPlayerWon: false}, true, VersusPl2Win},
		{GameOutcome{FirstPlayerWon: false}, false, VersusPl1Win},
	}
	for _, tt := range tests {
		if got := toAgentResult(tt.outcome, tt.p1WentFirst); got != tt.want {
			t.Errorf("toAgentResult(%+v, %v)=%v, want %v", tt.outcome, tt.p1WentFirst, got, tt.want)
		}
	}
}

func TestTerminalListener(t *testing.T) {
	buf := &bytes.Buffer{}
	arena := NewVersusArena(NewMinimaxPlayer(), NewRandomPlayer())
	arena.Setup(4, 2)
	arena.Start(NewArenaListener(NewTerminalListener(buf).Plain(), &LogListener{}))
	if err := arena.Wait(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"minimax vs random", "worker 0:", "worker 1:", "draws"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}
