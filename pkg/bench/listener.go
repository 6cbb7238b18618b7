package bench

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
)

type ListenerLike interface {
	SetRow(row int)
	OnStart()
	OnGameStart()
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(info VersusSummaryInfo)
	OnEnd()
	// Each worker gets its own clone
	Clone() ListenerLike
}

// Does nothing
type DefaultListener struct {
	row int
}

func (d *DefaultListener) SetRow(row int)                       { d.row = row }
func (d *DefaultListener) OnStart()                             {}
func (d *DefaultListener) OnGameStart()                         {}
func (d *DefaultListener) OnMoveMade(info VersusWorkerInfo)     {}
func (d *DefaultListener) OnFinishedGame(info VersusWorkerInfo) {}
func (d *DefaultListener) OnFinishedWork(info VersusWorkerInfo) {}
func (d *DefaultListener) Summary(info VersusSummaryInfo)       {}
func (d *DefaultListener) OnEnd()                               {}
func (d *DefaultListener) Clone() ListenerLike                  { return &DefaultListener{} }

// Prints the per-worker results and the summary, coloured when the
// output supports it
type TerminalListener struct {
	DefaultListener
	w      io.Writer
	output *termenv.Output
	mu     *sync.Mutex
}

func NewTerminalListener(w io.Writer) *TerminalListener {
	if w == nil {
		w = os.Stdout
	}
	return &TerminalListener{
		w:      w,
		output: termenv.NewOutput(w),
		mu:     &sync.Mutex{},
	}
}

// Disable the colours
func (tl *TerminalListener) Plain() *TerminalListener {
	tl.output = termenv.NewOutput(tl.w, termenv.WithProfile(termenv.Ascii))
	return tl
}

func (tl *TerminalListener) Clone() ListenerLike {
	return &TerminalListener{w: tl.w, output: tl.output, mu: tl.mu}
}

func (tl *TerminalListener) print(format string, a ...any) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	fmt.Fprintf(tl.output, format, a...)
}

func (tl *TerminalListener) wins(n int) termenv.Style {
	return tl.output.String(fmt.Sprint(n)).Foreground(tl.output.Color("2"))
}

func (tl *TerminalListener) losses(n int) termenv.Style {
	return tl.output.String(fmt.Sprint(n)).Foreground(tl.output.Color("1"))
}

func (tl *TerminalListener) draws(n int) termenv.Style {
	return tl.output.String(fmt.Sprint(n)).Foreground(tl.output.Color("3"))
}

func (tl *TerminalListener) OnFinishedWork(info VersusWorkerInfo) {
	tl.print("worker %d: %d/%d games  %s +%s -%s =%s\n",
		info.WorkerID, info.FinishedGames, info.NGames, info.P1Name,
		tl.wins(info.P1Wins), tl.losses(info.P2Wins), tl.draws(info.Draws),
	)
}

func (tl *TerminalListener) Summary(info VersusSummaryInfo) {
	title := tl.output.String(fmt.Sprintf("%s vs %s", info.P1Name, info.P2Name)).Bold()
	tl.print("%s (%d games, %d workers)\n", title, info.TotalGames, info.Workers)
	tl.print("  %-10s %s\n", info.P1Name+" wins", tl.wins(info.P1Wins))
	tl.print("  %-10s %s\n", info.P2Name+" wins", tl.losses(info.P2Wins))
	tl.print("  %-10s %s\n", "draws", tl.draws(info.Draws))
	tl.print("  first to move won %d, second to move won %d\n", info.FirstToMoveWins, info.SecondToMoveWins)
}
