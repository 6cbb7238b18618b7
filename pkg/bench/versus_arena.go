package bench

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/IlikeChooros/go-tictactoe/pkg/game"
	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
)

/*
Arena benchmark subpackage, plays a series of games between two
players and counts the results.
*/

type VersusArena struct {
	VersusArenaStats
	Player1  Player
	Player2  Player
	NGames   uint
	NThreads uint
	wg       sync.WaitGroup
	finished chan struct{}
	errOnce  sync.Once
	err      error
	ctx      context.Context
	started  atomic.Bool
}

func NewVersusArena(player1, player2 Player) *VersusArena {
	return &VersusArena{
		Player1:  player1,
		Player2:  player2,
		NGames:   100,
		NThreads: 2,
		ctx:      context.Background(),
	}
}

// Stop playing new moves once the context is done, unfinished games are not counted
func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

func (va *VersusArena) Setup(nGames uint, nThreads uint) {
	va.NGames = nGames
	va.NThreads = max(1, nThreads)
}

// Block until every worker is done, returns the first error any worker hit
func (va *VersusArena) Wait() error {
	if va.started.Load() {
		<-va.finished
	}
	return va.err
}

func (va *VersusArena) setErr(err error) {
	va.errOnce.Do(func() { va.err = err })
}

// Start equally distributed work between worker goroutines, returns immediately
func (va *VersusArena) Start(listener ListenerLike) {
	if listener == nil {
		listener = &DefaultListener{}
	}

	va.NThreads = max(1, va.NThreads)
	va.finished = make(chan struct{})
	va.started.Store(true)
	listener.OnStart()

	nGames := va.NGames / va.NThreads
	rest := va.NGames % va.NThreads
	va.wg.Add(int(va.NThreads))

	for i := uint(0); i < va.NThreads; i++ {
		delta := uint(0)
		if rest > 0 {
			delta = 1
			rest--
		}

		// Always use a clone, each worker owns its players
		p1 := va.Player1.Clone()
		p2 := va.Player2.Clone()
		l := listener.Clone()
		l.SetRow(int(i))
		go va.worker(int(i), int(nGames+delta), l, p1, p2)
	}

	go func() {
		va.wg.Wait()
		listener.Summary(va.Summary())
		listener.OnEnd()
		close(va.finished)
	}()
}

// Current totals
func (va *VersusArena) Summary() VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          int(va.NThreads),
		P1Name:           va.Player1.Name(),
		P2Name:           va.Player2.Name(),
	}
}

func (va *VersusArena) worker(id, nGames int, listener ListenerLike, p1, p2 Player) {
	defer va.wg.Done()

	r := rand.New(rand.NewSource(SeedGeneratorFn() + int64(id)))
	local := VersusArenaStats{}

Loop:
	for i := 0; i < nGames; i++ {
		p1First := r.Int()%2 == 0
		first, second := p1, p2
		if !p1First {
			first, second = p2, p1
		}

		info := VersusWorkerInfo{
			WorkerID:      id,
			NGames:        nGames,
			FinishedGames: i,
			P1Name:        p1.Name(),
			P2Name:        p2.Name(),
		}

		listener.OnGameStart()
		g, err := playGame(va.ctx, first, second, listener, info)
		if err != nil {
			logrus.WithField("worker", id).Error(err)
			va.setErr(err)
			break Loop
		}

		select {
		case <-va.ctx.Done():
			break Loop
		default:
		}

		outcome := computeOutcome(g)
		result := toAgentResult(outcome, p1First)
		va.add(result, outcome)
		local.add(result, outcome)

		info.Moves = g.Moves()
		info.GameMoveNum = len(info.Moves)
		info.FinishedGames = i + 1
		info.Result = result
		info.P1Wins, info.P2Wins, info.Draws = local.P1Wins(), local.P2Wins(), local.Draws()
		logrus.WithField("worker", id).Debugf("game %d/%d: %s %v", i+1, nGames, result, info.Moves)
		listener.OnFinishedGame(info)
	}

	listener.OnFinishedWork(VersusWorkerInfo{
		WorkerID:      id,
		NGames:        nGames,
		FinishedGames: local.Total(),
		P1Wins:        local.P1Wins(),
		P2Wins:        local.P2Wins(),
		Draws:         local.Draws(),
		P1Name:        p1.Name(),
		P2Name:        p2.Name(),
	})
}

// Play a single game, 'first' plays Cross
func playGame(ctx context.Context, first, second Player, listener ListenerLike, info VersusWorkerInfo) (*game.Game, error) {
	g, err := game.New(ttt.Cross)
	if err != nil {
		return nil, err
	}

	players := map[ttt.Cell]Player{ttt.Cross: first, ttt.Circle: second}
	for !g.Over() {
		select {
		case <-ctx.Done():
			return g, nil
		default:
		}

		pl := players[g.Turn()]
		index, err := pl.Choose(g.Board(), g.Turn())
		if err != nil {
			return nil, fmt.Errorf("%s as %v: %w", pl.Name(), g.Turn(), err)
		}
		if _, err := g.MakeMove(index); err != nil {
			return nil, fmt.Errorf("%s as %v: %w", pl.Name(), g.Turn(), err)
		}

		info.Moves = g.Moves()
		info.GameMoveNum = len(info.Moves)
		listener.OnMoveMade(info)
	}

	return g, nil
}
