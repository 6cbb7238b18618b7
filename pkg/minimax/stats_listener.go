package minimax

import "github.com/IlikeChooros/go-tictactoe/pkg/ttt"

// Snapshot of the search, passed to the listener callbacks
type SearchInfo struct {
	Result   Result
	Nodes    uint64
	Leaves   uint64
	Maxdepth int
	TimeMs   int
	Nps      uint64
}

// Score of a single root candidate
type RootMoveInfo struct {
	Move  ttt.Move
	Score Score
	Best  Result
}

type ListenerFunc func(SearchInfo)
type RootMoveListenerFunc func(RootMoveInfo)

type StatsListener struct {
	// called after each root candidate is scored, in ascending index order
	onRootMove RootMoveListenerFunc

	// called once, when the search is done
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{}
}

// Attach root move callback, called only by the goroutine that started the search
func (listener *StatsListener) OnRootMove(f RootMoveListenerFunc) *StatsListener {
	listener.onRootMove = f
	return listener
}

// Attach 'on search end' callback
func (listener *StatsListener) OnStop(f ListenerFunc) *StatsListener {
	listener.onStop = f
	return listener
}

func (listener *StatsListener) invokeRootMove(info RootMoveInfo) {
	if listener.onRootMove != nil {
		listener.onRootMove(info)
	}
}

func (listener *StatsListener) invokeStop(info SearchInfo) {
	if listener.onStop != nil {
		listener.onStop(info)
	}
}
