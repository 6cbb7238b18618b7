package bench

import "github.com/sirupsen/logrus"

// Distributes the arena events between several listeners
type ArenaListener struct {
	listeners []ListenerLike
}

func NewArenaListener(listeners ...ListenerLike) *ArenaListener {
	return &ArenaListener{listeners: listeners}
}

func (al *ArenaListener) SetRow(row int) {
	for _, l := range al.listeners {
		l.SetRow(row)
	}
}

func (al *ArenaListener) OnStart() {
	for _, l := range al.listeners {
		l.OnStart()
	}
}

func (al *ArenaListener) OnGameStart() {
	for _, l := range al.listeners {
		l.OnGameStart()
	}
}

func (al *ArenaListener) OnMoveMade(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnMoveMade(info)
	}
}

func (al *ArenaListener) OnFinishedGame(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnFinishedGame(info)
	}
}

func (al *ArenaListener) OnFinishedWork(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnFinishedWork(info)
	}
}

func (al *ArenaListener) Summary(info VersusSummaryInfo) {
	for _, l := range al.listeners {
		l.Summary(info)
	}
}

func (al *ArenaListener) OnEnd() {
	for _, l := range al.listeners {
		l.OnEnd()
	}
}

func (al *ArenaListener) Clone() ListenerLike {
	clone := &ArenaListener{listeners: make([]ListenerLike, len(al.listeners))}
	for i, l := range al.listeners {
		clone.listeners[i] = l.Clone()
	}
	return clone
}

// Logs every finished game and the summary through logrus
type LogListener struct {
	DefaultListener
}

func (ll *LogListener) Clone() ListenerLike {
	return &LogListener{}
}

func (ll *LogListener) OnFinishedGame(info VersusWorkerInfo) {
	logrus.WithFields(logrus.Fields{
		"worker": info.WorkerID,
		"game":   info.FinishedGames,
		"result": info.Result.String(),
	}).Tracef("%s vs %s: %v", info.P1Name, info.P2Name, info.Moves)
}

func (ll *LogListener) Summary(info VersusSummaryInfo) {
	logrus.Infof(
		"%s vs %s: %d games, +%d -%d =%d",
		info.P1Name, info.P2Name, info.TotalGames, info.P1Wins, info.P2Wins, info.Draws,
	)
}
