// Package session turns simulation results into side effects shared by
// every front end: event logging and run history.
package session

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vanscape/internal/core"
	"github.com/vovakirdan/vanscape/internal/storage"
)

// Recorder logs step events and saves a run whenever a session ends.
// Store may be nil, in which case runs are only logged.
type Recorder struct {
	Store      *storage.Store
	Logger     *log.Logger
	Player     string
	Difficulty string
}

// Record handles the result of one Step. ticks is the length of the
// session that produced it.
func (r Recorder) Record(res core.StepResult, ticks int) {
	LogEvents(r.Logger, res.Events)

	if res.Has(core.EventGameOver) {
		r.saveRun(res.State, ticks)
	}
}

func (r Recorder) saveRun(state core.GameState, ticks int) {
	if r.Store == nil {
		return
	}
	run, err := r.Store.SaveRun(storage.Run{
		Player:     r.Player,
		Difficulty: r.Difficulty,
		Score:      state.Score,
		Level:      state.Level,
		Ticks:      ticks,
	})
	if err != nil {
		if r.Logger != nil {
			r.Logger.Error("could not save run", "error", err)
		}
		return
	}
	if r.Logger != nil {
		r.Logger.Info("run saved", "run", run.RunID, "score", run.Score)
	}
}

// LogEvents writes simulation events to the logger. Frequent events go to
// debug so an info-level log stays readable.
func LogEvents(logger *log.Logger, events []core.Event) {
	if logger == nil {
		return
	}
	for _, e := range events {
		switch e.Kind {
		case core.EventHit:
			logger.Debug("player hit", "tick", e.Tick, "lives", e.Value)
		case core.EventPickup:
			logger.Debug("bonus collected", "tick", e.Tick, "lives", e.Value)
		case core.EventLevelUp:
			logger.Debug("enemy level up", "tick", e.Tick, "level", e.Value)
		case core.EventBomb:
			logger.Debug("bomb launched", "tick", e.Tick, "projectiles", e.Value)
		case core.EventDetonation:
			logger.Debug("bomb burst", "tick", e.Tick, "fragments", e.Value)
		case core.EventPickupSpawn:
			logger.Debug("bonus spawned", "tick", e.Tick, "pickups", e.Value)
		case core.EventGameOver:
			logger.Info("game over", "score", e.Value)
		case core.EventRestart:
			logger.Info("session restarted")
		case core.EventBestSaved:
			logger.Info("best score saved", "best", e.Value)
		case core.EventSaveFailed:
			logger.Error("could not save best score", "best", e.Value, "error", e.Err)
		}
	}
}
