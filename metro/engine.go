package metro

import "time"

// Engine is the per-frame core of the metronome: the settings, the
// reconciler and the beat scheduler, updated in a fixed order by Update.
type Engine struct {
	Settings   Settings
	scheduler  *Scheduler
	reconciler *Reconciler
}

// NewEngine returns an engine with default settings, not playing.
func NewEngine() *Engine {
	s := DefaultSettings()
	return &Engine{
		Settings:   s,
		scheduler:  NewScheduler(s.BPM),
		reconciler: NewReconciler(s),
	}
}

// Update runs one frame: clamps the settings, applies any changes to the
// timer and advances it by delta, sending the clicks to sink. Returns the
// number of clicks.
func (e *Engine) Update(delta time.Duration, sink ClickSink) int {
	e.Settings.Clamp()
	e.reconciler.Reconcile(e.Settings, e.scheduler.Timer)
	return e.scheduler.Tick(delta, e.Settings, sink)
}

func (e *Engine) Beat() BeatState { return e.scheduler.State }
func (e *Engine) Timer() *Timer   { return e.scheduler.Timer }
