package metro

import (
	"slices"
	"time"
)

type (
	Alerts struct {
		alerts []Alert
	}

	Alert struct {
		Name      string
		Priority  AlertPriority
		Message   string
		Duration  time.Duration
		FadeLevel float64
	}

	AlertPriority int
)

const (
	Info AlertPriority = iota
	Warning
	Error
)

const (
	defaultAlertDuration = 3 * time.Second
	alertFadeTime        = 250 * time.Millisecond
)

// Add shows a message for the default duration.
func (m *Alerts) Add(message string, priority AlertPriority) {
	m.AddAlert(Alert{Priority: priority, Message: message, Duration: defaultAlertDuration})
}

// AddNamed is like Add, but an alert with the same name replaces the
// previous one instead of stacking on top of it.
func (m *Alerts) AddNamed(name, message string, priority AlertPriority) {
	m.AddAlert(Alert{Name: name, Priority: priority, Message: message, Duration: defaultAlertDuration})
}

func (m *Alerts) AddAlert(a Alert) {
	if a.Name != "" {
		if i := slices.IndexFunc(m.alerts, func(b Alert) bool { return b.Name == a.Name }); i >= 0 {
			a.FadeLevel = m.alerts[i].FadeLevel
			m.alerts[i] = a
			return
		}
	}
	m.alerts = append(m.alerts, a)
}

// Update advances the fade animations and expiry of the alerts by d.
// Returns true if any alert is still visible, i.e. another frame is needed.
func (m *Alerts) Update(d time.Duration) (animating bool) {
	fade := float64(d) / float64(alertFadeTime)
	for i := range m.alerts {
		a := &m.alerts[i]
		if a.Duration > 0 {
			a.Duration -= d
			a.FadeLevel = min(a.FadeLevel+fade, 1)
		} else {
			a.FadeLevel = max(a.FadeLevel-fade, 0)
		}
	}
	m.alerts = slices.DeleteFunc(m.alerts, func(a Alert) bool {
		return a.Duration <= 0 && a.FadeLevel <= 0
	})
	return len(m.alerts) > 0
}

// Iterate yields the visible alerts, highest priority first.
func (m *Alerts) Iterate(yield func(index int, alert Alert) bool) {
	sorted := slices.Clone(m.alerts)
	slices.SortStableFunc(sorted, func(a, b Alert) int { return int(b.Priority) - int(a.Priority) })
	for i, a := range sorted {
		if !yield(i, a) {
			return
		}
	}
}
