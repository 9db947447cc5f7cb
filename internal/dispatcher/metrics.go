package dispatcher

import (
	"sort"
	"sync"
	"time"

	"github.com/dshills/rigedit/internal/dispatcher/handler"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	actionMetrics map[string]*ActionMetrics
	statusCounts  map[handler.ResultStatus]uint64

	totalDispatches uint64
	totalPanics     uint64
	totalDuration   time.Duration
}

// ActionMetrics holds metrics for one action string.
type ActionMetrics struct {
	Name           string
	DispatchCount  uint64
	ErrorCount     uint64
	UnhandledCount uint64
	TotalDuration  time.Duration
	MinDuration    time.Duration
	MaxDuration    time.Duration
	LastStatus     handler.ResultStatus
	LastDispatch   time.Time
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		actionMetrics: make(map[string]*ActionMetrics),
		statusCounts:  make(map[handler.ResultStatus]uint64),
	}
}

// RecordDispatch records a dispatch event.
func (m *Metrics) RecordDispatch(actionName string, duration time.Duration, status handler.ResultStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	m.totalDuration += duration
	m.statusCounts[status]++

	am := m.actionMetrics[actionName]
	if am == nil {
		am = &ActionMetrics{
			Name:        actionName,
			MinDuration: duration,
			MaxDuration: duration,
		}
		m.actionMetrics[actionName] = am
	}

	am.DispatchCount++
	am.TotalDuration += duration
	am.LastStatus = status
	am.LastDispatch = time.Now()

	if duration < am.MinDuration {
		am.MinDuration = duration
	}
	if duration > am.MaxDuration {
		am.MaxDuration = duration
	}

	switch status {
	case handler.StatusError:
		am.ErrorCount++
	case handler.StatusUnhandled:
		am.UnhandledCount++
	}
}

// RecordPanic records a panic recovery.
func (m *Metrics) RecordPanic(actionName string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalPanics++
	if am := m.actionMetrics[actionName]; am != nil {
		am.ErrorCount++
	}
}

// TotalDispatches returns the total number of dispatches.
func (m *Metrics) TotalDispatches() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDispatches
}

// TotalErrors returns the number of dispatches that ended in an error.
func (m *Metrics) TotalErrors() uint64 {
	return m.StatusCount(handler.StatusError)
}

// TotalUnhandled returns the number of dispatches no segment recognized.
func (m *Metrics) TotalUnhandled() uint64 {
	return m.StatusCount(handler.StatusUnhandled)
}

// StatusCount returns the number of dispatches that ended with status.
func (m *Metrics) StatusCount(status handler.ResultStatus) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.statusCounts[status]
}

// TotalPanics returns the total number of panics recovered.
func (m *Metrics) TotalPanics() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalPanics
}

// AverageDuration returns the average dispatch duration.
func (m *Metrics) AverageDuration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.totalDispatches == 0 {
		return 0
	}
	return m.totalDuration / time.Duration(m.totalDispatches)
}

// ActionStats returns a copy of the metrics for one action string.
func (m *Metrics) ActionStats(actionName string) *ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	am := m.actionMetrics[actionName]
	if am == nil {
		return nil
	}
	c := *am
	return &c
}

// TopActions returns the n most dispatched actions.
func (m *Metrics) TopActions(n int) []*ActionMetrics {
	return m.top(n, func(a, b *ActionMetrics) bool {
		return a.DispatchCount > b.DispatchCount
	})
}

// TopUnhandled returns the n action strings most often left unhandled.
// Key maps with stale bindings show up here.
func (m *Metrics) TopUnhandled(n int) []*ActionMetrics {
	out := m.top(-1, func(a, b *ActionMetrics) bool {
		return a.UnhandledCount > b.UnhandledCount
	})
	i := 0
	for i < len(out) && out[i].UnhandledCount > 0 {
		i++
	}
	out = out[:i]
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

func (m *Metrics) top(n int, less func(a, b *ActionMetrics) bool) []*ActionMetrics {
	m.mu.RLock()
	actions := make([]*ActionMetrics, 0, len(m.actionMetrics))
	for _, am := range m.actionMetrics {
		c := *am
		actions = append(actions, &c)
	}
	m.mu.RUnlock()

	sort.Slice(actions, func(i, j int) bool {
		if less(actions[i], actions[j]) {
			return true
		}
		if less(actions[j], actions[i]) {
			return false
		}
		return actions[i].Name < actions[j].Name
	})

	if n >= 0 && n < len(actions) {
		actions = actions[:n]
	}
	return actions
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.actionMetrics = make(map[string]*ActionMetrics)
	m.statusCounts = make(map[handler.ResultStatus]uint64)
	m.totalDispatches = 0
	m.totalPanics = 0
	m.totalDuration = 0
}

// MetricsSnapshot is a point-in-time copy of the global counters.
type MetricsSnapshot struct {
	TotalDispatches uint64
	TotalErrors     uint64
	TotalUnhandled  uint64
	TotalPanics     uint64
	TotalDuration   time.Duration
	AverageDuration time.Duration
	ActionCount     int
	Timestamp       time.Time
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := MetricsSnapshot{
		TotalDispatches: m.totalDispatches,
		TotalErrors:     m.statusCounts[handler.StatusError],
		TotalUnhandled:  m.statusCounts[handler.StatusUnhandled],
		TotalPanics:     m.totalPanics,
		TotalDuration:   m.totalDuration,
		ActionCount:     len(m.actionMetrics),
		Timestamp:       time.Now(),
	}
	if m.totalDispatches > 0 {
		snapshot.AverageDuration = m.totalDuration / time.Duration(m.totalDispatches)
	}
	return snapshot
}

// AverageActionDuration returns the average duration for the action.
func (am *ActionMetrics) AverageActionDuration() time.Duration {
	if am.DispatchCount == 0 {
		return 0
	}
	return am.TotalDuration / time.Duration(am.DispatchCount)
}

// ErrorRate returns the error rate as a percentage.
func (am *ActionMetrics) ErrorRate() float64 {
	if am.DispatchCount == 0 {
		return 0
	}
	return float64(am.ErrorCount) / float64(am.DispatchCount) * 100
}
