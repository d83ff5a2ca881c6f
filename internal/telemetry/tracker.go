package telemetry

import (
	"sync"

	"github.com/rs/zerolog"
)

// Tracker is the analytics boundary. The core reports gameplay events through
// it and owns nothing about where they end up.
type Tracker interface {
	Track(eventName string, params map[string]any)
}

// LogTracker writes tracked events to structured logs. Useful as a default
// sink when no real analytics backend is wired.
type LogTracker struct {
	logger zerolog.Logger
}

// NewLogTracker creates a tracker that logs at info level.
func NewLogTracker(logger zerolog.Logger) *LogTracker {
	return &LogTracker{
		logger: logger.With().Str("component", "telemetry").Logger(),
	}
}

// Track implements Tracker.
func (t *LogTracker) Track(eventName string, params map[string]any) {
	t.logger.Info().
		Str("event", eventName).
		Fields(params).
		Msg("Tracked event")
}

// TrackedCall records one Track invocation.
type TrackedCall struct {
	Name   string
	Params map[string]any
}

// Recorder is an in-memory Tracker for tests.
type Recorder struct {
	mu    sync.Mutex
	calls []TrackedCall
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Track implements Tracker.
func (r *Recorder) Track(eventName string, params map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, TrackedCall{Name: eventName, Params: params})
}

// Calls returns a snapshot of everything tracked so far.
func (r *Recorder) Calls() []TrackedCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]TrackedCall, len(r.calls))
	copy(out, r.calls)
	return out
}
