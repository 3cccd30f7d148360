package dispatcher

import (
	"sync"
	"time"

	"github.com/lifeadmin/concierge/logging"
)

// ActionRecord captures one action invocation end to end, for observability
// and audit.
type ActionRecord struct {
	Timestamp time.Time
	SessionID string
	Action    string
	Args      map[string]any
	Result    any
	Err       error
	Duration  time.Duration
}

// ActionHook observes completed action invocations. Hooks run synchronously
// after each action, in registration order; they must not block for long.
type ActionHook interface {
	AfterAction(rec ActionRecord)
}

// LogHook writes a structured log entry per action invocation.
type LogHook struct {
	Logger logging.Logger
}

// actionCallLogger is satisfied by logging.ConciergeLogger.
type actionCallLogger interface {
	LogActionCall(action string, dur time.Duration, success bool, err error)
}

// AfterAction implements ActionHook.
func (h *LogHook) AfterAction(rec ActionRecord) {
	if cl, ok := h.Logger.(actionCallLogger); ok {
		cl.LogActionCall(rec.Action, rec.Duration, rec.Err == nil, rec.Err)
		return
	}
	if rec.Err != nil {
		h.Logger.Error("action failed",
			"action", rec.Action, "session_id", rec.SessionID,
			"duration", rec.Duration, "error", rec.Err)
		return
	}
	h.Logger.Info("action completed",
		"action", rec.Action, "session_id", rec.SessionID,
		"duration", rec.Duration)
}

// RecorderHook retains every record in memory. Intended for tests and for
// the CLI's verbose mode.
type RecorderHook struct {
	mu      sync.Mutex
	records []ActionRecord
}

// AfterAction implements ActionHook.
func (h *RecorderHook) AfterAction(rec ActionRecord) {
	h.mu.Lock()
	h.records = append(h.records, rec)
	h.mu.Unlock()
}

// Records returns a snapshot of all recorded invocations.
func (h *RecorderHook) Records() []ActionRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]ActionRecord, len(h.records))
	copy(out, h.records)
	return out
}

var (
	_ ActionHook = (*LogHook)(nil)
	_ ActionHook = (*RecorderHook)(nil)
)
