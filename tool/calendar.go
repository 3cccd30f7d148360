package tool

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lifeadmin/concierge/internal/util"
)

// CalendarEvent describes an event to be placed on the user's calendar.
type CalendarEvent struct {
	Title           string
	Description     string
	Location        string
	Start           time.Time
	End             time.Time
	ReminderMinutes int
}

// CreatedEvent is the backend's confirmation of a created event.
type CreatedEvent struct {
	ID     string
	Link   string
	Status string
	Event  CalendarEvent
}

// CalendarBackend creates events on an external calendar. Implementations
// wrap a real provider API; MockCalendarBackend records events in memory.
type CalendarBackend interface {
	CreateEvent(ctx context.Context, event CalendarEvent) (CreatedEvent, error)
}

// MockCalendarBackend stores created events in memory. It stands in for a
// real calendar provider during demos and tests.
type MockCalendarBackend struct {
	mu     sync.Mutex
	events []CreatedEvent
}

// NewMockCalendarBackend returns an empty in-memory calendar backend.
func NewMockCalendarBackend() *MockCalendarBackend {
	return &MockCalendarBackend{}
}

// CreateEvent records the event and returns a confirmation with a generated
// identifier.
func (b *MockCalendarBackend) CreateEvent(_ context.Context, event CalendarEvent) (CreatedEvent, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	created := CreatedEvent{
		ID:     "evt_" + uuid.NewString(),
		Link:   "https://calendar.example.com/event/" + uuid.NewString(),
		Status: "confirmed",
		Event:  event,
	}
	b.events = append(b.events, created)
	return created, nil
}

// Events returns a snapshot of all events created so far.
func (b *MockCalendarBackend) Events() []CreatedEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]CreatedEvent, len(b.events))
	copy(out, b.events)
	return out
}

var _ CalendarBackend = (*MockCalendarBackend)(nil)

// CalendarTool exposes calendar event creation as a model-invokable action.
// Events are real appointments or reminders, so arguments are validated
// strictly before the backend is touched.
type CalendarTool struct {
	backend CalendarBackend
}

// NewCalendarTool wires a CalendarTool to the given backend.
func NewCalendarTool(backend CalendarBackend) *CalendarTool {
	return &CalendarTool{backend: backend}
}

// Name implements Tool.
func (t *CalendarTool) Name() string { return "create_calendar_event" }

// Description implements Tool.
func (t *CalendarTool) Description() string {
	return "Creates a calendar event for reminders, appointments, or deadlines. " +
		"Use this when the user wants to schedule something or set a reminder."
}

// Parameters implements Tool.
func (t *CalendarTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "The title/summary of the calendar event",
			},
			"start_time": map[string]any{
				"type":        "string",
				"description": "Start time in ISO format (e.g., '2025-12-15T10:00:00')",
			},
			"duration_hours": map[string]any{
				"type":        "number",
				"description": "Duration of the event in hours (default: 1)",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "Additional details or notes for the event",
			},
			"location": map[string]any{
				"type":        "string",
				"description": "Location of the event",
			},
		},
		"required": []string{"title", "start_time"},
	}
}

// Call implements Tool. It parses and validates the event arguments, then
// creates the event through the backend.
func (t *CalendarTool) Call(ctx context.Context, args map[string]any) (any, error) {
	if err := util.ValidateParameters(args, t.Parameters()); err != nil {
		return nil, &ToolError{Tool: t.Name(), Message: err.Error(), Code: CodeValidation, Details: err}
	}

	title, _ := args["title"].(string)
	if title == "" {
		return nil, &ToolError{Tool: t.Name(), Message: "title must not be empty", Code: CodeValidation}
	}

	startRaw, _ := args["start_time"].(string)
	start, err := parseEventTime(startRaw)
	if err != nil {
		return nil, &ToolError{
			Tool:    t.Name(),
			Message: fmt.Sprintf("invalid start_time %q: use ISO format such as 2025-12-15T10:00:00", startRaw),
			Code:    CodeValidation,
			Details: err,
		}
	}

	duration := 1.0
	if raw, ok := args["duration_hours"]; ok {
		duration, ok = asFloat(raw)
		if !ok || duration <= 0 {
			return nil, &ToolError{Tool: t.Name(), Message: "duration_hours must be a positive number", Code: CodeValidation}
		}
	}

	event := CalendarEvent{
		Title:           title,
		Start:           start,
		End:             start.Add(time.Duration(duration * float64(time.Hour))),
		ReminderMinutes: 30,
	}
	event.Description, _ = args["description"].(string)
	event.Location, _ = args["location"].(string)

	created, err := t.backend.CreateEvent(ctx, event)
	if err != nil {
		return nil, &ToolError{Tool: t.Name(), Message: fmt.Sprintf("failed to create event: %v", err), Code: CodeExecution, Details: err}
	}

	return map[string]any{
		"success":  true,
		"event_id": created.ID,
		"title":    event.Title,
		"start":    event.Start.Format(time.RFC3339),
		"end":      event.End.Format(time.RFC3339),
		"location": event.Location,
		"link":     created.Link,
		"status":   created.Status,
	}, nil
}

var _ Tool = (*CalendarTool)(nil)

// parseEventTime accepts RFC 3339 timestamps as well as the common local
// variant without a zone offset.
func parseEventTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}

// asFloat normalizes the numeric types a JSON decoder or a caller may hand
// us into float64.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
