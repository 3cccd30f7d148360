package dispatcher

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeadmin/concierge/core"
	"github.com/lifeadmin/concierge/model"
	"github.com/lifeadmin/concierge/session"
	"github.com/lifeadmin/concierge/tool"
)

func fixedNow() time.Time {
	return time.Date(2025, time.November, 30, 9, 0, 0, 0, time.UTC)
}

func newTestDispatcher(t *testing.T, mdl model.Model, optFns ...func(o *Options)) (*Dispatcher, *session.InMemoryStore) {
	t.Helper()
	store := session.NewInMemoryStore()
	opts := append([]func(o *Options){WithClock(fixedNow)}, optFns...)
	return New(store, mdl, opts...), store
}

func TestHandle_CreatesSessionAndAppendsTurn(t *testing.T) {
	mdl := model.NewMockModel("mock", "test")
	mdl.AddResponse("Hello", "Hi John, how can I help with your life admin today?")

	d, store := newTestDispatcher(t, mdl)
	reply, err := d.Handle(context.Background(), "sess-1", "Hello")
	require.NoError(t, err)
	assert.Equal(t, "Hi John, how can I help with your life admin today?", reply)

	history, err := store.History("sess-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, core.RoleUser, history[0].Role)
	assert.Equal(t, "Hello", history[0].Content)
	assert.Equal(t, core.RoleAgent, history[1].Role)
	assert.Equal(t, reply, history[1].Content)
}

func TestHandle_ReusesExistingSession(t *testing.T) {
	mdl := model.NewMockModel("mock", "test")
	mdl.AddResponse("first", "one")
	mdl.AddResponse("second", "two")

	d, store := newTestDispatcher(t, mdl)
	_, err := d.Handle(context.Background(), "sess-1", "first")
	require.NoError(t, err)
	_, err = d.Handle(context.Background(), "sess-1", "second")
	require.NoError(t, err)

	history, err := store.History("sess-1")
	require.NoError(t, err)
	assert.Len(t, history, 4)
}

func TestHandle_ExecutesRequestedAction(t *testing.T) {
	backend := tool.NewMockCalendarBackend()
	reg := tool.NewRegistry(tool.NewCalendarTool(backend))

	args, _ := json.Marshal(map[string]any{
		"title":      "DMV Appointment",
		"start_time": "2025-12-10T14:00:00",
	})
	mdl := model.NewMockModel("mock", "test")
	mdl.AddToolCall("Remind me about the DMV", model.ToolCall{ID: "c1", Name: "create_calendar_event", Arguments: args})

	recorder := &RecorderHook{}
	d, _ := newTestDispatcher(t, mdl, WithRegistry(reg), WithHooks(recorder))

	reply, err := d.Handle(context.Background(), "sess-1", "Remind me about the DMV")
	require.NoError(t, err)
	assert.Contains(t, reply, "create_calendar_event")

	require.Len(t, backend.Events(), 1)
	assert.Equal(t, "DMV Appointment", backend.Events()[0].Event.Title)

	records := recorder.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "create_calendar_event", records[0].Action)
	assert.Equal(t, "sess-1", records[0].SessionID)
	assert.NoError(t, records[0].Err)
}

func TestHandle_UnknownActionBecomesExplanation(t *testing.T) {
	args, _ := json.Marshal(map[string]any{})
	mdl := model.NewMockModel("mock", "test")
	mdl.AddToolCall("do something", model.ToolCall{ID: "c1", Name: "launch_rocket", Arguments: args})

	recorder := &RecorderHook{}
	d, _ := newTestDispatcher(t, mdl, WithHooks(recorder))

	reply, err := d.Handle(context.Background(), "sess-1", "do something")
	require.NoError(t, err)
	assert.Contains(t, reply, "launch_rocket")
	assert.Contains(t, reply, "couldn't complete")

	records := recorder.Records()
	require.Len(t, records, 1)
	require.Error(t, records[0].Err)
	assert.Equal(t, tool.CodeUnknownAction, records[0].Err.(*tool.ToolError).Code)
}

func TestHandle_ActionValidationFailureBecomesExplanation(t *testing.T) {
	reg := tool.NewRegistry(tool.NewGmailTool(tool.NewMockDraftBackend()))

	args, _ := json.Marshal(map[string]any{"to": "nonsense", "subject": "Hi", "body": "Hello"})
	mdl := model.NewMockModel("mock", "test")
	mdl.AddToolCall("draft it", model.ToolCall{ID: "c1", Name: "create_gmail_draft", Arguments: args})

	d, store := newTestDispatcher(t, mdl, WithRegistry(reg))
	reply, err := d.Handle(context.Background(), "sess-1", "draft it")
	require.NoError(t, err)
	assert.Contains(t, reply, "couldn't complete create_gmail_draft")

	// The explanation still lands in the session history.
	history, err := store.History("sess-1")
	require.NoError(t, err)
	assert.Equal(t, reply, history[1].Content)
}

func TestHandle_TextAndActionsAreCombined(t *testing.T) {
	reg := tool.NewRegistry(tool.NewPrioritizeToolWithClock(fixedNow))

	args, _ := json.Marshal(map[string]any{
		"tasks": []any{
			map[string]any{"description": "Renew insurance", "urgent": true, "important": true},
		},
		"energy_level": "HIGH",
	})
	mdl := model.NewMockModel("mock", "test")
	mdl.Add("prioritize my day", model.Response{
		Text:         "Here is your plan:",
		ToolCalls:    []model.ToolCall{{ID: "c1", Name: "prioritize_tasks", Arguments: args}},
		FinishReason: "tool_calls",
	})

	d, _ := newTestDispatcher(t, mdl, WithRegistry(reg))
	reply, err := d.Handle(context.Background(), "sess-1", "prioritize my day")
	require.NoError(t, err)
	assert.Contains(t, reply, "Here is your plan:")
	assert.Contains(t, reply, "Q1_DO_FIRST")
}

func TestHandle_DegradedProfileAnswer(t *testing.T) {
	// An unconfigured mock reports the capability unavailable.
	mdl := model.NewMockModel("mock", "test")

	d, _ := newTestDispatcher(t, mdl)
	reply, err := d.Handle(context.Background(), "sess-1", "What's my driver's license number?")
	require.NoError(t, err)
	assert.Contains(t, reply, "D99887766")
	assert.Contains(t, reply, "NEEDS ATTENTION")
}

func TestHandle_DegradedAdminAnswerListsRenewals(t *testing.T) {
	mdl := model.NewMockModel("mock", "test")

	d, _ := newTestDispatcher(t, mdl)
	reply, err := d.Handle(context.Background(), "sess-1", "What renewals do I have coming up?")
	require.NoError(t, err)
	assert.Contains(t, reply, "Car Insurance (Geico)")
	assert.Contains(t, reply, "OVERDUE")
}

func TestHandle_DegradedProductivityAnswerAsksForEnergy(t *testing.T) {
	mdl := model.NewMockModel("mock", "test")

	d, _ := newTestDispatcher(t, mdl)
	reply, err := d.Handle(context.Background(), "sess-1", "Help me prioritize my tasks")
	require.NoError(t, err)
	assert.Contains(t, reply, "LOW or HIGH")
}

func TestHandle_DegradedGeneralAnswerListsCapabilities(t *testing.T) {
	mdl := model.NewMockModel("mock", "test")

	d, _ := newTestDispatcher(t, mdl)
	reply, err := d.Handle(context.Background(), "sess-1", "Good morning!")
	require.NoError(t, err)
	assert.Contains(t, reply, "Life Admin Concierge")
	assert.Contains(t, reply, "Eisenhower")
}

func TestHandle_RequestCarriesProfileAndTools(t *testing.T) {
	captured := &capturingModel{}
	reg := tool.NewRegistry(
		tool.NewCalendarTool(tool.NewMockCalendarBackend()),
		tool.NewGmailTool(tool.NewMockDraftBackend()),
	)

	d, _ := newTestDispatcher(t, captured, WithRegistry(reg))
	_, err := d.Handle(context.Background(), "sess-1", "What's my passport number?")
	require.NoError(t, err)

	req := captured.lastRequest
	assert.Contains(t, req.Instructions, "P11223344")
	assert.Contains(t, req.Instructions, "RENEWAL CALENDAR")
	require.Len(t, req.Tools, 2)
	assert.Equal(t, "create_calendar_event", req.Tools[0].Name)
	assert.Equal(t, "create_gmail_draft", req.Tools[1].Name)
}

type capturingModel struct {
	lastRequest model.Request
}

func (m *capturingModel) Generate(_ context.Context, req model.Request) (model.Response, error) {
	m.lastRequest = req
	return model.Response{Text: "ok", FinishReason: "stop"}, nil
}

func (m *capturingModel) Info() model.Info {
	return model.Info{Name: "capture", Provider: "test", SupportsTools: true}
}
