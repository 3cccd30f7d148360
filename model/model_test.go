package model

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeadmin/concierge/core"
)

func TestToolCallArgs(t *testing.T) {
	call := ToolCall{Name: "create_calendar_event", Arguments: json.RawMessage(`{"title":"DMV","duration_hours":1}`)}
	args, err := call.Args()
	require.NoError(t, err)
	assert.Equal(t, "DMV", args["title"])
	assert.Equal(t, float64(1), args["duration_hours"])

	empty := ToolCall{Name: "noop"}
	args, err = empty.Args()
	require.NoError(t, err)
	assert.Empty(t, args)

	bad := ToolCall{Arguments: json.RawMessage(`{broken`)}
	_, err = bad.Args()
	assert.Error(t, err)
}

func TestResponseIsFinal(t *testing.T) {
	assert.True(t, Response{Text: "done"}.IsFinal())
	assert.False(t, Response{ToolCalls: []ToolCall{{Name: "x"}}}.IsFinal())
}

func TestMockModelCanned(t *testing.T) {
	m := NewMockModel("mock", "test")
	m.AddResponse("hello", "hi!")
	m.AddToolCall("book it", ToolCall{ID: "1", Name: "create_calendar_event", Arguments: json.RawMessage(`{"title":"t"}`)})

	resp, err := m.Generate(context.Background(), Request{History: []core.Message{
		{Role: core.RoleUser, Content: "hello"},
	}})
	require.NoError(t, err)
	assert.Equal(t, "hi!", resp.Text)
	assert.True(t, resp.IsFinal())

	resp, err = m.Generate(context.Background(), Request{History: []core.Message{
		{Role: core.RoleUser, Content: "hello"},
		{Role: core.RoleAgent, Content: "hi!"},
		{Role: core.RoleUser, Content: "book it"},
	}})
	require.NoError(t, err)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "create_calendar_event", resp.ToolCalls[0].Name)
}

func TestMockModelUnconfiguredUnavailable(t *testing.T) {
	m := NewMockModel("mock", "test")
	_, err := m.Generate(context.Background(), Request{History: []core.Message{
		{Role: core.RoleUser, Content: "anything"},
	}})
	assert.ErrorIs(t, err, core.ErrAnswerUnavailable)
}

func TestMockModelContextCancelled(t *testing.T) {
	m := NewMockModel("mock", "test")
	m.AddResponse("q", "a")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
}
