package model

import (
	"context"
	"fmt"

	"github.com/lifeadmin/concierge/core"
)

// MockModel is a lightweight in-memory Model for tests and demo mode. It
// matches canned completions and action requests against the latest user
// message; an unconfigured MockModel reports the capability unavailable,
// which exercises callers' degraded paths.
type MockModel struct {
	info      Info
	responses map[string]Response
}

// NewMockModel constructs a MockModel with tool support enabled.
func NewMockModel(name, provider string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: provider, SupportsTools: true},
		responses: make(map[string]Response),
	}
}

// AddResponse registers a canned text completion for a user message.
func (m *MockModel) AddResponse(input, text string) {
	m.responses[input] = Response{Text: text, FinishReason: "stop"}
}

// AddToolCall registers a canned action request for a user message.
func (m *MockModel) AddToolCall(input string, call ToolCall) {
	m.responses[input] = Response{ToolCalls: []ToolCall{call}, FinishReason: "tool_calls"}
}

// Add registers an arbitrary canned response for a user message.
func (m *MockModel) Add(input string, resp Response) {
	m.responses[input] = resp
}

// Generate implements Model.
func (m *MockModel) Generate(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	var last string
	for i := len(req.History) - 1; i >= 0; i-- {
		if req.History[i].Role == core.RoleUser {
			last = req.History[i].Content
			break
		}
	}
	if resp, ok := m.responses[last]; ok {
		return resp, nil
	}
	if len(m.responses) == 0 {
		return Response{}, fmt.Errorf("%w: mock model has no responses configured", core.ErrAnswerUnavailable)
	}
	return Response{Text: fmt.Sprintf("Mock response to: %s", last), FinishReason: "stop"}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
