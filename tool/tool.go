// Package tool implements the fixed action contract consumed by the
// dispatcher: schema-described, argument-validated side-effecting actions
// (calendar event creation, email draft creation, task prioritization) with
// consistent error handling. The side effects themselves live behind backend
// interfaces implemented by external collaborators; the mock backends here
// stand in for them.
package tool

import (
	"context"
	"fmt"

	"github.com/lifeadmin/concierge/internal/util"
)

// Tool is a callable action exposed to the answer-generation capability.
//
// Implementations should provide a clear snake_case name, a description the
// model can act on, a minimal JSON schema for their arguments, and a Call
// that is safe for concurrent use.
type Tool interface {
	// Name returns the unique action identifier (snake_case).
	Name() string

	// Description returns a human-readable description of what this tool
	// does, provided to the model to guide invocation.
	Description() string

	// Parameters returns a JSON schema describing the expected arguments.
	Parameters() map[string]any

	// Call executes the action with already-decoded arguments. Blocking and
	// cancellable through ctx.
	Call(ctx context.Context, args map[string]any) (any, error)
}

// ValidationError represents argument validation failures with detail.
type ValidationError = util.ValidationError

// ToolError represents an action invocation failure. It is caught at the
// dispatcher boundary and converted into a user-visible explanation, never
// propagated to the process.
type ToolError struct {
	Tool    string `json:"tool"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("action error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("action error in %s: %s", e.Tool, e.Message)
}

// NewToolError creates a ToolError with the given details.
func NewToolError(tool, message, code string) *ToolError {
	return &ToolError{Tool: tool, Message: message, Code: code}
}

// Error codes used across all tools.
const (
	// CodeValidation marks schema / argument mismatches.
	CodeValidation = "VALIDATION_ERROR"
	// CodeExecution marks failures of the underlying action.
	CodeExecution = "EXECUTION_ERROR"
	// CodeUnknownAction marks a request for an unregistered action.
	CodeUnknownAction = "UNKNOWN_ACTION"
)
