package tool

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lifeadmin/concierge/core"
	"github.com/lifeadmin/concierge/eisenhower"
	"github.com/lifeadmin/concierge/internal/util"
)

// PrioritizeTool exposes Eisenhower prioritization as a model-invokable
// action. The model extracts tasks and the user's energy level from the
// conversation; the quadrant math stays deterministic Go code.
type PrioritizeTool struct {
	now func() time.Time
}

// NewPrioritizeTool constructs a PrioritizeTool using the wall clock.
func NewPrioritizeTool() *PrioritizeTool {
	return &PrioritizeTool{now: time.Now}
}

// NewPrioritizeToolWithClock constructs a PrioritizeTool with an injected
// clock, for tests.
func NewPrioritizeToolWithClock(now func() time.Time) *PrioritizeTool {
	return &PrioritizeTool{now: now}
}

// Name implements Tool.
func (t *PrioritizeTool) Name() string { return "prioritize_tasks" }

// Description implements Tool.
func (t *PrioritizeTool) Description() string {
	return "Ranks the user's tasks with the Eisenhower urgency/importance matrix, ordered for their " +
		"current energy level (LOW or HIGH), and assigns each task a morning or afternoon slot."
}

// Parameters implements Tool.
func (t *PrioritizeTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tasks": map[string]any{
				"type":        "array",
				"description": "Tasks to rank, each with a description and urgent/important flags",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"description": map[string]any{"type": "string"},
						"urgent":      map[string]any{"type": "boolean"},
						"important":   map[string]any{"type": "boolean"},
					},
					"required": []string{"description"},
				},
			},
			"energy_level": map[string]any{
				"type":        "string",
				"description": "The user's current energy level: LOW or HIGH",
			},
		},
		"required": []string{"tasks", "energy_level"},
	}
}

// Call implements Tool.
func (t *PrioritizeTool) Call(_ context.Context, args map[string]any) (any, error) {
	if err := util.ValidateParameters(args, t.Parameters()); err != nil {
		return nil, &ToolError{Tool: t.Name(), Message: err.Error(), Code: CodeValidation, Details: err}
	}

	tasks, err := decodeTasks(args["tasks"])
	if err != nil {
		return nil, &ToolError{Tool: t.Name(), Message: err.Error(), Code: CodeValidation, Details: err}
	}

	rawEnergy, _ := args["energy_level"].(string)
	energy, err := core.ParseEnergyLevel(rawEnergy)
	if err != nil {
		return nil, &ToolError{
			Tool:    t.Name(),
			Message: fmt.Sprintf("energy_level %q is not supported, ask the user whether their energy is LOW or HIGH", rawEnergy),
			Code:    CodeValidation,
			Details: err,
		}
	}

	plan, err := eisenhower.Prioritize(tasks, energy, t.now())
	if err != nil {
		return nil, &ToolError{Tool: t.Name(), Message: err.Error(), Code: CodeExecution, Details: err}
	}

	slots := make([]eisenhower.Slot, 0, len(plan.Ranked))
	for _, slot := range plan.Schedule() {
		slots = append(slots, slot)
	}

	ranked := make([]map[string]any, 0, len(plan.Ranked))
	for i, pt := range plan.Ranked {
		ranked = append(ranked, map[string]any{
			"description": pt.Task.Description,
			"quadrant":    pt.Quadrant.String(),
			"slot":        string(slots[i]),
		})
	}

	summary := map[string]int{}
	for q, n := range plan.Summary() {
		summary[q.String()] = n
	}

	return map[string]any{
		"success":      true,
		"energy_level": string(plan.Energy),
		"ranked":       ranked,
		"summary":      summary,
		"generated_at": plan.GeneratedAt.Format(time.RFC3339),
	}, nil
}

var _ Tool = (*PrioritizeTool)(nil)

func decodeTasks(raw any) ([]core.Task, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, errors.New("tasks must be an array of task objects")
	}

	tasks := make([]core.Task, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("tasks[%d] must be an object", i)
		}
		desc, _ := obj["description"].(string)
		if desc == "" {
			return nil, fmt.Errorf("tasks[%d] is missing a description", i)
		}
		urgent, _ := obj["urgent"].(bool)
		important, _ := obj["important"].(bool)
		tasks = append(tasks, core.Task{Description: desc, Urgent: urgent, Important: important})
	}
	return tasks, nil
}
