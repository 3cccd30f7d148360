package core

import (
	"fmt"
	"strings"
)

// Task is a single unit of user work. Urgency and importance arrive already
// resolved as booleans; inferring them from the description is the answer
// generation collaborator's job, never the prioritizer's.
type Task struct {
	Description string `json:"description"`
	Urgent      bool   `json:"urgent"`
	Important   bool   `json:"important"`
}

// Quadrant is an Eisenhower matrix cell derived from (urgent, important).
// The mapping is total: every task lands in exactly one quadrant.
type Quadrant int

const (
	// QuadrantDoFirst holds urgent and important tasks (Q1).
	QuadrantDoFirst Quadrant = iota + 1
	// QuadrantSchedule holds important but not urgent tasks (Q2).
	QuadrantSchedule
	// QuadrantDelegate holds urgent but not important tasks (Q3).
	QuadrantDelegate
	// QuadrantEliminate holds tasks that are neither (Q4).
	QuadrantEliminate
)

// String returns the stable wire label for the quadrant.
func (q Quadrant) String() string {
	switch q {
	case QuadrantDoFirst:
		return "Q1_DO_FIRST"
	case QuadrantSchedule:
		return "Q2_SCHEDULE"
	case QuadrantDelegate:
		return "Q3_DELEGATE"
	case QuadrantEliminate:
		return "Q4_ELIMINATE"
	default:
		return "UNKNOWN"
	}
}

// PrioritizedTask pairs a task with its assigned quadrant.
type PrioritizedTask struct {
	Task     Task     `json:"task"`
	Quadrant Quadrant `json:"quadrant"`
}

// EnergyLevel is the user's declared energy for a prioritization request.
// It is supplied per request and never persisted.
type EnergyLevel string

const (
	// EnergyLow favors easy wins (Q3/Q4 first).
	EnergyLow EnergyLevel = "LOW"
	// EnergyHigh favors deep work (Q1/Q2 first).
	EnergyHigh EnergyLevel = "HIGH"
)

// ParseEnergyLevel folds case and validates against the recognized levels.
func ParseEnergyLevel(s string) (EnergyLevel, error) {
	switch EnergyLevel(strings.ToUpper(strings.TrimSpace(s))) {
	case EnergyLow:
		return EnergyLow, nil
	case EnergyHigh:
		return EnergyHigh, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidEnergyLevel, s)
	}
}
