// Package eisenhower implements task prioritization over the four-quadrant
// urgency/importance matrix, conditioned on the user's declared energy level.
// Prioritization is a pure function of its inputs; nothing here touches
// session state or external services.
package eisenhower

import (
	"fmt"
	"iter"
	"time"

	"github.com/lifeadmin/concierge/core"
)

// Slot is a symbolic time bucket for a scheduled task. Concrete calendar
// times are the calendar integration's concern, not the prioritizer's.
type Slot string

const (
	// SlotMorning is the leading bucket of the working day.
	SlotMorning Slot = "morning"
	// SlotAfternoon is the trailing bucket.
	SlotAfternoon Slot = "afternoon"
)

// Plan is the result of a prioritization run: the ranked tasks with their
// quadrants, the energy level that shaped the ordering, and the generation
// time.
type Plan struct {
	Ranked      []core.PrioritizedTask `json:"ranked"`
	Energy      core.EnergyLevel       `json:"energy"`
	GeneratedAt time.Time              `json:"generated_at"`
}

// Classify assigns a task to exactly one quadrant. The mapping is total and
// deterministic: no task is unclassifiable and energy plays no part here.
func Classify(t core.Task) core.Quadrant {
	switch {
	case t.Urgent && t.Important:
		return core.QuadrantDoFirst
	case t.Important:
		return core.QuadrantSchedule
	case t.Urgent:
		return core.QuadrantDelegate
	default:
		return core.QuadrantEliminate
	}
}

// Prioritize classifies every task and orders the result by quadrant
// according to the energy level: LOW places Q3 then Q4 first (easy wins),
// HIGH places Q1 then Q2 first (deep work). Relative input order is
// preserved within a quadrant. An empty task list yields an empty, well
// formed Plan; an unrecognized energy level fails with ErrInvalidEnergyLevel.
func Prioritize(tasks []core.Task, energy core.EnergyLevel, now time.Time) (*Plan, error) {
	var order []core.Quadrant
	switch energy {
	case core.EnergyLow:
		order = []core.Quadrant{core.QuadrantDelegate, core.QuadrantEliminate, core.QuadrantDoFirst, core.QuadrantSchedule}
	case core.EnergyHigh:
		order = []core.Quadrant{core.QuadrantDoFirst, core.QuadrantSchedule, core.QuadrantDelegate, core.QuadrantEliminate}
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrInvalidEnergyLevel, energy)
	}

	byQuadrant := map[core.Quadrant][]core.PrioritizedTask{}
	for _, t := range tasks {
		q := Classify(t)
		byQuadrant[q] = append(byQuadrant[q], core.PrioritizedTask{Task: t, Quadrant: q})
	}

	ranked := make([]core.PrioritizedTask, 0, len(tasks))
	for _, q := range order {
		ranked = append(ranked, byQuadrant[q]...)
	}

	return &Plan{Ranked: ranked, Energy: energy, GeneratedAt: now}, nil
}

// Schedule returns a lazy, finite, restartable sequence of (task, slot)
// pairs. The energy-favored leading half of the ranking lands in the morning
// bucket, the remainder in the afternoon. Iterating the sequence again
// restarts it from the beginning.
func (p *Plan) Schedule() iter.Seq2[core.Task, Slot] {
	return func(yield func(core.Task, Slot) bool) {
		morning := (len(p.Ranked) + 1) / 2
		for i, pt := range p.Ranked {
			slot := SlotMorning
			if i >= morning {
				slot = SlotAfternoon
			}
			if !yield(pt.Task, slot) {
				return
			}
		}
	}
}

// Summary reports the task count per quadrant.
func (p *Plan) Summary() map[core.Quadrant]int {
	out := map[core.Quadrant]int{}
	for _, pt := range p.Ranked {
		out[pt.Quadrant]++
	}
	return out
}
