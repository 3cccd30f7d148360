package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lifeadmin/concierge/core"
)

func TestClassify(t *testing.T) {
	r := New()

	tests := []struct {
		query string
		want  core.RouteDomain
	}{
		{"Create a calendar event for license renewal", core.RouteAdmin},
		{"Draft an email to renew my car insurance", core.RouteAdmin},
		{"Schedule a DMV appointment", core.RouteAdmin},
		{"Help me prioritize my tasks", core.RouteProductivity},
		{"I'm low energy, what should I focus on?", core.RouteProductivity},
		{"Run my todo list through the eisenhower matrix", core.RouteProductivity},
		{"What's my driver's license number?", core.RouteProfile},
		{"Do I have renters insurance?", core.RouteProfile},
		{"When does my passport expire?", core.RouteProfile},
		{"Tell me a joke", core.RouteGeneral},
		{"", core.RouteGeneral},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Classify(tt.query), "query=%q", tt.query)
	}
}

func TestClassifyCaseFolded(t *testing.T) {
	r := New()
	assert.Equal(t, core.RouteAdmin, r.Classify("CREATE A CALENDAR EVENT"))
	assert.Equal(t, core.RouteProductivity, r.Classify("PRIORITIZE EVERYTHING"))
}

// A query hitting two domains resolves to the earlier one in priority order.
func TestClassifyPriorityTieBreak(t *testing.T) {
	r := New()

	// "calendar" (admin) + "task" (productivity)
	assert.Equal(t, core.RouteAdmin, r.Classify("put this task on my calendar"))
	// "task" (productivity) + "license" (profile)
	assert.Equal(t, core.RouteProductivity, r.Classify("add a task about my license"))
	// "email" lives in admin even though the profile vocabulary once held it
	assert.Equal(t, core.RouteAdmin, r.Classify("email my insurance agent"))
}

func TestClassifyDeterministic(t *testing.T) {
	r := New()
	const q = "schedule time to renew my passport"
	first := r.Classify(q)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.Classify(q))
	}
}

func TestDescribeAndDomains(t *testing.T) {
	r := New()
	assert.Equal(t, []core.RouteDomain{core.RouteAdmin, core.RouteProductivity, core.RouteProfile}, r.Domains())
	assert.NotEmpty(t, r.Describe(core.RouteAdmin))
	assert.Equal(t, "General assistance", r.Describe(core.RouteGeneral))
}
