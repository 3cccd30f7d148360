package concierge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeadmin/concierge/core"
	"github.com/lifeadmin/concierge/model"
)

func TestNew_DefaultsRunInDemoMode(t *testing.T) {
	c := New()

	reply, err := c.Ask(context.Background(), "sess-1", "Hi there")
	require.NoError(t, err)
	assert.Contains(t, reply, "Life Admin Concierge")

	history, err := c.History("sess-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, core.RoleUser, history[0].Role)
	assert.Equal(t, core.RoleAgent, history[1].Role)
}

func TestNew_WithConfiguredModel(t *testing.T) {
	mdl := model.NewMockModel("mock", "test")
	mdl.AddResponse("What renewals do I have?", "Your car insurance is overdue.")

	c := New(func(o *Options) {
		o.Model = mdl
	})

	reply, err := c.Ask(context.Background(), "sess-1", "What renewals do I have?")
	require.NoError(t, err)
	assert.Equal(t, "Your car insurance is overdue.", reply)
}

func TestClearSession(t *testing.T) {
	c := New()

	_, err := c.Ask(context.Background(), "sess-1", "Hello")
	require.NoError(t, err)
	require.NoError(t, c.ClearSession("sess-1"))

	history, err := c.History("sess-1")
	require.NoError(t, err)
	assert.Empty(t, history)

	// Unknown sessions still fail.
	assert.ErrorIs(t, c.ClearSession("missing"), core.ErrUnknownSession)
}

func TestDefaultTools(t *testing.T) {
	names := []string{}
	for _, tl := range DefaultTools() {
		names = append(names, tl.Name())
	}
	assert.ElementsMatch(t, []string{"create_calendar_event", "create_gmail_draft", "prioritize_tasks"}, names)
}

func TestRenewalReport(t *testing.T) {
	c := New()
	report := c.RenewalReport()
	assert.Contains(t, report, "Car Insurance (Geico)")
	assert.Contains(t, report, "Driver's License")
}
