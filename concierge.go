// Package concierge provides a high-level façade over the dispatcher and
// service abstractions (sessions, routing, personal context, actions &
// logging) for building a personal life-admin assistant. Most applications
// interact with this package by:
//  1. Creating a Concierge via New() (optionally overriding default in-memory services)
//  2. Asking questions with Ask(), reusing a session ID for conversational continuity
//
// The façade delegates orchestration to dispatcher.Dispatcher while keeping
// setup and usage ergonomics concise. All defaults are safe for local
// development and testing: an in-memory session store, the sample profile,
// the built-in keyword router and the mock action backends. Production
// deployments typically supply a real model, a loaded profile and a
// structured logger.
package concierge

import (
	"context"
	"time"

	"github.com/lifeadmin/concierge/core"
	"github.com/lifeadmin/concierge/dispatcher"
	"github.com/lifeadmin/concierge/logging"
	"github.com/lifeadmin/concierge/model"
	"github.com/lifeadmin/concierge/profile"
	"github.com/lifeadmin/concierge/router"
	"github.com/lifeadmin/concierge/session"
	"github.com/lifeadmin/concierge/tool"
)

// Options configures the Concierge instance.
type Options struct {
	// SessionStore holds conversation history (defaults to in-memory).
	SessionStore core.SessionStore

	// Model generates answers. Defaults to an unconfigured MockModel, which
	// keeps every query on the degraded deterministic paths.
	Model model.Model

	// Profile is the personal context store (defaults to the sample data).
	Profile *profile.Store

	// Tools are the actions exposed to the model. When nil, the built-in
	// calendar, email draft and prioritization tools with mock backends are
	// registered.
	Tools []tool.Tool

	// Hooks observe completed action invocations.
	Hooks []dispatcher.ActionHook

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger

	// Persona overrides the base instruction block.
	Persona string
}

// Concierge is the high-level façade aggregating the dispatcher and its
// services.
type Concierge struct {
	opts       Options
	dispatcher *dispatcher.Dispatcher
	store      core.SessionStore
	profile    *profile.Store
}

// New creates a Concierge with optional overrides. Any unset service is
// initialized with an in-memory or mock implementation.
func New(optFns ...func(o *Options)) *Concierge {
	opts := Options{
		SessionStore: session.NewInMemoryStore(),
		Logger:       logging.NoOpLogger{},
		Persona:      dispatcher.DefaultPersona,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Model == nil {
		opts.Model = model.NewMockModel("demo", "mock")
	}
	if opts.Profile == nil {
		opts.Profile = profile.Sample()
	}
	if opts.Tools == nil {
		opts.Tools = DefaultTools()
	}

	d := dispatcher.New(opts.SessionStore, opts.Model,
		dispatcher.WithRouter(router.New()),
		dispatcher.WithRegistry(tool.NewRegistry(opts.Tools...)),
		dispatcher.WithProfile(opts.Profile),
		dispatcher.WithLogger(opts.Logger),
		dispatcher.WithHooks(opts.Hooks...),
		dispatcher.WithPersona(opts.Persona),
	)

	return &Concierge{opts: opts, dispatcher: d, store: opts.SessionStore, profile: opts.Profile}
}

// DefaultTools returns the built-in action set backed by mock backends.
func DefaultTools() []tool.Tool {
	return []tool.Tool{
		tool.NewCalendarTool(tool.NewMockCalendarBackend()),
		tool.NewGmailTool(tool.NewMockDraftBackend()),
		tool.NewPrioritizeTool(),
	}
}

// Ask runs one conversational turn in the given session, creating the
// session on first use. The reply is always user-presentable; only session
// store failures surface as errors.
func (c *Concierge) Ask(ctx context.Context, sessionID, query string) (string, error) {
	return c.dispatcher.Handle(ctx, sessionID, query)
}

// History returns a snapshot of the conversation in the given session.
func (c *Concierge) History(sessionID string) ([]core.Message, error) {
	return c.store.History(sessionID)
}

// ClearSession removes all messages from a session while keeping it alive.
func (c *Concierge) ClearSession(sessionID string) error {
	return c.store.Clear(sessionID)
}

// RenewalReport renders the profile's renewal calendar against the current
// time.
func (c *Concierge) RenewalReport() string {
	return c.profile.RenewalReport(time.Now())
}
