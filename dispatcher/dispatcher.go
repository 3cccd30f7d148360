package dispatcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lifeadmin/concierge/core"
	"github.com/lifeadmin/concierge/logging"
	"github.com/lifeadmin/concierge/model"
	"github.com/lifeadmin/concierge/profile"
	"github.com/lifeadmin/concierge/router"
	"github.com/lifeadmin/concierge/tool"
)

// DefaultPersona is the base instruction block injected ahead of the user's
// personal context.
const DefaultPersona = `You are a Life Admin Concierge, a helpful assistant for managing personal life administration: renewals, deadlines, appointments, emails and task prioritization. Be proactive about upcoming deadlines, answer personal questions from the profile below, and be concise but thorough.`

// Options configures a Dispatcher.
type Options struct {
	Router   *router.Router
	Registry *tool.Registry
	Profile  *profile.Store
	Logger   logging.Logger
	Hooks    []ActionHook
	Persona  string
	Now      func() time.Time
}

// WithLogger sets the logger.
func WithLogger(logger logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = logger }
}

// WithProfile sets the personal context store.
func WithProfile(store *profile.Store) func(o *Options) {
	return func(o *Options) { o.Profile = store }
}

// WithRegistry sets the action registry.
func WithRegistry(reg *tool.Registry) func(o *Options) {
	return func(o *Options) { o.Registry = reg }
}

// WithRouter overrides the default keyword router.
func WithRouter(r *router.Router) func(o *Options) {
	return func(o *Options) { o.Router = r }
}

// WithHooks appends action hooks.
func WithHooks(hooks ...ActionHook) func(o *Options) {
	return func(o *Options) { o.Hooks = append(o.Hooks, hooks...) }
}

// WithPersona overrides the base instruction block.
func WithPersona(persona string) func(o *Options) {
	return func(o *Options) { o.Persona = persona }
}

// WithClock injects a clock, for tests.
func WithClock(now func() time.Time) func(o *Options) {
	return func(o *Options) { o.Now = now }
}

// Dispatcher coordinates one conversational turn at a time per session. It
// is safe for concurrent use across distinct sessions.
type Dispatcher struct {
	store    core.SessionStore
	mdl      model.Model
	router   *router.Router
	registry *tool.Registry
	profile  *profile.Store
	logger   logging.Logger
	hooks    []ActionHook
	persona  string
	now      func() time.Time
}

// New constructs a Dispatcher over a session store and a model. Defaults:
// the built-in keyword router, the sample profile, an empty action registry,
// and silent logging.
func New(store core.SessionStore, mdl model.Model, optFns ...func(o *Options)) *Dispatcher {
	opts := Options{
		Router:  router.New(),
		Logger:  logging.NoOpLogger{},
		Persona: DefaultPersona,
		Now:     time.Now,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Profile == nil {
		opts.Profile = profile.Sample()
	}
	if opts.Registry == nil {
		opts.Registry = tool.NewRegistry()
	}

	return &Dispatcher{
		store:    store,
		mdl:      mdl,
		router:   opts.Router,
		registry: opts.Registry,
		profile:  opts.Profile,
		logger:   opts.Logger,
		hooks:    opts.Hooks,
		persona:  opts.Persona,
		now:      opts.Now,
	}
}

// Handle runs one turn: the query is appended to the session, routed,
// answered (with any requested actions executed), and the reply appended
// before returning. Session store failures are the only errors surfaced to
// the caller; model and action failures degrade into the reply text.
func (d *Dispatcher) Handle(ctx context.Context, sessionID, query string) (string, error) {
	if _, err := d.store.Create(sessionID); err != nil && !errors.Is(err, core.ErrDuplicateSession) {
		return "", fmt.Errorf("create session: %w", err)
	}
	if err := d.store.Append(sessionID, core.RoleUser, query); err != nil {
		return "", fmt.Errorf("append user message: %w", err)
	}

	domain := d.router.Classify(query)
	d.logger.Info("query routed", "session_id", sessionID, "domain", string(domain))

	history, err := d.store.History(sessionID)
	if err != nil {
		return "", fmt.Errorf("load history: %w", err)
	}

	req := model.Request{
		Instructions: d.instructions(domain),
		History:      history,
		Tools:        d.definitions(),
	}

	start := time.Now()
	resp, genErr := d.mdl.Generate(ctx, req)
	d.logModelCall(resp, time.Since(start), genErr)

	var reply string
	switch {
	case genErr != nil:
		d.logger.Warn("answer generation unavailable, serving degraded response",
			"session_id", sessionID, "domain", string(domain), "error", genErr)
		reply = d.degraded(domain)
	default:
		parts := make([]string, 0, 1+len(resp.ToolCalls))
		if text := strings.TrimSpace(resp.Text); text != "" {
			parts = append(parts, text)
		}
		for _, call := range resp.ToolCalls {
			parts = append(parts, d.runAction(ctx, sessionID, call))
		}
		reply = strings.Join(parts, "\n\n")
	}
	if reply == "" {
		reply = d.degraded(domain)
	}

	if err := d.store.Append(sessionID, core.RoleAgent, reply); err != nil {
		return "", fmt.Errorf("append agent message: %w", err)
	}
	return reply, nil
}

// runAction executes a single requested action and renders its outcome as
// reply text. Failures never escape; they become explanations.
func (d *Dispatcher) runAction(ctx context.Context, sessionID string, call model.ToolCall) string {
	start := d.now()
	timer := time.Now()

	args, err := call.Args()
	if err != nil {
		err = tool.NewToolError(call.Name, fmt.Sprintf("malformed action arguments: %v", err), tool.CodeValidation)
		d.notify(ActionRecord{Timestamp: start, SessionID: sessionID, Action: call.Name, Err: err, Duration: time.Since(timer)})
		return d.explainFailure(call.Name, err)
	}

	t, ok := d.registry.Get(call.Name)
	if !ok {
		err = tool.NewToolError(call.Name, "no such action is available", tool.CodeUnknownAction)
		d.notify(ActionRecord{Timestamp: start, SessionID: sessionID, Action: call.Name, Args: args, Err: err, Duration: time.Since(timer)})
		return d.explainFailure(call.Name, err)
	}

	result, err := t.Call(ctx, args)
	d.notify(ActionRecord{Timestamp: start, SessionID: sessionID, Action: call.Name, Args: args, Result: result, Err: err, Duration: time.Since(timer)})
	if err != nil {
		return d.explainFailure(call.Name, err)
	}
	return renderResult(call.Name, result)
}

func (d *Dispatcher) notify(rec ActionRecord) {
	for _, h := range d.hooks {
		h.AfterAction(rec)
	}
}

func (d *Dispatcher) explainFailure(action string, err error) string {
	var toolErr *tool.ToolError
	if errors.As(err, &toolErr) {
		return fmt.Sprintf("I couldn't complete %s: %s", action, toolErr.Message)
	}
	return fmt.Sprintf("I couldn't complete %s: %v", action, err)
}

func renderResult(action string, result any) string {
	if m, ok := result.(map[string]any); ok {
		if msg, ok := m["message"].(string); ok && msg != "" {
			return msg
		}
	}
	data, err := json.Marshal(result)
	if err != nil || len(data) == 0 {
		return fmt.Sprintf("Completed %s.", action)
	}
	return fmt.Sprintf("Completed %s: %s", action, data)
}

// instructions assembles the system context: persona, injected personal
// profile, the renewal calendar, and guidance for the routed domain.
func (d *Dispatcher) instructions(domain core.RouteDomain) string {
	var b strings.Builder
	b.WriteString(d.persona)
	b.WriteString("\n\n=== USER PROFILE ===\n")
	b.WriteString(d.profile.ProfileText())
	b.WriteString("\n\n=== RENEWAL CALENDAR ===\n")
	b.WriteString(d.profile.RenewalReport(d.now()))
	if guidance := domainGuidance(domain); guidance != "" {
		b.WriteString("\n=== FOCUS ===\n")
		b.WriteString(guidance)
	}
	return b.String()
}

func domainGuidance(domain core.RouteDomain) string {
	switch domain {
	case core.RouteAdmin:
		return "The user needs administrative help: calendar events, reminders, email drafts or renewals. Use the available actions instead of describing hypothetical steps."
	case core.RouteProductivity:
		return "The user needs task prioritization. Collect their tasks and energy level (LOW or HIGH), then call prioritize_tasks. Ask for the energy level if it is missing."
	case core.RouteProfile:
		return "The user is asking about their own stored information. Answer directly from the profile above; do not invent details."
	default:
		return ""
	}
}

func (d *Dispatcher) definitions() []model.ToolDefinition {
	tools := d.registry.All()
	if len(tools) == 0 {
		return nil
	}
	defs := make([]model.ToolDefinition, 0, len(tools))
	for _, t := range tools {
		defs = append(defs, model.ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		})
	}
	return defs
}

// degraded returns a deterministic reply for the routed domain when answer
// generation is unavailable.
func (d *Dispatcher) degraded(domain core.RouteDomain) string {
	switch domain {
	case core.RouteProfile:
		return d.profile.Summary(d.now())
	case core.RouteAdmin:
		return d.profile.RenewalReport(d.now())
	case core.RouteProductivity:
		return "I can rank your tasks with the Eisenhower matrix. List your tasks and tell me whether your energy is LOW or HIGH."
	default:
		return "I'm your Life Admin Concierge. I can help you with:\n" +
			"- Looking up your personal information (license, insurance, etc.)\n" +
			"- Creating calendar events and reminders\n" +
			"- Drafting emails for renewals and communications\n" +
			"- Prioritizing tasks using the Eisenhower matrix\n" +
			"- Suggesting tasks based on your energy level"
	}
}

// modelCallLogger is satisfied by logging.ConciergeLogger.
type modelCallLogger interface {
	LogModelCall(model string, tokens int, dur time.Duration, success bool, err error)
}

func (d *Dispatcher) logModelCall(resp model.Response, dur time.Duration, err error) {
	tokens := 0
	if resp.Usage != nil {
		tokens = resp.Usage.TotalTokens
	}
	if cl, ok := d.logger.(modelCallLogger); ok {
		cl.LogModelCall(d.mdl.Info().Name, tokens, dur, err == nil, err)
		return
	}
	if err != nil {
		d.logger.Error("model call failed", "model", d.mdl.Info().Name, "duration", dur, "error", err)
		return
	}
	d.logger.Debug("model call completed", "model", d.mdl.Info().Name, "duration", dur, "tokens", tokens)
}
