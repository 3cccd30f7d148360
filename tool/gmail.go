package tool

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lifeadmin/concierge/internal/util"
)

// Draft is an email draft. Drafts are never sent automatically; they wait in
// the user's mailbox for review.
type Draft struct {
	To      string
	CC      []string
	Subject string
	Body    string
}

// CreatedDraft is the backend's confirmation of a saved draft.
type CreatedDraft struct {
	ID        string
	CreatedAt time.Time
	Draft     Draft
}

// DraftBackend saves email drafts with an external mail provider.
type DraftBackend interface {
	CreateDraft(ctx context.Context, draft Draft) (CreatedDraft, error)
}

// MockDraftBackend stores drafts in memory for demos and tests.
type MockDraftBackend struct {
	mu     sync.Mutex
	drafts []CreatedDraft
}

// NewMockDraftBackend returns an empty in-memory draft backend.
func NewMockDraftBackend() *MockDraftBackend {
	return &MockDraftBackend{}
}

// CreateDraft records the draft and returns a confirmation with a generated
// identifier.
func (b *MockDraftBackend) CreateDraft(_ context.Context, draft Draft) (CreatedDraft, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	created := CreatedDraft{
		ID:        "draft_" + uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Draft:     draft,
	}
	b.drafts = append(b.drafts, created)
	return created, nil
}

// Drafts returns a snapshot of all drafts created so far.
func (b *MockDraftBackend) Drafts() []CreatedDraft {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]CreatedDraft, len(b.drafts))
	copy(out, b.drafts)
	return out
}

var _ DraftBackend = (*MockDraftBackend)(nil)

// GmailTool exposes draft creation as a model-invokable action. The tool
// only ever creates drafts; sending stays a manual user step.
type GmailTool struct {
	backend DraftBackend
}

// NewGmailTool wires a GmailTool to the given backend.
func NewGmailTool(backend DraftBackend) *GmailTool {
	return &GmailTool{backend: backend}
}

// Name implements Tool.
func (t *GmailTool) Name() string { return "create_gmail_draft" }

// Description implements Tool.
func (t *GmailTool) Description() string {
	return "Creates an email draft. Use this when the user wants to compose an email for " +
		"renewals, reminders, or other communications. The email is saved as a draft and NOT sent automatically."
}

// Parameters implements Tool.
func (t *GmailTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"to": map[string]any{
				"type":        "string",
				"description": "Recipient email address",
			},
			"subject": map[string]any{
				"type":        "string",
				"description": "Email subject line",
			},
			"body": map[string]any{
				"type":        "string",
				"description": "Email body content",
			},
			"cc": map[string]any{
				"type":        "string",
				"description": "CC recipients, comma separated (optional)",
			},
		},
		"required": []string{"to", "subject", "body"},
	}
}

// Call implements Tool. Recipient addresses are checked before the draft is
// handed to the backend.
func (t *GmailTool) Call(ctx context.Context, args map[string]any) (any, error) {
	if err := util.ValidateParameters(args, t.Parameters()); err != nil {
		return nil, &ToolError{Tool: t.Name(), Message: err.Error(), Code: CodeValidation, Details: err}
	}

	to, _ := args["to"].(string)
	if _, err := mail.ParseAddress(to); err != nil {
		return nil, &ToolError{
			Tool:    t.Name(),
			Message: fmt.Sprintf("invalid recipient address %q", to),
			Code:    CodeValidation,
			Details: err,
		}
	}

	var cc []string
	if raw, _ := args["cc"].(string); raw != "" {
		for _, addr := range strings.Split(raw, ",") {
			addr = strings.TrimSpace(addr)
			if addr == "" {
				continue
			}
			if _, err := mail.ParseAddress(addr); err != nil {
				return nil, &ToolError{
					Tool:    t.Name(),
					Message: fmt.Sprintf("invalid cc address %q", addr),
					Code:    CodeValidation,
					Details: err,
				}
			}
			cc = append(cc, addr)
		}
	}

	subject, _ := args["subject"].(string)
	body, _ := args["body"].(string)

	created, err := t.backend.CreateDraft(ctx, Draft{To: to, CC: cc, Subject: subject, Body: body})
	if err != nil {
		return nil, &ToolError{Tool: t.Name(), Message: fmt.Sprintf("failed to create draft: %v", err), Code: CodeExecution, Details: err}
	}

	return map[string]any{
		"success":      true,
		"draft_id":     created.ID,
		"to":           to,
		"cc":           cc,
		"subject":      subject,
		"body_preview": previewBody(body),
		"created_at":   created.CreatedAt.Format(time.RFC3339),
		"status":       "draft",
		"message":      "Draft created successfully. Review and send from your mailbox.",
	}, nil
}

var _ Tool = (*GmailTool)(nil)

func previewBody(body string) string {
	const limit = 100
	if len(body) <= limit {
		return body
	}
	return body[:limit] + "..."
}
