// Package profile holds the personal-context payload injected into handlers:
// an immutable identity-profile text block and an ordered list of renewal
// deadlines. The store is read-only after construction and needs no locking.
// Renewal status is a pure function of (target date, now) and is recomputed
// on every read, never cached.
package profile

import (
	"fmt"
	"strings"
	"time"
)

// StatusOverdue is the status reported for a renewal whose target date lies
// in the past.
const StatusOverdue = "OVERDUE"

// Renewal is one upcoming deadline: an item name, its target date and
// optional free-text notes.
type Renewal struct {
	Name  string    `json:"name"`
	Date  time.Time `json:"date"`
	Notes string    `json:"notes,omitempty"`
}

// Status derives the renewal's state relative to now: OVERDUE when the
// target date has passed, otherwise a whole-day countdown.
func (r Renewal) Status(now time.Time) string {
	if r.Date.Before(now) {
		return StatusOverdue
	}
	days := int(r.Date.Sub(now).Hours() / 24)
	return fmt.Sprintf("%d days away", days)
}

// Store supplies the personal-context payload verbatim to any handler that
// asks. Immutable after construction.
type Store struct {
	profileText string
	renewals    []Renewal
}

// New constructs a Store from a profile text block and an ordered renewal
// list. The inputs are copied; later mutation of the caller's slice does not
// leak in.
func New(profileText string, renewals []Renewal) *Store {
	rs := make([]Renewal, len(renewals))
	copy(rs, renewals)
	return &Store{profileText: profileText, renewals: rs}
}

// ProfileText returns the identity-profile block verbatim.
func (s *Store) ProfileText() string { return s.profileText }

// Renewals returns a copy of the ordered renewal list.
func (s *Store) Renewals() []Renewal {
	out := make([]Renewal, len(s.renewals))
	copy(out, s.renewals)
	return out
}

// RenewalReport renders the renewal list with statuses computed against now.
func (s *Store) RenewalReport(now time.Time) string {
	if len(s.renewals) == 0 {
		return "No renewals on file."
	}
	var b strings.Builder
	b.WriteString("Upcoming renewals and deadlines:\n")
	for i, r := range s.renewals {
		fmt.Fprintf(&b, "%d. %s - %s (%s)", i+1, r.Name, r.Date.Format("2006-01-02"), r.Status(now))
		if r.Notes != "" {
			fmt.Fprintf(&b, " - %s", r.Notes)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Summary returns a condensed profile block for degraded responses: the
// profile text plus any overdue items flagged first.
func (s *Store) Summary(now time.Time) string {
	var b strings.Builder
	for _, r := range s.renewals {
		if r.Status(now) == StatusOverdue {
			fmt.Fprintf(&b, "NEEDS ATTENTION: %s was due %s\n", r.Name, r.Date.Format("2006-01-02"))
		}
	}
	b.WriteString(s.profileText)
	return b.String()
}
