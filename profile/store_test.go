package profile

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRenewalStatus(t *testing.T) {
	now := date(2025, time.November, 30)

	past := Renewal{Name: "Car Insurance", Date: date(2024, time.December, 1)}
	assert.Equal(t, "OVERDUE", past.Status(now))

	future := Renewal{Name: "Driver's License", Date: date(2025, time.December, 15)}
	assert.Equal(t, "15 days away", future.Status(now))

	today := Renewal{Name: "Gym", Date: now}
	assert.Equal(t, "0 days away", today.Status(now))
}

// Status is recomputed per read, never cached stale.
func TestRenewalStatusPure(t *testing.T) {
	r := Renewal{Name: "License", Date: date(2025, time.December, 15)}

	assert.Equal(t, "15 days away", r.Status(date(2025, time.November, 30)))
	assert.Equal(t, "5 days away", r.Status(date(2025, time.December, 10)))
	assert.Equal(t, "OVERDUE", r.Status(date(2025, time.December, 16)))
}

func TestStoreImmutable(t *testing.T) {
	input := []Renewal{{Name: "A", Date: date(2025, time.January, 1)}}
	s := New("profile text", input)

	input[0].Name = "tampered"
	assert.Equal(t, "A", s.Renewals()[0].Name)

	out := s.Renewals()
	out[0].Name = "also tampered"
	assert.Equal(t, "A", s.Renewals()[0].Name)
	assert.Equal(t, "profile text", s.ProfileText())
}

func TestRenewalReport(t *testing.T) {
	s := Sample()
	report := s.RenewalReport(date(2025, time.November, 30))

	assert.Contains(t, report, "Car Insurance (Geico) - 2024-12-01 (OVERDUE)")
	assert.Contains(t, report, "Driver's License - 2025-12-15 (15 days away)")

	// Ordered as configured.
	car := strings.Index(report, "Car Insurance")
	passport := strings.Index(report, "Passport")
	assert.Less(t, car, passport)

	empty := New("p", nil)
	assert.Equal(t, "No renewals on file.", empty.RenewalReport(time.Now()))
}

func TestSummaryFlagsOverdue(t *testing.T) {
	s := Sample()
	sum := s.Summary(date(2025, time.November, 30))
	assert.Contains(t, sum, "NEEDS ATTENTION: Car Insurance (Geico)")
	assert.Contains(t, sum, "D99887766")
}

func TestParse(t *testing.T) {
	raw := []byte(`
profile: |
  NAME: Jane Roe
  EMAIL: jane@example.com
renewals:
  - name: Passport
    date: 2030-01-15
    notes: plenty of time
  - name: Car Insurance
    date: 2024-06-01
`)
	s, err := Parse(raw)
	require.NoError(t, err)
	assert.Contains(t, s.ProfileText(), "Jane Roe")

	rs := s.Renewals()
	require.Len(t, rs, 2)
	assert.Equal(t, "Passport", rs[0].Name)
	assert.Equal(t, "plenty of time", rs[0].Notes)
	assert.Equal(t, date(2024, time.June, 1), rs[1].Date)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("renewals: []"))
	assert.Error(t, err) // no profile block

	_, err = Parse([]byte("profile: x\nrenewals:\n  - name: A\n    date: not-a-date\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("\t: bad yaml"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/reference.yaml")
	assert.Error(t, err)
}
