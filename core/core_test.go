package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadrantString(t *testing.T) {
	assert.Equal(t, "Q1_DO_FIRST", QuadrantDoFirst.String())
	assert.Equal(t, "Q2_SCHEDULE", QuadrantSchedule.String())
	assert.Equal(t, "Q3_DELEGATE", QuadrantDelegate.String())
	assert.Equal(t, "Q4_ELIMINATE", QuadrantEliminate.String())
	assert.Equal(t, "UNKNOWN", Quadrant(0).String())
}

func TestParseEnergyLevel(t *testing.T) {
	for in, want := range map[string]EnergyLevel{
		"LOW":   EnergyLow,
		"low":   EnergyLow,
		" High": EnergyHigh,
		"HIGH":  EnergyHigh,
	} {
		got, err := ParseEnergyLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseEnergyLevel("MEDIUM")
	assert.ErrorIs(t, err, ErrInvalidEnergyLevel)

	_, err = ParseEnergyLevel("")
	assert.ErrorIs(t, err, ErrInvalidEnergyLevel)
}

func TestSessionAppendAndSnapshot(t *testing.T) {
	s := NewSession("s1")
	assert.Equal(t, 0, s.Len())

	s.Append(NewMessage(RoleUser, "hello"))
	s.Append(NewMessage(RoleAgent, "hi there"))

	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, RoleUser, msgs[0].Role)
	assert.Equal(t, "hello", msgs[0].Content)
	assert.Equal(t, RoleAgent, msgs[1].Role)

	// Snapshot must be defensive: mutating it leaves the session untouched.
	msgs[0].Content = "tampered"
	assert.Equal(t, "hello", s.Messages()[0].Content)
}

func TestSessionClearKeepsIdentity(t *testing.T) {
	s := NewSession("s2")
	s.Append(NewMessage(RoleUser, "first"))
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "s2", s.ID)

	s.Append(NewMessage(RoleUser, "after clear"))
	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "after clear", msgs[0].Content)
}

func TestNewIDUnique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}
