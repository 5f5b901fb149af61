package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseTransitions(t *testing.T) {
	tests := []struct {
		from, to Phase
		allowed  bool
	}{
		{PhaseCreated, PhaseRunning, true},
		{PhaseCreated, PhaseEnded, true},
		{PhaseRunning, PhaseEnded, true},
		{PhaseRunning, PhaseCreated, false},
		{PhaseRunning, PhaseRunning, false},
		{PhaseEnded, PhaseRunning, false},
		{PhaseEnded, PhaseCreated, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "created", PhaseCreated.String())
	assert.Equal(t, "running", PhaseRunning.String())
	assert.Equal(t, "ended", PhaseEnded.String())
	assert.Equal(t, "Unknown(42)", Phase(42).String())
	assert.True(t, PhaseEnded.IsTerminal())
	assert.False(t, PhaseRunning.IsTerminal())
}
