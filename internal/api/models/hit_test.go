package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitStatus_Terminal(t *testing.T) {
	assert.False(t, HitUnassigned.Terminal())
	assert.False(t, HitAssigned.Terminal())
	assert.True(t, HitFailed.Terminal())
	assert.True(t, HitCompleted.Terminal())
}

func TestHitStatus_String(t *testing.T) {
	assert.Equal(t, "unassigned", HitUnassigned.String())
	assert.Equal(t, "assigned", HitAssigned.String())
	assert.Equal(t, "failed", HitFailed.String())
	assert.Equal(t, "completed", HitCompleted.String())
	assert.Equal(t, "unknown", HitStatus(9).String())
}
