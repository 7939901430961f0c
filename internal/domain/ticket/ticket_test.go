package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "bugtrail/internal/domain/ticket/valueobjects"
)

func TestNewTicket(t *testing.T) {
	tk, err := NewTicket(1, 2, "Crash on login", "stacktrace attached", vo.PriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, uint(1), tk.ProjectID())
	assert.Equal(t, uint(2), tk.CreatorID())
	assert.False(t, tk.IsClosed())
	assert.Zero(t, tk.Index(), "index assigned by the repository at creation")
}

func TestNewTicket_Validation(t *testing.T) {
	tests := []struct {
		name      string
		projectID uint
		creatorID uint
		title     string
		priority  vo.Priority
	}{
		{"missing project", 0, 2, "T", vo.PriorityLow},
		{"missing creator", 1, 0, "T", vo.PriorityLow},
		{"missing title", 1, 2, "", vo.PriorityLow},
		{"blank title", 1, 2, "   ", vo.PriorityLow},
		{"bad priority", 1, 2, "T", vo.Priority("Urgent")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.projectID, tt.creatorID, tt.title, "", tt.priority)
			assert.Error(t, err)
		})
	}
}

func TestTicket_SetIndexOnce(t *testing.T) {
	tk, err := NewTicket(1, 2, "T", "", vo.PriorityMedium)
	require.NoError(t, err)

	require.NoError(t, tk.SetIndex(3))
	assert.Error(t, tk.SetIndex(4))
	assert.Equal(t, uint(3), tk.Index())
}

func TestTicket_ApplyPatch(t *testing.T) {
	tk, err := NewTicket(1, 2, "Original title", "original description", vo.PriorityLow)
	require.NoError(t, err)

	require.NoError(t, tk.ApplyPatch("", "", vo.PriorityHigh, true))
	assert.Equal(t, "Original title", tk.Title())
	assert.Equal(t, vo.PriorityHigh, tk.Priority())
	assert.True(t, tk.IsClosed())
}

func TestTicket_ApplyPatch_FalsyClosedIgnored(t *testing.T) {
	tk, err := NewTicket(1, 2, "T", "", vo.PriorityLow)
	require.NoError(t, err)

	require.NoError(t, tk.ApplyPatch("", "", "", true))
	require.True(t, tk.IsClosed())

	// closed=false is indistinguishable from "not supplied" and is ignored,
	// so a closed ticket stays closed.
	require.NoError(t, tk.ApplyPatch("", "", "", false))
	assert.True(t, tk.IsClosed())
}

func TestTicket_ApplyPatch_InvalidPriorityRejected(t *testing.T) {
	tk, err := NewTicket(1, 2, "T", "", vo.PriorityLow)
	require.NoError(t, err)

	assert.Error(t, tk.ApplyPatch("", "", vo.Priority("Blocker"), false))
	assert.Equal(t, vo.PriorityLow, tk.Priority())
}

func TestNewComment(t *testing.T) {
	c, err := NewComment(10, 1, 2, "looks like a regression")
	require.NoError(t, err)
	assert.Equal(t, uint(10), c.TicketID())
	assert.Equal(t, uint(1), c.ProjectID())

	_, err = NewComment(10, 1, 2, "  ")
	assert.Error(t, err)

	_, err = NewComment(0, 1, 2, "text")
	assert.Error(t, err)
}
