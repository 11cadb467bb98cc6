package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "eduhub/internal/domain/ticket/valueobjects"
)

func TestNewReply(t *testing.T) {
	t.Run("valid reply", func(t *testing.T) {
		r, err := NewReply(1, 2, vo.AuthorAdmin, "Reset your password")
		require.NoError(t, err)

		assert.Equal(t, uint(1), r.TicketID())
		assert.Equal(t, uint(2), r.AuthorID())
		assert.Equal(t, vo.AuthorAdmin, r.AuthorRole())
		assert.Equal(t, "Reset your password", r.Body())
		assert.False(t, r.CreatedAt().IsZero())
	})

	tests := []struct {
		name     string
		ticketID uint
		authorID uint
		role     vo.AuthorRole
		body     string
		wantErr  string
	}{
		{"zero ticket ID", 0, 2, vo.AuthorStudent, "body", "ticket ID is required"},
		{"zero author ID", 1, 0, vo.AuthorStudent, "body", "author ID is required"},
		{"invalid role", 1, 2, vo.AuthorRole("support"), "body", "invalid author role"},
		{"empty body", 1, 2, vo.AuthorStudent, "", "body cannot be empty"},
		{"body too long", 1, 2, vo.AuthorStudent, strings.Repeat("a", 5001), "body exceeds maximum length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReply(tt.ticketID, tt.authorID, tt.role, tt.body)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReconstructReply(t *testing.T) {
	now := time.Now().UTC()

	r, err := ReconstructReply(3, 1, 2, vo.AuthorStudent, "Thanks, fixed", now)
	require.NoError(t, err)
	assert.Equal(t, uint(3), r.ID())
	assert.Equal(t, vo.AuthorStudent, r.AuthorRole())

	_, err = ReconstructReply(0, 1, 2, vo.AuthorStudent, "body", now)
	assert.Error(t, err)
}

func TestReplySetID(t *testing.T) {
	r, err := NewReply(1, 2, vo.AuthorStudent, "body")
	require.NoError(t, err)

	require.NoError(t, r.SetID(9))
	assert.Equal(t, uint(9), r.ID())
	assert.Error(t, r.SetID(10))
}
