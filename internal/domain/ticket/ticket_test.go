package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "eduhub/internal/domain/ticket/valueobjects"
)

func TestNewTicket(t *testing.T) {
	t.Run("valid ticket starts pending", func(t *testing.T) {
		tk, err := NewTicket(1, "Login issue", "Cannot log in")
		require.NoError(t, err)

		assert.Equal(t, uint(1), tk.OwnerID())
		assert.Equal(t, "Login issue", tk.Subject())
		assert.Equal(t, "Cannot log in", tk.Body())
		assert.Equal(t, vo.StatusPending, tk.Status())
		assert.Nil(t, tk.ClosedAt())
		assert.False(t, tk.CreatedAt().IsZero())
	})

	tests := []struct {
		name    string
		ownerID uint
		subject string
		body    string
		wantErr string
	}{
		{"zero owner", 0, "subject", "body", "owner ID is required"},
		{"empty subject", 1, "", "body", "subject is required"},
		{"empty body", 1, "subject", "", "body is required"},
		{"subject too long", 1, strings.Repeat("a", 201), "body", "subject exceeds maximum length"},
		{"body too long", 1, "subject", strings.Repeat("a", 5001), "body exceeds maximum length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.ownerID, tt.subject, tt.body)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTicketAnswer(t *testing.T) {
	t.Run("pending to answered", func(t *testing.T) {
		tk, err := NewTicket(1, "subject", "body")
		require.NoError(t, err)

		before := tk.UpdatedAt()
		require.NoError(t, tk.Answer())
		assert.Equal(t, vo.StatusAnswered, tk.Status())
		assert.False(t, tk.UpdatedAt().Before(before))
	})

	t.Run("answering twice is a no-op", func(t *testing.T) {
		tk, err := NewTicket(1, "subject", "body")
		require.NoError(t, err)

		require.NoError(t, tk.Answer())
		require.NoError(t, tk.Answer())
		assert.Equal(t, vo.StatusAnswered, tk.Status())
	})

	t.Run("closed ticket cannot be answered", func(t *testing.T) {
		tk, err := NewTicket(1, "subject", "body")
		require.NoError(t, err)
		require.NoError(t, tk.Close())

		err = tk.Answer()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestTicketClose(t *testing.T) {
	t.Run("pending to closed", func(t *testing.T) {
		tk, err := NewTicket(1, "subject", "body")
		require.NoError(t, err)

		require.NoError(t, tk.Close())
		assert.Equal(t, vo.StatusClosed, tk.Status())
		require.NotNil(t, tk.ClosedAt())
	})

	t.Run("answered to closed", func(t *testing.T) {
		tk, err := NewTicket(1, "subject", "body")
		require.NoError(t, err)
		require.NoError(t, tk.Answer())

		require.NoError(t, tk.Close())
		assert.Equal(t, vo.StatusClosed, tk.Status())
	})

	t.Run("closing twice fails", func(t *testing.T) {
		tk, err := NewTicket(1, "subject", "body")
		require.NoError(t, err)
		require.NoError(t, tk.Close())

		err = tk.Close()
		assert.ErrorIs(t, err, ErrTicketClosed)
	})
}

func TestTicketAcceptReply(t *testing.T) {
	t.Run("open ticket accepts replies", func(t *testing.T) {
		tk, err := NewTicket(1, "subject", "body")
		require.NoError(t, err)
		assert.NoError(t, tk.AcceptReply())
	})

	t.Run("closed ticket rejects replies", func(t *testing.T) {
		tk, err := NewTicket(1, "subject", "body")
		require.NoError(t, err)
		require.NoError(t, tk.Close())

		assert.ErrorIs(t, tk.AcceptReply(), ErrTicketClosed)
	})
}

func TestTicketCanBeViewedBy(t *testing.T) {
	tk, err := NewTicket(7, "subject", "body")
	require.NoError(t, err)

	assert.True(t, tk.CanBeViewedBy(7, false), "owner can view")
	assert.True(t, tk.CanBeViewedBy(99, true), "admin can view")
	assert.False(t, tk.CanBeViewedBy(8, false), "stranger cannot view")
}

func TestReconstructTicket(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid reconstruction", func(t *testing.T) {
		tk, err := ReconstructTicket(10, 2, "subject", "body", vo.StatusAnswered, now, now, nil)
		require.NoError(t, err)
		assert.Equal(t, uint(10), tk.ID())
		assert.Equal(t, vo.StatusAnswered, tk.Status())
	})

	t.Run("zero ID rejected", func(t *testing.T) {
		_, err := ReconstructTicket(0, 2, "subject", "body", vo.StatusPending, now, now, nil)
		assert.Error(t, err)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := ReconstructTicket(10, 2, "subject", "body", vo.TicketStatus("reopened"), now, now, nil)
		assert.Error(t, err)
	})
}

func TestTicketSetID(t *testing.T) {
	tk, err := NewTicket(1, "subject", "body")
	require.NoError(t, err)

	require.NoError(t, tk.SetID(5))
	assert.Equal(t, uint(5), tk.ID())
	assert.Error(t, tk.SetID(6), "ID cannot be reassigned")
}
