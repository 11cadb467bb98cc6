package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduhub/internal/domain/ticket"
	vo "eduhub/internal/domain/ticket/valueobjects"
	apperrors "eduhub/internal/shared/errors"
)

func TestGetTicketUseCase_OwnerSeesThread(t *testing.T) {
	ownerID := uint(10)
	existing := pendingTicket(t, 1, ownerID)

	r1, err := ticket.ReconstructReply(1, 1, ownerID, vo.AuthorStudent, "first", time.Now().Add(-2*time.Minute).UTC())
	require.NoError(t, err)
	r2, err := ticket.ReconstructReply(2, 1, 99, vo.AuthorAdmin, "second", time.Now().Add(-time.Minute).UTC())
	require.NoError(t, err)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return existing, nil },
	}
	replyRepo := &mockReplyRepository{
		GetByTicketIDFunc: func(ctx context.Context, id uint) ([]*ticket.Reply, error) {
			return []*ticket.Reply{r1, r2}, nil
		},
	}

	uc := NewGetTicketUseCase(ticketRepo, replyRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 1, UserID: ownerID})

	require.NoError(t, err)
	require.Len(t, result.Replies, 2)
	assert.Equal(t, "student", result.Replies[0].AuthorRole)
	assert.Equal(t, "admin", result.Replies[1].AuthorRole)
	assert.Equal(t, "pending", result.Status)
}

func TestGetTicketUseCase_AccessRules(t *testing.T) {
	existing := pendingTicket(t, 1, 10)

	tests := []struct {
		name        string
		found       bool
		userID      uint
		isAdmin     bool
		wantForbid  bool
		wantMissing bool
	}{
		{name: "owner allowed", found: true, userID: 10},
		{name: "admin allowed", found: true, userID: 99, isAdmin: true},
		{name: "stranger forbidden", found: true, userID: 55, wantForbid: true},
		{name: "missing forbidden for student", found: false, userID: 55, wantForbid: true},
		{name: "missing not found for admin", found: false, userID: 99, isAdmin: true, wantMissing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticketRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
					if tt.found {
						return existing, nil
					}
					return nil, ticket.ErrTicketNotFound
				},
			}

			uc := NewGetTicketUseCase(ticketRepo, &mockReplyRepository{}, &mockLogger{})
			result, err := uc.Execute(context.Background(), GetTicketQuery{
				TicketID: 1, UserID: tt.userID, IsAdmin: tt.isAdmin,
			})

			if tt.wantForbid || tt.wantMissing {
				require.Error(t, err)
				assert.Equal(t, tt.wantForbid, apperrors.IsForbiddenError(err))
				assert.Equal(t, tt.wantMissing, apperrors.IsNotFoundError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(1), result.ID)
		})
	}
}
