package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduhub/internal/domain/ticket"
	vo "eduhub/internal/domain/ticket/valueobjects"
	"eduhub/internal/domain/user"
	"eduhub/internal/shared/authorization"
	apperrors "eduhub/internal/shared/errors"
)

func pendingTicket(t *testing.T, id, ownerID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(
		id, ownerID,
		"Cannot access chapter 4 videos",
		"The videos fail to load after purchase.",
		vo.StatusPending,
		time.Now().Add(-time.Hour).UTC(),
		time.Now().Add(-time.Hour).UTC(),
		nil,
	)
	require.NoError(t, err)
	return tk
}

func TestAddReplyUseCase_StudentReplyKeepsStatus(t *testing.T) {
	ownerID := uint(10)
	existing := pendingTicket(t, 1, ownerID)

	var savedReply *ticket.Reply
	replyRepo := &mockReplyRepository{
		SaveFunc: func(ctx context.Context, r *ticket.Reply) error {
			require.NoError(t, r.SetID(100))
			savedReply = r
			return nil
		},
	}
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return existing, nil },
	}
	notifier := &mockNotifier{}

	uc := NewAddReplyUseCase(ticketRepo, replyRepo, &mockUserRepository{}, &mockTxManager{}, notifier, &mockLogger{})
	result, err := uc.Execute(context.Background(), AddReplyCommand{
		TicketID: 1,
		AuthorID: ownerID,
		IsAdmin:  false,
		Body:     "Still broken after clearing cache.",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(100), result.ReplyID)
	assert.Equal(t, "pending", result.TicketStatus, "student reply never advances status")
	require.NotNil(t, savedReply)
	assert.Equal(t, vo.AuthorStudent, savedReply.AuthorRole())
	assert.Equal(t, 0, notifier.calls, "student replies do not notify")
}

func TestAddReplyUseCase_AdminReplyAnswersPendingTicket(t *testing.T) {
	ownerID := uint(10)
	existing := pendingTicket(t, 1, ownerID)

	owner, err := user.NewUser("Jane Doe", "jane@example.com", "$2a$10$hash", authorization.RoleStudent)
	require.NoError(t, err)
	require.NoError(t, owner.SetID(ownerID))

	replyRepo := &mockReplyRepository{
		SaveFunc: func(ctx context.Context, r *ticket.Reply) error { return r.SetID(101) },
	}
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return existing, nil },
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return owner, nil },
	}
	notifier := &mockNotifier{}

	uc := NewAddReplyUseCase(ticketRepo, replyRepo, userRepo, &mockTxManager{}, notifier, &mockLogger{})
	result, err := uc.Execute(context.Background(), AddReplyCommand{
		TicketID: 1,
		AuthorID: 99,
		IsAdmin:  true,
		Body:     "Fixed, please try again.",
	})

	require.NoError(t, err)
	assert.Equal(t, "answered", result.TicketStatus)
	assert.True(t, existing.Status().IsAnswered())
	assert.Equal(t, 1, notifier.calls, "owner is notified of admin reply")
}

func TestAddReplyUseCase_AdminReplyOnAnsweredStaysAnswered(t *testing.T) {
	existing := pendingTicket(t, 1, 10)
	require.NoError(t, existing.Answer())

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return existing, nil },
	}
	replyRepo := &mockReplyRepository{
		SaveFunc: func(ctx context.Context, r *ticket.Reply) error { return r.SetID(102) },
	}

	uc := NewAddReplyUseCase(ticketRepo, replyRepo, &mockUserRepository{}, &mockTxManager{}, nil, &mockLogger{})
	result, err := uc.Execute(context.Background(), AddReplyCommand{
		TicketID: 1, AuthorID: 99, IsAdmin: true, Body: "Any update?",
	})

	require.NoError(t, err)
	assert.Equal(t, "answered", result.TicketStatus)
}

func TestAddReplyUseCase_ClosedTicketRejected(t *testing.T) {
	existing := pendingTicket(t, 1, 10)
	require.NoError(t, existing.Close())

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return existing, nil },
	}

	uc := NewAddReplyUseCase(ticketRepo, &mockReplyRepository{}, &mockUserRepository{}, &mockTxManager{}, nil, &mockLogger{})
	_, err := uc.Execute(context.Background(), AddReplyCommand{
		TicketID: 1, AuthorID: 10, IsAdmin: false, Body: "Hello?",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidStateError(err))
}

func TestAddReplyUseCase_AccessDenied(t *testing.T) {
	existing := pendingTicket(t, 1, 10)

	tests := []struct {
		name        string
		getByID     func(ctx context.Context, id uint) (*ticket.Ticket, error)
		authorID    uint
		isAdmin     bool
		wantForbid  bool
		wantMissing bool
	}{
		{
			name:       "stranger cannot reply",
			getByID:    func(ctx context.Context, id uint) (*ticket.Ticket, error) { return existing, nil },
			authorID:   55,
			wantForbid: true,
		},
		{
			name:       "missing ticket looks forbidden to non-admin",
			getByID:    func(ctx context.Context, id uint) (*ticket.Ticket, error) { return nil, ticket.ErrTicketNotFound },
			authorID:   55,
			wantForbid: true,
		},
		{
			name:        "missing ticket is not found for admin",
			getByID:     func(ctx context.Context, id uint) (*ticket.Ticket, error) { return nil, ticket.ErrTicketNotFound },
			authorID:    99,
			isAdmin:     true,
			wantMissing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticketRepo := &mockTicketRepository{GetByIDFunc: tt.getByID}
			uc := NewAddReplyUseCase(ticketRepo, &mockReplyRepository{}, &mockUserRepository{}, &mockTxManager{}, nil, &mockLogger{})

			_, err := uc.Execute(context.Background(), AddReplyCommand{
				TicketID: 1, AuthorID: tt.authorID, IsAdmin: tt.isAdmin, Body: "hi",
			})

			require.Error(t, err)
			assert.Equal(t, tt.wantForbid, apperrors.IsForbiddenError(err))
			assert.Equal(t, tt.wantMissing, apperrors.IsNotFoundError(err))
		})
	}
}

func TestAddReplyUseCase_NotificationFailureDoesNotFailReply(t *testing.T) {
	ownerID := uint(10)
	existing := pendingTicket(t, 1, ownerID)

	owner, err := user.NewUser("Jane Doe", "jane@example.com", "$2a$10$hash", authorization.RoleStudent)
	require.NoError(t, err)
	require.NoError(t, owner.SetID(ownerID))

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return existing, nil },
	}
	replyRepo := &mockReplyRepository{
		SaveFunc: func(ctx context.Context, r *ticket.Reply) error { return r.SetID(103) },
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return owner, nil },
	}
	notifier := &mockNotifier{
		NotifyFunc: func(ctx context.Context, toEmail, toName, subject string, ticketID uint) error {
			return errors.New("smtp unreachable")
		},
	}

	uc := NewAddReplyUseCase(ticketRepo, replyRepo, userRepo, &mockTxManager{}, notifier, &mockLogger{})
	result, err := uc.Execute(context.Background(), AddReplyCommand{
		TicketID: 1, AuthorID: 99, IsAdmin: true, Body: "Resolved.",
	})

	require.NoError(t, err)
	assert.Equal(t, "answered", result.TicketStatus)
}

func TestAddReplyUseCase_TransactionRollbackPropagatesError(t *testing.T) {
	existing := pendingTicket(t, 1, 10)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return existing, nil },
	}
	replyRepo := &mockReplyRepository{
		SaveFunc: func(ctx context.Context, r *ticket.Reply) error { return errors.New("disk full") },
	}

	uc := NewAddReplyUseCase(ticketRepo, replyRepo, &mockUserRepository{}, &mockTxManager{}, nil, &mockLogger{})
	_, err := uc.Execute(context.Background(), AddReplyCommand{
		TicketID: 1, AuthorID: 10, IsAdmin: false, Body: "hi",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save reply")
}
