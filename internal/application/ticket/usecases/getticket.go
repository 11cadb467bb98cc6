package usecases

import (
	"context"
	"errors"
	"fmt"

	"eduhub/internal/application/ticket/dto"
	"eduhub/internal/domain/ticket"
	apperrors "eduhub/internal/shared/errors"
	"eduhub/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	UserID   uint
	IsAdmin  bool
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	replyRepo  ticket.ReplyRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	replyRepo ticket.ReplyRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		replyRepo:  replyRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		if errors.Is(err, ticket.ErrTicketNotFound) {
			// Non-admins get the same forbidden response whether the ticket
			// is missing or belongs to someone else, so IDs cannot be probed.
			if !query.IsAdmin {
				return nil, apperrors.NewForbiddenError("you do not have access to this ticket")
			}
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}

	if !t.CanBeViewedBy(query.UserID, query.IsAdmin) {
		uc.logger.Warnw("ticket access denied", "ticket_id", query.TicketID, "user_id", query.UserID)
		return nil, apperrors.NewForbiddenError("you do not have access to this ticket")
	}

	replies, err := uc.replyRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load replies", "ticket_id", query.TicketID, "error", err)
		return nil, fmt.Errorf("failed to load replies: %w", err)
	}

	return dto.ToTicketDTO(t, replies), nil
}
