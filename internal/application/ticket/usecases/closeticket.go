package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eduhub/internal/domain/ticket"
	apperrors "eduhub/internal/shared/errors"
	"eduhub/internal/shared/logger"
)

type CloseTicketCommand struct {
	TicketID uint
	UserID   uint
	IsAdmin  bool
}

type CloseTicketResult struct {
	TicketID uint
	Status   string
	ClosedAt time.Time
}

type CloseTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCloseTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error) {
	uc.logger.Infow("executing close ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.Is(err, ticket.ErrTicketNotFound) {
			if !cmd.IsAdmin {
				return nil, apperrors.NewForbiddenError("you do not have access to this ticket")
			}
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}

	if !t.CanBeViewedBy(cmd.UserID, cmd.IsAdmin) {
		return nil, apperrors.NewForbiddenError("you do not have access to this ticket")
	}

	if err := t.Close(); err != nil {
		if errors.Is(err, ticket.ErrTicketClosed) {
			return nil, apperrors.NewInvalidStateError("ticket is already closed")
		}
		return nil, fmt.Errorf("failed to close ticket: %w", err)
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.logger.Infow("ticket closed", "ticket_id", cmd.TicketID)
	return &CloseTicketResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
		ClosedAt: *t.ClosedAt(),
	}, nil
}
