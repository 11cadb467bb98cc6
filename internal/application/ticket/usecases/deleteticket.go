package usecases

import (
	"context"
	"errors"
	"fmt"

	"eduhub/internal/domain/ticket"
	apperrors "eduhub/internal/shared/errors"
	"eduhub/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
	UserID   uint
	IsAdmin  bool
}

// DeleteTicketUseCase removes a ticket and its reply thread. Admin only; the
// route is additionally guarded by middleware, but the rule is enforced here
// as well.
type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if !cmd.IsAdmin {
		return apperrors.NewForbiddenError("only admins can delete tickets")
	}

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		if errors.Is(err, ticket.ErrTicketNotFound) {
			return apperrors.NewNotFoundError("ticket not found")
		}
		return fmt.Errorf("failed to load ticket: %w", err)
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "deleted_by", cmd.UserID)
	return nil
}
