package usecases

import (
	"context"
	"fmt"
	"time"

	"eduhub/internal/domain/ticket"
	apperrors "eduhub/internal/shared/errors"
	"eduhub/internal/shared/logger"
)

type SubmitTicketCommand struct {
	OwnerID uint
	Subject string
	Body    string
}

type SubmitTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

type SubmitTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewSubmitTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *SubmitTicketUseCase {
	return &SubmitTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *SubmitTicketUseCase) Execute(ctx context.Context, cmd SubmitTicketCommand) (*SubmitTicketResult, error) {
	uc.logger.Infow("executing submit ticket use case", "owner_id", cmd.OwnerID)

	t, err := ticket.NewTicket(cmd.OwnerID, cmd.Subject, cmd.Body)
	if err != nil {
		uc.logger.Warnw("invalid ticket submission", "owner_id", cmd.OwnerID, "error", err)
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "owner_id", cmd.OwnerID, "error", err)
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}

	uc.logger.Infow("ticket submitted", "ticket_id", t.ID(), "owner_id", cmd.OwnerID)
	return &SubmitTicketResult{
		TicketID:  t.ID(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt(),
	}, nil
}
