package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eduhub/internal/domain/ticket"
	vo "eduhub/internal/domain/ticket/valueobjects"
	"eduhub/internal/domain/user"
	apperrors "eduhub/internal/shared/errors"
	"eduhub/internal/shared/logger"
)

type AddReplyCommand struct {
	TicketID uint
	AuthorID uint
	IsAdmin  bool
	Body     string
}

type AddReplyResult struct {
	ReplyID      uint
	TicketStatus string
	CreatedAt    time.Time
}

type AddReplyUseCase struct {
	ticketRepo ticket.TicketRepository
	replyRepo  ticket.ReplyRepository
	userRepo   user.Repository
	txMgr      transactionManager
	notifier   ReplyNotifier
	logger     logger.Interface
}

func NewAddReplyUseCase(
	ticketRepo ticket.TicketRepository,
	replyRepo ticket.ReplyRepository,
	userRepo user.Repository,
	txMgr transactionManager,
	notifier ReplyNotifier,
	logger logger.Interface,
) *AddReplyUseCase {
	return &AddReplyUseCase{
		ticketRepo: ticketRepo,
		replyRepo:  replyRepo,
		userRepo:   userRepo,
		txMgr:      txMgr,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *AddReplyUseCase) Execute(ctx context.Context, cmd AddReplyCommand) (*AddReplyResult, error) {
	uc.logger.Infow("executing add reply use case", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)

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

	if !t.CanBeViewedBy(cmd.AuthorID, cmd.IsAdmin) {
		uc.logger.Warnw("reply denied", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)
		return nil, apperrors.NewForbiddenError("you do not have access to this ticket")
	}

	role := vo.AuthorStudent
	if cmd.IsAdmin {
		role = vo.AuthorAdmin
	}

	reply, err := ticket.NewReply(cmd.TicketID, cmd.AuthorID, role, cmd.Body)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	// Reply insert and status advance commit or roll back together.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := t.AcceptReply(); err != nil {
			return err
		}

		if err := uc.replyRepo.Save(txCtx, reply); err != nil {
			return fmt.Errorf("failed to save reply: %w", err)
		}

		if cmd.IsAdmin && t.Status().IsPending() {
			if err := t.Answer(); err != nil {
				return err
			}
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}

		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ticket.ErrTicketClosed) {
			return nil, apperrors.NewInvalidStateError("ticket is closed and cannot accept replies")
		}
		uc.logger.Errorw("failed to add reply", "ticket_id", cmd.TicketID, "error", txErr)
		return nil, txErr
	}

	if cmd.IsAdmin {
		uc.notifyOwner(ctx, t)
	}

	uc.logger.Infow("reply added", "reply_id", reply.ID(), "ticket_id", cmd.TicketID, "ticket_status", t.Status().String())
	return &AddReplyResult{
		ReplyID:      reply.ID(),
		TicketStatus: t.Status().String(),
		CreatedAt:    reply.CreatedAt(),
	}, nil
}

// notifyOwner emails the ticket owner about the admin response. Failures are
// logged and swallowed; the reply is already committed.
func (uc *AddReplyUseCase) notifyOwner(ctx context.Context, t *ticket.Ticket) {
	if uc.notifier == nil {
		return
	}

	owner, err := uc.userRepo.GetByID(ctx, t.OwnerID())
	if err != nil {
		uc.logger.Warnw("failed to load ticket owner for notification", "ticket_id", t.ID(), "owner_id", t.OwnerID(), "error", err)
		return
	}

	if err := uc.notifier.NotifyTicketAnswered(ctx, owner.Email(), owner.Name().String(), t.Subject(), t.ID()); err != nil {
		uc.logger.Warnw("failed to send reply notification", "ticket_id", t.ID(), "owner_id", t.OwnerID(), "error", err)
	}
}
