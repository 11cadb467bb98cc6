package usecases

import (
	"context"

	"eduhub/internal/application/ticket/dto"
)

type SubmitTicketExecutor interface {
	Execute(ctx context.Context, cmd SubmitTicketCommand) (*SubmitTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type AddReplyExecutor interface {
	Execute(ctx context.Context, cmd AddReplyCommand) (*AddReplyResult, error)
}

type CloseTicketExecutor interface {
	Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

// transactionManager abstracts db.TransactionManager so use cases can be
// unit-tested without a database.
type transactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReplyNotifier delivers the "your ticket was answered" notification. Delivery
// failures must never fail the reply itself; implementations report the error
// and the use case logs it.
type ReplyNotifier interface {
	NotifyTicketAnswered(ctx context.Context, toEmail, toName, ticketSubject string, ticketID uint) error
}
