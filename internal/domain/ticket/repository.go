package ticket

import (
	"context"

	vo "eduhub/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	// Delete removes a ticket and, via referential integrity, all its
	// replies.
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// List returns tickets ordered by created_at descending.
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
}

type TicketFilter struct {
	Status   *vo.TicketStatus
	OwnerID  *uint
	Page     int
	PageSize int
}

type ReplyRepository interface {
	// Save is a pure insert; a reply row is never rewritten.
	Save(ctx context.Context, r *Reply) error
	// GetByTicketID returns replies ordered by created_at ascending with
	// insertion order as the tiebreak.
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Reply, error)
}
