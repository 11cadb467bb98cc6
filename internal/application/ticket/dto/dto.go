package dto

import (
	"time"

	"eduhub/internal/domain/ticket"
)

type TicketDTO struct {
	ID        uint       `json:"id"`
	OwnerID   uint       `json:"owner_id"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ClosedAt  *time.Time `json:"closed_at"`
	Replies   []ReplyDTO `json:"replies"`
}

type ReplyDTO struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	AuthorID   uint      `json:"author_id"`
	AuthorRole string    `json:"author_role"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

type TicketListItemDTO struct {
	ID        uint      `json:"id"`
	OwnerID   uint      `json:"owner_id"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToTicketDTO(t *ticket.Ticket, replies []*ticket.Reply) *TicketDTO {
	if t == nil {
		return nil
	}

	replyDTOs := make([]ReplyDTO, 0, len(replies))
	for _, r := range replies {
		replyDTOs = append(replyDTOs, ToReplyDTO(r))
	}

	return &TicketDTO{
		ID:        t.ID(),
		OwnerID:   t.OwnerID(),
		Subject:   t.Subject(),
		Body:      t.Body(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
		ClosedAt:  t.ClosedAt(),
		Replies:   replyDTOs,
	}
}

func ToReplyDTO(r *ticket.Reply) ReplyDTO {
	return ReplyDTO{
		ID:         r.ID(),
		TicketID:   r.TicketID(),
		AuthorID:   r.AuthorID(),
		AuthorRole: r.AuthorRole().String(),
		Body:       r.Body(),
		CreatedAt:  r.CreatedAt(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:        t.ID(),
		OwnerID:   t.OwnerID(),
		Subject:   t.Subject(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}
