package mappers

import (
	"time"

	"eduhub/internal/domain/ticket"
	vo "eduhub/internal/domain/ticket/valueobjects"
	"eduhub/internal/infrastructure/persistence/models"
	"eduhub/internal/shared/biztime"
)

// TicketMapper converts between ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ReplyToModel(r *ticket.Reply) *models.ReplyModel
	ReplyToDomain(model *models.ReplyModel) (*ticket.Reply, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:        t.ID(),
		OwnerID:   t.OwnerID(),
		Subject:   t.Subject(),
		Body:      t.Body(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt().UnixMilli(),
		UpdatedAt: t.UpdatedAt().UnixMilli(),
	}

	if t.ClosedAt() != nil {
		closed := t.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	var closedAt *time.Time
	if model.ClosedAt != nil {
		t := biztime.FromUnixMilli(*model.ClosedAt)
		closedAt = &t
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.OwnerID,
		model.Subject,
		model.Body,
		vo.TicketStatus(model.Status),
		biztime.FromUnixMilli(model.CreatedAt),
		biztime.FromUnixMilli(model.UpdatedAt),
		closedAt,
	)
}

func (m *TicketMapperImpl) ReplyToModel(r *ticket.Reply) *models.ReplyModel {
	return &models.ReplyModel{
		ID:         r.ID(),
		TicketID:   r.TicketID(),
		AuthorID:   r.AuthorID(),
		AuthorRole: r.AuthorRole().String(),
		Body:       r.Body(),
		CreatedAt:  r.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ReplyToDomain(model *models.ReplyModel) (*ticket.Reply, error) {
	return ticket.ReconstructReply(
		model.ID,
		model.TicketID,
		model.AuthorID,
		vo.AuthorRole(model.AuthorRole),
		model.Body,
		biztime.FromUnixMilli(model.CreatedAt),
	)
}
