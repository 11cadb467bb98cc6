package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"eduhub/internal/domain/ticket"
	"eduhub/internal/infrastructure/persistence/mappers"
	"eduhub/internal/infrastructure/persistence/models"
	"eduhub/internal/shared/db"
)

type ReplyRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewReplyRepository(database *gorm.DB) *ReplyRepository {
	return &ReplyRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

// Save inserts a reply. Replies are never updated or deleted individually;
// the thread is append-only.
func (r *ReplyRepository) Save(ctx context.Context, reply *ticket.Reply) error {
	model := r.mapper.ReplyToModel(reply)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save reply: %w", err)
	}

	return reply.SetID(model.ID)
}

// GetByTicketID returns the thread oldest-first, with id as a tiebreak for
// replies created in the same millisecond.
func (r *ReplyRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Reply, error) {
	var modelList []models.ReplyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to load replies: %w", err)
	}

	replies := make([]*ticket.Reply, 0, len(modelList))
	for i := range modelList {
		reply, err := r.mapper.ReplyToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		replies = append(replies, reply)
	}

	return replies, nil
}
