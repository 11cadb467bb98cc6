package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"eduhub/internal/domain/ticket"
	"eduhub/internal/infrastructure/persistence/mappers"
	"eduhub/internal/infrastructure/persistence/models"
	"eduhub/internal/shared/constants"
	"eduhub/internal/shared/db"
	"eduhub/internal/shared/utils"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("subject", "body", "status", "updated_at", "closed_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

// Delete removes the ticket and its replies in one transaction.
func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(inner *gorm.DB) error {
		if err := inner.Where("ticket_id = ?", id).Delete(&models.ReplyModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket replies: %w", err)
		}
		if err := inner.Delete(&models.TicketModel{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete ticket: %w", err)
		}
		return nil
	})
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.TicketModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	page := filter.Page
	if page < constants.DefaultPage {
		page = constants.DefaultPage
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}

	var modelList []models.TicketModel
	if err := query.
		Order("created_at DESC, id DESC").
		Offset(utils.Pagination{Page: page, PageSize: pageSize}.Offset()).
		Limit(pageSize).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}

	return tickets, total, nil
}
