package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"eduhub/internal/domain/notice"
	"eduhub/internal/infrastructure/persistence/mappers"
	"eduhub/internal/infrastructure/persistence/models"
	"eduhub/internal/shared/constants"
	"eduhub/internal/shared/db"
	"eduhub/internal/shared/utils"
)

type NoticeRepository struct {
	db     *gorm.DB
	mapper mappers.NoticeMapper
}

func NewNoticeRepository(database *gorm.DB) *NoticeRepository {
	return &NoticeRepository{
		db:     database,
		mapper: mappers.NewNoticeMapper(),
	}
}

func (r *NoticeRepository) Save(ctx context.Context, n *notice.Notice) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save notice: %w", err)
	}
	return n.SetID(model.ID)
}

func (r *NoticeRepository) Update(ctx context.Context, n *notice.Notice) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.NoticeModel{}).
		Where("id = ?", model.ID).
		Select("title", "body", "status", "published_at", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update notice: %w", result.Error)
	}
	return nil
}

func (r *NoticeRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.NoticeModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete notice: %w", err)
	}
	return nil
}

func (r *NoticeRepository) GetByID(ctx context.Context, id uint) (*notice.Notice, error) {
	var model models.NoticeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notice.ErrNoticeNotFound
		}
		return nil, fmt.Errorf("failed to find notice: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *NoticeRepository) List(ctx context.Context, publishedOnly bool, page, pageSize int) ([]*notice.Notice, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.NoticeModel{})
	if publishedOnly {
		query = query.Where("status = ?", notice.StatusPublished.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notices: %w", err)
	}

	if page < constants.DefaultPage {
		page = constants.DefaultPage
	}
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}

	var modelList []models.NoticeModel
	if err := query.
		Order("created_at DESC, id DESC").
		Offset(utils.Pagination{Page: page, PageSize: pageSize}.Offset()).
		Limit(pageSize).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notices: %w", err)
	}

	notices := make([]*notice.Notice, 0, len(modelList))
	for i := range modelList {
		n, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		notices = append(notices, n)
	}

	return notices, total, nil
}
