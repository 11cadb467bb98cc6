package mappers

import (
	"time"

	"eduhub/internal/domain/notice"
	"eduhub/internal/infrastructure/persistence/models"
	"eduhub/internal/shared/biztime"
)

type NoticeMapper interface {
	ToModel(n *notice.Notice) *models.NoticeModel
	ToDomain(model *models.NoticeModel) (*notice.Notice, error)
}

type NoticeMapperImpl struct{}

func NewNoticeMapper() NoticeMapper {
	return &NoticeMapperImpl{}
}

func (m *NoticeMapperImpl) ToModel(n *notice.Notice) *models.NoticeModel {
	model := &models.NoticeModel{
		ID:        n.ID(),
		AuthorID:  n.AuthorID(),
		Title:     n.Title(),
		Body:      n.Body(),
		Status:    n.Status().String(),
		CreatedAt: n.CreatedAt().UnixMilli(),
		UpdatedAt: n.UpdatedAt().UnixMilli(),
	}

	if n.PublishedAt() != nil {
		published := n.PublishedAt().UnixMilli()
		model.PublishedAt = &published
	}

	return model
}

func (m *NoticeMapperImpl) ToDomain(model *models.NoticeModel) (*notice.Notice, error) {
	var publishedAt *time.Time
	if model.PublishedAt != nil {
		t := biztime.FromUnixMilli(*model.PublishedAt)
		publishedAt = &t
	}

	return notice.ReconstructNotice(
		model.ID,
		model.AuthorID,
		model.Title,
		model.Body,
		notice.NoticeStatus(model.Status),
		publishedAt,
		biztime.FromUnixMilli(model.CreatedAt),
		biztime.FromUnixMilli(model.UpdatedAt),
	)
}
