package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"eduhub/internal/domain/catalog"
	"eduhub/internal/infrastructure/persistence/models"
	"eduhub/internal/shared/biztime"
)

// CatalogMapper converts between catalog entities and persistence models.
type CatalogMapper interface {
	ClassToModel(c *catalog.Class) *models.ClassModel
	ClassToDomain(model *models.ClassModel) (*catalog.Class, error)
	SubjectToModel(s *catalog.Subject) *models.SubjectModel
	SubjectToDomain(model *models.SubjectModel) (*catalog.Subject, error)
	BookToModel(b *catalog.Book) (*models.BookModel, error)
	BookToDomain(model *models.BookModel) (*catalog.Book, error)
	VideoToModel(v *catalog.Video) *models.VideoModel
	VideoToDomain(model *models.VideoModel) (*catalog.Video, error)
}

type CatalogMapperImpl struct{}

func NewCatalogMapper() CatalogMapper {
	return &CatalogMapperImpl{}
}

func (m *CatalogMapperImpl) ClassToModel(c *catalog.Class) *models.ClassModel {
	return &models.ClassModel{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		SortOrder:   c.SortOrder(),
		Active:      c.IsActive(),
		CreatedAt:   c.CreatedAt().UnixMilli(),
		UpdatedAt:   c.UpdatedAt().UnixMilli(),
	}
}

func (m *CatalogMapperImpl) ClassToDomain(model *models.ClassModel) (*catalog.Class, error) {
	return catalog.ReconstructClass(
		model.ID,
		model.Name,
		model.Description,
		model.SortOrder,
		model.Active,
		biztime.FromUnixMilli(model.CreatedAt),
		biztime.FromUnixMilli(model.UpdatedAt),
	)
}

func (m *CatalogMapperImpl) SubjectToModel(s *catalog.Subject) *models.SubjectModel {
	return &models.SubjectModel{
		ID:        s.ID(),
		ClassID:   s.ClassID(),
		Name:      s.Name(),
		IconURL:   s.IconURL(),
		SortOrder: s.SortOrder(),
		Active:    s.IsActive(),
		CreatedAt: s.CreatedAt().UnixMilli(),
		UpdatedAt: s.UpdatedAt().UnixMilli(),
	}
}

func (m *CatalogMapperImpl) SubjectToDomain(model *models.SubjectModel) (*catalog.Subject, error) {
	return catalog.ReconstructSubject(
		model.ID,
		model.ClassID,
		model.Name,
		model.IconURL,
		model.SortOrder,
		model.Active,
		biztime.FromUnixMilli(model.CreatedAt),
		biztime.FromUnixMilli(model.UpdatedAt),
	)
}

func (m *CatalogMapperImpl) BookToModel(b *catalog.Book) (*models.BookModel, error) {
	model := &models.BookModel{
		ID:        b.ID(),
		SubjectID: b.SubjectID(),
		Title:     b.Title(),
		FileURL:   b.FileURL(),
		CoverURL:  b.CoverURL(),
		SortOrder: b.SortOrder(),
		Active:    b.IsActive(),
		CreatedAt: b.CreatedAt().UnixMilli(),
		UpdatedAt: b.UpdatedAt().UnixMilli(),
	}

	if len(b.Metadata()) > 0 {
		raw, err := json.Marshal(b.Metadata())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal book metadata: %w", err)
		}
		model.Metadata = datatypes.JSON(raw)
	}

	return model, nil
}

func (m *CatalogMapperImpl) BookToDomain(model *models.BookModel) (*catalog.Book, error) {
	var metadata map[string]any
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal book metadata: %w", err)
		}
	}

	return catalog.ReconstructBook(
		model.ID,
		model.SubjectID,
		model.Title,
		model.FileURL,
		model.CoverURL,
		metadata,
		model.SortOrder,
		model.Active,
		biztime.FromUnixMilli(model.CreatedAt),
		biztime.FromUnixMilli(model.UpdatedAt),
	)
}

func (m *CatalogMapperImpl) VideoToModel(v *catalog.Video) *models.VideoModel {
	return &models.VideoModel{
		ID:           v.ID(),
		SubjectID:    v.SubjectID(),
		Title:        v.Title(),
		VideoURL:     v.VideoURL(),
		ThumbnailURL: v.ThumbnailURL(),
		DurationSec:  v.DurationSec(),
		SortOrder:    v.SortOrder(),
		Active:       v.IsActive(),
		CreatedAt:    v.CreatedAt().UnixMilli(),
		UpdatedAt:    v.UpdatedAt().UnixMilli(),
	}
}

func (m *CatalogMapperImpl) VideoToDomain(model *models.VideoModel) (*catalog.Video, error) {
	return catalog.ReconstructVideo(
		model.ID,
		model.SubjectID,
		model.Title,
		model.VideoURL,
		model.ThumbnailURL,
		model.DurationSec,
		model.SortOrder,
		model.Active,
		biztime.FromUnixMilli(model.CreatedAt),
		biztime.FromUnixMilli(model.UpdatedAt),
	)
}
