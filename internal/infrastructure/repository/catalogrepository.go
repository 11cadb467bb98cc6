package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"eduhub/internal/domain/catalog"
	"eduhub/internal/infrastructure/persistence/mappers"
	"eduhub/internal/infrastructure/persistence/models"
	"eduhub/internal/shared/db"
)

type ClassRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewClassRepository(database *gorm.DB) *ClassRepository {
	return &ClassRepository{db: database, mapper: mappers.NewCatalogMapper()}
}

func (r *ClassRepository) Save(ctx context.Context, class *catalog.Class) error {
	model := r.mapper.ClassToModel(class)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save class: %w", err)
	}
	return class.SetID(model.ID)
}

func (r *ClassRepository) Update(ctx context.Context, class *catalog.Class) error {
	model := r.mapper.ClassToModel(class)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ClassModel{}).
		Where("id = ?", model.ID).
		Select("name", "description", "sort_order", "active", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update class: %w", result.Error)
	}
	return nil
}

func (r *ClassRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.ClassModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}
	return nil
}

func (r *ClassRepository) GetByID(ctx context.Context, id uint) (*catalog.Class, error) {
	var model models.ClassModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrClassNotFound
		}
		return nil, fmt.Errorf("failed to find class: %w", err)
	}
	return r.mapper.ClassToDomain(&model)
}

func (r *ClassRepository) List(ctx context.Context, activeOnly bool) ([]*catalog.Class, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.ClassModel{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var modelList []models.ClassModel
	if err := query.Order("sort_order ASC, id ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}

	classes := make([]*catalog.Class, 0, len(modelList))
	for i := range modelList {
		class, err := r.mapper.ClassToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, nil
}

type SubjectRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewSubjectRepository(database *gorm.DB) *SubjectRepository {
	return &SubjectRepository{db: database, mapper: mappers.NewCatalogMapper()}
}

func (r *SubjectRepository) Save(ctx context.Context, subject *catalog.Subject) error {
	model := r.mapper.SubjectToModel(subject)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save subject: %w", err)
	}
	return subject.SetID(model.ID)
}

func (r *SubjectRepository) Update(ctx context.Context, subject *catalog.Subject) error {
	model := r.mapper.SubjectToModel(subject)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SubjectModel{}).
		Where("id = ?", model.ID).
		Select("name", "icon_url", "sort_order", "active", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update subject: %w", result.Error)
	}
	return nil
}

func (r *SubjectRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.SubjectModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}
	return nil
}

func (r *SubjectRepository) GetByID(ctx context.Context, id uint) (*catalog.Subject, error) {
	var model models.SubjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("failed to find subject: %w", err)
	}
	return r.mapper.SubjectToDomain(&model)
}

func (r *SubjectRepository) ListByClassID(ctx context.Context, classID uint, activeOnly bool) ([]*catalog.Subject, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.SubjectModel{}).Where("class_id = ?", classID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var modelList []models.SubjectModel
	if err := query.Order("sort_order ASC, id ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}

	subjects := make([]*catalog.Subject, 0, len(modelList))
	for i := range modelList {
		subject, err := r.mapper.SubjectToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	return subjects, nil
}

type BookRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewBookRepository(database *gorm.DB) *BookRepository {
	return &BookRepository{db: database, mapper: mappers.NewCatalogMapper()}
}

func (r *BookRepository) Save(ctx context.Context, book *catalog.Book) error {
	model, err := r.mapper.BookToModel(book)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save book: %w", err)
	}
	return book.SetID(model.ID)
}

func (r *BookRepository) Update(ctx context.Context, book *catalog.Book) error {
	model, err := r.mapper.BookToModel(book)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.BookModel{}).
		Where("id = ?", model.ID).
		Select("title", "file_url", "cover_url", "metadata", "sort_order", "active", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update book: %w", result.Error)
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.BookModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return nil
}

func (r *BookRepository) GetByID(ctx context.Context, id uint) (*catalog.Book, error) {
	var model models.BookModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to find book: %w", err)
	}
	return r.mapper.BookToDomain(&model)
}

func (r *BookRepository) ListBySubjectID(ctx context.Context, subjectID uint, activeOnly bool) ([]*catalog.Book, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.BookModel{}).Where("subject_id = ?", subjectID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var modelList []models.BookModel
	if err := query.Order("sort_order ASC, id ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	books := make([]*catalog.Book, 0, len(modelList))
	for i := range modelList {
		book, err := r.mapper.BookToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}

type VideoRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewVideoRepository(database *gorm.DB) *VideoRepository {
	return &VideoRepository{db: database, mapper: mappers.NewCatalogMapper()}
}

func (r *VideoRepository) Save(ctx context.Context, video *catalog.Video) error {
	model := r.mapper.VideoToModel(video)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save video: %w", err)
	}
	return video.SetID(model.ID)
}

func (r *VideoRepository) Update(ctx context.Context, video *catalog.Video) error {
	model := r.mapper.VideoToModel(video)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.VideoModel{}).
		Where("id = ?", model.ID).
		Select("title", "video_url", "thumbnail_url", "duration_sec", "sort_order", "active", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update video: %w", result.Error)
	}
	return nil
}

func (r *VideoRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.VideoModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	return nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id uint) (*catalog.Video, error) {
	var model models.VideoModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to find video: %w", err)
	}
	return r.mapper.VideoToDomain(&model)
}

func (r *VideoRepository) ListBySubjectID(ctx context.Context, subjectID uint, activeOnly bool) ([]*catalog.Video, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.VideoModel{}).Where("subject_id = ?", subjectID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var modelList []models.VideoModel
	if err := query.Order("sort_order ASC, id ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	videos := make([]*catalog.Video, 0, len(modelList))
	for i := range modelList {
		video, err := r.mapper.VideoToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}
	return videos, nil
}
