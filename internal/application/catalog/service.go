// Package catalog exposes browse and admin-management operations for the
// class/subject/book/video hierarchy.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"eduhub/internal/domain/catalog"
	apperrors "eduhub/internal/shared/errors"
	"eduhub/internal/shared/logger"
)

type Service struct {
	classRepo   catalog.ClassRepository
	subjectRepo catalog.SubjectRepository
	bookRepo    catalog.BookRepository
	videoRepo   catalog.VideoRepository
	logger      logger.Interface
}

func NewService(
	classRepo catalog.ClassRepository,
	subjectRepo catalog.SubjectRepository,
	bookRepo catalog.BookRepository,
	videoRepo catalog.VideoRepository,
	log logger.Interface,
) *Service {
	return &Service{
		classRepo:   classRepo,
		subjectRepo: subjectRepo,
		bookRepo:    bookRepo,
		videoRepo:   videoRepo,
		logger:      log,
	}
}

type CreateClassCommand struct {
	Name        string
	Description string
	SortOrder   int
}

type UpdateClassCommand struct {
	ClassID     uint
	Name        string
	Description string
	SortOrder   int
	Active      bool
}

func (s *Service) CreateClass(ctx context.Context, cmd CreateClassCommand) (*catalog.Class, error) {
	class, err := catalog.NewClass(cmd.Name, cmd.Description, cmd.SortOrder)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.classRepo.Save(ctx, class); err != nil {
		return nil, fmt.Errorf("failed to save class: %w", err)
	}

	s.logger.Infow("class created", "class_id", class.ID(), "name", class.Name())
	return class, nil
}

func (s *Service) UpdateClass(ctx context.Context, cmd UpdateClassCommand) (*catalog.Class, error) {
	class, err := s.getClass(ctx, cmd.ClassID)
	if err != nil {
		return nil, err
	}

	if err := class.Rename(cmd.Name); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	class.UpdateDetails(cmd.Description, cmd.SortOrder, cmd.Active)

	if err := s.classRepo.Update(ctx, class); err != nil {
		return nil, fmt.Errorf("failed to update class: %w", err)
	}
	return class, nil
}

func (s *Service) DeleteClass(ctx context.Context, classID uint) error {
	if _, err := s.getClass(ctx, classID); err != nil {
		return err
	}
	if err := s.classRepo.Delete(ctx, classID); err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}
	s.logger.Infow("class deleted", "class_id", classID)
	return nil
}

// ListClasses returns the class list; non-admin callers only see active
// entries.
func (s *Service) ListClasses(ctx context.Context, includeInactive bool) ([]*catalog.Class, error) {
	classes, err := s.classRepo.List(ctx, !includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	return classes, nil
}

type CreateSubjectCommand struct {
	ClassID   uint
	Name      string
	IconURL   string
	SortOrder int
}

type UpdateSubjectCommand struct {
	SubjectID uint
	Name      string
	IconURL   string
	SortOrder int
	Active    bool
}

func (s *Service) CreateSubject(ctx context.Context, cmd CreateSubjectCommand) (*catalog.Subject, error) {
	if _, err := s.getClass(ctx, cmd.ClassID); err != nil {
		return nil, err
	}

	subject, err := catalog.NewSubject(cmd.ClassID, cmd.Name, cmd.IconURL, cmd.SortOrder)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.subjectRepo.Save(ctx, subject); err != nil {
		return nil, fmt.Errorf("failed to save subject: %w", err)
	}
	return subject, nil
}

func (s *Service) UpdateSubject(ctx context.Context, cmd UpdateSubjectCommand) (*catalog.Subject, error) {
	subject, err := s.getSubject(ctx, cmd.SubjectID)
	if err != nil {
		return nil, err
	}

	if err := subject.UpdateDetails(cmd.Name, cmd.IconURL, cmd.SortOrder, cmd.Active); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		return nil, fmt.Errorf("failed to update subject: %w", err)
	}
	return subject, nil
}

func (s *Service) DeleteSubject(ctx context.Context, subjectID uint) error {
	if _, err := s.getSubject(ctx, subjectID); err != nil {
		return err
	}
	if err := s.subjectRepo.Delete(ctx, subjectID); err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}
	return nil
}

func (s *Service) ListSubjects(ctx context.Context, classID uint, includeInactive bool) ([]*catalog.Subject, error) {
	if _, err := s.getClass(ctx, classID); err != nil {
		return nil, err
	}

	subjects, err := s.subjectRepo.ListByClassID(ctx, classID, !includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	return subjects, nil
}

type CreateBookCommand struct {
	SubjectID uint
	Title     string
	FileURL   string
	CoverURL  string
	Metadata  map[string]any
	SortOrder int
}

func (s *Service) CreateBook(ctx context.Context, cmd CreateBookCommand) (*catalog.Book, error) {
	if _, err := s.getSubject(ctx, cmd.SubjectID); err != nil {
		return nil, err
	}

	book, err := catalog.NewBook(cmd.SubjectID, cmd.Title, cmd.FileURL, cmd.CoverURL, cmd.Metadata, cmd.SortOrder)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.bookRepo.Save(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to save book: %w", err)
	}
	return book, nil
}

func (s *Service) DeleteBook(ctx context.Context, bookID uint) error {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, catalog.ErrBookNotFound) {
			return apperrors.NewNotFoundError("book not found")
		}
		return fmt.Errorf("failed to load book: %w", err)
	}
	if err := s.bookRepo.Delete(ctx, bookID); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return nil
}

func (s *Service) ListBooks(ctx context.Context, subjectID uint, includeInactive bool) ([]*catalog.Book, error) {
	if _, err := s.getSubject(ctx, subjectID); err != nil {
		return nil, err
	}

	books, err := s.bookRepo.ListBySubjectID(ctx, subjectID, !includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

type CreateVideoCommand struct {
	SubjectID    uint
	Title        string
	VideoURL     string
	ThumbnailURL string
	DurationSec  int
	SortOrder    int
}

func (s *Service) CreateVideo(ctx context.Context, cmd CreateVideoCommand) (*catalog.Video, error) {
	if _, err := s.getSubject(ctx, cmd.SubjectID); err != nil {
		return nil, err
	}

	video, err := catalog.NewVideo(cmd.SubjectID, cmd.Title, cmd.VideoURL, cmd.ThumbnailURL, cmd.DurationSec, cmd.SortOrder)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.videoRepo.Save(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to save video: %w", err)
	}
	return video, nil
}

func (s *Service) DeleteVideo(ctx context.Context, videoID uint) error {
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, catalog.ErrVideoNotFound) {
			return apperrors.NewNotFoundError("video not found")
		}
		return fmt.Errorf("failed to load video: %w", err)
	}
	if err := s.videoRepo.Delete(ctx, videoID); err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	return nil
}

func (s *Service) ListVideos(ctx context.Context, subjectID uint, includeInactive bool) ([]*catalog.Video, error) {
	if _, err := s.getSubject(ctx, subjectID); err != nil {
		return nil, err
	}

	videos, err := s.videoRepo.ListBySubjectID(ctx, subjectID, !includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, nil
}

func (s *Service) getClass(ctx context.Context, id uint) (*catalog.Class, error) {
	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrClassNotFound) {
			return nil, apperrors.NewNotFoundError("class not found")
		}
		return nil, fmt.Errorf("failed to load class: %w", err)
	}
	return class, nil
}

func (s *Service) getSubject(ctx context.Context, id uint) (*catalog.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrSubjectNotFound) {
			return nil, apperrors.NewNotFoundError("subject not found")
		}
		return nil, fmt.Errorf("failed to load subject: %w", err)
	}
	return subject, nil
}
