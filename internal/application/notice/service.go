// Package notice manages announcements: admins draft, publish, and edit;
// students read published notices as sanitized HTML.
package notice

import (
	"context"
	"errors"
	"fmt"

	"eduhub/internal/domain/notice"
	apperrors "eduhub/internal/shared/errors"
	"eduhub/internal/shared/logger"
	"eduhub/internal/shared/services/markdown"
)

type NoticeView struct {
	ID          uint
	AuthorID    uint
	Title       string
	Body        string
	BodyHTML    string
	Status      string
	PublishedAt *int64
	CreatedAt   int64
	UpdatedAt   int64
}

type Service struct {
	repo     notice.Repository
	renderer markdown.Service
	logger   logger.Interface
}

func NewService(repo notice.Repository, renderer markdown.Service, log logger.Interface) *Service {
	return &Service{
		repo:     repo,
		renderer: renderer,
		logger:   log,
	}
}

type CreateNoticeCommand struct {
	AuthorID uint
	Title    string
	Body     string
	Publish  bool
}

func (s *Service) Create(ctx context.Context, cmd CreateNoticeCommand) (*NoticeView, error) {
	n, err := notice.NewNotice(cmd.AuthorID, cmd.Title, cmd.Body)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if cmd.Publish {
		n.Publish()
	}

	if err := s.repo.Save(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to save notice: %w", err)
	}

	s.logger.Infow("notice created", "notice_id", n.ID(), "status", n.Status().String())
	return s.toView(n)
}

type UpdateNoticeCommand struct {
	NoticeID uint
	Title    string
	Body     string
}

func (s *Service) Update(ctx context.Context, cmd UpdateNoticeCommand) (*NoticeView, error) {
	n, err := s.get(ctx, cmd.NoticeID)
	if err != nil {
		return nil, err
	}

	if err := n.UpdateContent(cmd.Title, cmd.Body); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to update notice: %w", err)
	}
	return s.toView(n)
}

func (s *Service) Publish(ctx context.Context, noticeID uint) (*NoticeView, error) {
	n, err := s.get(ctx, noticeID)
	if err != nil {
		return nil, err
	}

	n.Publish()
	if err := s.repo.Update(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to publish notice: %w", err)
	}

	s.logger.Infow("notice published", "notice_id", noticeID)
	return s.toView(n)
}

func (s *Service) Delete(ctx context.Context, noticeID uint) error {
	if _, err := s.get(ctx, noticeID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, noticeID); err != nil {
		return fmt.Errorf("failed to delete notice: %w", err)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, noticeID uint, isAdmin bool) (*NoticeView, error) {
	n, err := s.get(ctx, noticeID)
	if err != nil {
		return nil, err
	}

	// Drafts are invisible to students.
	if !n.IsPublished() && !isAdmin {
		return nil, apperrors.NewNotFoundError("notice not found")
	}

	return s.toView(n)
}

func (s *Service) List(ctx context.Context, isAdmin bool, page, pageSize int) ([]*NoticeView, int64, error) {
	notices, total, err := s.repo.List(ctx, !isAdmin, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notices: %w", err)
	}

	views := make([]*NoticeView, 0, len(notices))
	for _, n := range notices {
		view, err := s.toView(n)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, view)
	}
	return views, total, nil
}

func (s *Service) get(ctx context.Context, id uint) (*notice.Notice, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, notice.ErrNoticeNotFound) {
			return nil, apperrors.NewNotFoundError("notice not found")
		}
		return nil, fmt.Errorf("failed to load notice: %w", err)
	}
	return n, nil
}

func (s *Service) toView(n *notice.Notice) (*NoticeView, error) {
	html, err := s.renderer.ToHTMLSanitized(n.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to render notice body: %w", err)
	}

	view := &NoticeView{
		ID:        n.ID(),
		AuthorID:  n.AuthorID(),
		Title:     n.Title(),
		Body:      n.Body(),
		BodyHTML:  html,
		Status:    n.Status().String(),
		CreatedAt: n.CreatedAt().UnixMilli(),
		UpdatedAt: n.UpdatedAt().UnixMilli(),
	}
	if n.PublishedAt() != nil {
		published := n.PublishedAt().UnixMilli()
		view.PublishedAt = &published
	}
	return view, nil
}
