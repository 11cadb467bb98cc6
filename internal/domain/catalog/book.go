package catalog

import (
	"fmt"
	"time"

	"eduhub/internal/shared/biztime"
)

// Book is a downloadable document attached to a subject. Page metadata is
// free-form and stored as JSON by the persistence layer.
type Book struct {
	id        uint
	subjectID uint
	title     string
	fileURL   string
	coverURL  string
	metadata  map[string]any
	sortOrder int
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewBook(subjectID uint, title, fileURL, coverURL string, metadata map[string]any, sortOrder int) (*Book, error) {
	if subjectID == 0 {
		return nil, fmt.Errorf("book requires a subject ID")
	}
	if title == "" {
		return nil, fmt.Errorf("book title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("book title exceeds maximum length of 200 characters")
	}
	if fileURL == "" {
		return nil, fmt.Errorf("book file URL is required")
	}

	now := biztime.NowUTC()
	return &Book{
		subjectID: subjectID,
		title:     title,
		fileURL:   fileURL,
		coverURL:  coverURL,
		metadata:  metadata,
		sortOrder: sortOrder,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructBook(id, subjectID uint, title, fileURL, coverURL string, metadata map[string]any, sortOrder int, active bool, createdAt, updatedAt time.Time) (*Book, error) {
	if id == 0 {
		return nil, fmt.Errorf("book ID cannot be zero")
	}
	return &Book{
		id:        id,
		subjectID: subjectID,
		title:     title,
		fileURL:   fileURL,
		coverURL:  coverURL,
		metadata:  metadata,
		sortOrder: sortOrder,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (b *Book) ID() uint                 { return b.id }
func (b *Book) SubjectID() uint          { return b.subjectID }
func (b *Book) Title() string            { return b.title }
func (b *Book) FileURL() string          { return b.fileURL }
func (b *Book) CoverURL() string         { return b.coverURL }
func (b *Book) Metadata() map[string]any { return b.metadata }
func (b *Book) SortOrder() int           { return b.sortOrder }
func (b *Book) IsActive() bool           { return b.active }
func (b *Book) CreatedAt() time.Time     { return b.createdAt }
func (b *Book) UpdatedAt() time.Time     { return b.updatedAt }

func (b *Book) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("book ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("book ID cannot be zero")
	}
	b.id = id
	return nil
}

func (b *Book) UpdateDetails(title, fileURL, coverURL string, metadata map[string]any, sortOrder int, active bool) error {
	if title == "" {
		return fmt.Errorf("book title is required")
	}
	if fileURL == "" {
		return fmt.Errorf("book file URL is required")
	}
	b.title = title
	b.fileURL = fileURL
	b.coverURL = coverURL
	b.metadata = metadata
	b.sortOrder = sortOrder
	b.active = active
	b.updatedAt = biztime.NowUTC()
	return nil
}
