// Package notice models platform announcements authored by admins. Notice
// bodies are markdown; rendering and sanitization happen at the application
// layer so the domain stores the raw source only.
package notice

import (
	"fmt"
	"time"

	"eduhub/internal/shared/biztime"
)

const (
	maxTitleLength = 200
	maxBodyLength  = 20000
)

type NoticeStatus string

const (
	StatusDraft     NoticeStatus = "draft"
	StatusPublished NoticeStatus = "published"
)

func (s NoticeStatus) String() string { return string(s) }

func (s NoticeStatus) IsValid() bool {
	return s == StatusDraft || s == StatusPublished
}

type Notice struct {
	id          uint
	authorID    uint
	title       string
	body        string
	status      NoticeStatus
	publishedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewNotice(authorID uint, title, body string) (*Notice, error) {
	if authorID == 0 {
		return nil, fmt.Errorf("notice requires an author ID")
	}
	if title == "" {
		return nil, fmt.Errorf("notice title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("notice title exceeds maximum length of %d characters", maxTitleLength)
	}
	if body == "" {
		return nil, fmt.Errorf("notice body is required")
	}
	if len(body) > maxBodyLength {
		return nil, fmt.Errorf("notice body exceeds maximum length of %d characters", maxBodyLength)
	}

	now := biztime.NowUTC()
	return &Notice{
		authorID:  authorID,
		title:     title,
		body:      body,
		status:    StatusDraft,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructNotice(id, authorID uint, title, body string, status NoticeStatus, publishedAt *time.Time, createdAt, updatedAt time.Time) (*Notice, error) {
	if id == 0 {
		return nil, fmt.Errorf("notice ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid notice status: %s", status)
	}
	return &Notice{
		id:          id,
		authorID:    authorID,
		title:       title,
		body:        body,
		status:      status,
		publishedAt: publishedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (n *Notice) ID() uint                { return n.id }
func (n *Notice) AuthorID() uint          { return n.authorID }
func (n *Notice) Title() string           { return n.title }
func (n *Notice) Body() string            { return n.body }
func (n *Notice) Status() NoticeStatus    { return n.status }
func (n *Notice) PublishedAt() *time.Time { return n.publishedAt }
func (n *Notice) CreatedAt() time.Time    { return n.createdAt }
func (n *Notice) UpdatedAt() time.Time    { return n.updatedAt }
func (n *Notice) IsPublished() bool       { return n.status == StatusPublished }

func (n *Notice) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notice ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notice ID cannot be zero")
	}
	n.id = id
	return nil
}

// Publish moves a draft to published and stamps publishedAt. Publishing an
// already-published notice is a no-op.
func (n *Notice) Publish() {
	if n.status == StatusPublished {
		return
	}
	now := biztime.NowUTC()
	n.status = StatusPublished
	n.publishedAt = &now
	n.updatedAt = now
}

func (n *Notice) UpdateContent(title, body string) error {
	if title == "" {
		return fmt.Errorf("notice title is required")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("notice title exceeds maximum length of %d characters", maxTitleLength)
	}
	if body == "" {
		return fmt.Errorf("notice body is required")
	}
	if len(body) > maxBodyLength {
		return fmt.Errorf("notice body exceeds maximum length of %d characters", maxBodyLength)
	}
	n.title = title
	n.body = body
	n.updatedAt = biztime.NowUTC()
	return nil
}
