package catalog

import (
	"fmt"
	"time"

	"eduhub/internal/shared/biztime"
)

type Subject struct {
	id        uint
	classID   uint
	name      string
	iconURL   string
	sortOrder int
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewSubject(classID uint, name, iconURL string, sortOrder int) (*Subject, error) {
	if classID == 0 {
		return nil, fmt.Errorf("subject requires a class ID")
	}
	if name == "" {
		return nil, fmt.Errorf("subject name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("subject name exceeds maximum length of 100 characters")
	}

	now := biztime.NowUTC()
	return &Subject{
		classID:   classID,
		name:      name,
		iconURL:   iconURL,
		sortOrder: sortOrder,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructSubject(id, classID uint, name, iconURL string, sortOrder int, active bool, createdAt, updatedAt time.Time) (*Subject, error) {
	if id == 0 {
		return nil, fmt.Errorf("subject ID cannot be zero")
	}
	return &Subject{
		id:        id,
		classID:   classID,
		name:      name,
		iconURL:   iconURL,
		sortOrder: sortOrder,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *Subject) ID() uint             { return s.id }
func (s *Subject) ClassID() uint        { return s.classID }
func (s *Subject) Name() string         { return s.name }
func (s *Subject) IconURL() string      { return s.iconURL }
func (s *Subject) SortOrder() int       { return s.sortOrder }
func (s *Subject) IsActive() bool       { return s.active }
func (s *Subject) CreatedAt() time.Time { return s.createdAt }
func (s *Subject) UpdatedAt() time.Time { return s.updatedAt }

func (s *Subject) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subject ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subject ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Subject) UpdateDetails(name, iconURL string, sortOrder int, active bool) error {
	if name == "" {
		return fmt.Errorf("subject name is required")
	}
	s.name = name
	s.iconURL = iconURL
	s.sortOrder = sortOrder
	s.active = active
	s.updatedAt = biztime.NowUTC()
	return nil
}
