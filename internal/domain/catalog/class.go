// Package catalog models the content hierarchy: classes contain subjects,
// subjects contain books and videos.
package catalog

import (
	"fmt"
	"time"

	"eduhub/internal/shared/biztime"
)

type Class struct {
	id          uint
	name        string
	description string
	sortOrder   int
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewClass(name, description string, sortOrder int) (*Class, error) {
	if name == "" {
		return nil, fmt.Errorf("class name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("class name exceeds maximum length of 100 characters")
	}

	now := biztime.NowUTC()
	return &Class{
		name:        name,
		description: description,
		sortOrder:   sortOrder,
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructClass(id uint, name, description string, sortOrder int, active bool, createdAt, updatedAt time.Time) (*Class, error) {
	if id == 0 {
		return nil, fmt.Errorf("class ID cannot be zero")
	}
	return &Class{
		id:          id,
		name:        name,
		description: description,
		sortOrder:   sortOrder,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Class) ID() uint             { return c.id }
func (c *Class) Name() string         { return c.name }
func (c *Class) Description() string  { return c.description }
func (c *Class) SortOrder() int       { return c.sortOrder }
func (c *Class) IsActive() bool       { return c.active }
func (c *Class) CreatedAt() time.Time { return c.createdAt }
func (c *Class) UpdatedAt() time.Time { return c.updatedAt }

func (c *Class) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("class ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("class ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Class) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("class name is required")
	}
	c.name = name
	c.updatedAt = biztime.NowUTC()
	return nil
}

func (c *Class) UpdateDetails(description string, sortOrder int, active bool) {
	c.description = description
	c.sortOrder = sortOrder
	c.active = active
	c.updatedAt = biztime.NowUTC()
}
