package catalog

import (
	"fmt"
	"time"

	"eduhub/internal/shared/biztime"
)

type Video struct {
	id           uint
	subjectID    uint
	title        string
	videoURL     string
	thumbnailURL string
	durationSec  int
	sortOrder    int
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewVideo(subjectID uint, title, videoURL, thumbnailURL string, durationSec, sortOrder int) (*Video, error) {
	if subjectID == 0 {
		return nil, fmt.Errorf("video requires a subject ID")
	}
	if title == "" {
		return nil, fmt.Errorf("video title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("video title exceeds maximum length of 200 characters")
	}
	if videoURL == "" {
		return nil, fmt.Errorf("video URL is required")
	}
	if durationSec < 0 {
		return nil, fmt.Errorf("video duration cannot be negative")
	}

	now := biztime.NowUTC()
	return &Video{
		subjectID:    subjectID,
		title:        title,
		videoURL:     videoURL,
		thumbnailURL: thumbnailURL,
		durationSec:  durationSec,
		sortOrder:    sortOrder,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructVideo(id, subjectID uint, title, videoURL, thumbnailURL string, durationSec, sortOrder int, active bool, createdAt, updatedAt time.Time) (*Video, error) {
	if id == 0 {
		return nil, fmt.Errorf("video ID cannot be zero")
	}
	return &Video{
		id:           id,
		subjectID:    subjectID,
		title:        title,
		videoURL:     videoURL,
		thumbnailURL: thumbnailURL,
		durationSec:  durationSec,
		sortOrder:    sortOrder,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (v *Video) ID() uint             { return v.id }
func (v *Video) SubjectID() uint      { return v.subjectID }
func (v *Video) Title() string        { return v.title }
func (v *Video) VideoURL() string     { return v.videoURL }
func (v *Video) ThumbnailURL() string { return v.thumbnailURL }
func (v *Video) DurationSec() int     { return v.durationSec }
func (v *Video) SortOrder() int       { return v.sortOrder }
func (v *Video) IsActive() bool       { return v.active }
func (v *Video) CreatedAt() time.Time { return v.createdAt }
func (v *Video) UpdatedAt() time.Time { return v.updatedAt }

func (v *Video) SetID(id uint) error {
	if v.id != 0 {
		return fmt.Errorf("video ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("video ID cannot be zero")
	}
	v.id = id
	return nil
}

func (v *Video) UpdateDetails(title, videoURL, thumbnailURL string, durationSec, sortOrder int, active bool) error {
	if title == "" {
		return fmt.Errorf("video title is required")
	}
	if videoURL == "" {
		return fmt.Errorf("video URL is required")
	}
	if durationSec < 0 {
		return fmt.Errorf("video duration cannot be negative")
	}
	v.title = title
	v.videoURL = videoURL
	v.thumbnailURL = thumbnailURL
	v.durationSec = durationSec
	v.sortOrder = sortOrder
	v.active = active
	v.updatedAt = biztime.NowUTC()
	return nil
}
