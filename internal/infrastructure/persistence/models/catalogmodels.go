package models

import "gorm.io/datatypes"

type ClassModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	SortOrder   int    `gorm:"not null;default:0;index"`
	Active      bool   `gorm:"not null;default:true"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ClassModel) TableName() string {
	return "classes"
}

type SubjectModel struct {
	ID        uint   `gorm:"primaryKey"`
	ClassID   uint   `gorm:"not null;index"`
	Name      string `gorm:"size:100;not null"`
	IconURL   string `gorm:"size:500"`
	SortOrder int    `gorm:"not null;default:0;index"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}

type BookModel struct {
	ID        uint           `gorm:"primaryKey"`
	SubjectID uint           `gorm:"not null;index"`
	Title     string         `gorm:"size:200;not null"`
	FileURL   string         `gorm:"size:500;not null"`
	CoverURL  string         `gorm:"size:500"`
	Metadata  datatypes.JSON `gorm:"type:json"`
	SortOrder int            `gorm:"not null;default:0;index"`
	Active    bool           `gorm:"not null;default:true"`
	CreatedAt int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (BookModel) TableName() string {
	return "books"
}

type VideoModel struct {
	ID           uint   `gorm:"primaryKey"`
	SubjectID    uint   `gorm:"not null;index"`
	Title        string `gorm:"size:200;not null"`
	VideoURL     string `gorm:"size:500;not null"`
	ThumbnailURL string `gorm:"size:500"`
	DurationSec  int    `gorm:"not null;default:0"`
	SortOrder    int    `gorm:"not null;default:0;index"`
	Active       bool   `gorm:"not null;default:true"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (VideoModel) TableName() string {
	return "videos"
}
