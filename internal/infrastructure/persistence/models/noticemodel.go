package models

type NoticeModel struct {
	ID          uint   `gorm:"primaryKey"`
	AuthorID    uint   `gorm:"not null;index"`
	Title       string `gorm:"size:200;not null"`
	Body        string `gorm:"type:text;not null"`
	Status      string `gorm:"size:20;not null;index"`
	PublishedAt *int64 `gorm:"index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (NoticeModel) TableName() string {
	return "notices"
}
