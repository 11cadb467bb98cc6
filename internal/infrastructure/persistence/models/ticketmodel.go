package models

type TicketModel struct {
	ID        uint   `gorm:"primaryKey"`
	OwnerID   uint   `gorm:"not null;index"`
	Subject   string `gorm:"size:200;not null"`
	Body      string `gorm:"type:text;not null"`
	Status    string `gorm:"size:20;not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt  *int64

	// No foreign key constraints or associations; relationships are managed
	// by application logic. Deleting a ticket removes its replies in the
	// same transaction.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type ReplyModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	AuthorID   uint   `gorm:"not null;index"`
	AuthorRole string `gorm:"size:20;not null"`
	Body       string `gorm:"type:text;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (ReplyModel) TableName() string {
	return "ticket_replies"
}
