package migration

import (
	"eduhub/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.TicketModel{},
		&models.ReplyModel{},
		&models.ClassModel{},
		&models.SubjectModel{},
		&models.BookModel{},
		&models.VideoModel{},
		&models.NoticeModel{},
	}
}
