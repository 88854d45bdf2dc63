package initializers

import (
	"github.com/MadhavMendiratta/vit/internals/models"

	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.OtpChallenge{},
		&models.TokenEpoch{},
	)
}
