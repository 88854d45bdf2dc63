package initializers

import (
	"github.com/MadhavMendiratta/vit/internals/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectToDb() (*gorm.DB, error) {
	dsn := config.GetEnvAsStr("DB_URL", "vit.db")
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}
