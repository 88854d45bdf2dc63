package utils

import (
	"testing"

	"github.com/MadhavMendiratta/vit/internals/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive for the test
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.OtpChallenge{}, &models.TokenEpoch{}))
	return db
}

func newDevEmailManager() *EmailManager {
	// No SMTP settings: codes are logged, never sent
	return NewEmailManager(&SMTPConfig{AppName: "VIT-Navigate", CodeExp: 10})
}
