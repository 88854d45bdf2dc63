package initializers

import (
	"log"
	"time"

	"github.com/MadhavMendiratta/vit/internals/config"
	"github.com/MadhavMendiratta/vit/internals/models"

	"gorm.io/gorm"
)

// StartChallengeCleanup runs a background janitor that purges expired OTP
// challenges. Expired challenges already fail verification on their own; the
// janitor just keeps the table from growing indefinitely.
func StartChallengeCleanup(db *gorm.DB) {
	cleanupInterval := config.GetEnvAsInt("CLEANUP_INTERVAL_MINUTES", 30, true)
	ticker := time.NewTicker(time.Duration(cleanupInterval) * time.Minute)

	go func() {
		for range ticker.C {
			result := db.Where("expires_at < ?", time.Now()).Delete(&models.OtpChallenge{})
			if result.Error != nil {
				log.Printf("Janitor: challenge cleanup failed: %v", result.Error)
				continue
			}
			if result.RowsAffected > 0 {
				log.Printf("Janitor: cleaned %d expired OTP challenges", result.RowsAffected)
			}
		}
	}()
}
