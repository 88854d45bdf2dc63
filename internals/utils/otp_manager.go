package utils

import (
	"errors"
	"log"
	"time"

	"github.com/MadhavMendiratta/vit/internals/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OtpManager owns the verification-code lifecycle: at most one live challenge
// per user, ten-minute expiry, single use.
type OtpManager struct {
	DB    *gorm.DB
	Email *EmailManager
}

func NewOtpManager(db *gorm.DB, email *EmailManager) *OtpManager {
	return &OtpManager{
		DB:    db,
		Email: email,
	}
}

// RequestCode generates a fresh 6-digit code and upserts it as the user's one
// live challenge; a pending challenge is simply replaced. Delivery is
// best-effort in a background goroutine: a failed send never rolls the
// challenge back, the code stays verifiable.
func (m *OtpManager) RequestCode(user *models.User) (string, error) {
	code := m.Email.GenerateVerificationCode()

	challenge := models.OtpChallenge{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(time.Duration(m.Email.Config.CodeExp) * time.Minute),
	}

	if err := m.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "expires_at", "updated_at"}),
	}).Create(&challenge).Error; err != nil {
		return "", err
	}

	if m.Email.Configured() {
		go func() {
			if err := m.Email.SendLoginOTP(user.Email, code); err != nil {
				log.Printf("OTP delivery to %s failed: %v", user.Email, err)
			}
		}()
	} else {
		// Dev mode: no SMTP settings, the code is retrievable from the log
		log.Printf("OTP for %s: %s (email sending skipped, no SMTP config)", user.Email, code)
	}

	return code, nil
}

// VerifyCode checks the submitted code against the user's live challenge.
// An expired challenge is deleted on detection; a mismatched code leaves the
// challenge intact so the user can retry until it expires; a matched code is
// deleted immediately (single use).
func (m *OtpManager) VerifyCode(user *models.User, submitted string) error {
	var challenge models.OtpChallenge
	if err := m.DB.Where("user_id = ?", user.ID).First(&challenge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOtpNotRequested
		}
		return err
	}

	if time.Now().After(challenge.ExpiresAt) {
		m.DB.Where("user_id = ?", user.ID).Delete(&models.OtpChallenge{})
		return ErrOtpExpired
	}

	if challenge.Code != submitted {
		return ErrOtpMismatch
	}

	return m.DB.Where("user_id = ?", user.ID).Delete(&models.OtpChallenge{}).Error
}
