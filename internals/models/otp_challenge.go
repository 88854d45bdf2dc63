package models

import "time"

// OtpChallenge is the single live verification code for a user. The primary
// key on UserID means a new request overwrites the previous challenge rather
// than accumulating rows.
type OtpChallenge struct {
	UserID    string    `gorm:"column:user_id;primaryKey"`
	Code      string    `gorm:"column:code"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
