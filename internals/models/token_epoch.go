package models

import "time"

// TokenEpoch is a single-row table holding the server-wide token version.
// Tokens embed the version active when they were signed; bumping it rejects
// every previously issued token without a per-token revocation list.
type TokenEpoch struct {
	ID      uint `gorm:"column:id;primaryKey"`
	Version int  `gorm:"column:version"`

	UpdatedAt time.Time
}
