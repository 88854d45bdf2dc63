package utils

import (
	"testing"
	"time"

	"github.com/MadhavMendiratta/vit/internals/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestCode_Format(t *testing.T) {
	db := newTestDB(t)
	m := NewOtpManager(db, newDevEmailManager())
	user := createUser(t, db, "alice@example.com", "password123", true)

	code, err := m.RequestCode(user)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, ch := range code {
		assert.True(t, ch >= '0' && ch <= '9')
	}
}

func TestVerifyCode_SingleUse(t *testing.T) {
	db := newTestDB(t)
	m := NewOtpManager(db, newDevEmailManager())
	user := createUser(t, db, "alice@example.com", "password123", true)

	code, err := m.RequestCode(user)
	require.NoError(t, err)

	require.NoError(t, m.VerifyCode(user, code))

	// The challenge is gone after one successful match
	assert.ErrorIs(t, m.VerifyCode(user, code), ErrOtpNotRequested)
}

func TestVerifyCode_NotRequested(t *testing.T) {
	db := newTestDB(t)
	m := NewOtpManager(db, newDevEmailManager())
	user := createUser(t, db, "alice@example.com", "password123", true)

	assert.ErrorIs(t, m.VerifyCode(user, "123456"), ErrOtpNotRequested)
}

func TestVerifyCode_MismatchKeepsChallenge(t *testing.T) {
	db := newTestDB(t)
	m := NewOtpManager(db, newDevEmailManager())
	user := createUser(t, db, "alice@example.com", "password123", true)

	code, err := m.RequestCode(user)
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	// A wrong guess leaves the challenge intact for a retry
	assert.ErrorIs(t, m.VerifyCode(user, wrong), ErrOtpMismatch)
	assert.NoError(t, m.VerifyCode(user, code))
}

func TestVerifyCode_ExpiredDeletesChallenge(t *testing.T) {
	db := newTestDB(t)
	m := NewOtpManager(db, newDevEmailManager())
	user := createUser(t, db, "alice@example.com", "password123", true)

	code, err := m.RequestCode(user)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.OtpChallenge{}).
		Where("user_id = ?", user.ID).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	assert.ErrorIs(t, m.VerifyCode(user, code), ErrOtpExpired)

	// Expiry detection removes the record, so the next attempt sees nothing
	assert.ErrorIs(t, m.VerifyCode(user, code), ErrOtpNotRequested)
}

func TestRequestCode_ReplacesPreviousChallenge(t *testing.T) {
	db := newTestDB(t)
	m := NewOtpManager(db, newDevEmailManager())
	user := createUser(t, db, "alice@example.com", "password123", true)

	first, err := m.RequestCode(user)
	require.NoError(t, err)
	second, err := m.RequestCode(user)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.OtpChallenge{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	if first != second {
		assert.ErrorIs(t, m.VerifyCode(user, first), ErrOtpMismatch)
	}
	assert.NoError(t, m.VerifyCode(user, second))
}
