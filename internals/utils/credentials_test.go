package utils

import (
	"testing"

	"github.com/MadhavMendiratta/vit/internals/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func createUser(t *testing.T, db *gorm.DB, email string, password string, useOtp bool) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		UseOtp:       useOtp,
		Role:         "user",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestVerify_PasswordAccount(t *testing.T) {
	db := newTestDB(t)
	v := NewCredentialVerifier(db)
	createUser(t, db, "alice@example.com", "password123", false)

	user, requiresOtp, err := v.Verify("alice@example.com", "password123")
	require.NoError(t, err)
	assert.False(t, requiresOtp)
	assert.Equal(t, "alice@example.com", user.Email)

	_, _, err = v.Verify("alice@example.com", "password124")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = v.Verify("alice@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerify_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	v := NewCredentialVerifier(db)

	_, _, err := v.Verify("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVerify_MalformedEmail(t *testing.T) {
	db := newTestDB(t)
	v := NewCredentialVerifier(db)

	for _, email := range []string{"", "not-an-email", "a@b", "spaces in@example.com"} {
		_, _, err := v.Verify(email, "password123")
		assert.ErrorIs(t, err, ErrValidation, "email %q", email)
	}
}

func TestVerify_OtpAccountSkipsPassword(t *testing.T) {
	db := newTestDB(t)
	v := NewCredentialVerifier(db)

	// The stored hash is garbage on purpose: if the password were compared
	// against it, every attempt would fail. OTP accounts must short-circuit
	// before the hash is ever touched.
	user := models.User{
		Name:         "Bob",
		Email:        "bob@example.com",
		PasswordHash: "not-a-bcrypt-hash",
		UseOtp:       true,
		Role:         "user",
	}
	require.NoError(t, db.Create(&user).Error)

	for _, password := range []string{"password123", "wrong", ""} {
		got, requiresOtp, err := v.Verify("bob@example.com", password)
		require.NoError(t, err, "password %q", password)
		assert.True(t, requiresOtp)
		assert.Equal(t, user.ID, got.ID)
	}
}
