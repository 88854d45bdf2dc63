package utils

import (
	"errors"
	"regexp"

	"github.com/MadhavMendiratta/vit/internals/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CredentialVerifier checks an email/password pair against the user store.
// It is read-only: no lockouts, no attempt counters.
type CredentialVerifier struct {
	DB *gorm.DB
}

func NewCredentialVerifier(db *gorm.DB) *CredentialVerifier {
	return &CredentialVerifier{DB: db}
}

// Verify returns the matched user and whether the login must continue through
// the OTP flow. For OTP-enabled accounts the password is not inspected at
// all: the emailed code supersedes it rather than acting as a second factor.
func (v *CredentialVerifier) Verify(email string, password string) (*models.User, bool, error) {
	if email == "" || !emailPattern.MatchString(email) {
		return nil, false, ErrValidation
	}

	var user models.User
	if err := v.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}

	if user.UseOtp {
		return &user, true, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, false, ErrInvalidCredentials
	}

	return &user, false, nil
}

// ValidEmail reports whether the address passes the basic shape check used
// at registration.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
