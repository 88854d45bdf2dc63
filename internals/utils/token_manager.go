package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MadhavMendiratta/vit/internals/config"
	"github.com/MadhavMendiratta/vit/internals/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the HTTP-only cookie carrying the session token.
const SessionCookieName = "auth-token"

// SessionClaims is the immutable snapshot signed into every session token.
// TokenVersion records the server epoch at issuance; validation rejects the
// token once the epoch moves on, independent of the absolute expiry.
type SessionClaims struct {
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	Role         string `json:"role"`
	TokenVersion int    `json:"tokenVersion"`
	jwt.RegisteredClaims
}

// TokenManager mints and validates session tokens and owns the session
// cookie, including the forced-logout scrubbing procedure.
type TokenManager struct {
	// CookieConfig holds the shared security baseline for all cookies issued by the server
	CookieConfig *config.CookieConfig
	// JWTSecret is the process-wide signing key; it is not rotated
	JWTSecret string
	// Epochs supplies the version stamped into new tokens
	Epochs *EpochStore
	// ValidityHours is the absolute token lifetime, independent of the epoch
	ValidityHours int
}

func NewTokenManager(cookieConfig *config.CookieConfig, jwtSecret string, epochs *EpochStore, validityHours int) *TokenManager {
	return &TokenManager{
		CookieConfig:  cookieConfig,
		JWTSecret:     jwtSecret,
		Epochs:        epochs,
		ValidityHours: validityHours,
	}
}

// Issue signs a token for the user, stamped with the current epoch.
func (tm *TokenManager) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Email:        user.Email,
		Name:         user.Name,
		Role:         user.Role,
		TokenVersion: tm.Epochs.Current(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(tm.ValidityHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(tm.JWTSecret))
}

// ValidateStructural checks the signature and absolute expiry only. The epoch
// comparison is deliberately left out: the edge guard calls this because a
// live epoch read on every request is not worth the cost there, and the epoch
// guard is the authority for freshness.
func (tm *TokenManager) ValidateStructural(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(tm.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrBadSignature
	}
	if !token.Valid {
		return nil, ErrBadSignature
	}
	return claims, nil
}

// Validate performs the full check: signature, expiry, and an exact epoch
// match against the store.
func (tm *TokenManager) Validate(tokenString string) (*SessionClaims, error) {
	claims, err := tm.ValidateStructural(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenVersion != tm.Epochs.Current() {
		return nil, ErrEpochStale
	}
	return claims, nil
}

// SetSessionCookie attaches the token as an HTTP-only cookie
func (tm *TokenManager) SetSessionCookie(c *gin.Context, token string) {
	maxAge := int((time.Duration(tm.ValidityHours) * time.Hour).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", tm.CookieConfig.Domain, tm.CookieConfig.IsSecure, tm.CookieConfig.HttpOnly)
}

// knownSessionCookies are cleared by name even when the request carries none
// of them, covering cookies the browser withheld from this path scope.
var knownSessionCookies = []string{
	SessionCookieName,
	"next-auth.session-token",
	"next-auth.csrf-token",
	"next-auth.callback-url",
	"__Secure-next-auth.session-token",
	"__Host-next-auth.csrf-token",
}

var sessionCookieSubstrings = []string{"session", "token", "next-auth"}

var clearCookiePaths = []string{"/", "/api", "/auth"}

// ForceClearSessionCookies scrubs every client-held session artifact through
// several redundant mechanisms: the structured cookie API, raw Set-Cookie
// expiry headers across all path scopes, the fixed known-name list, and a
// Clear-Site-Data directive. Different browser contexts honor different
// mechanisms, so all of them are kept. Idempotent.
func (tm *TokenManager) ForceClearSessionCookies(c *gin.Context) {
	names := make(map[string]bool)
	for _, cookie := range c.Request.Cookies() {
		lower := strings.ToLower(cookie.Name)
		for _, sub := range sessionCookieSubstrings {
			if strings.Contains(lower, sub) {
				names[cookie.Name] = true
				break
			}
		}
	}
	for _, name := range knownSessionCookies {
		names[name] = true
	}

	c.SetSameSite(http.SameSiteLaxMode)
	for name := range names {
		c.SetCookie(name, "", -1, "/", tm.CookieConfig.Domain, tm.CookieConfig.IsSecure, tm.CookieConfig.HttpOnly)
		for _, path := range clearCookiePaths {
			c.Writer.Header().Add("Set-Cookie",
				fmt.Sprintf("%s=; Path=%s; Expires=Thu, 01 Jan 1970 00:00:00 GMT; HttpOnly; SameSite=Lax; Max-Age=0", name, path))
		}
	}

	c.Header("Clear-Site-Data", `"cookies"`)
}
