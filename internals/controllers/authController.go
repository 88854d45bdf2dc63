package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MadhavMendiratta/vit/internals/models"
	"github.com/MadhavMendiratta/vit/internals/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB       *gorm.DB
	Verifier *utils.CredentialVerifier
	Otp      *utils.OtpManager
	Tokens   *utils.TokenManager
	Epochs   *utils.EpochStore
}

func NewAuthController(db *gorm.DB, verifier *utils.CredentialVerifier, otp *utils.OtpManager, tokens *utils.TokenManager, epochs *utils.EpochStore) *AuthController {
	return &AuthController{
		DB:       db,
		Verifier: verifier,
		Otp:      otp,
		Tokens:   tokens,
		Epochs:   epochs,
	}
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
}

func (a *AuthController) Register(c *gin.Context) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		UseOtp   bool   `json:"useOtp"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read body"})
		return
	}

	if body.Name == "" || body.Email == "" || body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if !utils.ValidEmail(body.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a valid email address"})
		return
	}

	if len(body.Password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters long"})
		return
	}

	var existing models.User
	if err := a.DB.Where("email = ?", body.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:         body.Name,
		Email:        body.Email,
		PasswordHash: string(hash),
		UseOtp:       body.UseOtp,
		Role:         "user",
	}

	if err := a.DB.Create(&user).Error; err != nil {
		// The unique index is the last word on duplicates under races
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

func (a *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read body"})
		return
	}

	user, requiresOtp, err := a.Verifier.Verify(body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid email address"})
		case errors.Is(err, utils.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, utils.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	if requiresOtp {
		// No token yet: the account authenticates through the emailed code
		c.JSON(http.StatusOK, gin.H{
			"requiresOtp": true,
			"email":       user.Email,
			"message":     "Please verify with the code sent to your email",
		})
		return
	}

	token, err := a.Tokens.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session token"})
		return
	}
	a.Tokens.SetSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully",
		"token":   token,
		"user":    userPayload(user),
	})
}

func (a *AuthController) SendOTP(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}

	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	var user models.User
	if err := a.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if _, err := a.Otp.RequestCode(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate OTP"})
		return
	}

	resp := gin.H{"message": "OTP generated successfully"}
	if !a.Otp.Email.Configured() {
		resp["devNote"] = "Email not sent (no SMTP config). Check server log for the code."
	}
	c.JSON(http.StatusOK, resp)
}

func (a *AuthController) VerifyOTP(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
		Otp   string `json:"otp"`
	}

	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" || body.Otp == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and OTP are required"})
		return
	}

	var user models.User
	if err := a.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := a.Otp.VerifyCode(&user, body.Otp); err != nil {
		switch {
		case errors.Is(err, utils.ErrOtpNotRequested):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No OTP found. Please request a new verification code"})
		case errors.Is(err, utils.ErrOtpExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "OTP has expired. Please request a new verification code"})
		case errors.Is(err, utils.ErrOtpMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP. Please try again"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify OTP"})
		}
		return
	}

	token, err := a.Tokens.Issue(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session token"})
		return
	}
	a.Tokens.SetSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"message": "OTP verified successfully",
		"token":   token,
		"user":    userPayload(&user),
	})
}

// TokenVersion exposes the current epoch for the client-side freshness check.
func (a *AuthController) TokenVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": a.Epochs.Current()})
}

const defaultLogoutTarget = "/auth/login?expired=1"

// ForceLogout scrubs every client-held session artifact and redirects. The
// loop guard keeps a callbackUrl pointing back here from bouncing forever.
func (a *AuthController) ForceLogout(c *gin.Context) {
	callbackURL := c.Query("callbackUrl")
	if callbackURL == "" || strings.Contains(callbackURL, "force-logout") {
		callbackURL = defaultLogoutTarget
	}

	a.Tokens.ForceClearSessionCookies(c)
	c.Redirect(http.StatusFound, callbackURL)
}

// InvalidateSessions is the admin "log everyone out" primitive: one epoch
// bump fails every outstanding token on its next validation.
func (a *AuthController) InvalidateSessions(c *gin.Context) {
	version, err := a.Epochs.InvalidateAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to invalidate sessions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "All sessions invalidated",
		"version": version,
	})
}
