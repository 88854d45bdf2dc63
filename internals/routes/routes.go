package routes

import (
	"net/http"

	"github.com/MadhavMendiratta/vit/internals/config"
	"github.com/MadhavMendiratta/vit/internals/controllers"
	"github.com/MadhavMendiratta/vit/internals/middleware"
	"github.com/MadhavMendiratta/vit/internals/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	appName := config.GetEnvAsStr("APP_NAME", "VIT-Navigate")
	jwtSecret := config.GetEnv("JWT_SECRET_KEY")

	cookieConfig := &config.CookieConfig{
		Domain:   config.GetEnvAsStr("DOMAIN", ""),
		IsSecure: config.GetEnvAsStr("SECURE_COOKIE", "true") == "true",
		HttpOnly: true, // Always HttpOnly set to true for security
	}

	emailManager := utils.NewEmailManager(
		&utils.SMTPConfig{
			Host:     config.GetEnvAsStr("SMTP_HOST", ""),
			Port:     config.GetEnvAsInt("SMTP_PORT", 587, true),
			User:     config.GetEnvAsStr("SMTP_USER", ""),
			Password: config.GetEnvAsStr("SMTP_PASSWORD", ""),
			AppName:  appName,
			CodeExp:  config.GetEnvAsInt("OTP_EXPIRATION_MINUTES", 10, true),
		},
	)

	epochStore := utils.NewEpochStore(db)
	tokenManager := utils.NewTokenManager(
		cookieConfig,
		jwtSecret,
		epochStore,
		config.GetEnvAsInt("TOKEN_VALIDITY_HOURS", 4, true),
	)
	otpManager := utils.NewOtpManager(db, emailManager)
	verifier := utils.NewCredentialVerifier(db)

	sessionGuard := middleware.NewSessionGuard(tokenManager, epochStore)
	authCtrl := controllers.NewAuthController(db, verifier, otpManager, tokenManager, epochStore)
	dirCtrl := controllers.NewDirectoryController()

	// The edge guard sees every request: PUBLIC and UNCLASSIFIED paths pass,
	// PROTECTED ones need a structurally valid token.
	r.Use(sessionGuard.EdgeGuard)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "active",
			"message": appName + " API is running",
		})
	})

	r.GET("/api/token-version", authCtrl.TokenVersion)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/send-otp", authCtrl.SendOTP)
		auth.POST("/verify-otp", authCtrl.VerifyOTP)
		auth.GET("/force-logout", authCtrl.ForceLogout)
	}

	// The epoch guard is the authoritative freshness check behind the edge guard
	protected := r.Group("/api/protected")
	protected.Use(sessionGuard.EpochGuard)
	{
		protected.GET("/profile", dirCtrl.Profile)
		protected.GET("/buildings", dirCtrl.ListBuildings)
		protected.GET("/buildings/:id", dirCtrl.GetBuilding)
		protected.GET("/search", dirCtrl.SearchRooms)
		protected.GET("/quick-search", dirCtrl.QuickSearch)
		protected.GET("/navigation/directions", dirCtrl.Directions)

		admin := protected.Group("/admin")
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.POST("/invalidate-sessions", authCtrl.InvalidateSessions)
		}
	}

	return r
}
