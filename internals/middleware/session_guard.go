package middleware

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/MadhavMendiratta/vit/internals/utils"

	"github.com/gin-gonic/gin"
)

// ContextClaims is the gin context key under which the edge guard stores the
// decoded session claims for downstream handlers.
const ContextClaims = "claims"

var staticAssetPattern = regexp.MustCompile(`\.(js|css|png|jpg|jpeg|svg|ico|json|woff|woff2|ttf|map)$`)

var publicPaths = map[string]bool{
	"/":                      true,
	"/auth/login":            true,
	"/auth/register":         true,
	"/auth/otp-verification": true,
	"/api/token-version":     true,
}

var protectedPrefixes = []string{
	"/navigation",
	"/buildings",
	"/search",
	"/profile",
	"/explore",
	"/api/protected",
}

// SessionGuard enforces route protection in two cooperating stages.
//
// EdgeGuard runs on every request and is coarse on purpose: it checks only
// that a protected path carries a structurally valid token (signature and
// expiry, no epoch read). EpochGuard runs behind it on protected API routes
// and is the source of truth for epoch freshness. Collapsing the two stages
// would put a store read on every request the edge handles.
type SessionGuard struct {
	Tokens *utils.TokenManager
	Epochs *utils.EpochStore
}

func NewSessionGuard(tokens *utils.TokenManager, epochs *utils.EpochStore) *SessionGuard {
	return &SessionGuard{
		Tokens: tokens,
		Epochs: epochs,
	}
}

func isPublicPath(path string) bool {
	return publicPaths[path] || strings.HasPrefix(path, "/api/auth/")
}

func isProtectedPath(path string) bool {
	if path == "/quick-search" {
		return true
	}
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// EdgeGuard classifies the path and, for protected ones, requires a token
// that decodes cleanly. Anything unclassified passes through.
func (g *SessionGuard) EdgeGuard(c *gin.Context) {
	path := c.Request.URL.Path

	if staticAssetPattern.MatchString(path) {
		c.Next()
		return
	}

	if isPublicPath(path) || !isProtectedPath(path) {
		c.Next()
		return
	}

	tokenString, err := extractToken(c)
	if err != nil {
		g.redirectToLogin(c)
		return
	}

	claims, err := g.Tokens.ValidateStructural(tokenString)
	if err != nil {
		g.redirectToLogin(c)
		return
	}

	c.Set(ContextClaims, claims)
	c.Next()
}

// EpochGuard re-validates the session's embedded epoch against the live store
// value. A drift of 0 or 1 is tolerated to survive the benign race where the
// epoch was bumped between issuance and this check; anything larger means the
// session predates an invalidation and gets scrubbed.
func (g *SessionGuard) EpochGuard(c *gin.Context) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		g.redirectToLogin(c)
		return
	}
	claims := v.(*utils.SessionClaims)

	diff := claims.TokenVersion - g.Epochs.Current()
	if diff < 0 {
		diff = -diff
	}
	if diff > 1 {
		g.Tokens.ForceClearSessionCookies(c)
		c.Redirect(http.StatusFound, "/auth/login?expired=1")
		c.Abort()
		return
	}

	c.Next()
}

// RequireRole gates a route on the role claim set at issuance.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(ContextClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if v.(*utils.SessionClaims).Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// extractToken prefers the session cookie and falls back to a Bearer header
// for non-browser clients.
func extractToken(c *gin.Context) (string, error) {
	if tokenString, err := c.Cookie(utils.SessionCookieName); err == nil && tokenString != "" {
		return tokenString, nil
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
		return parts[1], nil
	}
	return "", http.ErrNoCookie
}

func (g *SessionGuard) redirectToLogin(c *gin.Context) {
	loginURL := "/auth/login?callbackUrl=" + url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, loginURL)
	c.Abort()
}
