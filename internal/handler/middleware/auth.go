package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"styledecor/internal/domain/user"
	"styledecor/internal/handler/httperr"
	"styledecor/internal/pkg/cookie"
	"styledecor/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// PrincipalResolver turns a bearer token into the acting identity.
type PrincipalResolver interface {
	Principal(token string) (user.Principal, error)
}

type AuthMiddleware struct {
	resolver PrincipalResolver
}

const ctxPrincipalKey = "principal"

var errUnauthorized = errs.New("unauthorized")

func NewAuthMiddleware(resolver PrincipalResolver) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return m.authenticate(false)
}

// RequireAuthWS also accepts ?token= because browsers cannot set headers on
// a websocket handshake.
func (m *AuthMiddleware) RequireAuthWS() gin.HandlerFunc {
	return m.authenticate(true)
}

func (m *AuthMiddleware) authenticate(allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" && allowQuery {
			token = c.Query("token")
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Access token required", nil)
			return
		}

		p, err := m.resolver.Principal(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxPrincipalKey, p)
		c.Set("jwt_claims", map[string]any{
			"email": p.Email,
			"role":  p.Role.String(),
		})
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
			return
		}
		if !slices.Contains(roles, p.Role) {
			httperr.AbortWithError(c, http.StatusForbidden, errUnauthorized, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetPrincipal(c *gin.Context) (user.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return user.Principal{}, false
	}
	p, ok := v.(user.Principal)
	return p, ok
}

// SetPrincipal is used by tests that bypass token validation.
func SetPrincipal(c *gin.Context, p user.Principal) {
	c.Set(ctxPrincipalKey, p)
}
