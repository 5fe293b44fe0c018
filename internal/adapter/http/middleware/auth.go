// Package middleware holds the gin middleware shared by the API routes.
package middleware

import (
	"construction_estimator/internal/infrastructure/auth"
	"construction_estimator/pkg"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Admin access required", http.StatusForbidden)
)

// TokenVerifier resolves a raw bearer token to the caller's identity.
type TokenVerifier interface {
	Verify(raw string) (auth.Identity, error)
}

// RequireAuth rejects requests without a valid "Authorization: Bearer" token
// and stores the resolved identity on the context.
func RequireAuth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		identity, err := tokens.Verify(raw)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "[auth][middleware] token rejected", "path", c.FullPath(), "err", err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := Identity(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if !identity.IsAdmin() {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// Identity returns the caller stored by RequireAuth.
func Identity(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}

// SetIdentity stores identity on the context. Handler tests use it in place
// of RequireAuth.
func SetIdentity(c *gin.Context, identity auth.Identity) {
	c.Set(identityKey, identity)
}

// UserID returns the numeric id of the authenticated caller.
func UserID(c *gin.Context) (int64, bool) {
	identity, ok := Identity(c)
	if !ok || identity.UserID <= 0 {
		return 0, false
	}
	return identity.UserID, true
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
