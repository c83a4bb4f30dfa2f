package middlewares

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"HospitalManagement/utils"

	"github.com/gin-gonic/gin"
)

type contextKey string

const claimsKey contextKey = "tokenClaims"

// TokenAuthMiddleware validates the bearer token and adds its claims to the request context.
func TokenAuthMiddleware(verifier utils.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			HttpError(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		claims, err := verifier.VerifyToken(token)
		if err != nil {
			Logger(c).WithError(err).Debug("bearer token rejected")
			HttpError(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(c.Request.Context(), claimsKey, claims)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleAuthMiddleware restricts access to callers holding one of the allowed roles.
// It must run after TokenAuthMiddleware.
func RoleAuthMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := ExtractClaimsFromContext(c.Request.Context())
		if err != nil {
			HttpError(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		if !slices.Contains(allowedRoles, claims.Role) {
			HttpError(c, http.StatusForbidden, "forbidden")
			return
		}

		c.Next()
	}
}

// ExtractClaimsFromContext retrieves the token claims stored by TokenAuthMiddleware.
func ExtractClaimsFromContext(ctx context.Context) (*utils.TokenClaims, error) {
	claims, ok := ctx.Value(claimsKey).(*utils.TokenClaims)
	if !ok || claims == nil {
		return nil, errors.New("token claims not found in context")
	}
	return claims, nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
