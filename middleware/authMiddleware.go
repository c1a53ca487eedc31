package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"medstore/utils"
)

// Keys under which AuthMiddleware stores the caller on the gin context.
const (
	UserIDKey = "userID"
	RoleKey   = "role"
	ClaimsKey = "claims"
)

func unauthorized(c *gin.Context, reason string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized", "error": reason})
}

// bearerToken reads the token cookie first and falls back to the
// Authorization header.
func bearerToken(c *gin.Context) (string, string) {
	if token, err := c.Cookie("token"); err == nil && token != "" {
		return token, ""
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", "Authorization token not provided"
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", "Invalid Authorization header format"
	}
	return parts[1], ""
}

// AuthMiddleware admits requests carrying a valid, unrevoked token. With roles
// given, the token's role must be one of them.
func AuthMiddleware(tokens *utils.TokenIssuer, denylist utils.TokenDenylist, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, reason := bearerToken(c)
		if token == "" {
			unauthorized(c, reason)
			return
		}

		claims, err := tokens.ValidateToken(token)
		if err != nil {
			unauthorized(c, "Invalid authorization token")
			return
		}
		if len(roles) > 0 && !slices.Contains(roles, claims.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden", "error": "role " + claims.Role + " may not access this resource"})
			return
		}

		revoked, err := denylist.IsRevoked(c.Request.Context(), claims.TokenID())
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "token denylist lookup failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"message": "token check unavailable", "error": err.Error()})
			return
		}
		if revoked {
			unauthorized(c, "Token has been revoked")
			return
		}

		c.Set(UserIDKey, claims.ID)
		c.Set(RoleKey, claims.Role)
		c.Set(ClaimsKey, claims)

		c.Next()
	}
}
