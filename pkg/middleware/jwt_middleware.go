package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"emptyshell/pkg/utils"
)

const (
	UserTypeOpticien = "opticien"
	UserTypeClient   = "client"
)

const principalKey = "auth_principal"

// Principal is the verified identity attached to the request after the
// JWT middleware has run. Ownership decisions happen downstream, this
// only says who is calling.
type Principal struct {
	ID       uuid.UUID
	Email    string
	UserType string
}

func JWTAuthMiddleware(tokens *utils.TokenManager) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		principalID, err := uuid.Parse(claims.Subject)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(principalKey, Principal{
			ID:       principalID,
			Email:    claims.Email,
			UserType: claims.UserType,
		})
		c.Next()
	}
}

// RequireUserType guards a route group against tokens issued for the
// other side of the application (opticien dashboard vs client portal).
func RequireUserType(userType string) gin.HandlerFunc {

	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.UserType != userType {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

func PrincipalFromContext(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	principal, ok := v.(Principal)
	return principal, ok
}
