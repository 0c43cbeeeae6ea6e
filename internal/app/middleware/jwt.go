package middleware

import (
	"strings"

	"jobboard-http-service/internal/domain/services"
	"jobboard-http-service/internal/error/response"
	"jobboard-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// context keys set by the authentication middleware
const (
	ContextSubjectID = "subjectID"
	ContextRole      = "role"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware prepares the token verifier used by the authenticators
func InitAuthMiddleware(cfg *config.Config) {
	jwtService = services.NewJWTService(cfg)
}

// extractToken accepts both "Bearer <token>" and a bare token
func extractToken(authHeader string) string {
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return strings.TrimSpace(authHeader)
}

// AuthenticateAdmin lets only admin tokens through
func AuthenticateAdmin() gin.HandlerFunc {
	return authenticate(services.RoleAdmin)
}

// AuthenticateUser lets only job seeker tokens through
func AuthenticateUser() gin.HandlerFunc {
	return authenticate(services.RoleUser)
}

func authenticate(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		claims, err := jwtService.ExtractClaims(extractToken(authHeader))
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		if claims.Role != role {
			response.Forbidden(c, "Insufficient permissions: requires "+role+" role")
			c.Abort()
			return
		}

		c.Set(ContextSubjectID, claims.SubjectID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// GetSubjectID returns the verified token subject
func GetSubjectID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextSubjectID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}
