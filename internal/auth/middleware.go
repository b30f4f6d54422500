package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/zealand/roombooking/internal/pkg/apperror"
	"github.com/zealand/roombooking/internal/pkg/response"
)

var (
	errMissingHeader = apperror.New(apperror.KindUnauthorized, "missing Authorization header")
	errHeaderFormat  = apperror.New(apperror.KindUnauthorized, "invalid Authorization header format")
	errInvalidToken  = apperror.New(apperror.KindUnauthorized, "invalid or expired token")
)

// AuthRequired is a Gin middleware that validates JWT from Authorization: Bearer <token>
func AuthRequired(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, errMissingHeader)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Error(c, errHeaderFormat)
			c.Abort()
			return
		}

		tokenStr := parts[1]

		claims, err := jwtManager.ParseAndValidate(tokenStr)
		if err != nil {
			log.Debug().Err(err).Str("request_id", c.GetString(response.RequestIDKey)).Msg("rejected token")
			response.Error(c, errInvalidToken)
			c.Abort()
			return
		}

		// Store user info into Gin context for later handlers.
		SetUser(c, claims.UserID, claims.Email)

		c.Next()
	}
}
