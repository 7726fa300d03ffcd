package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const contextUserIDKey = "user_id"

// AuthRequired resolves the bearer token to a local user. The token is
// verified by the identity provider; the identity must also exist locally
// or the request is rejected.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortWithEnvelope(c, unauthorizedError())
			return
		}

		ident, err := s.identity.VerifyToken(c.Request.Context(), token)
		if err != nil {
			abortWithEnvelope(c, unauthorizedError())
			return
		}

		user, err := s.users.FindByID(c.Request.Context(), ident.UserID)
		if err != nil {
			s.log.Error("resolve authenticated user", zap.Error(err))
			abortWithEnvelope(c, unauthorizedError())
			return
		}
		if user == nil {
			abortWithEnvelope(c, unauthorizedError())
			return
		}

		c.Set(contextUserIDKey, user.ID)
		c.Next()
	}
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func userIDFromContext(c *gin.Context) string {
	return c.GetString(contextUserIDKey)
}
