package server

import (
	"github.com/gin-gonic/gin"
	familydomain "github.com/smallbiznis/familia/internal/family/domain"
)

type CreateFamilyRequest struct {
	Name string `json:"name"`
}

// CreateFamily handles POST /v1/families. AuthRequired runs first, so the
// gin context always carries the resolved user id.
func (s *Server) CreateFamily(c *gin.Context) {
	var req CreateFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEnvelope(c, invalidRequestError("invalid request body"))
		return
	}

	userID := userIDFromContext(c)
	if userID == "" {
		abortWithEnvelope(c, unauthorizedError())
		return
	}

	body := s.familysvc.Create(c.Request.Context(), userID, familydomain.CreateFamilyRequest{
		Name: req.Name,
	})

	c.JSON(body.StatusCode, body)
}
