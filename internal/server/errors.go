package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/familia/pkg/response"
)

// Every handler speaks the same envelope, including rejections that never
// reach a use case. Validation and auth failures are built here so the
// transport never exposes raw error types.

func abortWithEnvelope(c *gin.Context, body response.Body) {
	c.AbortWithStatusJSON(body.StatusCode, body)
}

func invalidRequestError(message string) response.Body {
	return response.BuildError(http.StatusBadRequest, "invalid_request", message, nil)
}

func unauthorizedError() response.Body {
	return response.BuildError(http.StatusUnauthorized, "unauthorized", "unauthorized", nil)
}
