package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gmartell/ratioscope/internal/domain/dto"
	"github.com/gmartell/ratioscope/internal/logger"
)

// ErrorHandler turns errors accumulated on the gin context (via c.Error)
// into a single 500 JSON response, unless a handler already wrote one.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal error", err))
}

// AbortWithError stops the request with the given status and a standardized
// error body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
