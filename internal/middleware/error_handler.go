package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/licitacal/internal/domain/dto"
)

// ErrorHandler renders errors attached with c.Error as a 500 ErrorResponse
// when the handler chain did not write a response itself.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	last := c.Errors.Last()
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", last.Err))
}

// AbortWithError stops the chain and writes a JSON ErrorResponse with status.
// err is optional and becomes the "details" field. It is also attached to
// c.Errors so RequestLogger records it.
func AbortWithError(c *gin.Context, status int, msg string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(msg, err))
}
