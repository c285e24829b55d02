// Common helper functions for HTTP handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/turtacn/WheatGuard-Intelligence/pkg/errors"
)

// anonymousUser scopes sessions of clients that send no user identity.  The
// API carries no authentication, so the identity is advisory.
const anonymousUser = "anonymous"

// userID resolves the caller identity from the X-User-ID header.
func userID(c *gin.Context) string {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id
	}
	return anonymousUser
}

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError maps application errors onto HTTP status codes via the error
// code table.  Server-side causes are masked.
func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatusForCode(code)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = errors.DefaultMessageForCode(code)
	}
	c.JSON(status, ErrorResponse{
		Code:    code.String(),
		Message: message,
	})
}

// respondBindError reports a malformed request body.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    errors.ErrCodeBadRequest.String(),
		Message: "invalid request body: " + err.Error(),
	})
}

//Personal.AI order the ending
