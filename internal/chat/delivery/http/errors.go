package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"agent-relay/internal/chat"
	"agent-relay/pkg/response"
)

// mapError translates use-case errors into HTTP responses. Validation
// errors become 400; every orchestration failure collapses into the
// same generic 500 so remote-platform details never leak to callers.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyUserID), errors.Is(err, chat.ErrEmptyText):
		response.BadRequest(c, err)
	default:
		response.InternalError(c)
	}
}
