package http

import (
	"github.com/gin-gonic/gin"

	"agent-relay/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/speech", mw.RateLimit(), h.Speak)
}
