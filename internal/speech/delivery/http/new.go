package http

import (
	"github.com/gin-gonic/gin"

	"agent-relay/internal/speech"
	pkgLog "agent-relay/pkg/log"
)

// Handler is the public interface for the speech HTTP delivery layer.
type Handler interface {
	Speak(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc speech.UseCase
}

// New creates a new HTTP handler for the speech domain.
func New(l pkgLog.Logger, uc speech.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
