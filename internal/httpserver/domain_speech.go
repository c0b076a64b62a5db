package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"agent-relay/internal/middleware"
	speechHTTP "agent-relay/internal/speech/delivery/http"
)

// setupSpeechDomain registers the text-to-speech endpoint. The domain is
// optional: without an ElevenLabs key the route is simply not mounted.
func (srv *HTTPServer) setupSpeechDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	if srv.speechUC == nil {
		srv.l.Infof(ctx, "Speech use case not configured, skipping speech route")
		return nil
	}

	h := speechHTTP.New(srv.l, srv.speechUC)
	speechHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Speech domain registered at POST /api/v1/speech")
	return nil
}
