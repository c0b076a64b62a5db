package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "agent-relay/internal/chat/delivery/http"
	"agent-relay/internal/middleware"
)

// setupChatDomain registers the chat relay endpoint.
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered at POST /api/v1/chat")
	return nil
}
