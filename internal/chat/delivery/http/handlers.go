package http

import (
	"github.com/gin-gonic/gin"

	"agent-relay/pkg/response"
)

// Chat godoc
// @Summary     Relay a message to the agent
// @Description Routes the message into the caller's agent session, creating the session on first contact, and returns the agent's reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Converse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Converse: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}
