package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"agent-relay/internal/speech"
	"agent-relay/pkg/response"
)

type speakReq struct {
	Text string `json:"text" binding:"required"`
}

// Speak godoc
// @Summary     Render text as speech
// @Description Returns the text rendered as mpeg audio.
// @Tags        Speech
// @Accept      json
// @Produce     audio/mpeg
// @Param       body body speakReq true "Text to render"
// @Success     200  {file}   binary
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/speech [POST]
func (h *handler) Speak(c *gin.Context) {
	ctx := c.Request.Context()

	var req speakReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Synthesize(ctx, speech.SynthesizeInput{Text: req.Text})
	if err != nil {
		if errors.Is(err, speech.ErrEmptyText) {
			response.BadRequest(c, err)
			return
		}
		h.l.Errorf(ctx, "uc.Synthesize: %v", err)
		response.InternalError(c)
		return
	}

	c.Data(http.StatusOK, output.ContentType, output.Audio)
}
