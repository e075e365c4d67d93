package http

import (
	"github.com/gin-gonic/gin"

	"agenda-assistant/pkg/response"
)

type interpretReq struct {
	Text string `json:"text" binding:"required"`
}

// Interpret godoc
// @Summary     Interpret a natural-language command
// @Description Classifies the text into an intent and executes it. Failures
// @Description inside the interpreter come back as an error intent, still 200.
// @Tags        Interpreter
// @Accept      json
// @Produce     json
// @Param       body body interpretReq true "Command text"
// @Success     200 {object} interpreter.Result
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/nlu [POST]
func (h *handler) Interpret(c *gin.Context) {
	ctx := c.Request.Context()

	var req interpretReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.uc.Interpret(ctx, req.Text))
}
