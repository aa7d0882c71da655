package controller

import (
	"guru_learn_backend/internal/service"
	"guru_learn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatbotController struct {
	Agent service.AgentClient
}

func NewChatbotController(agent service.AgentClient) *ChatbotController {
	return &ChatbotController{Agent: agent}
}

// swagger:model ChatRequest
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Message godoc
// @Summary Chat with the learning assistant
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body ChatRequest true "User message"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/chatbot/message [post]
func (c *ChatbotController) Message(ctx *gin.Context) {
	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "message is required")
		return
	}

	reply, err := c.Agent.Chat(ctx.Request.Context(), req.Message)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"reply": reply})
}
