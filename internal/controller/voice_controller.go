package controller

import (
	"guru_learn_backend/internal/service"
	"guru_learn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VoiceController struct {
	Agent service.AgentClient
}

func NewVoiceController(agent service.AgentClient) *VoiceController {
	return &VoiceController{Agent: agent}
}

// swagger:model VoiceCommandRequest
type VoiceCommandRequest struct {
	Command string `json:"command" binding:"required"`
}

// Command godoc
// @Summary Interpret a voice command
// @Description Returns a structured action: navigate, respond, enroll or list_courses
// @Tags assistant
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body VoiceCommandRequest true "Transcribed command"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/voice-command [post]
func (c *VoiceController) Command(ctx *gin.Context) {
	var req VoiceCommandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "command is required")
		return
	}

	action, err := c.Agent.InterpretVoiceCommand(ctx.Request.Context(), req.Command)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	// Clients always get a well-formed action to act on.
	if action == nil || action.Action == "" {
		action = &service.VoiceAction{
			Action:   "respond",
			Response: "Sorry, I could not understand that command.",
		}
	}
	util.Success(ctx, action)
}
