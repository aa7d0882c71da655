package controller

import (
	"guru_learn_backend/internal/service"
	"guru_learn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CompilerController struct {
	CompilerService *service.CompilerService
}

func NewCompilerController(compilerService *service.CompilerService) *CompilerController {
	return &CompilerController{CompilerService: compilerService}
}

// swagger:model RunCodeRequest
type RunCodeRequest struct {
	Language string `json:"language" binding:"required"`
	Code     string `json:"code" binding:"required"`
}

// Run godoc
// @Summary Execute a code snippet
// @Tags compiler
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body RunCodeRequest true "Language and source"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/compiler/run [post]
func (c *CompilerController) Run(ctx *gin.Context) {
	var req RunCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "language and code are required")
		return
	}

	output, err := c.CompilerService.Run(ctx.Request.Context(), req.Language, req.Code)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"output": output})
}
