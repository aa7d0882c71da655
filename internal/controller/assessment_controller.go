package controller

import (
	"strconv"
	"strings"

	"guru_learn_backend/internal/service"
	"guru_learn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
	Agent             service.AgentClient
}

func NewAssessmentController(assessmentService *service.AssessmentService, agent service.AgentClient) *AssessmentController {
	return &AssessmentController{
		AssessmentService: assessmentService,
		Agent:             agent,
	}
}

// swagger:model SubmitAssessmentRequest
type SubmitAssessmentRequest struct {
	CourseID       uint                      `json:"courseId" binding:"required"`
	Topic          string                    `json:"topic" binding:"required"`
	Score          int                       `json:"score"`
	TotalQuestions int                       `json:"totalQuestions" binding:"required,min=1"`
	Answers        []service.SubmittedAnswer `json:"answers"`
}

// Generate godoc
// @Summary Generate a quiz for a topic
// @Tags assessments
// @Produce json
// @Security ApiKeyAuth
// @Param topic query string true "Quiz topic"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "Missing topic"
// @Router /api/assessments/generate [get]
func (c *AssessmentController) Generate(ctx *gin.Context) {
	topic := strings.TrimSpace(ctx.Query("topic"))
	if topic == "" {
		util.BadRequest(ctx, "topic query parameter is required")
		return
	}

	questions, err := c.Agent.GenerateQuiz(ctx.Request.Context(), topic)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// Submit godoc
// @Summary Record a quiz attempt
// @Tags assessments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body SubmitAssessmentRequest true "Attempt payload"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/assessments/submit [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	user := util.CurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "courseId, topic and totalQuestions are required")
		return
	}
	if req.Score < 0 || req.Score > req.TotalQuestions {
		util.BadRequest(ctx, "score must be between 0 and totalQuestions")
		return
	}

	assessment, err := c.AssessmentService.Submit(
		user.ID, req.CourseID, req.Topic, req.Score, req.TotalQuestions, req.Answers)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"id":         assessment.ID,
		"score":      assessment.Score,
		"percentage": assessment.Percentage,
	})
}

// Prediction godoc
// @Summary Performance prediction for a course
// @Tags assessments
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path int true "Course id"
// @Success 200 {object} util.Response
// @Router /api/assessments/prediction/{courseId} [get]
func (c *AssessmentController) Prediction(ctx *gin.Context) {
	user := util.CurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, err := strconv.ParseUint(ctx.Param("courseId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	prediction, err := c.AssessmentService.Predict(user.ID, uint(courseID))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, prediction)
}
