package controller

import (
	"errors"
	"strconv"

	"guru_learn_backend/internal/service"
	"guru_learn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{
		CourseService: courseService,
	}
}

// swagger:model EnrollRequest
type EnrollRequest struct {
	CourseID uint `json:"courseId" binding:"required"`
}

// GetAll godoc
// @Summary Course catalog
// @Tags courses
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses/all [get]
func (c *CourseController) GetAll(ctx *gin.Context) {
	courses, err := c.CourseService.ListAll(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCategories godoc
// @Summary Distinct course categories
// @Tags courses
// @Produce json
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/courses/categories [get]
func (c *CourseController) GetCategories(ctx *gin.Context) {
	categories, err := c.CourseService.ListCategories(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// GetByID godoc
// @Summary Course detail with modules
// @Tags courses
// @Produce json
// @Param id path int true "Course id"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	course, err := c.CourseService.Get(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// GetEnrolled godoc
// @Summary Courses the caller is enrolled in
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Failure 401 {object} util.Response
// @Router /api/courses/enrolled [get]
func (c *CourseController) GetEnrolled(ctx *gin.Context) {
	user := util.CurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.CourseService.EnrolledCourses(user.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// Enroll godoc
// @Summary Enroll the caller into a course
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body EnrollRequest true "Course to enroll into"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "Already enrolled"
// @Failure 404 {object} util.Response "Unknown course"
// @Router /api/courses/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	user := util.CurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "courseId is required")
		return
	}

	if err := c.CourseService.Enroll(user.ID, req.CourseID); err != nil {
		switch {
		case errors.Is(err, util.ErrAlreadyEnrolled):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrCourseNotFound), errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"enrolled": true, "courseId": req.CourseID})
}

// GetVideos godoc
// @Summary Lesson videos for a course
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/videos [get]
func (c *CourseController) GetVideos(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	videos, err := c.CourseService.Videos(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, videos)
}
