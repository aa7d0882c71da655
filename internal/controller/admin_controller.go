package controller

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"guru_learn_backend/internal/model"
	"guru_learn_backend/internal/repository"
	"guru_learn_backend/internal/service"
	"guru_learn_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminController struct {
	AuthService      *service.AuthService
	CourseService    *service.CourseService
	DashboardService *service.DashboardService
	StorageService   *service.StorageService
	UserRepo         *repository.UserRepository
	EnrollmentRepo   *repository.EnrollmentRepository
}

func NewAdminController(
	authService *service.AuthService,
	courseService *service.CourseService,
	dashboardService *service.DashboardService,
	storageService *service.StorageService,
	userRepo *repository.UserRepository,
	enrollmentRepo *repository.EnrollmentRepository,
) *AdminController {
	return &AdminController{
		AuthService:      authService,
		CourseService:    courseService,
		DashboardService: dashboardService,
		StorageService:   storageService,
		UserRepo:         userRepo,
		EnrollmentRepo:   enrollmentRepo,
	}
}

// swagger:model AddCourseRequest
type AddCourseRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Instructor  string  `json:"instructor" binding:"required"`
	Price       float64 `json:"price"`
	Category    string  `json:"category" binding:"required"`
	Level       string  `json:"level"`
	ImageURL    string  `json:"imageUrl"`
	Duration    string  `json:"duration"`
	Lessons     int     `json:"lessons"`
	IsPublished bool    `json:"isPublished"`
}

// swagger:model UpdateCourseRequest
type UpdateCourseRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Instructor  *string  `json:"instructor"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Level       *string  `json:"level"`
	ImageURL    *string  `json:"imageUrl"`
	Duration    *string  `json:"duration"`
	Rating      *float64 `json:"rating"`
	IsPublished *bool    `json:"isPublished"`
}

// swagger:model AdminEnrollRequest
type AdminEnrollRequest struct {
	UserID   uint `json:"userId" binding:"required"`
	CourseID uint `json:"courseId" binding:"required"`
}

// Login godoc
// @Summary Administrator sign in
// @Description Only accounts with the admin role pass; valid non-admin credentials still fail
// @Tags admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/admin/login [post]
func (c *AdminController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "email and password are required")
		return
	}

	token, err := c.AuthService.LoginAdmin(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, http.StatusUnauthorized, "Invalid admin credentials")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
		"role":  model.RoleAdmin,
	})
}

// DashboardStats godoc
// @Summary Platform totals for the admin dashboard
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.DashboardStats}
// @Failure 403 {object} util.Response
// @Router /api/admin/dashboard-stats [get]
func (c *AdminController) DashboardStats(ctx *gin.Context) {
	stats, err := c.DashboardService.Stats(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// GetUsers godoc
// @Summary Registered learners with their enrollments
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/admin/users [get]
func (c *AdminController) GetUsers(ctx *gin.Context) {
	users, err := c.UserRepo.ListByRole(model.RoleUser)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		enrollments, err := c.EnrollmentRepo.ListByUser(u.ID)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		titles := make([]string, 0, len(enrollments))
		for _, e := range enrollments {
			if e.Course != nil {
				titles = append(titles, e.Course.Title)
			}
		}
		out = append(out, gin.H{
			"id":              u.ID,
			"fullName":        u.FullName,
			"email":           u.Email,
			"lastLogin":       u.LastLogin,
			"createdAt":       u.CreatedAt,
			"enrolledCourses": titles,
		})
	}

	util.Success(ctx, out)
}

// EnrollUser godoc
// @Summary Enroll a learner into a course on their behalf
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AdminEnrollRequest true "User and course ids"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "Already enrolled"
// @Failure 404 {object} util.Response "Unknown user or course"
// @Router /api/admin/enroll-course [post]
func (c *AdminController) EnrollUser(ctx *gin.Context) {
	var req AdminEnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "userId and courseId are required")
		return
	}

	if err := c.CourseService.Enroll(req.UserID, req.CourseID); err != nil {
		switch {
		case errors.Is(err, util.ErrAlreadyEnrolled):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrUserNotFound), errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"enrolled": true, "userId": req.UserID, "courseId": req.CourseID})
}

// GetCourses godoc
// @Summary Full catalog for course management
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/admin/courses [get]
func (c *AdminController) GetCourses(ctx *gin.Context) {
	courses, err := c.CourseService.ListAll(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// AddCourse godoc
// @Summary Create a catalog entry
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AddCourseRequest true "Course payload"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response "Duplicate title or invalid level"
// @Router /api/admin/courses [post]
func (c *AdminController) AddCourse(ctx *gin.Context) {
	var req AddCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "title, instructor and category are required")
		return
	}

	course := &model.Course{
		Title:       req.Title,
		Description: req.Description,
		Instructor:  req.Instructor,
		Price:       req.Price,
		Category:    req.Category,
		Level:       model.CourseLevel(req.Level),
		ImageURL:    req.ImageURL,
		Duration:    req.Duration,
		Lessons:     req.Lessons,
		IsPublished: req.IsPublished,
	}

	if err := c.CourseService.Create(ctx.Request.Context(), course); err != nil {
		switch {
		case errors.Is(err, util.ErrTitleTaken), errors.Is(err, util.ErrInvalidLevel):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, course)
}

// GetCourse godoc
// @Summary Course detail for management
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course id"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id} [get]
func (c *AdminController) GetCourse(ctx *gin.Context) {
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

// UpdateCourse godoc
// @Summary Edit a catalog entry
// @Description Applies the provided fields; omitted fields keep their value
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course id"
// @Param request body UpdateCourseRequest true "Fields to change"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response "Duplicate title or invalid level"
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id} [put]
func (c *AdminController) UpdateCourse(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var req UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid course payload")
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

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Instructor != nil {
		course.Instructor = *req.Instructor
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.Category != nil {
		course.Category = *req.Category
	}
	if req.Level != nil {
		course.Level = model.CourseLevel(*req.Level)
	}
	if req.ImageURL != nil {
		course.ImageURL = *req.ImageURL
	}
	if req.Duration != nil {
		course.Duration = *req.Duration
	}
	if req.Rating != nil {
		course.Rating = *req.Rating
	}
	if req.IsPublished != nil {
		course.IsPublished = *req.IsPublished
	}

	if err := c.CourseService.Update(ctx.Request.Context(), course); err != nil {
		switch {
		case errors.Is(err, util.ErrTitleTaken), errors.Is(err, util.ErrInvalidLevel):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, course)
}

// DeleteCourse godoc
// @Summary Remove a catalog entry
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id} [delete]
func (c *AdminController) DeleteCourse(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	if err := c.CourseService.Delete(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true, "id": id})
}

// GenerateContent godoc
// @Summary Generate videos and quizzes for every lesson of a course
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course id"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id}/generate-content [post]
func (c *AdminController) GenerateContent(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	course, err := c.CourseService.GenerateContent(ctx.Request.Context(), uint(id))
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

// UploadImage godoc
// @Summary Upload a course cover image
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param image formData file true "Image file"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/admin/courses/upload-image [post]
func (c *AdminController) UploadImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		util.BadRequest(ctx, "image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("courses/%s%s", uuid.New().String(), filepath.Ext(fileHeader.Filename))
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, file,
		fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"imageUrl": url})
}
