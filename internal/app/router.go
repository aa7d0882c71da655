package app

import (
	"guru_learn_backend/docs"
	"guru_learn_backend/internal/config"
	"guru_learn_backend/internal/middleware"
	"guru_learn_backend/internal/model"
	"guru_learn_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerUserRoutes(router, c, repos, cfg)
	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.POST("/admin/login", c.admin.Login)

		public.GET("/courses/all", c.course.GetAll)
		public.GET("/courses/categories", c.course.GetCategories)
		public.GET("/courses/:id", c.course.GetByID)

		public.POST("/chatbot/message", c.chatbot.Message)
	}
}

func (a *App) registerUserRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	authGroup := router.Group("/api")
	authGroup.Use(
		middleware.AuthMiddleware(cfg, repos.user),
		middleware.ActivityMiddleware(repos.user),
	)
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		authGroup.GET("/courses/enrolled", c.course.GetEnrolled)
		authGroup.POST("/courses/enroll", c.course.Enroll)
		authGroup.GET("/courses/:id/videos", c.course.GetVideos)

		authGroup.GET("/assessments/generate", c.assessment.Generate)
		authGroup.POST("/assessments/submit", c.assessment.Submit)
		authGroup.GET("/assessments/prediction/:courseId", c.assessment.Prediction)

		authGroup.POST("/voice-command", c.voice.Command)
		authGroup.POST("/compiler/run", c.compiler.Run)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(cfg, repos.user),
		middleware.RoleMiddleware(model.RoleAdmin),
	)
	{
		admin.GET("/dashboard-stats", c.admin.DashboardStats)
		admin.GET("/users", c.admin.GetUsers)
		admin.POST("/enroll-course", c.admin.EnrollUser)
		admin.GET("/courses", c.admin.GetCourses)
		admin.POST("/courses", c.admin.AddCourse)
		admin.POST("/courses/upload-image", c.admin.UploadImage)
		admin.GET("/courses/:id", c.admin.GetCourse)
		admin.PUT("/courses/:id", c.admin.UpdateCourse)
		admin.DELETE("/courses/:id", c.admin.DeleteCourse)
		admin.POST("/courses/:id/generate-content", c.admin.GenerateContent)
	}
}
