package app

import (
	"edu_tracker_backend/docs"
	"edu_tracker_backend/internal/config"
	"edu_tracker_backend/internal/middleware"
	"edu_tracker_backend/internal/model"
	"edu_tracker_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes, no session required.
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.GET("/auth/google", c.auth.GoogleLogin)
		public.GET("/auth/google/callback", c.auth.GoogleCallback)
		public.POST("/auth/dev", c.auth.DevLogin)
	}

	// Session-scoped routes.
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg, a.services.auth), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/auth/me", c.auth.Me)
		authGroup.POST("/auth/logout", c.auth.Logout)
		authGroup.PUT("/user/profile", c.user.UpdateProfile)
		authGroup.POST("/user/avatar/upload", c.user.UploadAvatar)

		authGroup.GET("/courses", c.course.GetCourses)
		authGroup.POST("/courses", c.course.CreateCourse)
		authGroup.PATCH("/courses/:id/progress", c.course.UpdateProgress)
		authGroup.POST("/courses/:id/hours", c.course.AddHour)

		authGroup.GET("/progress", c.progress.GetProgress)
		authGroup.POST("/progress/experience", c.progress.AddExperience)

		authGroup.GET("/achievements", c.achievement.GetAchievements)
		authGroup.POST("/achievements/unlock", c.achievement.Unlock)
	}

	// Admin routes.
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg, a.services.auth), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.GET("/users", c.user.GetUsers)
		admin.GET("/users/:id", c.user.GetUser)
	}
}
