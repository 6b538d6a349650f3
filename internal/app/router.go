package app

import (
	"quiz_master_backend/docs"
	"quiz_master_backend/internal/config"
	"quiz_master_backend/internal/middleware"
	"quiz_master_backend/internal/model"
	"quiz_master_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// Authenticated routes
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.GET("/dashboard", c.dashboard.GetDashboard)
		authGroup.GET("/scores", c.score.ListMyScores)

		// Quiz taking
		authGroup.GET("/quizzes/:quizId", c.quiz.GetQuizView)
		authGroup.POST("/quizzes/:quizId/submit", c.score.SubmitQuiz)
		authGroup.GET("/quizzes/:quizId/results/:scoreId", c.score.GetResult)

		// Admin-only management
		admin := authGroup.Group("/admin")
		admin.Use(middleware.RoleMiddleware(model.RoleAdmin))
		{
			admin.GET("/subjects", c.catalog.ListSubjects)
			admin.POST("/subjects", c.catalog.CreateSubject)
			admin.PUT("/subjects/:id", c.catalog.UpdateSubject)
			admin.DELETE("/subjects/:id", c.catalog.DeleteSubject)

			admin.GET("/chapters", c.catalog.ListChapters)
			admin.POST("/chapters", c.catalog.CreateChapter)
			admin.PUT("/chapters/:id", c.catalog.UpdateChapter)
			admin.DELETE("/chapters/:id", c.catalog.DeleteChapter)

			admin.GET("/quizzes", c.quiz.ListQuizzes)
			admin.POST("/quizzes", c.quiz.CreateQuiz)
			admin.PUT("/quizzes/:id", c.quiz.UpdateQuiz)
			admin.DELETE("/quizzes/:id", c.quiz.DeleteQuiz)

			admin.GET("/quizzes/:id/questions", c.quiz.ListQuestions)
			admin.POST("/quizzes/:id/questions", c.quiz.CreateQuestion)
			admin.PUT("/questions/:id", c.quiz.UpdateQuestion)
			admin.DELETE("/questions/:id", c.quiz.DeleteQuestion)

			admin.GET("/users", c.user.ListUsers)
			admin.PUT("/users/:id", c.user.UpdateUser)
			admin.DELETE("/users/:id", c.user.DeleteUser)

			admin.GET("/reports", c.report.GetReports)
		}
	}
}
