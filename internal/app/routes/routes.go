package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tobi/edushare/internal/app/controllers"
	"github.com/tobi/edushare/internal/app/models"
	"github.com/tobi/edushare/internal/middleware"
)

// SetupRouter configures all application routes. Role gates live here, not
// in the handlers, so each route's access rules are visible in one place.
func SetupRouter(router *gin.Engine, ctrl *controllers.Controllers, authMiddleware *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/refresh", ctrl.Auth.Refresh)
	}

	// Catalog reads are public so registration forms can be populated
	v1.GET("/institutions", ctrl.Catalog.GetInstitutions)
	v1.GET("/institutions/:id", ctrl.Catalog.GetInstitution)
	v1.GET("/programmes", ctrl.Catalog.GetProgrammes)
	v1.GET("/courses", ctrl.Catalog.GetCourses)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", ctrl.Auth.Logout)
		authenticated.POST("/auth/onboarding/complete", ctrl.Auth.CompleteOnboarding)
		authenticated.GET("/users/me", ctrl.Auth.GetProfile)
		authenticated.GET("/users/me/bookmarks", ctrl.Engagement.GetBookmarks)

		// Materials. Browsing and engagement need onboarding done first.
		materials := authenticated.Group("/materials")
		materials.Use(authMiddleware.OnboardingRequired())
		{
			materials.GET("", ctrl.Material.ListMaterials)
			materials.GET("/:id", ctrl.Material.GetMaterial)
			materials.POST("", ctrl.Material.CreateMaterial)
			materials.PUT("/:id", ctrl.Material.UpdateMaterial)
			materials.DELETE("/:id", ctrl.Material.DeleteMaterial)
			materials.POST("/:id/download", ctrl.Material.DownloadMaterial)

			materials.POST("/:id/bookmark", ctrl.Engagement.AddBookmark)
			materials.DELETE("/:id/bookmark", ctrl.Engagement.RemoveBookmark)
			materials.PUT("/:id/rating", ctrl.Engagement.RateMaterial)
			materials.DELETE("/:id/rating", ctrl.Engagement.RemoveRating)
			materials.GET("/:id/reviews", ctrl.Engagement.GetReviews)
			materials.PUT("/:id/reviews", ctrl.Engagement.ReviewMaterial)
			materials.DELETE("/:id/reviews", ctrl.Engagement.RemoveReview)
			materials.POST("/:id/reports", ctrl.Moderation.FileReport)
		}

		// Quizzes
		quizzes := authenticated.Group("/quizzes")
		{
			quizzes.GET("", ctrl.Quiz.ListQuizzes)
			quizzes.GET("/:id", ctrl.Quiz.GetQuiz)
			quizzes.DELETE("/:id", ctrl.Quiz.DeleteQuiz)

			quizInstructors := quizzes.Group("")
			quizInstructors.Use(authMiddleware.RoleRequired(models.RoleInstructor, models.RoleInstitution, models.RoleAdmin))
			{
				quizInstructors.POST("", ctrl.Quiz.CreateQuiz)
			}

			quizStudents := quizzes.Group("")
			quizStudents.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				quizStudents.POST("/:id/attempts", ctrl.Quiz.SubmitAttempt)
			}
		}

		// Performance dashboard (students only, onboarded)
		students := authenticated.Group("/students")
		students.Use(authMiddleware.RoleRequired(models.RoleStudent), authMiddleware.OnboardingRequired())
		{
			students.GET("/me/performance", ctrl.Performance.GetOwnPerformance)
		}

		// Catalog management (institution accounts and admins)
		catalogAdmin := authenticated.Group("")
		catalogAdmin.Use(authMiddleware.RoleRequired(models.RoleInstitution, models.RoleAdmin))
		{
			catalogAdmin.POST("/institutions", ctrl.Catalog.CreateInstitution)
			catalogAdmin.PUT("/institutions/:id", ctrl.Catalog.UpdateInstitution)
			catalogAdmin.DELETE("/institutions/:id", ctrl.Catalog.DeleteInstitution)
			catalogAdmin.POST("/programmes", ctrl.Catalog.CreateProgramme)
			catalogAdmin.DELETE("/programmes/:id", ctrl.Catalog.DeleteProgramme)
			catalogAdmin.POST("/courses", ctrl.Catalog.CreateCourse)
			catalogAdmin.DELETE("/courses/:id", ctrl.Catalog.DeleteCourse)
		}

		// Moderation (admins only)
		moderation := authenticated.Group("/moderation")
		moderation.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			moderation.GET("/materials", ctrl.Moderation.GetModerationQueue)
			moderation.PUT("/materials/:id", ctrl.Moderation.ModerateMaterial)
			moderation.PUT("/quizzes/:id", ctrl.Moderation.ModerateQuiz)
			moderation.GET("/reports", ctrl.Moderation.GetReports)
			moderation.PUT("/reports/:id", ctrl.Moderation.ResolveReport)
		}
	}
}
