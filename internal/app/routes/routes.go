package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rkabir/profscope/internal/app/controllers"
	"github.com/rkabir/profscope/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	facultyController *controllers.FacultyController,
	departmentController *controllers.DepartmentController,
	courseController *controllers.CourseController,
	professorController *controllers.ProfessorController,
	reviewController *controllers.ReviewController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public read routes ---
	departments := api.Group("/departments")
	{
		departments.GET("", departmentController.GetDepartments)
		departments.GET("/:id", departmentController.GetDepartmentByID)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", courseController.GetCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.GET("/:id/reviews", courseController.GetCourseReviews)
	}

	api.GET("/reviews", reviewController.GetReviews)

	professors := api.Group("/professors")
	{
		professors.GET("", professorController.GetProfessors)
		professors.GET("/:ref", professorController.GetProfessor)
		professors.GET("/id/:id/reviews", professorController.GetProfessorReviews)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.RequireAuth())
	{
		auth := authenticated.Group("/auth")
		{
			auth.POST("/sync-user", authController.SyncUser)
			auth.GET("/me", authController.Me)
		}

		reviews := authenticated.Group("/reviews")
		{
			reviews.POST("", reviewController.CreateReview)
			reviews.GET("/mine", reviewController.GetMyReviews)
			reviews.PUT("/:id", reviewController.UpdateReview)
			reviews.DELETE("/:id", reviewController.DeleteReview)
			reviews.POST("/:id/vote", reviewController.VoteReview)
			reviews.POST("/:id/report", reviewController.ReportReview)
		}

		// --- Admin routes ---
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RequireAdmin())
		{
			admin.POST("/departments", departmentController.CreateDepartment)
			admin.POST("/courses", courseController.CreateCourse)
			admin.POST("/professors", professorController.CreateProfessor)
			admin.POST("/seed", adminController.Seed)

			faculty := admin.Group("/faculty")
			{
				faculty.GET("/preview", facultyController.Preview)
				faculty.POST("/sync", facultyController.Sync)
				faculty.POST("/auto-sync", facultyController.AutoSync)
			}
		}
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
