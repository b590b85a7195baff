package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/siwes/interntrack/internal/app/controllers"
	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/middleware"
	"github.com/siwes/interntrack/internal/pkg/websocket"
)

// Controllers groups the HTTP handlers mounted under /api/v1
type Controllers struct {
	Auth          *controllers.AuthController
	Codes         *controllers.VerificationCodeController
	Assignments   *controllers.AssignmentController
	Logbooks      *controllers.LogbookController
	Defenses      *controllers.DefenseController
	Notifications *controllers.NotificationController
	WebSocket     *websocket.Handler
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *Controllers, authMiddleware *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
		auth.POST("/refresh", c.Auth.RefreshToken)
	}
	v1.POST("/verification-codes/validate", c.Codes.Validate)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	coordinator := authMiddleware.RoleRequired(models.RoleCoordinator)
	hod := authMiddleware.RoleRequired(models.RoleHOD)
	supervisor := authMiddleware.RoleRequired(models.RoleInstitutionSupervisor)
	student := authMiddleware.RoleRequired(models.RoleStudent)

	authenticated.GET("/me", c.Auth.Me)

	codes := authenticated.Group("/verification-codes", coordinator)
	{
		codes.POST("", c.Codes.Issue)
		codes.GET("", c.Codes.List)
	}

	authenticated.POST("/staff", coordinator, c.Auth.CreateStaff)
	authenticated.GET("/supervisors", authMiddleware.RoleRequired(models.RoleHOD, models.RoleCoordinator), c.Auth.ListSupervisors)

	assignments := authenticated.Group("/assignments")
	{
		assignments.POST("", hod, c.Assignments.Assign)
		assignments.GET("/department", hod, c.Assignments.ListDepartment)
		assignments.GET("/mine", supervisor, c.Assignments.ListMine)
	}

	logbooks := authenticated.Group("/logbooks")
	{
		logbooks.POST("", student, c.Logbooks.Submit)
		logbooks.POST("/images", student, c.Logbooks.UploadImage)
		logbooks.GET("", authMiddleware.RoleRequired(models.RoleCoordinator, models.RoleHOD), c.Logbooks.ListAll)
		logbooks.GET("/mine", student, c.Logbooks.ListMine)
		logbooks.GET("/supervised", supervisor, c.Logbooks.ListSupervised)
		logbooks.GET("/student/:studentId",
			authMiddleware.RoleRequired(models.RoleInstitutionSupervisor, models.RoleCoordinator, models.RoleHOD),
			c.Logbooks.ListForStudent)
		// visibility is checked per entry
		logbooks.GET("/:id", c.Logbooks.Get)
		logbooks.PUT("/:id", student, c.Logbooks.Resubmit)
		logbooks.PATCH("/:id/review", supervisor, c.Logbooks.Review)
	}

	defenses := authenticated.Group("/defenses")
	{
		defenses.POST("", coordinator, c.Defenses.Schedule)
		defenses.GET("", coordinator, c.Defenses.List)
		defenses.GET("/me", student, c.Defenses.GetMine)
		defenses.GET("/:studentId", coordinator, c.Defenses.GetForStudent)
		defenses.PUT("/:studentId/grade", coordinator, c.Defenses.Grade)
	}

	notifications := authenticated.Group("/notifications")
	{
		notifications.GET("", c.Notifications.List)
		notifications.PATCH("/:id/read", c.Notifications.MarkRead)
	}

	authenticated.GET("/ws/notifications", c.WebSocket.HandleConnection)
}
