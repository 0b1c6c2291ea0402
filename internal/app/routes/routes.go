package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genius/elearning/internal/app/controllers"
	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/middleware"
	"github.com/genius/elearning/internal/pkg/websocket"
)

// Controllers groups every HTTP controller mounted by SetupRouter
type Controllers struct {
	Auth             *controllers.AuthController
	User             *controllers.UserController
	EducationalLevel *controllers.EducationalLevelController
	Course           *controllers.CourseController
	Lesson           *controllers.LessonController
	Exam             *controllers.AssessmentController
	Assignment       *controllers.AssessmentController
	Question         *controllers.QuestionController
	Subscription     *controllers.SubscriptionController
	Notification     *controllers.NotificationController
	Note             *controllers.NoteController
	Admin            *controllers.AdminController
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	c Controllers,
	authMiddleware *middleware.AuthMiddleware,
	wsHandler *websocket.Handler,
) {
	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
		auth.GET("/me", authMiddleware.JWTAuth(), c.Auth.Me)
		auth.POST("/logout", authMiddleware.JWTAuth(), c.Auth.Logout)
	}

	// --- Public catalog routes ---
	v1.GET("/educational-levels", c.EducationalLevel.List)
	v1.GET("/educational-levels/:id", c.EducationalLevel.Get)

	courses := v1.Group("/courses")
	{
		courses.GET("", c.Course.List)
		courses.GET("/:id", c.Course.Get)
		// Anonymous callers are allowed; a token unlocks videos
		courses.GET("/:id/lessons", authMiddleware.OptionalAuth(), c.Course.Lessons)
	}

	v1.GET("/questions", authMiddleware.OptionalAuth(), c.Question.List)

	mountAssessment(v1.Group("/exams"), c.Exam, authMiddleware)
	mountAssessment(v1.Group("/assignments"), c.Assignment, authMiddleware)

	// --- Notes: public reads, admin writes, authenticated orders ---
	notes := v1.Group("/notes")
	{
		notes.GET("", c.Note.List)
		notes.GET("/:id", c.Note.Get)

		orders := notes.Group("/orders", authMiddleware.JWTAuth())
		{
			orders.POST("", c.Note.PlaceOrder)
			orders.GET("/my", c.Note.MyOrders)
			orders.GET("", authMiddleware.RoleRequired(models.RoleAdmin), c.Note.ListOrders)
			orders.PUT("/:id/status", authMiddleware.RoleRequired(models.RoleAdmin), c.Note.UpdateOrderStatus)
		}

		notesAdmin := notes.Group("", authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
		{
			notesAdmin.POST("", c.Note.Create)
			notesAdmin.PUT("/:id", c.Note.Update)
			notesAdmin.DELETE("/:id", c.Note.Delete)
		}
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		users := authenticated.Group("/users")
		{
			users.GET("/profile", c.User.GetProfile)
			users.PUT("/profile", c.User.UpdateProfile)
			users.PUT("/change-password", c.User.ChangePassword)
		}

		subscriptions := authenticated.Group("/subscriptions")
		{
			subscriptions.GET("", c.Subscription.ListMine)
			subscriptions.POST("", c.Subscription.Subscribe)
			subscriptions.POST("/receipt", c.Subscription.UploadReceipt)
			subscriptions.GET("/:id", c.Subscription.GetMine)
		}

		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", c.Notification.List)
			notifications.GET("/unread-count", c.Notification.UnreadCount)
			notifications.PUT("/read-all", c.Notification.MarkAllRead)
			notifications.PUT("/:id/read", c.Notification.MarkRead)
			notifications.PATCH("/:id", c.Notification.MarkRead)
			// Browsers cannot set headers on a websocket; JWTAuth also reads ?token=
			notifications.GET("/ws", wsHandler.HandleConnection)
		}
	}

	// --- Staff routes ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.StaffRoles...))
	{
		admin.GET("/stats", c.Admin.Stats)
		admin.POST("/uploads", c.Admin.Upload)

		admin.GET("/users", c.User.ListUsers)
		admin.PUT("/users/:id/role", authMiddleware.RoleRequired(models.RoleAdmin), c.User.UpdateRole)

		admin.POST("/educational-levels", c.EducationalLevel.Create)
		admin.PUT("/educational-levels/:id", c.EducationalLevel.Update)
		admin.DELETE("/educational-levels/:id", c.EducationalLevel.Delete)

		admin.POST("/courses", c.Course.Create)
		admin.PUT("/courses/:id", c.Course.Update)
		admin.DELETE("/courses/:id", c.Course.Delete)

		admin.GET("/lessons/:id", c.Lesson.Get)
		admin.POST("/lessons", c.Lesson.Create)
		admin.PUT("/lessons/:id", c.Lesson.Update)
		admin.DELETE("/lessons/:id", c.Lesson.Delete)

		mountAssessmentAdmin(admin.Group("/exams"), c.Exam)
		mountAssessmentAdmin(admin.Group("/assignments"), c.Assignment)

		admin.GET("/questions/:id", c.Question.Get)
		admin.POST("/questions", c.Question.Create)
		admin.PUT("/questions/:id", c.Question.Update)
		admin.DELETE("/questions/:id", c.Question.Delete)

		admin.GET("/subscriptions", c.Subscription.ListAll)
		admin.GET("/subscriptions/export", c.Subscription.Export)
		admin.PUT("/subscriptions/:id/status", c.Subscription.UpdateStatus)

		admin.POST("/notifications", c.Notification.Send)
	}
}

// mountAssessment registers the public and student routes shared by exams and assignments
func mountAssessment(group *gin.RouterGroup, ctrl *controllers.AssessmentController, authMiddleware *middleware.AuthMiddleware) {
	group.GET("", ctrl.List)
	group.GET("/:id", ctrl.Get)
	group.GET("/:id/questions", authMiddleware.OptionalAuth(), ctrl.Questions)
	group.POST("/:id/submissions", authMiddleware.JWTAuth(), ctrl.Submit)
	group.GET("/:id/results", authMiddleware.JWTAuth(), ctrl.Result)
}

func mountAssessmentAdmin(group *gin.RouterGroup, ctrl *controllers.AssessmentController) {
	group.POST("", ctrl.Create)
	group.PUT("/:id", ctrl.Update)
	group.DELETE("/:id", ctrl.Delete)
	group.GET("/:id/submissions", ctrl.Submissions)
	group.GET("/:id/submissions/export", ctrl.ExportSubmissions)
}
