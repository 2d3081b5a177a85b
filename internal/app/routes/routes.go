package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/adith/hostelcore/internal/app/controllers"
	"github.com/adith/hostelcore/internal/app/models"
	"github.com/adith/hostelcore/internal/middleware"
	"github.com/adith/hostelcore/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	roomController *controllers.RoomController,
	complaintController *controllers.ComplaintController,
	leaveController *controllers.LeaveController,
	notificationController *controllers.NotificationController,
	staffController *controllers.StaffController,
	dashboardController *controllers.DashboardController,
	recordsController *controllers.RecordsController,
	wsHandler *websocket.Handler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Change-event push for dashboards
	authenticated.GET("/ws", wsHandler.HandleConnection)

	// Notifications are role-scoped inside the controller
	notifications := authenticated.Group("/notifications")
	{
		notifications.GET("", notificationController.List)
		notifications.PUT("/:id/read", notificationController.MarkRead)

		notificationsStaff := notifications.Group("")
		notificationsStaff.Use(authMiddleware.RoleRequired(models.RoleJointWarden, models.RoleWarden, models.RoleAdmin))
		{
			notificationsStaff.POST("", notificationController.Publish)
		}
	}

	// --- Student self-service ---
	me := authenticated.Group("/me")
	me.Use(authMiddleware.RoleRequired(models.RoleStudent))
	{
		me.GET("", studentController.Me)
		me.GET("/roommates", studentController.MyRoommates)
		me.GET("/complaints", complaintController.Mine)
		me.GET("/leaves", leaveController.Mine)
	}

	students := authenticated.Group("/students")
	{
		// Staff views
		studentsStaff := students.Group("")
		studentsStaff.Use(authMiddleware.RoleRequired(models.RoleJointWarden, models.RoleWarden, models.RoleAdmin))
		{
			studentsStaff.GET("", studentController.List)
			studentsStaff.GET("/:sin", studentController.GetBySIN)
		}

		// Registration and room moves are warden/admin operations
		studentsWarden := students.Group("")
		studentsWarden.Use(authMiddleware.RoleRequired(models.RoleWarden, models.RoleAdmin))
		{
			studentsWarden.POST("", studentController.Register)
			studentsWarden.PUT("/:sin/room", roomController.Reassign)
		}

		// Self-or-staff checks live in the controller
		students.PUT("/:sin/profile", studentController.UpdateProfile)
		students.POST("/:sin/payments", studentController.RecordPayment)
		students.GET("/:sin/health", recordsController.GetHealthRecord)

		studentsHealth := students.Group("")
		studentsHealth.Use(authMiddleware.RoleRequired(models.RoleJointWarden, models.RoleWarden, models.RoleAdmin))
		{
			studentsHealth.PUT("/:sin/health", recordsController.UpsertHealthRecord)
		}
	}

	attendance := authenticated.Group("/attendance")
	attendance.Use(authMiddleware.RoleRequired(models.RoleJointWarden, models.RoleWarden, models.RoleAdmin))
	{
		attendance.POST("", studentController.MarkAttendance)
		attendance.GET("/:date", studentController.GetAttendance)
	}

	rooms := authenticated.Group("/rooms")
	rooms.Use(authMiddleware.RoleRequired(models.RoleJointWarden, models.RoleWarden, models.RoleAdmin))
	{
		rooms.GET("", roomController.List)
		rooms.GET("/:roomNumber", roomController.Get)
		rooms.PUT("/:roomNumber/cleanliness", roomController.UpdateCleanliness)
		rooms.PUT("/:roomNumber/inventory", roomController.UpdateInventory)
	}

	complaints := authenticated.Group("/complaints")
	{
		complaintsStudent := complaints.Group("")
		complaintsStudent.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			complaintsStudent.POST("", complaintController.Submit)
		}

		complaintsStaff := complaints.Group("")
		complaintsStaff.Use(authMiddleware.RoleRequired(models.RoleJointWarden, models.RoleWarden, models.RoleAdmin))
		{
			complaintsStaff.GET("", complaintController.List)
			complaintsStaff.PUT("/:id/status", complaintController.UpdateStatus)
		}
	}

	leaves := authenticated.Group("/leaves")
	{
		leavesStudent := leaves.Group("")
		leavesStudent.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			leavesStudent.POST("", leaveController.Submit)
		}

		leavesJointWarden := leaves.Group("")
		leavesJointWarden.Use(authMiddleware.RoleRequired(models.RoleJointWarden))
		{
			leavesJointWarden.PUT("/:id/recommend", leaveController.Recommend)
		}

		leavesWarden := leaves.Group("")
		leavesWarden.Use(authMiddleware.RoleRequired(models.RoleWarden, models.RoleAdmin))
		{
			leavesWarden.GET("", leaveController.List)
			leavesWarden.PUT("/:id/decision", leaveController.Decide)
		}
	}

	// Joint-warden scoped views
	mentor := authenticated.Group("/mentor")
	mentor.Use(authMiddleware.RoleRequired(models.RoleJointWarden))
	{
		mentor.GET("/students", staffController.MentorStudents)
		mentor.GET("/rooms", staffController.MentorRooms)
		mentor.GET("/complaints", staffController.MentorComplaints)
		mentor.GET("/leaves", staffController.MentorLeaves)
	}

	staff := authenticated.Group("/staff")
	{
		staffAdmin := staff.Group("")
		staffAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			staffAdmin.GET("", staffController.List)
			staffAdmin.POST("", staffController.Create)
			staffAdmin.DELETE("/:id", staffController.Delete)
		}

		staffAssign := staff.Group("")
		staffAssign.Use(authMiddleware.RoleRequired(models.RoleWarden, models.RoleAdmin))
		{
			staffAssign.PUT("/:id/assignment", staffController.Assign)
		}
	}

	dashboard := authenticated.Group("/dashboard")
	dashboard.Use(authMiddleware.RoleRequired(models.RoleJointWarden, models.RoleWarden, models.RoleAdmin))
	{
		dashboard.GET("/summary", dashboardController.Summary)
	}

	foodFeedback := authenticated.Group("/food-feedback")
	{
		feedbackStudent := foodFeedback.Group("")
		feedbackStudent.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			feedbackStudent.POST("", recordsController.SubmitFoodFeedback)
		}

		feedbackStaff := foodFeedback.Group("")
		feedbackStaff.Use(authMiddleware.RoleRequired(models.RoleWarden, models.RoleAdmin))
		{
			feedbackStaff.GET("", recordsController.ListFoodFeedback)
		}
	}
}
