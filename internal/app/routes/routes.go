// Package routes wires controllers into the gin router.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahulm/campusdesk/internal/app/controllers"
	"github.com/rahulm/campusdesk/internal/app/models"
	"github.com/rahulm/campusdesk/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	staffController *controllers.StaffController,
	attendanceController *controllers.AttendanceController,
	marksController *controllers.MarksController,
	grievanceController *controllers.GrievanceController,
	accountController *controllers.AccountController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register-student", authController.RegisterStudent)
		auth.POST("/register-staff", authController.RegisterStaff)
		auth.POST("/create-superadmin", authController.CreateSuperAdmin)
	}

	// --- Open student CRUD ---
	students := api.Group("/students")
	{
		students.GET("", studentController.List)
		students.GET("/:id", studentController.Get)
		students.POST("", studentController.Create)
		students.PUT("/:id", studentController.Update)
		students.DELETE("/:id", studentController.Delete)
	}

	// --- Staff surface ---
	staff := api.Group("/staff")
	staff.Use(authMiddleware.RequireAuth(), middleware.RequireRole(models.RoleStaff))
	{
		staff.GET("/students", studentController.List)
		staff.GET("/students/:id", studentController.Get)
		staff.POST("/students", studentController.Register)
		staff.PUT("/students/:id", studentController.Update)
		staff.DELETE("/students/:id", studentController.Disable)

		staff.POST("/attendance", attendanceController.Mark)
		staff.GET("/attendance", attendanceController.ListForStaff)

		staff.POST("/marks", marksController.Add)
		staff.GET("/marks", marksController.ListForStaff)
		staff.PUT("/marks/:id", marksController.Update)

		staff.GET("/grievances", grievanceController.ListAll)
		staff.PUT("/grievances/:id/respond", grievanceController.Respond)
	}

	// --- Student surface ---
	student := api.Group("/student")
	student.Use(authMiddleware.RequireAuth(), middleware.RequireRole(models.RoleStudent))
	{
		student.GET("/attendance", attendanceController.ListForStudent)
		student.GET("/attendance/summary", attendanceController.Summary)

		student.GET("/marks", marksController.ListForStudent)
		student.GET("/marks/summary", marksController.Summary)

		student.POST("/grievances", grievanceController.File)
		student.GET("/grievances", grievanceController.ListForStudent)
		student.GET("/grievances/:id", grievanceController.GetForStudent)
	}

	// --- Superadmin surface ---
	superadmin := api.Group("/superadmin")
	superadmin.Use(authMiddleware.RequireAuth(), middleware.RequireRole(models.RoleSuperAdmin))
	{
		superadmin.GET("/users", accountController.List)
		superadmin.GET("/users/:id", accountController.Get)
		superadmin.DELETE("/users/:id", accountController.Deactivate)
		superadmin.PATCH("/users/:id/activate", accountController.Activate)
		superadmin.PATCH("/users/:id/reset-password", accountController.ResetPassword)

		superadmin.POST("/students", studentController.RegisterWithAccount)
		superadmin.PUT("/students/:id", studentController.Update)
		superadmin.POST("/staff", staffController.RegisterWithAccount)
		superadmin.PUT("/staff/:id", staffController.Update)
	}
}
