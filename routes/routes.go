package routes

import (
	"github.com/Krish-Depani/workhealth-admin/controllers"
	"github.com/Krish-Depani/workhealth-admin/models"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authController *controllers.AuthController,
	employerController *controllers.EmployerController,
	consultantController *controllers.ConsultantController,
	employeeController *controllers.EmployeeController,
	assessmentController *controllers.AssessmentController,
) {
	auth := router.Group("/api/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/validate-session", authController.AuthMiddleware(), authController.ValidateSession)
		auth.GET("/me", authController.AuthMiddleware(), authController.Me)
		auth.POST("/logout", authController.Logout)
		auth.GET("/logout", authController.LegacyLogout)
	}

	admin := router.Group("/api/admin",
		authController.AuthMiddleware(),
		controllers.RequireRole(models.RoleAdmin),
	)
	{
		admin.GET("/employers", employerController.List)
		admin.POST("/employers", employerController.Create)
		admin.PUT("/employers/:id", employerController.Update)
		admin.DELETE("/employers/:id", employerController.Delete)

		admin.GET("/consultants", consultantController.List)
		admin.POST("/consultants", consultantController.Create)
		admin.PUT("/consultants/:id", consultantController.Update)
		admin.DELETE("/consultants/:id", consultantController.Delete)

		admin.GET("/employees", employeeController.List)
		admin.GET("/assessments", assessmentController.List)
	}

	consultant := router.Group("/api/consultant",
		authController.AuthMiddleware(),
		controllers.RequireRole(models.RoleConsultant),
	)
	{
		consultant.GET("/employees", employeeController.ListForConsultant)
	}
}
