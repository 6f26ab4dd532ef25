package main

import (
	"log"
	"net/http"

	"github.com/Krish-Depani/workhealth-admin/config"
	"github.com/Krish-Depani/workhealth-admin/controllers"
	"github.com/Krish-Depani/workhealth-admin/database"
	"github.com/Krish-Depani/workhealth-admin/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatal("Error loading .env:", err)
	}

	pgClient, err := database.NewPostgresClient(env.DBHost, env.DBUser, env.DBPassword, env.DBName, env.DBPort)
	if err != nil {
		log.Fatal("Error connecting to database:", err)
	}

	if err := database.AutoMigrate(pgClient); err != nil {
		log.Fatal("Error migrating database:", err)
	}

	if err := database.EnsureInitialAdmin(pgClient, env.AdminUsername, env.AdminPassword, env.AdminEmail); err != nil {
		log.Fatal("Error creating initial admin:", err)
	}

	redisClient, err := database.GetRedisClient(env.RedisAddr, env.RedisPass, env.RedisDB)
	if err != nil {
		log.Fatal("Error connecting to redis:", err)
	}

	authController := controllers.NewAuthController(pgClient, redisClient)
	employerController := controllers.NewEmployerController(pgClient)
	consultantController := controllers.NewConsultantController(pgClient)
	employeeController := controllers.NewEmployeeController(pgClient)
	assessmentController := controllers.NewAssessmentController(pgClient)

	r := gin.Default()
	routes.SetupRoutes(r, authController, employerController, consultantController, employeeController, assessmentController)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if err := r.Run(":" + env.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
