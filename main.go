package main

import (
	"aims/config"
	"aims/database"
	academicRoutes "aims/routers/academicRoutes"
	attainmentRoutes "aims/routers/attainmentRoutes"
	authRoutes "aims/routers/authRoutes"
	examRoutes "aims/routers/examRoutes"
	outcomeRoutes "aims/routers/outcomeRoutes"
	"aims/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,PUT,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	academicRoutes.SetupAcademicRoutes(app)
	examRoutes.SetupExamRoutes(app)
	outcomeRoutes.SetupOutcomeRoutes(app)
	attainmentRoutes.SetupAttainmentRoutes(app)

	// Nightly attainment recompute for active semesters
	scheduler := utils.StartAttainmentScheduler()
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
