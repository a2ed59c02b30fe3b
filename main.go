package main

import (
	"log"

	"ffa/config"
	"ffa/database"
	leagueRoutes "ffa/routers/leagueRoutes"
	pipelineRoutes "ffa/routers/pipelineRoutes"
	servingRoutes "ffa/routers/servingRoutes"
	triggerRoutes "ffa/routers/triggerRoutes"
	"ffa/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",
		AllowHeaders: "Content-Type,x-trigger-token",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	triggerRoutes.SetupTriggerRoutes(app)
	pipelineRoutes.SetupPipelineRoutes(app)
	servingRoutes.SetupServingRoutes(app)
	leagueRoutes.SetupLeagueRoutes(app)

	if config.AppConfig.EnableRefreshCron {
		utils.InitializeRefreshScheduler()
	}

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
