package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"schoolhub/config"
	"schoolhub/database"
	authRoutes "schoolhub/routers/authRoutes"
	classRoutes "schoolhub/routers/classRoutes"
	paymentRoutes "schoolhub/routers/paymentRoutes"
	selectionRoutes "schoolhub/routers/selectionRoutes"
	userRoutes "schoolhub/routers/userRoutes"
	"schoolhub/utils"

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
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("School is open now")
	})

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	classRoutes.SetupClassRoutes(app)
	selectionRoutes.SetupSelectionRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)

	scheduler := utils.StartSeatAuditScheduler()

	go func() {
		log.Printf("School is open on port %s", config.AppConfig.Port)
		if err := app.Listen(":" + config.AppConfig.Port); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	// Release the listener and the database handle on shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	scheduler.Stop()
	if err := app.Shutdown(); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
	database.Close()
	log.Println("School is closed.")
}
