package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/beetsolutions/veteran-app/auth"
	"github.com/beetsolutions/veteran-app/config"
	"github.com/beetsolutions/veteran-app/routes"
	"github.com/beetsolutions/veteran-app/store"
)

func main() {
	config.LoadEnv()

	ds, err := store.New()
	if err != nil {
		log.Fatalf("Failed to build data store: %v", err)
	}

	secret := config.GetEnv("JWT_SECRET", "veteran-app-dev-secret")
	sessions := auth.NewSessionManager(ds, []byte(secret))

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	// Get environment
	env := config.GetEnv("APP_ENV", "development")

	// Configure CORS based on environment
	configureCORS(app, env)

	routes.SetupRoutes(app, ds, sessions)

	// Get port from environment or use default
	port := config.GetEnv("PORT", "8080")

	log.Printf("Veteran App REST API server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}

// Configure CORS middleware based on environment
func configureCORS(app *fiber.App, env string) {
	var corsConfig cors.Config

	switch env {
	case "production":
		// Strict configuration for production
		allowedOrigins := config.GetEnv("ALLOWED_ORIGINS", "https://veteranapp.com")
		corsConfig = cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Organization-ID",
			ExposeHeaders:    "Content-Length, Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}
	case "staging":
		// Moderate configuration for staging
		allowedOrigins := config.GetEnv("ALLOWED_ORIGINS", "https://staging.veteranapp.com")
		corsConfig = cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
			AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Organization-ID, X-Requested-With",
			ExposeHeaders:    "Content-Length, Content-Type",
			AllowCredentials: true,
			MaxAge:           3600,
		}
	default:
		// Permissive configuration for development
		allowedOrigins := config.GetEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")
		corsConfig = cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
			AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Organization-ID, X-Requested-With",
			ExposeHeaders:    "Content-Length, Content-Type",
			AllowCredentials: true,
			MaxAge:           1800,
		}
	}

	app.Use(cors.New(corsConfig))
}
