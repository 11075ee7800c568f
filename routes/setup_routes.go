package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beetsolutions/veteran-app/auth"
	"github.com/beetsolutions/veteran-app/store"
)

// SetupRoutes wires every endpoint onto the app. The store and session
// manager are injected here instead of living as package globals.
func SetupRoutes(app *fiber.App, ds *store.DataStore, sessions *auth.SessionManager) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Veteran App REST API",
			"version": "1.0.0",
			"status":  "running",
		})
	})

	AuthRoutes(app, ds, sessions)
	MemberRoutes(app, ds)
	HostingRoutes(app, ds)
	ContentRoutes(app, ds)
}
