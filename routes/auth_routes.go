package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beetsolutions/veteran-app/auth"
	"github.com/beetsolutions/veteran-app/controllers"
	"github.com/beetsolutions/veteran-app/middleware"
	"github.com/beetsolutions/veteran-app/store"
)

func AuthRoutes(app *fiber.App, ds *store.DataStore, sessions *auth.SessionManager) {
	ac := &controllers.AuthController{Sessions: sessions, Store: ds}

	group := app.Group("/auth")
	group.Post("/login", ac.Login)
	group.Post("/refresh", ac.Refresh)
	group.Post("/logout", ac.Logout)
	group.Post("/forgot-password", ac.ForgotPassword)

	// Protected routes
	group.Get("/organizations", middleware.Auth(sessions), ac.Organizations)
	group.Post("/switch-organization", middleware.Auth(sessions), ac.SwitchOrganization)
}
