package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beetsolutions/veteran-app/controllers"
	"github.com/beetsolutions/veteran-app/middleware"
	"github.com/beetsolutions/veteran-app/store"
)

func MemberRoutes(app *fiber.App, ds *store.DataStore) {
	mc := &controllers.MemberController{Store: ds}

	group := app.Group("/members", middleware.OrganizationScope(ds))
	group.Get("/", mc.List)
	group.Get("/:id", mc.Get)
}
