package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beetsolutions/veteran-app/controllers"
	"github.com/beetsolutions/veteran-app/middleware"
	"github.com/beetsolutions/veteran-app/store"
)

func HostingRoutes(app *fiber.App, ds *store.DataStore) {
	hc := &controllers.HostingController{Store: ds}

	group := app.Group("/hosting", middleware.OrganizationScope(ds))
	group.Get("/current", hc.Current)
	group.Get("/next", hc.Next)
	group.Post("/mark-payment", hc.MarkPayment)
}
