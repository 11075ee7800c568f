package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beetsolutions/veteran-app/controllers"
	"github.com/beetsolutions/veteran-app/middleware"
	"github.com/beetsolutions/veteran-app/store"
)

func ContentRoutes(app *fiber.App, ds *store.DataStore) {
	cc := &controllers.ContentController{Store: ds}
	sc := &controllers.SoccerController{Store: ds}

	orgScoped := middleware.OrganizationScope(ds)
	app.Get("/officials", orgScoped, cc.Officials)
	app.Get("/news", orgScoped, cc.News)
	app.Get("/meetings", orgScoped, cc.Meetings)
	app.Get("/meetings/:id", orgScoped, cc.Meeting)
	app.Get("/constitution", orgScoped, cc.Constitution)

	app.Get("/soccer/current", sc.Current)
	app.Get("/soccer/history", sc.History)
}
