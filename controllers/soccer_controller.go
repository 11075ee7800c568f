package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beetsolutions/veteran-app/store"
)

type SoccerController struct {
	Store *store.DataStore
}

func (sc *SoccerController) Current(c *fiber.Ctx) error {
	return c.JSON(sc.Store.CurrentSoccerMatch())
}

func (sc *SoccerController) History(c *fiber.Ctx) error {
	return c.JSON(sc.Store.SoccerHistory())
}
