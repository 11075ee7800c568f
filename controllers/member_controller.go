package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beetsolutions/veteran-app/store"
)

type MemberController struct {
	Store *store.DataStore
}

func (mc *MemberController) List(c *fiber.Ctx) error {
	return c.JSON(mc.Store.MembersByOrganization(organizationID(c)))
}

func (mc *MemberController) Get(c *fiber.Ctx) error {
	member, ok := mc.Store.MemberByID(c.Params("id"), organizationID(c))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Member not found",
		})
	}
	return c.JSON(member)
}
