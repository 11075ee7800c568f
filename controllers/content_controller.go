package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beetsolutions/veteran-app/store"
)

// ContentController serves the organization's read-only content:
// officials, news, meetings and the constitution.
type ContentController struct {
	Store *store.DataStore
}

func (cc *ContentController) Officials(c *fiber.Ctx) error {
	return c.JSON(cc.Store.OfficialsByOrganization(organizationID(c)))
}

func (cc *ContentController) News(c *fiber.Ctx) error {
	return c.JSON(cc.Store.NewsByOrganization(organizationID(c)))
}

func (cc *ContentController) Meetings(c *fiber.Ctx) error {
	return c.JSON(cc.Store.MeetingsByOrganization(organizationID(c)))
}

func (cc *ContentController) Meeting(c *fiber.Ctx) error {
	meeting, ok := cc.Store.MeetingByID(c.Params("id"), organizationID(c))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Meeting not found",
		})
	}
	return c.JSON(meeting)
}

func (cc *ContentController) Constitution(c *fiber.Ctx) error {
	constitution, ok := cc.Store.ConstitutionByOrganization(organizationID(c))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Constitution not found",
		})
	}
	return c.JSON(constitution)
}
