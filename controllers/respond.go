package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beetsolutions/veteran-app/apperr"
)

// errorJSON writes an error in the stable {success, message} shape.
func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(apperr.StatusCode(err)).JSON(fiber.Map{
		"success": false,
		"message": apperr.UserMessage(err),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func organizationID(c *fiber.Ctx) string {
	id, _ := c.Locals("organization_id").(string)
	return id
}
