package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beetsolutions/veteran-app/store"
)

// DefaultOrganizationID keeps the original unscoped routes working:
// requests that name no organization read from the first one.
const DefaultOrganizationID = "org1"

// OrganizationScope resolves the organization a request acts in, from
// the X-Organization-ID header or the organizationId query parameter,
// and rejects unknown ids before the handler runs.
func OrganizationScope(ds *store.DataStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		organizationID := c.Get("X-Organization-ID")
		if organizationID == "" {
			organizationID = c.Query("organizationId")
		}
		if organizationID == "" {
			organizationID = DefaultOrganizationID
		}

		if _, ok := ds.OrganizationByID(organizationID); !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Organization not found",
			})
		}

		c.Locals("organization_id", organizationID)
		return c.Next()
	}
}
