package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/beetsolutions/veteran-app/scheduler"
	"github.com/beetsolutions/veteran-app/store"
)

type HostingController struct {
	Store *store.DataStore

	// Now is overridable in tests; nil means time.Now.
	Now func() time.Time
}

func (hc *HostingController) now() time.Time {
	if hc.Now != nil {
		return hc.Now()
	}
	return time.Now()
}

// Current returns the hosting period covering today.
func (hc *HostingController) Current(c *fiber.Ctx) error {
	return hc.schedule(c, false)
}

// Next returns the hosting period after the current one.
func (hc *HostingController) Next(c *fiber.Ctx) error {
	return hc.schedule(c, true)
}

func (hc *HostingController) schedule(c *fiber.Ctx, wantNext bool) error {
	pool := hc.Store.ActiveMembers(organizationID(c))
	period, err := scheduler.ComputeSchedule(hc.now(), wantNext, pool)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(period)
}

// MarkPayment records a contribution for one of the current period's
// hosts. Members outside the current host trio are rejected.
func (hc *HostingController) MarkPayment(c *fiber.Ctx) error {
	var req struct {
		MemberID   string `json:"memberId"`
		ScheduleID string `json:"scheduleId"`
		IsPaid     *bool  `json:"isPaid"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.MemberID == "" || req.ScheduleID == "" || req.IsPaid == nil {
		return badRequest(c, "memberId, scheduleId and isPaid are required")
	}

	orgID := organizationID(c)
	pool := hc.Store.ActiveMembers(orgID)
	period, err := scheduler.ComputeSchedule(hc.now(), false, pool)
	if err != nil {
		return errorJSON(c, err)
	}

	isHost := false
	for _, host := range period.Hosts {
		if host.ID == req.MemberID {
			isHost = true
			break
		}
	}
	if !isHost {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Member is not a host for the current period",
		})
	}

	member, err := hc.Store.MarkPayment(req.MemberID, orgID, *req.IsPaid)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"member":  member,
	})
}
