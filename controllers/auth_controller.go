package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beetsolutions/veteran-app/auth"
	"github.com/beetsolutions/veteran-app/store"
)

type AuthController struct {
	Sessions *auth.SessionManager
	Store    *store.DataStore
}

// Login authenticates a username-or-email plus password pair.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return badRequest(c, "Username and password are required")
	}

	result, err := ac.Sessions.Login(req.Username, req.Password)
	if err != nil {
		return errorJSON(c, err)
	}

	var currentOrganizationID interface{}
	if result.CurrentOrganizationID != "" {
		currentOrganizationID = result.CurrentOrganizationID
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"user": fiber.Map{
			"id":       result.User.ID,
			"username": result.User.Username,
			"email":    result.User.Email,
			"name":     result.User.Name,
		},
		"accessToken":           result.AccessToken,
		"refreshToken":          result.RefreshToken,
		"organizations":         result.Organizations,
		"currentOrganizationId": currentOrganizationID,
	})
}

// Refresh exchanges a refresh token for a new access token.
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.RefreshToken == "" {
		return badRequest(c, "Refresh token required")
	}

	accessToken, err := ac.Sessions.Refresh(req.RefreshToken)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Token refreshed successfully",
		"accessToken": accessToken,
	})
}

// Logout revokes the presented refresh token.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.RefreshToken == "" {
		return badRequest(c, "Refresh token required")
	}

	ac.Sessions.Logout(req.RefreshToken)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out",
	})
}

// ForgotPassword acknowledges every request identically so account
// emails cannot be enumerated.
func (ac *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Email == "" {
		return badRequest(c, "Email is required")
	}

	message := ac.Sessions.ForgotPassword(req.Email)

	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// Organizations lists the authenticated user's organizations.
func (ac *AuthController) Organizations(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	user, ok := ac.Store.FindUserByID(userID)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid token",
		})
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"organizations": ac.Store.OrganizationsByIDs(user.OrganizationIDs),
	})
}

// SwitchOrganization selects the user's current organization.
func (ac *AuthController) SwitchOrganization(c *fiber.Ctx) error {
	var req struct {
		OrganizationID string `json:"organizationId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.OrganizationID == "" {
		return badRequest(c, "Organization ID is required")
	}

	userID, _ := c.Locals("user_id").(string)
	org, err := ac.Sessions.SwitchOrganization(userID, req.OrganizationID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"success":               true,
		"message":               "Organization switched successfully",
		"currentOrganizationId": org.ID,
		"organization":          org,
	})
}
