package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	// Passwords are taken verbatim on every path, so one stored with
	// surrounding whitespace stays usable here just as it is at login.
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	if err := handler.accountService.ChangePassword(user.ID, input.CurrentPassword, input.NewPassword); err != nil {
		return handler.respondAccountError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "password changed successfully",
	})
}
