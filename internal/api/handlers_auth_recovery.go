package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ForgotPassword issues a reset token for the account behind the supplied
// email. Mail delivery is an external collaborator that is not wired here, so
// the raw token travels back in the response payload; only its hash is
// persisted.
func (handler *Handler) ForgotPassword(c *fiber.Ctx) error {
	input := forgotPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	rawToken, err := handler.accountService.IssueResetToken(input.Email)
	if err != nil {
		return handler.respondAccountError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "password reset token issued",
		"reset_token": rawToken,
	})
}

func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Params("token"))

	input := resetPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	if err := handler.accountService.ConsumeResetToken(token, input.Password); err != nil {
		return handler.respondAccountError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "password reset successfully",
	})
}
