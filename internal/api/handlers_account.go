package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	// Avatar cleanup happens before the record goes away and is best-effort:
	// an orphaned file is acceptable, a resurrected account is not.
	if user.HasCustomAvatar() {
		if err := handler.avatars.Remove(c.Context(), user.Avatar); err != nil {
			handler.log.Warn().Err(err).Str("avatar", user.Avatar).Msg("failed to remove avatar on account deletion")
		}
	}

	handler.ensureDependencies()
	if err := handler.accountService.DeleteAccount(user.ID); err != nil {
		return handler.respondAccountError(c, err)
	}

	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "account deleted successfully",
	})
}
