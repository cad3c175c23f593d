package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/pallasgreen/issuedesk/internal/models"
	"github.com/pallasgreen/issuedesk/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": message})
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

// respondAccountError maps the service error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is a storage-level failure and becomes a
// generic 500.
func (handler *Handler) respondAccountError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidOrExpiredToken):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrInvalidCurrentPassword):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case isValidationError(err):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	handler.log.Error().Err(err).Str("path", c.Path()).Msg("account operation failed")
	return apiError(c, fiber.StatusInternalServerError, "something went wrong, please try again")
}

func isValidationError(err error) bool {
	return errors.Is(err, services.ErrFirstnameInvalid) ||
		errors.Is(err, services.ErrLastnameInvalid) ||
		errors.Is(err, services.ErrEmailInvalid) ||
		errors.Is(err, services.ErrRoleInvalid) ||
		errors.Is(err, services.ErrPasswordLength)
}
