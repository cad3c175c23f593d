package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pallasgreen/issuedesk/internal/services"
)

func (handler *Handler) Signup(c *fiber.Ctx) error {
	input := signupInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	user, err := handler.accountService.Register(services.RegisterInput{
		Firstname: input.Firstname,
		Lastname:  input.Lastname,
		Email:     input.Email,
		Password:  input.Password,
		Role:      input.Role,
	})
	if err != nil {
		return handler.respondAccountError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "user registered successfully, please log in",
		"data":    user,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	user, err := handler.accountService.Authenticate(input.Email, input.Password)
	if err != nil {
		return handler.respondAccountError(c, err)
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Welcome back %s", user.Firstname),
	})
}

func (handler *Handler) Signout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "signed out successfully",
	})
}
