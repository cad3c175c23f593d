package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", handler.Signup)
	auth.Post("/login", handler.Login)
	auth.Post("/signout", handler.Signout)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/reset-password/:token", handler.ResetPassword)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Patch("", handler.UpdateProfile)
	profile.Patch("/change-password", handler.ChangePassword)

	api.Delete("/account", handler.AuthRequired, handler.DeleteAccount)
}
