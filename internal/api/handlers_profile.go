package api

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pallasgreen/issuedesk/internal/models"
	"github.com/pallasgreen/issuedesk/internal/services"
)

type profileResponse struct {
	models.User
	TotalCreatedIssues int `json:"total_created_issues"`
}

func profilePayload(user *models.User) profileResponse {
	return profileResponse{User: *user, TotalCreatedIssues: user.TotalCreatedIssues()}
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	profile, err := handler.accountService.ProfileByID(user.ID)
	if err != nil {
		return handler.respondAccountError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    profilePayload(&profile),
	})
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid profile input")
	}

	update := services.ProfileUpdate{}
	if firstname := strings.TrimSpace(input.Firstname); firstname != "" {
		update.Firstname = &firstname
	}
	if lastname := strings.TrimSpace(input.Lastname); lastname != "" {
		update.Lastname = &lastname
	}
	if email := strings.TrimSpace(input.Email); email != "" {
		update.Email = &email
	}

	previousAvatar := user.Avatar
	if fileHeader, err := c.FormFile("avatar"); err == nil && fileHeader != nil {
		location, uploadErr := handler.storeAvatarUpload(c, fileHeader)
		if uploadErr != nil {
			handler.log.Error().Err(uploadErr).Uint("user_id", user.ID).Msg("avatar upload failed")
			return apiError(c, fiber.StatusInternalServerError, "failed to upload avatar")
		}
		update.Avatar = &location
	}

	handler.ensureDependencies()
	updated, err := handler.accountService.UpdateProfile(user.ID, update)
	if err != nil {
		return handler.respondAccountError(c, err)
	}

	// Best-effort cleanup of the replaced avatar; a failure here leaves an
	// orphaned file but never fails the update.
	if update.Avatar != nil && user.HasCustomAvatar() && previousAvatar != updated.Avatar {
		if err := handler.avatars.Remove(c.Context(), previousAvatar); err != nil {
			handler.log.Warn().Err(err).Str("avatar", previousAvatar).Msg("failed to remove previous avatar")
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "profile updated successfully",
		"data":    updated,
	})
}

func (handler *Handler) storeAvatarUpload(c *fiber.Ctx, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	return handler.avatars.Upload(c.Context(), key, file, contentType)
}
