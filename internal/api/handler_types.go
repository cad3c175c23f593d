package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pallasgreen/issuedesk/internal/db"
	"github.com/pallasgreen/issuedesk/internal/media"
	"github.com/pallasgreen/issuedesk/internal/services"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	authCookieName = "issuedesk_auth"
	contextUserKey = "current_user"

	authTokenTTL = 24 * time.Hour
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	cookieSecure bool
	avatars      media.AvatarStore
	log          zerolog.Logger

	repositories   *db.Repositories
	accountService *services.AccountService
}

type authClaims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func NewHandler(database *gorm.DB, secretKey string, avatars media.AvatarStore, logger zerolog.Logger, cookieSecure bool) *Handler {
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		cookieSecure: cookieSecure,
		avatars:      avatars,
		log:          logger,
	}
	handler.ensureDependencies()
	return handler
}
