package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/pallasgreen/issuedesk/internal/api"
	"github.com/pallasgreen/issuedesk/internal/config"
	"github.com/pallasgreen/issuedesk/internal/db"
	"github.com/pallasgreen/issuedesk/internal/logging"
	"github.com/pallasgreen/issuedesk/internal/media"
)

const avatarRoutePrefix = "/media/avatars"

func main() {
	log := logging.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config init failed")
	}

	database, err := db.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	app := fiber.New(fiber.Config{
		AppName:               "Issuedesk",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	var avatars media.AvatarStore
	if cfg.S3Configured() {
		store, err := media.NewS3Store(context.Background(), media.S3Config{
			Endpoint:      cfg.S3Endpoint,
			AccessKeyID:   cfg.S3AccessKeyID,
			SecretKey:     cfg.S3SecretKey,
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			UseSSL:        cfg.S3UseSSL,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("s3 avatar store init failed")
		}
		avatars = store
		log.Info().Str("bucket", cfg.S3Bucket).Msg("avatars stored in object storage")
	} else {
		store, err := media.NewDiskStore(cfg.AvatarDir, avatarRoutePrefix)
		if err != nil {
			log.Fatal().Err(err).Msg("disk avatar store init failed")
		}
		avatars = store
		app.Static(avatarRoutePrefix, cfg.AvatarDir)
		log.Info().Str("dir", cfg.AvatarDir).Msg("avatars stored on local disk")
	}

	handler := api.NewHandler(database, cfg.SecretKey, avatars, log, cfg.CookieSecure)
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("db", cfg.DatabasePath).Msg("issuedesk listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}
