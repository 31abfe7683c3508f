package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KingTechFoundation/learn/config"
	"github.com/KingTechFoundation/learn/db"
	"github.com/KingTechFoundation/learn/internal/account/handler"
	repo "github.com/KingTechFoundation/learn/internal/account/repository/postgres"
	"github.com/KingTechFoundation/learn/internal/account/service"
	"github.com/KingTechFoundation/learn/internal/mailer"
	"github.com/gofiber/fiber/v2"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	ctx := context.Background()

	if err := db.Migrate(cfg.DBURL); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	userRepo := repo.NewUserRepository(dbPool)
	sessionRepo := repo.NewSessionRepository(dbPool)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.SessionExpiryMin)
	mailSender := mailer.NewSMTPMailer(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
	userService := service.NewUserService(userRepo, sessionRepo, tokenService, mailSender, cfg)

	accountHandler := handler.NewAccountHandler(userService, cfg.FrontendBaseURL+"/login")
	guard := handler.NewAuthGuard(tokenService, sessionRepo)

	app := fiber.New()
	handler.RegisterRoutes(app, accountHandler, guard)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
