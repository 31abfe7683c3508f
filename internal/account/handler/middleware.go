package handler

import (
	"log/slog"
	"strings"
	"time"

	"github.com/KingTechFoundation/learn/internal/account/domain"
	"github.com/KingTechFoundation/learn/internal/account/service"
	"github.com/gofiber/fiber/v2"
)

const (
	localUserID    = "user_id"
	localSessionID = "session_id"
	localDeviceID  = "device_id"
)

type AuthGuard struct {
	tokens   service.TokenGenerator
	sessions domain.SessionRepository
}

func NewAuthGuard(tokens service.TokenGenerator, sessions domain.SessionRepository) *AuthGuard {
	return &AuthGuard{tokens: tokens, sessions: sessions}
}

// RequireSession validates the bearer token, cross-checks the server-side
// session row, and binds the request to the issuing device. Everything fails
// closed with 401; a device mismatch rejects without touching the stored
// session, so the legitimate device can keep using it.
func (g *AuthGuard) RequireSession(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return unauthorized(c, "Session not found.")
	}

	claims, err := g.tokens.VerifySessionToken(token)
	if err != nil {
		return unauthorized(c, "Invalid or expired token.")
	}

	session, err := g.sessions.Find(c.Context(), claims.UserID, token)
	if err != nil {
		slog.Error("session lookup failed", "user_id", claims.UserID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error."})
	}
	if session == nil {
		return unauthorized(c, "Session mismatch. Please log in again.")
	}

	deviceID := c.Get(fiber.HeaderUserAgent)
	if session.DeviceID != deviceID {
		return unauthorized(c, "Device mismatch. Please log in again.")
	}

	// Best effort; a failed touch never rejects a valid request.
	if err := g.sessions.Touch(c.Context(), claims.UserID, token, time.Now()); err != nil {
		slog.Warn("failed to touch session", "user_id", claims.UserID, "error", err)
	}

	c.Locals(localUserID, claims.UserID)
	c.Locals(localSessionID, token)
	c.Locals(localDeviceID, deviceID)

	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if auth == "" {
		return ""
	}

	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": message})
}
