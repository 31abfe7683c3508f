package handler

import (
	"errors"
	"log/slog"

	"github.com/KingTechFoundation/learn/internal/account/dto"
	"github.com/KingTechFoundation/learn/internal/account/service"
	autherror "github.com/KingTechFoundation/learn/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type AccountHandler struct {
	userService *service.UserService
	loginPage   string
}

// NewAccountHandler wires the user service into the HTTP surface. loginPage
// is where a successful email verification redirects to.
func NewAccountHandler(userService *service.UserService, loginPage string) *AccountHandler {
	return &AccountHandler{userService: userService, loginPage: loginPage}
}

func (h *AccountHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body.")
	}

	if input.FullName == "" || input.Email == "" || input.Password == "" {
		return badRequest(c, "All fields are required.")
	}

	_, err := h.userService.Signup(c.Context(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrEmailAlreadyRegistered) {
			return badRequest(c, "Email is already registered.")
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Signup successful. Please check your email to verify your account.",
	})
}

func (h *AccountHandler) VerifyEmail(c *fiber.Ctx) error {
	token := c.Params("token")

	if err := h.userService.VerifyEmail(c.Context(), token); err != nil {
		if errors.Is(err, autherror.ErrInvalidOrExpiredToken) {
			return badRequest(c, "Invalid or expired token.")
		}
		return serverError(c, err)
	}

	return c.Redirect(h.loginPage, fiber.StatusFound)
}

func (h *AccountHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var input dto.RequestPasswordResetInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body.")
	}

	if input.Email == "" {
		return badRequest(c, "Email is required.")
	}

	if err := h.userService.RequestPasswordReset(c.Context(), input.Email); err != nil {
		return serverError(c, err)
	}

	// Deliberately identical whether or not the email matched an account.
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "If an account exists for that email, a reset link has been sent.",
	})
}

func (h *AccountHandler) VerifyResetToken(c *fiber.Ctx) error {
	token := c.Params("token")

	if err := h.userService.VerifyResetToken(c.Context(), token); err != nil {
		if errors.Is(err, autherror.ErrInvalidOrExpiredToken) {
			return badRequest(c, "Invalid or expired token.")
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Token is valid."})
}

func (h *AccountHandler) ResetPassword(c *fiber.Ctx) error {
	token := c.Params("token")

	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body.")
	}

	if input.NewPassword == "" {
		return badRequest(c, "New password is required.")
	}

	if err := h.userService.ResetPassword(c.Context(), token, input.NewPassword); err != nil {
		if errors.Is(err, autherror.ErrInvalidOrExpiredToken) {
			return badRequest(c, "Invalid or expired token.")
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Password has been successfully reset."})
}

func (h *AccountHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body.")
	}

	if input.Email == "" || input.Password == "" {
		return badRequest(c, "Email and password are required.")
	}

	input.DeviceID = c.Get(fiber.HeaderUserAgent)

	resp, err := h.userService.Login(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found."})
		case errors.Is(err, autherror.ErrEmailNotVerified):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Please verify your email before logging in.",
			})
		case errors.Is(err, autherror.ErrAccountLocked):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Account locked. Reset your password to regain access.",
			})
		case errors.Is(err, autherror.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid email or password.",
			})
		default:
			return serverError(c, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AccountHandler) GetOnlineUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetOnlineUsers(c.Context())
	if err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(users)
}

func (h *AccountHandler) Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals(localUserID).(string)
	sessionID, _ := c.Locals(localSessionID).(string)

	if userID == "" || sessionID == "" {
		return badRequest(c, "User not logged in or session invalid.")
	}

	if err := h.userService.Logout(c.Context(), userID, sessionID); err != nil {
		if errors.Is(err, autherror.ErrSessionNotFound) {
			return badRequest(c, "User not logged in or session invalid.")
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Logout successful."})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": message})
}

// serverError logs the real cause and returns an opaque 500 body.
func serverError(c *fiber.Ctx, err error) error {
	slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error."})
}
