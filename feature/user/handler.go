package user

import (
	"errors"

	"asteroids-backend/core/logger"
	"asteroids-backend/core/middleware/auth"
	"asteroids-backend/core/payload"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for account management.
type Handler struct {
	service *Service
	authCfg auth.Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, authCfg auth.Config) *Handler {
	return &Handler{service: service, authCfg: authCfg}
}

// RegisterRoutes registers the user routes. Registration and login are
// public; profile and account deletion require auth.
func (h *Handler) RegisterRoutes(app fiber.Router, authMW fiber.Handler) {
	group := app.Group("/user")
	group.Post("/", h.HandleRegister)
	group.Post("/login", h.HandleLogin)
	group.Get("/", authMW, h.HandleProfile)
	group.Delete("/", authMW, h.HandleDelete)
}

// HandleRegister creates a new account.
// @Summary Register
// @Description Registers a new user account.
// @Tags user
// @Accept json
// @Produce json
// @Param credentials body map[string]string true "Username and password"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /user [post]
func (h *Handler) HandleRegister(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	body, err := payload.Parse(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "JSON body missing"})
	}
	username, ok := payload.String(body, "username")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "username missing"})
	}
	password, ok := payload.String(body, "password")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "password missing"})
	}

	if err := h.service.Register(username, password); err != nil {
		var ferr payload.FieldError
		if errors.As(err, &ferr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ferr.Error()})
		}
		l.Error("Registration failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	l.Info("User registered", zap.String("username", username))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": "user created"})
}

// HandleLogin verifies credentials and issues an access token.
// @Summary Login
// @Description Verifies credentials and returns a bearer token.
// @Tags user
// @Accept json
// @Produce json
// @Param credentials body map[string]string true "Username and password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /user/login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	body, err := payload.Parse(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "JSON body missing"})
	}
	username, ok := payload.String(body, "username")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "username missing"})
	}
	password, ok := payload.String(body, "password")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "password missing"})
	}

	account, err := h.service.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, ErrBadCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "username or password wrong"})
		}
		l.Error("Login failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	token, err := auth.IssueToken(h.authCfg, account.ID)
	if err != nil {
		l.Error("Token signing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	l.Info("User logged in", zap.Uint("user_id", account.ID))
	return c.JSON(fiber.Map{"access_token": token})
}

// HandleProfile returns the authenticated user's profile.
// @Summary Profile
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /user [get]
func (h *Handler) HandleProfile(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	return c.JSON(fiber.Map{"username": user.Username})
}

// HandleDelete removes the caller's account and everything it owns.
// @Summary Delete Account
// @Description Deletes the authenticated user, cascading to their games and item levels.
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /user [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	user := auth.CurrentUser(c)

	if err := h.service.Delete(user.ID); err != nil {
		l.Error("Account deletion failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	l.Info("User deleted", zap.Uint("user_id", user.ID))
	return c.JSON(fiber.Map{"success": "user deleted"})
}
