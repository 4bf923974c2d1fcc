package game

import (
	"errors"

	"asteroids-backend/core/logger"
	"asteroids-backend/core/middleware/auth"
	"asteroids-backend/core/model"
	"asteroids-backend/core/payload"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for game sessions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the game routes. All routes require auth and are
// scoped to the authenticated owner.
func (h *Handler) RegisterRoutes(app fiber.Router, authMW fiber.Handler) {
	group := app.Group("/games", authMW)
	group.Get("/", h.HandleList)
	group.Get("/:id<int>", h.HandleGet)
	group.Post("/", h.HandleCreate)
	group.Put("/:id<int>", h.HandleUpdate)
	group.Delete("/:id<int>", h.HandleDelete)
}

// HandleList returns the caller's games.
// @Summary List Games
// @Description Returns all games of the authenticated user. With latest=true only the most recently created game is returned.
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param latest query boolean false "Return only the latest game"
// @Success 200 {array} model.Game
// @Failure 500 {object} map[string]string
// @Router /games [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	user := auth.CurrentUser(c)

	if c.Query("latest") == "true" {
		latest, err := h.service.Latest(user.ID)
		if err != nil {
			l.Error("Fetching latest game failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
		}
		games := make([]model.Game, 0, 1)
		if latest != nil {
			games = append(games, *latest)
		}
		return c.JSON(games)
	}

	games, err := h.service.List(user.ID)
	if err != nil {
		l.Error("Listing games failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.JSON(games)
}

// HandleGet returns one game of the caller.
// @Summary Get Game
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Success 200 {object} model.Game
// @Failure 404 {object} map[string]string
// @Router /games/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	id, _ := c.ParamsInt("id")

	game, err := h.service.Get(user.ID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game not found"})
		}
		logger.WithRayID(h.service.logger, c).Error("Fetching game failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.JSON(game)
}

// HandleCreate creates a game with its initial item list.
// @Summary Create Game
// @Description Creates a game from a full snapshot. The submitted item list is reconciled against the catalog inside the same transaction.
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param game body model.Game true "Game snapshot"
// @Success 201 {object} model.Game
// @Failure 400 {object} map[string]string
// @Router /games [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	user := auth.CurrentUser(c)

	body, err := payload.Parse(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "JSON body missing"})
	}

	game, err := h.service.Create(user.ID, body)
	if err != nil {
		var ferr payload.FieldError
		if errors.As(err, &ferr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ferr.Error()})
		}
		l.Error("Creating game failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	l.Info("Game created", zap.Uint("game_id", game.ID), zap.Uint("user_id", user.ID))
	return c.Status(fiber.StatusCreated).JSON(game)
}

// HandleUpdate applies a partial patch to a game.
// @Summary Update Game
// @Description Partially updates a game. Fields of the wrong type are skipped; a non-empty item list replaces the game's items.
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Param patch body map[string]interface{} true "Fields to update"
// @Success 200 {object} model.Game
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /games/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	user := auth.CurrentUser(c)
	id, _ := c.ParamsInt("id")

	body, err := payload.Parse(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "JSON body missing"})
	}

	game, err := h.service.Update(user.ID, id, body)
	if err != nil {
		var ferr payload.FieldError
		switch {
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game not found"})
		case errors.As(err, &ferr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ferr.Error()})
		default:
			l.Error("Updating game failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
		}
	}
	return c.JSON(game)
}

// HandleDelete removes a game. Deleting an absent game still succeeds.
// @Summary Delete Game
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /games/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	user := auth.CurrentUser(c)
	id, _ := c.ParamsInt("id")

	if err := h.service.Delete(user.ID, id); err != nil {
		l.Error("Deleting game failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	l.Info("Game deleted", zap.Int("game_id", id), zap.Uint("user_id", user.ID))
	return c.JSON(fiber.Map{"message": "game deleted"})
}
