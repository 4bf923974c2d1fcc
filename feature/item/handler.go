package item

import (
	"errors"

	"asteroids-backend/core/logger"
	"asteroids-backend/core/payload"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the item catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the item routes. All routes require auth.
func (h *Handler) RegisterRoutes(app fiber.Router, auth fiber.Handler) {
	group := app.Group("/items", auth)
	group.Get("/", h.HandleList)
	group.Get("/:id<int>", h.HandleGet)
	group.Post("/", h.HandleCreate)
	group.Put("/:id<int>", h.HandleUpdate)
	group.Delete("/:id<int>", h.HandleDelete)
}

// HandleList returns all catalog items.
// @Summary List Items
// @Description Returns every item in the catalog.
// @Tags items
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Item
// @Failure 500 {object} map[string]string
// @Router /items [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	items, err := h.service.List()
	if err != nil {
		l.Error("Listing items failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.JSON(items)
}

// HandleGet returns a single catalog item.
// @Summary Get Item
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} model.Item
// @Failure 404 {object} map[string]string
// @Router /items/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")

	itm, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "item not found"})
		}
		logger.WithRayID(h.service.logger, c).Error("Fetching item failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.JSON(itm)
}

// HandleCreate creates a new catalog item with a client-supplied id.
// @Summary Create Item
// @Description Creates a catalog item. The id is supplied by the client.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body model.Item true "Item"
// @Success 201 {object} model.Item
// @Failure 400 {object} map[string]string
// @Router /items [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	body, err := payload.Parse(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "JSON body missing"})
	}

	itm, err := h.service.Create(body["id"], body["name"], body["description"], body["price"])
	if err != nil {
		var ferr payload.FieldError
		if errors.As(err, &ferr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ferr.Error()})
		}
		l.Error("Creating item failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	l.Info("Item created", zap.Int("item_id", itm.ID))
	return c.Status(fiber.StatusCreated).JSON(itm)
}

// HandleUpdate applies a partial patch to an item.
// @Summary Update Item
// @Description Partially updates an item. Absent or wrong-typed fields are skipped.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param patch body map[string]interface{} true "Fields to update"
// @Success 200 {object} model.Item
// @Failure 404 {object} map[string]string
// @Router /items/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")

	patch, err := payload.Parse(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "JSON body missing"})
	}

	itm, err := h.service.Update(id, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "item not found"})
		}
		logger.WithRayID(h.service.logger, c).Error("Updating item failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.JSON(itm)
}

// HandleDelete removes an item unless a game still holds it.
// @Summary Delete Item
// @Description Deletes an item. Fails while the item is referenced by any game.
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	id, _ := c.ParamsInt("id")

	if err := h.service.Delete(id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "item not found"})
		case errors.Is(err, ErrInUse):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "item is used in a game"})
		default:
			l.Error("Deleting item failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
		}
	}

	l.Info("Item deleted", zap.Int("item_id", id))
	return c.JSON(fiber.Map{"message": "item deleted"})
}
