package item

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature bundles the item catalog service and handler for the loader.
type Feature struct {
	handler *Handler
	auth    fiber.Handler
}

// NewFeature wires the catalog feature.
func NewFeature(db *gorm.DB, logger *zap.Logger, auth fiber.Handler) *Feature {
	service := NewService(db, logger)
	return &Feature{handler: NewHandler(service), auth: auth}
}

func (f *Feature) Name() string { return "items" }

func (f *Feature) IsEnabled() bool { return true }

// Load registers the item routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app, f.auth)
	return nil
}
