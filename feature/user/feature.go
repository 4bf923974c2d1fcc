package user

import (
	"asteroids-backend/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature bundles the user service and handler for the loader.
type Feature struct {
	handler *Handler
	auth    fiber.Handler
}

// NewFeature wires the user feature.
func NewFeature(db *gorm.DB, logger *zap.Logger, authCfg auth.Config, authMW fiber.Handler) *Feature {
	service := NewService(db, logger)
	return &Feature{handler: NewHandler(service, authCfg), auth: authMW}
}

func (f *Feature) Name() string { return "user" }

func (f *Feature) IsEnabled() bool { return true }

// Load registers the user routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app, f.auth)
	return nil
}
