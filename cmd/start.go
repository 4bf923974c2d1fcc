package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"asteroids-backend/core/config"
	"asteroids-backend/core/database"
	"asteroids-backend/core/loader"
	"asteroids-backend/core/logger"
	"asteroids-backend/core/middleware/auth"
	"asteroids-backend/core/middleware/rayid"
	"asteroids-backend/core/middleware/reqcheck"
	"asteroids-backend/core/model"

	"asteroids-backend/feature/game"
	"asteroids-backend/feature/item"
	"asteroids-backend/feature/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "asteroids-backend/docs/swagger"
)

// @title Asteroids API
// @version 1.0
// @description Backend API for the Asteroids arcade game.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the game backend server",
	Long:  `Starts the HTTP server, migrates the schema and mounts all features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database and migrate the schema
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}
		if err := db.AutoMigrate(model.All()...); err != nil {
			logg.Fatal("Schema migration failed", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// Middleware Registration
		// RayID first so everything downstream can be traced
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Use(cors.New())
		app.Use(reqcheck.ContentType())

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// API routes live under the configurable prefix
		api := app.Group(cfg.Server.Prefix)
		api.Get("/healthz", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		authMW := auth.New(cfg.Auth, db)

		// Register Features
		mgr := loader.NewManager()
		mgr.Register(user.NewFeature(db, logg, cfg.Auth, authMW))
		mgr.Register(game.NewFeature(db, logg, authMW))
		mgr.Register(item.NewFeature(db, logg, authMW))

		if err := mgr.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port), zap.String("prefix", cfg.Server.Prefix))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
