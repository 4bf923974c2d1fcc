package cmd

import (
	"log"

	"asteroids-backend/core/config"
	"asteroids-backend/core/database"
	"asteroids-backend/core/logger"
	"asteroids-backend/core/model"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long:  `Connects to the configured database and migrates the user, game, item and item_level tables without starting the server.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}

		if err := db.AutoMigrate(model.All()...); err != nil {
			logg.Fatal("Schema migration failed", zap.Error(err))
		}
		logg.Info("Schema migrated", zap.String("database", cfg.Database.Name))
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
