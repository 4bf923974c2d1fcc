package database

import (
	"testing"

	"asteroids-backend/core/model"

	"github.com/stretchr/testify/assert"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         "mysql",
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "asteroids",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("SQLite In-Memory", func(t *testing.T) {
		cfg := Config{
			Driver: "sqlite",
			Name:   ":memory:",
		}

		db, err := Connect(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, db)

		err = db.AutoMigrate(model.All()...)
		assert.NoError(t, err)

		// Foreign keys must be enforced; an item level without a game or
		// item must be rejected.
		err = db.Create(&model.ItemLevel{GameID: 99, ItemID: 99, Level: 1}).Error
		assert.Error(t, err)
	})
}
