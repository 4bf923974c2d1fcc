package user

import (
	"testing"

	"asteroids-backend/core/database"
	"asteroids-backend/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  string
	}{
		{"username too short", "ab", "secret", "username must be between 3 and 25 characters"},
		{"username too long", "abcdefghijklmnopqrstuvwxyz", "secret", "username must be between 3 and 25 characters"},
		{"password too short", "player", "abc", "password must be between 4 and 50 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			svc := NewService(db, zap.NewNop())

			err := svc.Register(tt.username, tt.password)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, zap.NewNop())

	require.NoError(t, svc.Register("player", "secret"))
	err := svc.Register("player", "other")
	assert.EqualError(t, err, "username already exists")
}

func TestRegisterHashesPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, zap.NewNop())

	require.NoError(t, svc.Register("player", "secret"))

	var stored model.User
	require.NoError(t, db.Where("username = ?", "player").First(&stored).Error)
	assert.NotEqual(t, "secret", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, zap.NewNop())
	require.NoError(t, svc.Register("player", "secret"))

	account, err := svc.Authenticate("player", "secret")
	require.NoError(t, err)
	assert.Equal(t, "player", account.Username)

	_, err = svc.Authenticate("player", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = svc.Authenticate("nobody", "secret")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, zap.NewNop())
	require.NoError(t, svc.Register("player", "secret"))

	var account model.User
	require.NoError(t, db.Where("username = ?", "player").First(&account).Error)

	require.NoError(t, db.Create(&model.Item{ID: 1, Name: "Laser", Description: "d", Price: 10}).Error)
	game := model.Game{UserID: account.ID, Lives: 3, EnemySpawnTimeout: 10}
	require.NoError(t, db.Create(&game).Error)
	require.NoError(t, db.Create(&model.ItemLevel{GameID: game.ID, ItemID: 1, Level: 2}).Error)

	require.NoError(t, svc.Delete(account.ID))

	var users, games, levels, items int64
	db.Model(&model.User{}).Count(&users)
	db.Model(&model.Game{}).Count(&games)
	db.Model(&model.ItemLevel{}).Count(&levels)
	db.Model(&model.Item{}).Count(&items)
	assert.Zero(t, users)
	assert.Zero(t, games)
	assert.Zero(t, levels)
	// Catalog items are shared and survive account deletion
	assert.EqualValues(t, 1, items)
}
