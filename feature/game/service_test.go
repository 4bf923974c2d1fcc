package game

import (
	"testing"

	"asteroids-backend/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, name string) model.User {
	t.Helper()

	user := model.User{Username: name, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func gameBody(items ...any) map[string]any {
	return map[string]any{
		"score":               100,
		"coins":               5,
		"lives":               3,
		"ended":               false,
		"enemy_spawn_timeout": 30,
		"items":               items,
	}
}

func TestCreateGame(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, zap.NewNop())
	user := seedUser(t, db, "player")

	created, err := svc.Create(user.ID, gameBody(laserEntry(2)))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Len(t, created.Items, 1)

	fetched, err := svc.Get(user.ID, int(created.ID))
	require.NoError(t, err)
	assert.Equal(t, 100, fetched.Score)
	assert.Len(t, fetched.Items, 1)
	assert.Equal(t, 2, fetched.Items[0].Level)
	assert.Equal(t, "Laser", fetched.Items[0].Item.Name)
	assert.Equal(t, 10, fetched.Items[0].Item.Price)
}

func TestCreateGameRequiredFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, zap.NewNop())
	user := seedUser(t, db, "player")

	for _, field := range []string{"score", "coins", "lives", "ended", "enemy_spawn_timeout"} {
		t.Run(field, func(t *testing.T) {
			body := gameBody()
			delete(body, field)

			_, err := svc.Create(user.ID, body)
			assert.EqualError(t, err, field+" missing")
		})
	}

	t.Run("ended must be boolean", func(t *testing.T) {
		body := gameBody()
		body["ended"] = 1

		_, err := svc.Create(user.ID, body)
		assert.EqualError(t, err, "ended missing")
	})

	t.Run("zero values accepted", func(t *testing.T) {
		body := map[string]any{
			"score": 0, "coins": 0, "lives": 0, "ended": true, "enemy_spawn_timeout": 0,
		}

		created, err := svc.Create(user.ID, body)
		require.NoError(t, err)
		assert.Equal(t, 0, created.Score)
		assert.Equal(t, 0, created.Lives)
		assert.Empty(t, created.Items)
	})
}

func TestCreateGameAbortsAtomically(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, zap.NewNop())
	user := seedUser(t, db, "player")

	// Entry 2 of 3 is missing its level; nothing may persist
	bad := map[string]any{"item": map[string]any{"id": 2, "name": "Shield", "description": "d", "price": 5}}
	_, err := svc.Create(user.ID, gameBody(laserEntry(1), bad, laserEntry(3)))
	assert.EqualError(t, err, "Item level missing")

	var games, items, levels int64
	db.Model(&model.Game{}).Count(&games)
	db.Model(&model.Item{}).Count(&items)
	db.Model(&model.ItemLevel{}).Count(&levels)
	assert.Zero(t, games)
	assert.Zero(t, items)
	assert.Zero(t, levels)
}

func TestUpdateGamePartialPatch(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, zap.NewNop())
	user := seedUser(t, db, "player")

	created, err := svc.Create(user.ID, gameBody())
	require.NoError(t, err)

	patch := map[string]any{
		"score": 250.5,  // floats are accepted and truncated
		"coins": "many", // wrong type, skipped
		"lives": 1,
		"ended": "yes", // wrong type, skipped
	}
	updated, err := svc.Update(user.ID, int(created.ID), patch)
	require.NoError(t, err)
	assert.Equal(t, 250, updated.Score)
	assert.Equal(t, 5, updated.Coins)
	assert.Equal(t, 1, updated.Lives)
	assert.False(t, updated.Ended)
	assert.Equal(t, 30, updated.EnemySpawnTimeout)
}

func TestUpdateGameReplacesItems(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, zap.NewNop())
	user := seedUser(t, db, "player")

	shield := map[string]any{"level": 1, "item": map[string]any{
		"id": 2, "name": "Shield", "description": "Absorbs one hit", "price": 5,
	}}
	created, err := svc.Create(user.ID, gameBody(laserEntry(2), shield))
	require.NoError(t, err)

	// Resubmitting only the laser replaces the set and bumps its level
	updated, err := svc.Update(user.ID, int(created.ID), map[string]any{"items": []any{laserEntry(4)}})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 1, updated.Items[0].ItemID)
	assert.Equal(t, 4, updated.Items[0].Level)

	// The dropped row is gone but the catalog item survives
	var levels int64
	db.Model(&model.ItemLevel{}).Where("game_id = ?", created.ID).Count(&levels)
	assert.EqualValues(t, 1, levels)
	assert.NoError(t, db.First(&model.Item{}, 2).Error)
}

func TestUpdateGameIdempotentItemLevels(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, zap.NewNop())
	user := seedUser(t, db, "player")

	created, err := svc.Create(user.ID, gameBody(laserEntry(2)))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		updated, err := svc.Update(user.ID, int(created.ID), map[string]any{"items": []any{laserEntry(7)}})
		require.NoError(t, err)
		require.Len(t, updated.Items, 1)
		assert.Equal(t, 7, updated.Items[0].Level)
	}
}

func TestUpdateGameAbortKeepsOldState(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, zap.NewNop())
	user := seedUser(t, db, "player")

	created, err := svc.Create(user.ID, gameBody(laserEntry(2)))
	require.NoError(t, err)

	bad := map[string]any{"level": 1} // no item
	_, err = svc.Update(user.ID, int(created.ID), map[string]any{
		"score": 999,
		"items": []any{bad},
	})
	assert.EqualError(t, err, "Item missing")

	unchanged, err := svc.Get(user.ID, int(created.ID))
	require.NoError(t, err)
	assert.Equal(t, 100, unchanged.Score)
	require.Len(t, unchanged.Items, 1)
	assert.Equal(t, 2, unchanged.Items[0].Level)
}

func TestUpdateGameNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, zap.NewNop())
	owner := seedUser(t, db, "owner")
	other := seedUser(t, db, "other")

	created, err := svc.Create(owner.ID, gameBody())
	require.NoError(t, err)

	_, err = svc.Update(owner.ID, 9999, map[string]any{"score": 1})
	assert.ErrorIs(t, err, ErrNotFound)

	// A foreign game behaves like a missing one
	_, err = svc.Update(other.ID, int(created.ID), map[string]any{"score": 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, zap.NewNop())
	owner := seedUser(t, db, "owner")
	other := seedUser(t, db, "other")

	created, err := svc.Create(owner.ID, gameBody())
	require.NoError(t, err)

	_, err = svc.Get(other.ID, int(created.ID))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLatest(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, zap.NewNop())
	user := seedUser(t, db, "player")

	latest, err := svc.Latest(user.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	first, err := svc.Create(user.ID, gameBody())
	require.NoError(t, err)
	second, err := svc.Create(user.ID, gameBody())
	require.NoError(t, err)
	require.Greater(t, second.ID, first.ID)

	latest, err = svc.Latest(user.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second.ID, latest.ID)
}

func TestDeleteGame(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, zap.NewNop())
	user := seedUser(t, db, "player")

	// Deleting a game that never existed still succeeds
	assert.NoError(t, svc.Delete(user.ID, 1234))

	created, err := svc.Create(user.ID, gameBody(laserEntry(2)))
	require.NoError(t, err)

	assert.NoError(t, svc.Delete(user.ID, int(created.ID)))
	_, err = svc.Get(user.ID, int(created.ID))
	assert.ErrorIs(t, err, ErrNotFound)

	// Item levels cascade, the catalog item stays
	var levels int64
	db.Model(&model.ItemLevel{}).Count(&levels)
	assert.Zero(t, levels)
	assert.NoError(t, db.First(&model.Item{}, 1).Error)

	// Deleting twice is fine
	assert.NoError(t, svc.Delete(user.ID, int(created.ID)))
}
