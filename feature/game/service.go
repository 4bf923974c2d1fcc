package game

import (
	"errors"
	"fmt"

	"asteroids-backend/core/model"
	"asteroids-backend/core/payload"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when the game does not exist or belongs to
// another user. The two cases are indistinguishable to the caller.
var ErrNotFound = errors.New("game not found")

// Service owns game records and orchestrates item reconciliation inside
// one transaction per request.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new game service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// List returns all games owned by the user, items included.
func (s *Service) List(userID uint) ([]model.Game, error) {
	games := make([]model.Game, 0)
	err := s.db.Preload("Items.Item").Where("user_id = ?", userID).Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

// Latest returns the most recently created game of the user (highest id),
// or nil when the user has none.
func (s *Service) Latest(userID uint) (*model.Game, error) {
	var game model.Game
	err := s.db.Preload("Items.Item").Where("user_id = ?", userID).Order("id DESC").First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest game: %w", err)
	}
	return &game, nil
}

// Get returns one game scoped to its owner.
func (s *Service) Get(userID uint, id int) (*model.Game, error) {
	var game model.Game
	err := s.db.Preload("Items.Item").Where("id = ? AND user_id = ?", id, userID).First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch game: %w", err)
	}
	return &game, nil
}

// Create inserts a new game with its reconciled item list as one atomic
// unit. The required scalar fields must be present (an explicit 0 counts),
// ended must be a boolean, and items defaults to an empty list. Any
// reconciliation failure rolls back the game row itself.
func (s *Service) Create(userID uint, body map[string]any) (*model.Game, error) {
	score, ok := payload.Number(body, "score")
	if !ok {
		return nil, payload.FieldError("score missing")
	}
	coins, ok := payload.Int(body, "coins")
	if !ok {
		return nil, payload.FieldError("coins missing")
	}
	lives, ok := payload.Int(body, "lives")
	if !ok {
		return nil, payload.FieldError("lives missing")
	}
	ended, ok := payload.Bool(body, "ended")
	if !ok {
		return nil, payload.FieldError("ended missing")
	}
	spawnTimeout, ok := payload.Number(body, "enemy_spawn_timeout")
	if !ok {
		return nil, payload.FieldError("enemy_spawn_timeout missing")
	}
	entries, _ := payload.Slice(body, "items")

	var game model.Game
	err := s.db.Transaction(func(tx *gorm.DB) error {
		game = model.Game{
			UserID:            userID,
			Score:             int(score),
			Coins:             coins,
			Lives:             lives,
			Ended:             ended,
			EnemySpawnTimeout: int(spawnTimeout),
		}
		// Insert without associations first to obtain the generated id the
		// reconciler keys its rows on.
		if err := tx.Omit(clause.Associations).Create(&game).Error; err != nil {
			return fmt.Errorf("failed to create game: %w", err)
		}

		levels, err := reconcileItemLevels(tx, entries, game.ID)
		if err != nil {
			return err
		}
		game.Items = levels
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// Update applies a partial patch to an owned game. Each scalar field is
// applied only when present with the expected type; score and
// enemy_spawn_timeout additionally accept fractional numbers, which are
// truncated. A non-empty items list is reconciled and fully replaces the
// game's item set. Everything commits atomically.
func (s *Service) Update(userID uint, id int, body map[string]any) (*model.Game, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var game model.Game
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&game).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to fetch game: %w", err)
		}

		if score, ok := payload.Number(body, "score"); ok {
			game.Score = int(score)
		}
		if coins, ok := payload.Int(body, "coins"); ok {
			game.Coins = coins
		}
		if lives, ok := payload.Int(body, "lives"); ok {
			game.Lives = lives
		}
		if ended, ok := payload.Bool(body, "ended"); ok {
			game.Ended = ended
		}
		if spawnTimeout, ok := payload.Number(body, "enemy_spawn_timeout"); ok {
			game.EnemySpawnTimeout = int(spawnTimeout)
		}

		if entries, ok := payload.Slice(body, "items"); ok && len(entries) > 0 {
			levels, err := reconcileItemLevels(tx, entries, game.ID)
			if err != nil {
				return err
			}
			// The reconciled list replaces the item set: rows for item ids
			// not resubmitted are dropped.
			keep := make([]int, 0, len(levels))
			for _, lvl := range levels {
				keep = append(keep, lvl.ItemID)
			}
			if err := tx.Where("game_id = ? AND item_id NOT IN ?", game.ID, keep).
				Delete(&model.ItemLevel{}).Error; err != nil {
				return fmt.Errorf("failed to prune item levels: %w", err)
			}
		}

		if err := tx.Omit(clause.Associations).Save(&game).Error; err != nil {
			return fmt.Errorf("failed to update game: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID, id)
}

// Delete removes an owned game and its item levels. Deleting a game that
// does not exist reports success, so the operation is idempotent.
func (s *Service) Delete(userID uint, id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var game model.Game
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&game).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to fetch game: %w", err)
		}

		if err := tx.Where("game_id = ?", game.ID).Delete(&model.ItemLevel{}).Error; err != nil {
			return fmt.Errorf("failed to delete item levels: %w", err)
		}
		if err := tx.Delete(&game).Error; err != nil {
			return fmt.Errorf("failed to delete game: %w", err)
		}
		return nil
	})
}
