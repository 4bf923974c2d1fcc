package game

import (
	"errors"
	"fmt"

	"asteroids-backend/core/model"
	"asteroids-backend/core/payload"
	"asteroids-backend/feature/item"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reconcileItemLevels resolves a raw client-submitted list of {item, level}
// entries into item_level rows for the given game, creating missing catalog
// items and overwriting levels of rows the game already holds.
//
// It runs entirely inside the caller's open transaction and never commits.
// Entries are processed in input order and the first failure aborts the
// whole batch with no result, so the caller's rollback leaves no partial
// catalog or item_level state.
func reconcileItemLevels(tx *gorm.DB, entries []any, gameID uint) ([]model.ItemLevel, error) {
	result := make([]model.ItemLevel, 0, len(entries))
	for _, entry := range entries {
		lvl, err := reconcileItemLevel(tx, entry, gameID)
		if err != nil {
			return nil, err
		}
		result = append(result, *lvl)
	}
	return result, nil
}

// reconcileItemLevel resolves a single entry with get-or-create semantics at
// both the catalog-item and the item-level granularity.
func reconcileItemLevel(tx *gorm.DB, entry any, gameID uint) (*model.ItemLevel, error) {
	fields, ok := entry.(map[string]any)
	if !ok {
		return nil, payload.FieldError("Item level missing")
	}

	level, ok := payload.Int(fields, "level")
	if !ok {
		return nil, payload.FieldError("Item level missing")
	}

	rawItem, ok := payload.Object(fields, "item")
	if !ok || len(rawItem) == 0 {
		return nil, payload.FieldError("Item missing")
	}

	// Resolve the catalog item: reuse an existing row when the entry names
	// a known id, otherwise create one from the submitted fields.
	var itm *model.Item
	if id, ok := payload.Int(rawItem, "id"); ok {
		var existing model.Item
		err := tx.First(&existing, id).Error
		switch {
		case err == nil:
			itm = &existing
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("failed to look up item: %w", err)
		}
	}
	if itm == nil {
		created, err := item.CreateTx(tx, rawItem["id"], rawItem["name"], rawItem["description"], rawItem["price"])
		if err != nil {
			var ferr payload.FieldError
			if errors.As(err, &ferr) {
				return nil, payload.FieldError("Error creating item: " + ferr.Error())
			}
			return nil, err
		}
		itm = created
	}

	// Get-or-create the (game, item) row. An existing row keeps its
	// identity and only the level is overwritten.
	var lvl model.ItemLevel
	err := tx.Where("item_id = ? AND game_id = ?", itm.ID, gameID).First(&lvl).Error
	switch {
	case err == nil:
		lvl.Level = level
		if err := tx.Model(&lvl).Update("level", level).Error; err != nil {
			return nil, fmt.Errorf("failed to update item level: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		lvl = model.ItemLevel{GameID: gameID, ItemID: itm.ID, Level: level}
		if err := tx.Omit(clause.Associations).Create(&lvl).Error; err != nil {
			return nil, fmt.Errorf("failed to create item level: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to look up item level: %w", err)
	}

	// Embed the resolved item so the result serializes without a re-fetch.
	lvl.Item = *itm
	return &lvl, nil
}
