package item

import (
	"errors"
	"fmt"

	"asteroids-backend/core/model"
	"asteroids-backend/core/payload"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound is returned when the requested item does not exist.
var ErrNotFound = errors.New("item not found")

// ErrInUse is returned when a delete is rejected because the item is still
// held by at least one game.
var ErrInUse = errors.New("item is used in a game")

// Service implements the catalog store operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// List returns every catalog item.
func (s *Service) List() ([]model.Item, error) {
	var items []model.Item
	if err := s.db.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// Get returns a single catalog item by id.
func (s *Service) Get(id int) (*model.Item, error) {
	var item model.Item
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch item: %w", err)
	}
	return &item, nil
}

// Create validates and inserts a new catalog item on the service's own
// connection. See CreateTx for the transactional variant.
func (s *Service) Create(id, name, description, price any) (*model.Item, error) {
	return CreateTx(s.db, id, name, description, price)
}

// CreateTx validates the raw field values and inserts a new catalog item
// inside the given transaction. Each missing or malformed field yields a
// distinct error naming the field, checked in a fixed order so callers can
// report the specific cause. The item id is supplied by the client, not
// generated.
func CreateTx(tx *gorm.DB, id, name, description, price any) (*model.Item, error) {
	idInt, ok := payload.AsInt(id)
	if !ok {
		return nil, payload.FieldError("id missing")
	}
	nameStr, ok := name.(string)
	if !ok || nameStr == "" {
		return nil, payload.FieldError("name missing")
	}
	descStr, ok := description.(string)
	if !ok || descStr == "" {
		return nil, payload.FieldError("description missing")
	}
	priceInt, ok := payload.AsInt(price)
	if !ok || priceInt == 0 {
		return nil, payload.FieldError("price missing")
	}

	item := model.Item{ID: idInt, Name: nameStr, Description: descStr, Price: priceInt}
	if err := tx.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return &item, nil
}

// Update applies a partial patch to an existing item. Only fields present
// with a usable value overwrite the stored one; anything else is skipped
// without error.
func (s *Service) Update(id int, patch map[string]any) (*model.Item, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if name, ok := payload.String(patch, "name"); ok && name != "" {
		item.Name = name
	}
	if description, ok := payload.String(patch, "description"); ok && description != "" {
		item.Description = description
	}
	if price, ok := payload.Int(patch, "price"); ok && price != 0 {
		item.Price = price
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return item, nil
}

// Delete removes a catalog item. The delete is rejected with ErrInUse while
// any item_level row still references the item.
func (s *Service) Delete(id int) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&model.ItemLevel{}).Where("item_id = ?", item.ID).Count(&refs).Error; err != nil {
			return fmt.Errorf("failed to count item references: %w", err)
		}
		if refs > 0 {
			return ErrInUse
		}
		if err := tx.Delete(&model.Item{}, item.ID).Error; err != nil {
			return fmt.Errorf("failed to delete item: %w", err)
		}
		return nil
	})
}
