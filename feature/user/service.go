package user

import (
	"errors"
	"fmt"

	"asteroids-backend/core/model"
	"asteroids-backend/core/payload"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrBadCredentials is returned when the username or password is wrong.
// The two cases are deliberately not distinguished.
var ErrBadCredentials = errors.New("username or password wrong")

// Service implements account management.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new user service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Register validates the credentials and stores a new account with a bcrypt
// password hash.
func (s *Service) Register(username, password string) error {
	if len(username) < 3 || len(username) > 25 {
		return payload.FieldError("username must be between 3 and 25 characters")
	}
	if len(password) < 4 || len(password) > 50 {
		return payload.FieldError("password must be between 4 and 50 characters")
	}

	var existing model.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return payload.FieldError("username already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(&model.User{Username: username, Password: string(hash)}).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Authenticate verifies a username/password pair and returns the account.
func (s *Service) Authenticate(username, password string) (*model.User, error) {
	var user model.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	return &user, nil
}

// Delete removes an account with everything it owns: all its games and
// those games' item levels, in one transaction.
func (s *Service) Delete(userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		gameIDs := tx.Model(&model.Game{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("game_id IN (?)", gameIDs).Delete(&model.ItemLevel{}).Error; err != nil {
			return fmt.Errorf("failed to delete item levels: %w", err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.Game{}).Error; err != nil {
			return fmt.Errorf("failed to delete games: %w", err)
		}
		if err := tx.Delete(&model.User{}, userID).Error; err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}
