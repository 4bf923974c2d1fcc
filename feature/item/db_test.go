package item

import (
	"testing"

	"asteroids-backend/core/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestListQuery(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())

	rows := sqlmock.NewRows([]string{"id", "name", "description", "price"})
	rows.AddRow(1, "Laser", "Front cannon", 10)
	rows.AddRow(2, "Shield", "Absorbs one hit", 5)

	mock.ExpectQuery("SELECT \\* FROM `item`").WillReturnRows(rows)

	items, err := svc.List()
	assert.NoError(t, err)
	assert.Equal(t, []model.Item{
		{ID: 1, Name: "Laser", Description: "Front cannon", Price: 10},
		{ID: 2, Name: "Shield", Description: "Absorbs one hit", Price: 5},
	}, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountReferencesQuery(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `item` WHERE `item`.`id` = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price"}).
			AddRow(1, "Laser", "Front cannon", 10))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `item_level` WHERE item_id = \\?").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectRollback()

	svc := NewService(db, zap.NewNop())
	err := svc.Delete(1)
	assert.ErrorIs(t, err, ErrInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}
