package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestFindByUserID_OrdersByPriorityThenCreation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEmergencyContactRepository()

	userID := uuid.New()

	// The priority ordering with created_at tie-break is the contract the
	// notification fan-out depends on.
	mock.ExpectQuery(`SELECT \* FROM "emergency_contacts" WHERE user_id = .+ ORDER BY priority ASC, created_at ASC`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "phone", "priority"}).
			AddRow(uuid.New(), userID, "Maria Silva", "+2389911111", 1).
			AddRow(uuid.New(), userID, "Pedro Silva", "+2389922222", 1).
			AddRow(uuid.New(), userID, "Ana Costa", "+2389933333", 2))

	contacts, err := repo.FindByUserID(context.Background(), db, userID)
	require.NoError(t, err)

	require.Len(t, contacts, 3)
	assert.Equal(t, "Maria Silva", contacts[0].Name)
	assert.Equal(t, "Ana Costa", contacts[2].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUserID_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEmergencyContactRepository()

	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "emergency_contacts"`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "phone", "priority"}))

	contacts, err := repo.FindByUserID(context.Background(), db, userID)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}
