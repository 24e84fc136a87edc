package usecase

import (
	"context"
	"testing"

	"crisislink/internal/delivery/dto"
	"crisislink/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newContactUsecase(db *gorm.DB) EmergencyContactUsecase {
	return NewEmergencyContactUsecase(
		db,
		logrus.New(),
		repository.NewUserRepository(),
		repository.NewEmergencyContactRepository(),
	)
}

func TestAddContact_DefaultsPriority(t *testing.T) {
	db, mock := setupMockGorm(t)
	u := newContactUsecase(db)

	userID := uuid.New()

	expectUserByID(mock, userID, "joao-silva")
	mock.ExpectQuery(`INSERT INTO "emergency_contacts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))

	resp, err := u.AddContact(context.Background(), userID, &dto.CreateContactRequest{
		Name:  "Maria Silva",
		Phone: "+2389911111",
	})
	require.NoError(t, err)

	// Priority 0 is normalized to 1, the highest priority.
	assert.Equal(t, 1, resp.Priority)
}

func TestAddContact_UserNotFound(t *testing.T) {
	db, mock := setupMockGorm(t)
	u := newContactUsecase(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := u.AddContact(context.Background(), uuid.New(), &dto.CreateContactRequest{
		Name:     "Maria Silva",
		Phone:    "+2389911111",
		Priority: 2,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, resp)
}

func TestListContacts_PreservesOrder(t *testing.T) {
	db, mock := setupMockGorm(t)
	u := newContactUsecase(db)

	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "emergency_contacts" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "phone", "priority"}).
			AddRow(uuid.New(), userID, "Maria Silva", "+2389911111", 1).
			AddRow(uuid.New(), userID, "Pedro Silva", "+2389922222", 2))

	resp, err := u.ListContacts(context.Background(), userID)
	require.NoError(t, err)

	require.Len(t, resp.Contacts, 2)
	assert.Equal(t, "Maria Silva", resp.Contacts[0].Name)
	assert.Equal(t, "Pedro Silva", resp.Contacts[1].Name)
	assert.Equal(t, 2, resp.Total)
}
