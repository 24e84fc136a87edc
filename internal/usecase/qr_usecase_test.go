package usecase

import (
	"context"
	"strings"
	"testing"

	"crisislink/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQRTestUsecase(db *gorm.DB) QRUsecase {
	return NewQRUsecase(
		db,
		logrus.New(),
		"emergency.crisislink.cv",
		repository.NewUserRepository(),
		repository.NewMedicalProfileRepository(),
	)
}

func TestGenerateForUsername(t *testing.T) {
	db, mock := setupMockGorm(t)
	u := newQRTestUsecase(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(uuid.New(), "joao-silva"))

	resp, err := u.GenerateForUsername(context.Background(), "joao-silva")
	require.NoError(t, err)

	assert.Equal(t, "joao-silva", resp.Username)
	assert.Equal(t, "https://emergency.crisislink.cv/joao-silva", resp.EmergencyURL)
	assert.True(t, strings.HasPrefix(resp.QRCode, "data:image/png;base64,"))
}

func TestGenerateForUsername_Unknown(t *testing.T) {
	db, mock := setupMockGorm(t)
	u := newQRTestUsecase(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := u.GenerateForUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, resp)
}

func TestGetMyQR_PreferStoredImage(t *testing.T) {
	db, mock := setupMockGorm(t)
	u := newQRTestUsecase(db)

	userID := uuid.New()

	expectUserByID(mock, userID, "joao-silva")
	mock.ExpectQuery(`SELECT \* FROM "medical_profiles" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "emergency_url", "qr_code_url"}).
			AddRow(uuid.New(), userID, "https://emergency.crisislink.cv/joao-silva", "data:image/png;base64,stored"))

	resp, err := u.GetMyQR(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, "data:image/png;base64,stored", resp.QRCode)
	assert.Equal(t, "https://emergency.crisislink.cv/joao-silva", resp.EmergencyURL)
}

func TestGetMyQR_GeneratesWhenMissing(t *testing.T) {
	db, mock := setupMockGorm(t)
	u := newQRTestUsecase(db)

	userID := uuid.New()

	expectUserByID(mock, userID, "joao-silva")
	mock.ExpectQuery(`SELECT \* FROM "medical_profiles" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := u.GetMyQR(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, "joao-silva", resp.Username)
	assert.True(t, strings.HasPrefix(resp.QRCode, "data:image/png;base64,"))
}
