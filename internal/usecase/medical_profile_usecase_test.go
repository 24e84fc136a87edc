package usecase

import (
	"context"
	"strings"
	"testing"

	"crisislink/internal/delivery/dto"
	"crisislink/internal/domain/entity"
	"crisislink/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProfileUsecase(t *testing.T, db *gorm.DB) MedicalProfileUsecase {
	return NewMedicalProfileUsecase(
		db,
		logrus.New(),
		newUsecaseCipher(t),
		repository.NewUserRepository(),
		repository.NewMedicalProfileRepository(),
		"emergency.crisislink.cv",
	)
}

func profileRequest() *dto.MedicalProfileRequest {
	return &dto.MedicalProfileRequest{
		FullName:            "Joao Silva",
		DateOfBirth:         "1990-04-12",
		BloodType:           "O+",
		Allergies:           []string{"Penicillin", "Peanuts"},
		Medications:         []string{"Metformin"},
		MedicalConditions:   []string{"Diabetes"},
		SpecialInstructions: "Insulin in fridge",
		Languages:           []string{"pt", "en"},
	}
}

func expectUserByID(mock sqlmock.Sqlmock, userID uuid.UUID, username string) {
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role_id", "username", "email"}).
			AddRow(userID, entity.RoleIDPatient, username, username+"@example.com"))
	mock.ExpectQuery(`SELECT \* FROM "roles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role_name"}).
			AddRow(entity.RoleIDPatient, entity.RolePatient))
}

func TestCreateProfile_Success(t *testing.T) {
	db, mock := setupMockGorm(t)
	u := newProfileUsecase(t, db)

	userID := uuid.New()
	profileID := uuid.New()

	mock.ExpectBegin()
	expectUserByID(mock, userID, "joao-silva")
	mock.ExpectQuery(`SELECT \* FROM "medical_profiles" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "medical_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(profileID))
	mock.ExpectCommit()

	resp, err := u.CreateProfile(context.Background(), userID, profileRequest())
	require.NoError(t, err)

	assert.Equal(t, "Joao Silva", resp.FullName)
	assert.Equal(t, "https://emergency.crisislink.cv/joao-silva", resp.EmergencyURL)
	assert.True(t, strings.HasPrefix(resp.QRCodeURL, "data:image/png;base64,"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProfile_AlreadyExists(t *testing.T) {
	db, mock := setupMockGorm(t)
	u := newProfileUsecase(t, db)

	userID := uuid.New()

	mock.ExpectBegin()
	expectUserByID(mock, userID, "joao-silva")
	mock.ExpectQuery(`SELECT \* FROM "medical_profiles" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "full_name"}).
			AddRow(uuid.New(), userID, "Joao Silva"))
	mock.ExpectRollback()

	resp, err := u.CreateProfile(context.Background(), userID, profileRequest())
	assert.ErrorIs(t, err, ErrProfileExists)
	assert.Nil(t, resp)
}

func TestCreateProfile_DuplicateKeyRace(t *testing.T) {
	db, mock := setupMockGorm(t)
	u := newProfileUsecase(t, db)

	userID := uuid.New()

	mock.ExpectBegin()
	expectUserByID(mock, userID, "joao-silva")
	mock.ExpectQuery(`SELECT \* FROM "medical_profiles" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "medical_profiles"`).
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "idx_medical_profiles_user_id",
		})
	mock.ExpectRollback()

	resp, err := u.CreateProfile(context.Background(), userID, profileRequest())
	assert.ErrorIs(t, err, ErrProfileExists)
	assert.Nil(t, resp)
}

func TestCreateProfile_UserNotFound(t *testing.T) {
	db, mock := setupMockGorm(t)
	u := newProfileUsecase(t, db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	resp, err := u.CreateProfile(context.Background(), uuid.New(), profileRequest())
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, resp)
}

func TestBuildProfile_EncryptsSensitiveLists(t *testing.T) {
	db, _ := setupMockGorm(t)
	u := newProfileUsecase(t, db).(*medicalProfileUsecase)

	profile, err := u.buildProfile(uuid.New(), "joao-silva", profileRequest())
	require.NoError(t, err)

	// Never plaintext at rest.
	assert.NotContains(t, profile.Allergies, "Penicillin")
	assert.NotContains(t, profile.Medications, "Metformin")
	assert.NotContains(t, profile.MedicalConditions, "Diabetes")

	assert.Equal(t, []string{"Penicillin", "Peanuts"}, u.cipher.DecryptList(profile.Allergies))
	assert.Equal(t, []string{"Metformin"}, u.cipher.DecryptList(profile.Medications))
	assert.Equal(t, []string{"Diabetes"}, u.cipher.DecryptList(profile.MedicalConditions))
}

func TestGetProfile_DecryptsSelfView(t *testing.T) {
	db, mock := setupMockGorm(t)
	u := newProfileUsecase(t, db).(*medicalProfileUsecase)

	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "medical_profiles" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "full_name", "blood_type", "allergies"}).
			AddRow(uuid.New(), userID, "Joao Silva", "O+",
				encryptedList(t, u.cipher, []string{"Penicillin"})))

	resp, err := u.GetProfile(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, "Joao Silva", resp.FullName)
	assert.Equal(t, []string{"Penicillin"}, resp.Allergies)
	assert.Equal(t, []string{}, resp.Medications)
}

func TestGetProfile_NotFound(t *testing.T) {
	db, mock := setupMockGorm(t)
	u := newProfileUsecase(t, db)

	mock.ExpectQuery(`SELECT \* FROM "medical_profiles" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := u.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Nil(t, resp)
}

func TestUpdateProfile_BackfillsQRCode(t *testing.T) {
	db, mock := setupMockGorm(t)
	u := newProfileUsecase(t, db)

	userID := uuid.New()
	profileID := uuid.New()

	mock.ExpectBegin()
	// Stored before QR support: no emergency URL or QR payload yet.
	mock.ExpectQuery(`SELECT \* FROM "medical_profiles" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "full_name", "emergency_url", "qr_code_url"}).
			AddRow(profileID, userID, "Joao Silva", "", ""))
	expectUserByID(mock, userID, "joao-silva")
	mock.ExpectExec(`UPDATE "medical_profiles"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := u.UpdateProfile(context.Background(), userID, profileRequest())
	require.NoError(t, err)

	assert.Equal(t, "https://emergency.crisislink.cv/joao-silva", resp.EmergencyURL)
	assert.True(t, strings.HasPrefix(resp.QRCodeURL, "data:image/png;base64,"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfile_NotFound(t *testing.T) {
	db, mock := setupMockGorm(t)
	u := newProfileUsecase(t, db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "medical_profiles" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	resp, err := u.UpdateProfile(context.Background(), uuid.New(), profileRequest())
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Nil(t, resp)
}
