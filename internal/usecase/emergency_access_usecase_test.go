package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"crisislink/config"
	"crisislink/internal/domain/entity"
	"crisislink/internal/repository"
	"crisislink/pkg/cipher"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fernet/fernet-go"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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

func newUsecaseCipher(t *testing.T) *cipher.Cipher {
	var key fernet.Key
	require.NoError(t, key.Generate())

	c, err := cipher.NewCipher(config.CipherConfig{Key: key.Encode()})
	require.NoError(t, err)

	return c
}

type capturingNotifier struct {
	mu       sync.Mutex
	notified chan struct{}
	contacts []entity.EmergencyContact
	name     string
}

func newCapturingNotifier() *capturingNotifier {
	return &capturingNotifier{notified: make(chan struct{}, 1)}
}

func (n *capturingNotifier) NotifyContacts(ctx context.Context, contacts []entity.EmergencyContact, patientName, location string) {
	n.mu.Lock()
	n.contacts = contacts
	n.name = patientName
	n.mu.Unlock()
	n.notified <- struct{}{}
}

func (n *capturingNotifier) wait(t *testing.T) {
	select {
	case <-n.notified:
	case <-time.After(2 * time.Second):
		t.Fatal("notification fan-out was never triggered")
	}
}

func newDisclosureUsecase(t *testing.T, db *gorm.DB, notifier *capturingNotifier) (EmergencyAccessUsecase, *cipher.Cipher) {
	c := newUsecaseCipher(t)
	u := NewEmergencyAccessUsecase(
		db,
		logrus.New(),
		c,
		repository.NewUserRepository(),
		repository.NewMedicalProfileRepository(),
		repository.NewEmergencyContactRepository(),
		repository.NewAccessLogRepository(),
		notifier,
	)
	return u, c
}

func encryptedList(t *testing.T, c *cipher.Cipher, items []string) string {
	token, err := c.EncryptList(items)
	require.NoError(t, err)
	return token
}

func TestDisclose_Success(t *testing.T) {
	db, mock := setupMockGorm(t)
	notifier := newCapturingNotifier()
	u, c := newDisclosureUsecase(t, db, notifier)

	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username =`).
		WithArgs("joao-silva", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role_id", "username", "email"}).
			AddRow(userID, entity.RoleIDPatient, "joao-silva", "joao@example.com"))

	mock.ExpectQuery(`SELECT \* FROM "medical_profiles" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "full_name", "blood_type", "allergies", "medications",
			"medical_conditions", "dnr_status", "organ_donor", "special_instructions",
		}).AddRow(
			uuid.New(), userID, "Joao Silva", "O+",
			encryptedList(t, c, []string{"Penicillin"}),
			encryptedList(t, c, []string{"Metformin"}),
			encryptedList(t, c, []string{"Diabetes"}),
			true, false, "Insulin in fridge",
		))

	mock.ExpectQuery(`SELECT \* FROM "emergency_contacts" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "phone", "email", "priority"}).
			AddRow(uuid.New(), userID, "Maria Silva", "+2389911111", "maria@example.com", 1).
			AddRow(uuid.New(), userID, "Pedro Silva", "+2389922222", "pedro@example.com", 2))

	mock.ExpectQuery(`INSERT INTO "emergency_access_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	view, err := u.Disclose(context.Background(), "joao-silva", "10.0.0.1", entity.AccessTypeURL)
	require.NoError(t, err)

	assert.Equal(t, "Joao Silva", view.FullName)
	assert.Equal(t, "O+", view.BloodType)
	assert.Equal(t, []string{"Penicillin"}, view.Allergies)
	assert.Equal(t, []string{"Metformin"}, view.Medications)
	assert.Equal(t, []string{"Diabetes"}, view.MedicalConditions)
	assert.True(t, view.DNRStatus)

	require.Len(t, view.EmergencyContacts, 2)
	assert.Equal(t, "Maria Silva", view.EmergencyContacts[0].Name)
	assert.Equal(t, 1, view.EmergencyContacts[0].Priority)
	assert.Equal(t, "Pedro Silva", view.EmergencyContacts[1].Name)

	notifier.wait(t)
	notifier.mu.Lock()
	assert.Equal(t, "Joao Silva", notifier.name)
	assert.Len(t, notifier.contacts, 2)
	notifier.mu.Unlock()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDisclose_NoEmailInContactView(t *testing.T) {
	db, mock := setupMockGorm(t)
	notifier := newCapturingNotifier()
	u, c := newDisclosureUsecase(t, db, notifier)

	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(userID, "joao-silva"))

	mock.ExpectQuery(`SELECT \* FROM "medical_profiles" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "full_name", "allergies"}).
			AddRow(uuid.New(), userID, "Joao Silva", encryptedList(t, c, nil)))

	mock.ExpectQuery(`SELECT \* FROM "emergency_contacts" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "phone", "email", "priority"}).
			AddRow(uuid.New(), userID, "Maria Silva", "+2389911111", "private@example.com", 1))

	mock.ExpectQuery(`INSERT INTO "emergency_access_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	view, err := u.Disclose(context.Background(), "joao-silva", "", entity.AccessTypeURL)
	require.NoError(t, err)

	// The public disclosure payload must never leak contact email addresses.
	payload, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "private@example.com")

	notifier.wait(t)
}

func TestDisclose_UnknownHandle(t *testing.T) {
	db, mock := setupMockGorm(t)
	notifier := newCapturingNotifier()
	u, _ := newDisclosureUsecase(t, db, notifier)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

	view, err := u.Disclose(context.Background(), "nobody", "", entity.AccessTypeURL)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, view)

	// No profile read, no audit row, no notification.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDisclose_NoProfile(t *testing.T) {
	db, mock := setupMockGorm(t)
	notifier := newCapturingNotifier()
	u, _ := newDisclosureUsecase(t, db, notifier)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(uuid.New(), "joao-silva"))

	mock.ExpectQuery(`SELECT \* FROM "medical_profiles" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	view, err := u.Disclose(context.Background(), "joao-silva", "", entity.AccessTypeURL)
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Nil(t, view)
}

func TestDisclose_AuditWriteFailureStillReturnsView(t *testing.T) {
	db, mock := setupMockGorm(t)
	notifier := newCapturingNotifier()
	u, c := newDisclosureUsecase(t, db, notifier)

	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(userID, "joao-silva"))

	mock.ExpectQuery(`SELECT \* FROM "medical_profiles" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "full_name", "allergies"}).
			AddRow(uuid.New(), userID, "Joao Silva", encryptedList(t, c, []string{"Peanuts"})))

	mock.ExpectQuery(`SELECT \* FROM "emergency_contacts" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "phone", "priority"}))

	mock.ExpectQuery(`INSERT INTO "emergency_access_logs"`).
		WillReturnError(errors.New("disk full"))

	view, err := u.Disclose(context.Background(), "joao-silva", "", entity.AccessTypeQRScan)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, []string{"Peanuts"}, view.Allergies)

	notifier.wait(t)
}

func TestDisclose_CorruptCiphertextDegradesToEmptyLists(t *testing.T) {
	db, mock := setupMockGorm(t)
	notifier := newCapturingNotifier()
	u, _ := newDisclosureUsecase(t, db, notifier)

	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(userID, "joao-silva"))

	mock.ExpectQuery(`SELECT \* FROM "medical_profiles" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "full_name", "allergies", "medications"}).
			AddRow(uuid.New(), userID, "Joao Silva", "corrupted-blob", ""))

	mock.ExpectQuery(`SELECT \* FROM "emergency_contacts" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "phone", "priority"}))

	mock.ExpectQuery(`INSERT INTO "emergency_access_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	view, err := u.Disclose(context.Background(), "joao-silva", "", entity.AccessTypeURL)
	require.NoError(t, err)

	assert.Equal(t, []string{}, view.Allergies)
	assert.Equal(t, []string{}, view.Medications)

	notifier.wait(t)
}
