package usecase

import (
	"context"
	"testing"
	"time"

	"crisislink/config"
	"crisislink/internal/delivery/dto"
	"crisislink/internal/repository"
	"crisislink/pkg/jwt"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthUsecase(db *gorm.DB) AuthUsecase {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})

	// Redis is only reached after successful authentication; these tests stop
	// before token issuance.
	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:0"})

	return NewAuthUsecase(
		db,
		logrus.New(),
		repository.NewUserRepository(),
		repository.NewRoleRepository(),
		repository.NewDoctorProfileRepository(),
		jwtService,
		redisClient,
	)
}

func TestLogin_UnknownEmail(t *testing.T) {
	db, mock := setupMockGorm(t)
	u := newAuthUsecase(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	tokens, err := u.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, tokens)
}

func TestLogin_WrongPassword(t *testing.T) {
	db, mock := setupMockGorm(t)
	u := newAuthUsecase(db)

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password"}).
			AddRow(uuid.New(), "joao-silva", "joao@example.com", string(hashed)))

	tokens, err := u.Login(context.Background(), &dto.LoginRequest{
		Email:    "joao@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, tokens)
}

func TestRegisterDoctor_UnknownHospital(t *testing.T) {
	db, _ := setupMockGorm(t)
	u := newAuthUsecase(db)

	tokens, err := u.RegisterDoctor(context.Background(), &dto.RegisterDoctorRequest{
		Username:      "dr-souza",
		Email:         "souza@example.com",
		Password:      "password123",
		HospitalID:    "does-not-exist",
		LicenseNumber: "CV-12345",
	})
	assert.ErrorIs(t, err, ErrInvalidHospital)
	assert.Nil(t, tokens)
}

func TestRefreshToken_Malformed(t *testing.T) {
	db, _ := setupMockGorm(t)
	u := newAuthUsecase(db)

	tokens, err := u.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: "not-a-jwt",
	})
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, tokens)
}

func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	db, _ := setupMockGorm(t)
	u := newAuthUsecase(db)

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	accessToken, _, err := jwtService.GenerateAccessToken(uuid.New(), "joao-silva", "joao@example.com", 3)
	require.NoError(t, err)

	// An access token presented as a refresh token must be rejected by type.
	tokens, err := u.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: accessToken,
	})
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, tokens)
}
