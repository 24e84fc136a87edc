package usecase

import (
	"context"

	"crisislink/internal/delivery/dto"
	"crisislink/internal/domain/repository"
	"crisislink/pkg/qrcode"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type QRUsecase interface {
	GenerateForUsername(ctx context.Context, username string) (*dto.QRCodeResponse, error)
	GetMyQR(ctx context.Context, userID uuid.UUID) (*dto.QRCodeResponse, error)
}

type qrUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	emergencyDomain string
	userRepo        repository.UserRepository
	profileRepo     repository.MedicalProfileRepository
}

func NewQRUsecase(db *gorm.DB, log *logrus.Logger, emergencyDomain string, userRepo repository.UserRepository, profileRepo repository.MedicalProfileRepository) QRUsecase {
	return &qrUsecase{
		db:              db,
		log:             log,
		emergencyDomain: emergencyDomain,
		userRepo:        userRepo,
		profileRepo:     profileRepo,
	}
}

func (u *qrUsecase) GenerateForUsername(ctx context.Context, username string) (*dto.QRCodeResponse, error) {
	user, err := u.userRepo.FindByUsername(u.db.WithContext(ctx), username)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", username, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return u.buildResponse(user.Username)
}

func (u *qrUsecase) GetMyQR(ctx context.Context, userID uuid.UUID) (*dto.QRCodeResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Prefer the QR already stored on the profile so the image stays
	// consistent with what was issued at profile creation.
	profile, err := u.profileRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find medical profile for user %s: %+v", userID, err)
		return nil, err
	}
	if profile != nil && profile.QRCodeURL != "" {
		return &dto.QRCodeResponse{
			Username:     user.Username,
			EmergencyURL: profile.EmergencyURL,
			QRCode:       profile.QRCodeURL,
		}, nil
	}

	return u.buildResponse(user.Username)
}

func (u *qrUsecase) buildResponse(username string) (*dto.QRCodeResponse, error) {
	emergencyURL := qrcode.EmergencyURL(u.emergencyDomain, username)
	qrDataURL, err := qrcode.GenerateDataURL(emergencyURL)
	if err != nil {
		u.log.Warnf("Failed to generate QR code for %s: %+v", username, err)
		return nil, err
	}

	return &dto.QRCodeResponse{
		Username:     username,
		EmergencyURL: emergencyURL,
		QRCode:       qrDataURL,
	}, nil
}
