package usecase

import (
	"context"
	"errors"

	"crisislink/internal/converter"
	"crisislink/internal/delivery/dto"
	"crisislink/internal/domain/entity"
	"crisislink/internal/domain/repository"
	"crisislink/pkg/cipher"
	"crisislink/pkg/qrcode"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("medical profile not found")
	ErrProfileExists   = errors.New("medical profile already exists")
)

type MedicalProfileUsecase interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, req *dto.MedicalProfileRequest) (*dto.MedicalProfileCreatedResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.MedicalProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.MedicalProfileRequest) (*dto.MedicalProfileCreatedResponse, error)
}

type medicalProfileUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	cipher          *cipher.Cipher
	userRepo        repository.UserRepository
	profileRepo     repository.MedicalProfileRepository
	emergencyDomain string
}

func NewMedicalProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	c *cipher.Cipher,
	userRepo repository.UserRepository,
	profileRepo repository.MedicalProfileRepository,
	emergencyDomain string,
) MedicalProfileUsecase {
	return &medicalProfileUsecase{
		db:              db,
		log:             log,
		cipher:          c,
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		emergencyDomain: emergencyDomain,
	}
}

// CreateProfile creates the one medical profile a user may own. Sensitive
// lists are encrypted before anything is persisted; the emergency URL and QR
// payload are derived from the user's handle inside the same transaction.
func (u *medicalProfileUsecase) CreateProfile(ctx context.Context, userID uuid.UUID, req *dto.MedicalProfileRequest) (*dto.MedicalProfileCreatedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	existing, err := u.profileRepo.FindByUserID(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to check existing profile: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileExists
	}

	profile, err := u.buildProfile(userID, user.Username, req)
	if err != nil {
		return nil, err
	}

	if err := u.profileRepo.Create(ctx, tx, profile); err != nil {
		// Concurrent creates race on the user_id unique index; the loser
		// surfaces as AlreadyExists, never a silent overwrite.
		if isDuplicateKeyError(err, "user_id") {
			return nil, ErrProfileExists
		}
		u.log.Warnf("Failed to create medical profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProfileToCreatedResponse(profile), nil
}

// GetProfile returns the owner's self-view with sensitive lists decrypted.
func (u *medicalProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.MedicalProfileResponse, error) {
	profile, err := u.profileRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find medical profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	allergies := u.cipher.DecryptList(profile.Allergies)
	medications := u.cipher.DecryptList(profile.Medications)
	conditions := u.cipher.DecryptList(profile.MedicalConditions)

	return converter.ProfileToSelfViewResponse(profile, allergies, medications, conditions), nil
}

// UpdateProfile replaces all profile fields and re-encrypts the sensitive
// lists. Profiles created before QR support lazily get their emergency URL
// and QR payload backfilled here.
func (u *medicalProfileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.MedicalProfileRequest) (*dto.MedicalProfileCreatedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.profileRepo.FindByUserID(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find medical profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	allergies, err := u.cipher.EncryptList(req.Allergies)
	if err != nil {
		u.log.Warnf("Failed to encrypt allergies: %+v", err)
		return nil, err
	}
	medications, err := u.cipher.EncryptList(req.Medications)
	if err != nil {
		u.log.Warnf("Failed to encrypt medications: %+v", err)
		return nil, err
	}
	conditions, err := u.cipher.EncryptList(req.MedicalConditions)
	if err != nil {
		u.log.Warnf("Failed to encrypt medical conditions: %+v", err)
		return nil, err
	}

	profile.FullName = req.FullName
	profile.DateOfBirth = req.DateOfBirth
	profile.BloodType = req.BloodType
	profile.Allergies = allergies
	profile.Medications = medications
	profile.MedicalConditions = conditions
	profile.DNRStatus = req.DNRStatus
	profile.OrganDonor = req.OrganDonor
	profile.SpecialInstructions = req.SpecialInstructions
	profile.Languages = req.Languages

	if profile.EmergencyURL == "" || profile.QRCodeURL == "" {
		user, err := u.userRepo.FindByID(tx, userID)
		if err != nil {
			u.log.Warnf("Failed to find user: %+v", err)
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}

		emergencyURL := qrcode.EmergencyURL(u.emergencyDomain, user.Username)
		qrDataURL, err := qrcode.GenerateDataURL(emergencyURL)
		if err != nil {
			u.log.Warnf("Failed to generate QR code: %+v", err)
			return nil, err
		}
		profile.EmergencyURL = emergencyURL
		profile.QRCodeURL = qrDataURL
	}

	if err := u.profileRepo.Update(ctx, tx, profile); err != nil {
		u.log.Warnf("Failed to update medical profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProfileToCreatedResponse(profile), nil
}

func (u *medicalProfileUsecase) buildProfile(userID uuid.UUID, username string, req *dto.MedicalProfileRequest) (*entity.MedicalProfile, error) {
	allergies, err := u.cipher.EncryptList(req.Allergies)
	if err != nil {
		u.log.Warnf("Failed to encrypt allergies: %+v", err)
		return nil, err
	}
	medications, err := u.cipher.EncryptList(req.Medications)
	if err != nil {
		u.log.Warnf("Failed to encrypt medications: %+v", err)
		return nil, err
	}
	conditions, err := u.cipher.EncryptList(req.MedicalConditions)
	if err != nil {
		u.log.Warnf("Failed to encrypt medical conditions: %+v", err)
		return nil, err
	}

	emergencyURL := qrcode.EmergencyURL(u.emergencyDomain, username)
	qrDataURL, err := qrcode.GenerateDataURL(emergencyURL)
	if err != nil {
		u.log.Warnf("Failed to generate QR code: %+v", err)
		return nil, err
	}

	return &entity.MedicalProfile{
		UserID:              userID,
		FullName:            req.FullName,
		DateOfBirth:         req.DateOfBirth,
		BloodType:           req.BloodType,
		Allergies:           allergies,
		Medications:         medications,
		MedicalConditions:   conditions,
		DNRStatus:           req.DNRStatus,
		OrganDonor:          req.OrganDonor,
		SpecialInstructions: req.SpecialInstructions,
		Languages:           req.Languages,
		EmergencyURL:        emergencyURL,
		QRCodeURL:           qrDataURL,
	}, nil
}
