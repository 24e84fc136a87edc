package usecase

import (
	"context"

	"crisislink/internal/converter"
	"crisislink/internal/delivery/dto"
	"crisislink/internal/domain/entity"
	"crisislink/internal/domain/repository"
	"crisislink/internal/service"
	"crisislink/pkg/cipher"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// EmergencyAccessUsecase serves the public break-glass read. Every
// disclosure writes one audit entry and triggers the contact fan-out; the
// call is safely repeatable — responders are expected to open the same
// profile many times.
type EmergencyAccessUsecase interface {
	Disclose(ctx context.Context, username, responderInfo, accessType string) (*dto.EmergencyView, error)
}

type emergencyAccessUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	cipher        *cipher.Cipher
	userRepo      repository.UserRepository
	profileRepo   repository.MedicalProfileRepository
	contactRepo   repository.EmergencyContactRepository
	accessLogRepo repository.AccessLogRepository
	notifier      service.NotificationService
}

func NewEmergencyAccessUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	c *cipher.Cipher,
	userRepo repository.UserRepository,
	profileRepo repository.MedicalProfileRepository,
	contactRepo repository.EmergencyContactRepository,
	accessLogRepo repository.AccessLogRepository,
	notifier service.NotificationService,
) EmergencyAccessUsecase {
	return &emergencyAccessUsecase{
		db:            db,
		log:           log,
		cipher:        c,
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		contactRepo:   contactRepo,
		accessLogRepo: accessLogRepo,
		notifier:      notifier,
	}
}

// Disclose resolves the handle, decrypts the sensitive fields, records the
// access, and returns the emergency view. The contact notification runs in
// the background and never affects the response.
func (u *emergencyAccessUsecase) Disclose(ctx context.Context, username, responderInfo, accessType string) (*dto.EmergencyView, error) {
	if accessType != entity.AccessTypeQRScan {
		accessType = entity.AccessTypeURL
	}

	user, err := u.userRepo.FindByUsername(u.db.WithContext(ctx), username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile, err := u.profileRepo.FindByUserID(ctx, u.db, user.ID)
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

	contacts, err := u.contactRepo.FindByUserID(ctx, u.db, user.ID)
	if err != nil {
		u.log.Warnf("Failed to load emergency contacts: %+v", err)
		return nil, err
	}

	accessLog := &entity.EmergencyAccessLog{
		UserID:        user.ID,
		AccessType:    accessType,
		ResponderInfo: responderInfo,
	}
	if err := u.accessLogRepo.Create(ctx, u.db, accessLog); err != nil {
		// The audit trail is informational, not authorization-gating: a
		// responder still gets the medical view, but the write failure is a
		// reliability signal that must not pass silently.
		u.log.Errorf("Failed to record emergency access for %s: %+v", username, err)
	}

	view := converter.ProfileToEmergencyView(profile, allergies, medications, conditions, contacts)

	// Fire-and-forget: delivery continues after the HTTP response is sent.
	go u.notifier.NotifyContacts(context.Background(), contacts, profile.FullName, "")

	return view, nil
}
