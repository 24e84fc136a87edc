package usecase

import (
	"context"

	"crisislink/internal/converter"
	"crisislink/internal/delivery/dto"
	"crisislink/internal/domain/entity"
	"crisislink/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type EmergencyContactUsecase interface {
	AddContact(ctx context.Context, userID uuid.UUID, req *dto.CreateContactRequest) (*dto.ContactResponse, error)
	ListContacts(ctx context.Context, userID uuid.UUID) (*dto.ContactListResponse, error)
}

type emergencyContactUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	contactRepo repository.EmergencyContactRepository
}

func NewEmergencyContactUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	contactRepo repository.EmergencyContactRepository,
) EmergencyContactUsecase {
	return &emergencyContactUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		contactRepo: contactRepo,
	}
}

func (u *emergencyContactUsecase) AddContact(ctx context.Context, userID uuid.UUID, req *dto.CreateContactRequest) (*dto.ContactResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	priority := req.Priority
	if priority == 0 {
		priority = 1
	}

	contact := &entity.EmergencyContact{
		UserID:   userID,
		Name:     req.Name,
		Relation: req.Relation,
		Phone:    req.Phone,
		Email:    req.Email,
		Priority: priority,
	}

	if err := u.contactRepo.Create(ctx, u.db, contact); err != nil {
		u.log.Warnf("Failed to create emergency contact: %+v", err)
		return nil, err
	}

	return converter.ContactToResponse(contact), nil
}

func (u *emergencyContactUsecase) ListContacts(ctx context.Context, userID uuid.UUID) (*dto.ContactListResponse, error) {
	contacts, err := u.contactRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to list emergency contacts: %+v", err)
		return nil, err
	}

	responses := converter.ContactsToResponses(contacts)

	return &dto.ContactListResponse{
		Contacts: responses,
		Total:    len(responses),
	}, nil
}
