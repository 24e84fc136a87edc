package repository

import (
	"context"

	"crisislink/internal/domain/entity"
	domainRepo "crisislink/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type emergencyContactRepository struct{}

func NewEmergencyContactRepository() domainRepo.EmergencyContactRepository {
	return &emergencyContactRepository{}
}

func (r *emergencyContactRepository) Create(ctx context.Context, db *gorm.DB, contact *entity.EmergencyContact) error {
	return db.WithContext(ctx).Create(contact).Error
}

func (r *emergencyContactRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.EmergencyContact, error) {
	var contacts []entity.EmergencyContact
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("priority ASC, created_at ASC").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}
