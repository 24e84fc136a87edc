package repository

import (
	"context"

	"crisislink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.MedicalProfile) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.MedicalProfile, error)
	Update(ctx context.Context, db *gorm.DB, profile *entity.MedicalProfile) error
	FindAllWithUser(ctx context.Context, db *gorm.DB, filter *entity.PatientFilter) ([]entity.MedicalProfile, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
