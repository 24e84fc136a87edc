package repository

import (
	"context"
	"errors"

	"crisislink/internal/domain/entity"
	domainRepo "crisislink/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultPatientListLimit = 50

type medicalProfileRepository struct{}

func NewMedicalProfileRepository() domainRepo.MedicalProfileRepository {
	return &medicalProfileRepository{}
}

func (r *medicalProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.MedicalProfile) error {
	return db.WithContext(ctx).Create(profile).Error
}

func (r *medicalProfileRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.MedicalProfile, error) {
	var profile entity.MedicalProfile
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *medicalProfileRepository) Update(ctx context.Context, db *gorm.DB, profile *entity.MedicalProfile) error {
	return db.WithContext(ctx).Save(profile).Error
}

func (r *medicalProfileRepository) FindAllWithUser(ctx context.Context, db *gorm.DB, filter *entity.PatientFilter) ([]entity.MedicalProfile, error) {
	limit := defaultPatientListLimit
	if filter != nil && filter.Limit > 0 {
		limit = filter.Limit
	}

	query := db.WithContext(ctx).Preload("User")
	if filter != nil && filter.Search != "" {
		query = query.Where("full_name ILIKE ?", "%"+filter.Search+"%")
	}

	var profiles []entity.MedicalProfile
	err := query.Limit(limit).Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *medicalProfileRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.MedicalProfile{}).Count(&count).Error
	return count, err
}
