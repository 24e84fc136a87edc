package repository

import (
	"context"
	"errors"
	"time"

	"crisislink/internal/domain/entity"
	domainRepo "crisislink/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accessLogRepository struct{}

func NewAccessLogRepository() domainRepo.AccessLogRepository {
	return &accessLogRepository{}
}

func (r *accessLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.EmergencyAccessLog) error {
	return db.WithContext(ctx).Create(log).Error
}

func (r *accessLogRepository) CountAll(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.EmergencyAccessLog{}).Count(&count).Error
	return count, err
}

func (r *accessLogRepository) CountByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.EmergencyAccessLog{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *accessLogRepository) CountSince(ctx context.Context, db *gorm.DB, since time.Time) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.EmergencyAccessLog{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *accessLogRepository) FindLatestByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.EmergencyAccessLog, error) {
	var log entity.EmergencyAccessLog
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
