package repository

import (
	"context"
	"time"

	"crisislink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccessLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *entity.EmergencyAccessLog) error
	CountAll(ctx context.Context, db *gorm.DB) (int64, error)
	CountByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
	CountSince(ctx context.Context, db *gorm.DB, since time.Time) (int64, error)
	// FindLatestByUserID returns nil when the user has never been accessed.
	FindLatestByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.EmergencyAccessLog, error)
}
