package repository

import (
	"context"

	"crisislink/internal/domain/entity"

	"gorm.io/gorm"
)

type ReferenceDataRepository interface {
	CreateBatch(ctx context.Context, db *gorm.DB, items []entity.ReferenceData) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.ReferenceData, error)
	Search(ctx context.Context, db *gorm.DB, query, category string, limit int) ([]entity.ReferenceData, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
