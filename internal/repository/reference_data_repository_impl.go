package repository

import (
	"context"

	"crisislink/internal/domain/entity"
	domainRepo "crisislink/internal/domain/repository"

	"gorm.io/gorm"
)

type referenceDataRepository struct{}

func NewReferenceDataRepository() domainRepo.ReferenceDataRepository {
	return &referenceDataRepository{}
}

func (r *referenceDataRepository) CreateBatch(ctx context.Context, db *gorm.DB, items []entity.ReferenceData) error {
	return db.WithContext(ctx).Create(&items).Error
}

func (r *referenceDataRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.ReferenceData, error) {
	var items []entity.ReferenceData
	err := db.WithContext(ctx).Order("category ASC, subcategory ASC, name ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *referenceDataRepository) Search(ctx context.Context, db *gorm.DB, query, category string, limit int) ([]entity.ReferenceData, error) {
	q := db.WithContext(ctx).Model(&entity.ReferenceData{})

	if category != "" {
		q = q.Where("category = ?", category)
	}
	if query != "" {
		term := "%" + query + "%"
		q = q.Where("name ILIKE ? OR subcategory ILIKE ?", term, term)
	}

	var items []entity.ReferenceData
	err := q.Limit(limit).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *referenceDataRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.ReferenceData{}).Count(&count).Error
	return count, err
}
