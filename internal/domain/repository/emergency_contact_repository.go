package repository

import (
	"context"

	"crisislink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmergencyContactRepository interface {
	Create(ctx context.Context, db *gorm.DB, contact *entity.EmergencyContact) error
	// FindByUserID returns contacts ordered by ascending priority; equal
	// priorities keep insertion order.
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.EmergencyContact, error)
}
