package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyContact is a person to alert when a patient's emergency profile is
// disclosed. Lower priority means contacted first; equal priorities keep
// insertion order (created_at tie-break in the registry query).
type EmergencyContact struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name"`
	Relation string    `gorm:"type:varchar(50)" json:"relation,omitempty"`
	Phone    string    `gorm:"type:varchar(20);not null" json:"phone"`
	Email    string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Priority int       `gorm:"not null;default:1" json:"priority"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (EmergencyContact) TableName() string {
	return "emergency_contacts"
}
