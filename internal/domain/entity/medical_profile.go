package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MedicalProfile holds a patient's emergency medical record. Exactly one per
// user, enforced by the unique index on UserID.
//
// Allergies, Medications and MedicalConditions are stored as opaque Fernet
// ciphertext; they are only ever decrypted inside the self-view and the
// emergency disclosure path.
type MedicalProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	// Basic info (plaintext)
	FullName    string `gorm:"type:varchar(255);not null" json:"full_name"`
	DateOfBirth string `gorm:"type:varchar(10)" json:"date_of_birth,omitempty"` // YYYY-MM-DD
	BloodType   string `gorm:"type:varchar(5)" json:"blood_type,omitempty"`

	// Sensitive lists (ciphertext)
	Allergies         string `gorm:"type:text" json:"-"`
	Medications       string `gorm:"type:text" json:"-"`
	MedicalConditions string `gorm:"type:text" json:"-"`

	// Emergency instructions
	DNRStatus           bool   `gorm:"column:dnr_status;not null;default:false" json:"dnr_status"`
	OrganDonor          bool   `gorm:"not null;default:false" json:"organ_donor"`
	SpecialInstructions string `gorm:"type:text" json:"special_instructions,omitempty"`

	Languages datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"languages,omitempty"`

	// Derived from the user's handle
	EmergencyURL string `gorm:"type:varchar(255)" json:"emergency_url,omitempty"`
	QRCodeURL    string `gorm:"column:qr_code_url;type:text" json:"qr_code_url,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (MedicalProfile) TableName() string {
	return "medical_profiles"
}
