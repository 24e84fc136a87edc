package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data with hospital affiliation
type DoctorProfile struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	HospitalID    string    `gorm:"type:varchar(50);not null;index" json:"hospital_id"`
	HospitalName  string    `gorm:"type:varchar(255);not null" json:"hospital_name"`
	Specialty     string    `gorm:"type:varchar(100)" json:"specialty,omitempty"`
	LicenseNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	IsVerified    bool      `gorm:"not null;default:false" json:"is_verified"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
