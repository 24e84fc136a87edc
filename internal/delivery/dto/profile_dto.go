package dto

import (
	"time"

	"github.com/google/uuid"
)

// MedicalProfileRequest is the body for both create and full-replace update.
type MedicalProfileRequest struct {
	FullName            string   `json:"full_name" validate:"required,min=2,max=255"`
	DateOfBirth         string   `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	BloodType           string   `json:"blood_type" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies           []string `json:"allergies"`
	Medications         []string `json:"medications"`
	MedicalConditions   []string `json:"medical_conditions"`
	DNRStatus           bool     `json:"dnr_status"`
	OrganDonor          bool     `json:"organ_donor"`
	SpecialInstructions string   `json:"special_instructions" validate:"omitempty,max=2000"`
	Languages           []string `json:"languages"`
}

// MedicalProfileCreatedResponse is the stored representation returned by
// create and update. Sensitive fields stay encrypted and are not included.
type MedicalProfileCreatedResponse struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	EmergencyURL string    `json:"emergency_url"`
	QRCodeURL    string    `json:"qr_code_url"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MedicalProfileResponse is the decrypted self-view for the owning patient.
type MedicalProfileResponse struct {
	ID                  uuid.UUID `json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	FullName            string    `json:"full_name"`
	DateOfBirth         string    `json:"date_of_birth,omitempty"`
	BloodType           string    `json:"blood_type,omitempty"`
	Allergies           []string  `json:"allergies"`
	Medications         []string  `json:"medications"`
	MedicalConditions   []string  `json:"medical_conditions"`
	DNRStatus           bool      `json:"dnr_status"`
	OrganDonor          bool      `json:"organ_donor"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`
	Languages           []string  `json:"languages"`
	EmergencyURL        string    `json:"emergency_url,omitempty"`
	QRCodeURL           string    `json:"qr_code_url,omitempty"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type QRCodeResponse struct {
	Username     string `json:"username"`
	EmergencyURL string `json:"emergency_url"`
	QRCode       string `json:"qr_code"`
}
