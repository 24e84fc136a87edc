package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterPatientRequest creates a patient account. Username becomes the
// public emergency handle and cannot be changed afterwards.
type RegisterPatientRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterDoctorRequest creates a doctor account with hospital affiliation.
type RegisterDoctorRequest struct {
	Username      string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
	HospitalID    string `json:"hospital_id" validate:"required"`
	Specialty     string `json:"specialty" validate:"omitempty,max=100"`
	LicenseNumber string `json:"license_number" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	UserType     string `json:"user_type"`
	UserID       string `json:"user_id"`
}

type UserResponse struct {
	ID            uuid.UUID              `json:"id"`
	Username      string                 `json:"username"`
	Email         string                 `json:"email"`
	Role          string                 `json:"role"`
	DoctorProfile *DoctorProfileResponse `json:"doctor_profile,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type DoctorProfileResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	HospitalID    string    `json:"hospital_id"`
	HospitalName  string    `json:"hospital_name"`
	Specialty     string    `json:"specialty,omitempty"`
	LicenseNumber string    `json:"license_number"`
	IsVerified    bool      `json:"is_verified"`
}

type HospitalListResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
}

type HospitalResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
