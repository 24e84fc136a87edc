package converter

import (
	"crisislink/internal/delivery/dto"
	"crisislink/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User, roleName string) *dto.UserResponse {
	if user == nil {
		return nil
	}

	resp := &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      roleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.DoctorProfile != nil {
		resp.DoctorProfile = DoctorProfileToResponse(user.DoctorProfile)
	}

	return resp
}

// DoctorProfileToResponse converts a DoctorProfile entity to its DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorProfileResponse{
		UserID:        profile.UserID,
		HospitalID:    profile.HospitalID,
		HospitalName:  profile.HospitalName,
		Specialty:     profile.Specialty,
		LicenseNumber: profile.LicenseNumber,
		IsVerified:    profile.IsVerified,
	}
}

// HospitalsToResponse converts the static hospital list to its DTO
func HospitalsToResponse(hospitals []entity.Hospital) *dto.HospitalListResponse {
	resp := &dto.HospitalListResponse{
		Hospitals: make([]dto.HospitalResponse, 0, len(hospitals)),
	}
	for _, h := range hospitals {
		resp.Hospitals = append(resp.Hospitals, dto.HospitalResponse{ID: h.ID, Name: h.Name})
	}
	return resp
}
