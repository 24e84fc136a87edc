package converter

import (
	"crisislink/internal/delivery/dto"
	"crisislink/internal/domain/entity"
)

// ProfileToCreatedResponse converts a stored MedicalProfile to the
// non-decrypted representation returned by create and update.
func ProfileToCreatedResponse(profile *entity.MedicalProfile) *dto.MedicalProfileCreatedResponse {
	if profile == nil {
		return nil
	}

	return &dto.MedicalProfileCreatedResponse{
		ID:           profile.ID,
		FullName:     profile.FullName,
		EmergencyURL: profile.EmergencyURL,
		QRCodeURL:    profile.QRCodeURL,
		UpdatedAt:    profile.UpdatedAt,
	}
}

// ProfileToSelfViewResponse converts a MedicalProfile plus its decrypted
// sensitive lists to the owner's dashboard view.
func ProfileToSelfViewResponse(profile *entity.MedicalProfile, allergies, medications, conditions []string) *dto.MedicalProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.MedicalProfileResponse{
		ID:                  profile.ID,
		UserID:              profile.UserID,
		FullName:            profile.FullName,
		DateOfBirth:         profile.DateOfBirth,
		BloodType:           profile.BloodType,
		Allergies:           allergies,
		Medications:         medications,
		MedicalConditions:   conditions,
		DNRStatus:           profile.DNRStatus,
		OrganDonor:          profile.OrganDonor,
		SpecialInstructions: profile.SpecialInstructions,
		Languages:           profile.Languages,
		EmergencyURL:        profile.EmergencyURL,
		QRCodeURL:           profile.QRCodeURL,
		UpdatedAt:           profile.UpdatedAt,
	}
}
