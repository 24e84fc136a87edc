package converter

import (
	"crisislink/internal/delivery/dto"
	"crisislink/internal/domain/entity"
)

// ContactsToEmergencyViews maps ordered contacts to the public disclosure
// shape. Only name, phone and priority cross the trust boundary; email never
// appears in the break-glass payload.
func ContactsToEmergencyViews(contacts []entity.EmergencyContact) []dto.EmergencyContactView {
	views := make([]dto.EmergencyContactView, 0, len(contacts))
	for _, c := range contacts {
		views = append(views, dto.EmergencyContactView{
			Name:     c.Name,
			Phone:    c.Phone,
			Priority: c.Priority,
		})
	}
	return views
}

// ProfileToEmergencyView assembles the disclosure payload from the profile,
// its decrypted sensitive lists, and the ordered contact list.
func ProfileToEmergencyView(profile *entity.MedicalProfile, allergies, medications, conditions []string, contacts []entity.EmergencyContact) *dto.EmergencyView {
	if profile == nil {
		return nil
	}

	return &dto.EmergencyView{
		FullName:            profile.FullName,
		BloodType:           profile.BloodType,
		Allergies:           allergies,
		Medications:         medications,
		MedicalConditions:   conditions,
		DNRStatus:           profile.DNRStatus,
		OrganDonor:          profile.OrganDonor,
		SpecialInstructions: profile.SpecialInstructions,
		EmergencyContacts:   ContactsToEmergencyViews(contacts),
		Languages:           profile.Languages,
	}
}
