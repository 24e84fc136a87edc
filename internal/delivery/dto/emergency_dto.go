package dto

// EmergencyContactView is the contact shape exposed to first responders.
// Email is deliberately omitted from the public disclosure.
type EmergencyContactView struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Priority int    `json:"priority"`
}

// EmergencyView is the public break-glass payload served without
// authentication at /emergency/{username}.
type EmergencyView struct {
	FullName            string                 `json:"full_name"`
	BloodType           string                 `json:"blood_type,omitempty"`
	Allergies           []string               `json:"allergies"`
	Medications         []string               `json:"medications"`
	MedicalConditions   []string               `json:"medical_conditions"`
	DNRStatus           bool                   `json:"dnr_status"`
	OrganDonor          bool                   `json:"organ_donor"`
	SpecialInstructions string                 `json:"special_instructions,omitempty"`
	EmergencyContacts   []EmergencyContactView `json:"emergency_contacts"`
	Languages           []string               `json:"languages"`
}
