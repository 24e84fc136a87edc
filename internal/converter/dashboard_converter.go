package converter

import (
	"fmt"
	"time"

	"crisislink/internal/delivery/dto"
	"crisislink/internal/domain/entity"
)

// CalculateAge derives age in years from a YYYY-MM-DD date of birth string.
// Returns nil for empty or unparseable input.
func CalculateAge(dateOfBirth string, now time.Time) *int {
	if dateOfBirth == "" {
		return nil
	}

	dob, err := time.Parse("2006-01-02", dateOfBirth)
	if err != nil {
		return nil
	}

	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return nil
	}

	return &age
}

// FormatLastAccessed renders an access timestamp as a human-readable
// relative time for the dashboard. Nil means the profile was never accessed.
func FormatLastAccessed(accessedAt *time.Time, now time.Time) string {
	if accessedAt == nil {
		return "Never"
	}

	diff := now.Sub(*accessedAt)
	switch {
	case diff >= 30*24*time.Hour:
		return fmt.Sprintf("%d months ago", int(diff.Hours()/(30*24)))
	case diff >= 24*time.Hour:
		return fmt.Sprintf("%d days ago", int(diff.Hours()/24))
	case diff >= time.Hour:
		return fmt.Sprintf("%d hours ago", int(diff.Hours()))
	case diff >= time.Minute:
		return fmt.Sprintf("%d minutes ago", int(diff.Minutes()))
	default:
		return "Just now"
	}
}

// ProfileToPatientListItem converts a profile (with preloaded user) plus its
// most recent access time to a dashboard list row.
func ProfileToPatientListItem(profile *entity.MedicalProfile, lastAccess *time.Time, now time.Time) dto.PatientListItem {
	return dto.PatientListItem{
		ID:           profile.UserID.String(),
		Name:         profile.FullName,
		Age:          CalculateAge(profile.DateOfBirth, now),
		BloodType:    profile.BloodType,
		LastAccessed: FormatLastAccessed(lastAccess, now),
	}
}

// ProfileCompletion scores how much of the profile is filled in, for the
// patient dashboard progress indicator.
func ProfileCompletion(profile *entity.MedicalProfile) int {
	if profile == nil {
		return 0
	}

	fields := []bool{
		profile.FullName != "",
		profile.DateOfBirth != "",
		profile.BloodType != "",
		profile.Allergies != "",
		profile.Medications != "",
		profile.MedicalConditions != "",
		profile.SpecialInstructions != "",
		len(profile.Languages) > 0,
		profile.QRCodeURL != "",
	}

	filled := 0
	for _, ok := range fields {
		if ok {
			filled++
		}
	}

	return filled * 100 / len(fields)
}
