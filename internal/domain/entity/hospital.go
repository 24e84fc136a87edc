package entity

// Hospital is a static affiliation option for doctor registration.
type Hospital struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Hospitals is the seed list of affiliations offered during doctor
// registration. Kept in code rather than the database: the list is small,
// changes with releases, and registration must validate against it even
// before any seeding has run.
var Hospitals = []Hospital{
	{ID: "central-general", Name: "Central General Hospital"},
	{ID: "st-mary", Name: "St. Mary Medical Center"},
	{ID: "riverside", Name: "Riverside Community Hospital"},
	{ID: "university-med", Name: "University Medical Center"},
	{ID: "mercy-west", Name: "Mercy West Hospital"},
}

// HospitalNameByID resolves a hospital ID to its display name. Returns the
// ID itself when unknown so stored rows never lose information.
func HospitalNameByID(id string) (string, bool) {
	for _, h := range Hospitals {
		if h.ID == id {
			return h.Name, true
		}
	}
	return id, false
}
