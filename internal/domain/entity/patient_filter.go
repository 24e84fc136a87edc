package entity

// PatientFilter is a domain-level filter for the doctor dashboard patient
// lookup. Used by repository layer to avoid coupling with delivery DTOs.
type PatientFilter struct {
	Search string // Substring match on profile full name (ILIKE)
	Limit  int    // Max rows returned; 0 falls back to the store default
}
