package dto

type ReferenceItem struct {
	ID          int    `json:"id"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
	Name        string `json:"name"`
}

// ReferenceDataResponse groups items by top-level category.
type ReferenceDataResponse map[string][]ReferenceItem

type SeedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
