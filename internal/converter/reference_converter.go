package converter

import (
	"crisislink/internal/delivery/dto"
	"crisislink/internal/domain/entity"
)

func ReferenceToItem(ref *entity.ReferenceData) dto.ReferenceItem {
	return dto.ReferenceItem{
		ID:          ref.ID,
		Category:    ref.Category,
		Subcategory: ref.Subcategory,
		Name:        ref.Name,
	}
}

// ReferencesGroupedByCategory buckets items under their top-level category.
// All three catalogue categories are always present, empty or not.
func ReferencesGroupedByCategory(refs []entity.ReferenceData) dto.ReferenceDataResponse {
	grouped := dto.ReferenceDataResponse{
		entity.ReferenceCategoryAllergies:   {},
		entity.ReferenceCategoryMedications: {},
		entity.ReferenceCategoryConditions:  {},
	}

	for i := range refs {
		grouped[refs[i].Category] = append(grouped[refs[i].Category], ReferenceToItem(&refs[i]))
	}

	return grouped
}

// ReferencesGroupedBySubcategory buckets search results by subcategory,
// falling back to category, then "General".
func ReferencesGroupedBySubcategory(refs []entity.ReferenceData) map[string][]dto.ReferenceItem {
	grouped := make(map[string][]dto.ReferenceItem)

	for i := range refs {
		key := refs[i].Subcategory
		if key == "" {
			key = refs[i].Category
		}
		if key == "" {
			key = "General"
		}
		grouped[key] = append(grouped[key], ReferenceToItem(&refs[i]))
	}

	return grouped
}
