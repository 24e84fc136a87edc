package entity

// ReferenceData is a seeded lookup item (allergy, medication or condition)
// offered to patients while filling in their profile.
type ReferenceData struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Category    string `gorm:"type:varchar(50);not null;index" json:"category"`
	Subcategory string `gorm:"type:varchar(50);index" json:"subcategory,omitempty"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
}

func (ReferenceData) TableName() string {
	return "reference_data"
}

// Reference categories
const (
	ReferenceCategoryAllergies   = "Allergies"
	ReferenceCategoryMedications = "Medications"
	ReferenceCategoryConditions  = "Conditions"
)
