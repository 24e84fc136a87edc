package usecase

import (
	"context"

	"crisislink/internal/converter"
	"crisislink/internal/delivery/dto"
	"crisislink/internal/domain/entity"
	"crisislink/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const referenceSearchLimit = 20

type ReferenceUsecase interface {
	GetAll(ctx context.Context) (dto.ReferenceDataResponse, error)
	Search(ctx context.Context, query, category string) (map[string][]dto.ReferenceItem, error)
	Seed(ctx context.Context) (*dto.SeedResponse, error)
}

type referenceUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	referenceRepo repository.ReferenceDataRepository
}

func NewReferenceUsecase(db *gorm.DB, log *logrus.Logger, referenceRepo repository.ReferenceDataRepository) ReferenceUsecase {
	return &referenceUsecase{
		db:            db,
		log:           log,
		referenceRepo: referenceRepo,
	}
}

func (u *referenceUsecase) GetAll(ctx context.Context) (dto.ReferenceDataResponse, error) {
	refs, err := u.referenceRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to load reference data: %+v", err)
		return nil, err
	}

	return converter.ReferencesGroupedByCategory(refs), nil
}

func (u *referenceUsecase) Search(ctx context.Context, query, category string) (map[string][]dto.ReferenceItem, error) {
	refs, err := u.referenceRepo.Search(ctx, u.db, query, category, referenceSearchLimit)
	if err != nil {
		u.log.Warnf("Failed to search reference data: %+v", err)
		return nil, err
	}

	return converter.ReferencesGroupedBySubcategory(refs), nil
}

// Seed populates the catalogue once; reruns are a no-op.
func (u *referenceUsecase) Seed(ctx context.Context) (*dto.SeedResponse, error) {
	count, err := u.referenceRepo.Count(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count reference data: %+v", err)
		return nil, err
	}
	if count > 0 {
		return &dto.SeedResponse{Message: "Reference data already seeded"}, nil
	}

	if err := u.referenceRepo.CreateBatch(ctx, u.db, referenceSeedData()); err != nil {
		u.log.Warnf("Failed to seed reference data: %+v", err)
		return nil, err
	}

	return &dto.SeedResponse{
		Message: "Reference data seeded successfully",
		Count:   len(referenceSeedData()),
	}, nil
}

func referenceSeedData() []entity.ReferenceData {
	type seed struct{ category, subcategory, name string }

	seeds := []seed{
		// Allergies - Medications
		{entity.ReferenceCategoryAllergies, "Medications", "Penicillin"},
		{entity.ReferenceCategoryAllergies, "Medications", "Amoxicillin"},
		{entity.ReferenceCategoryAllergies, "Medications", "Aspirin"},
		{entity.ReferenceCategoryAllergies, "Medications", "Ibuprofen"},
		{entity.ReferenceCategoryAllergies, "Medications", "Naproxen"},
		{entity.ReferenceCategoryAllergies, "Medications", "Sulfa Drugs"},
		{entity.ReferenceCategoryAllergies, "Medications", "Codeine"},
		{entity.ReferenceCategoryAllergies, "Medications", "Morphine"},
		{entity.ReferenceCategoryAllergies, "Medications", "Latex"},
		{entity.ReferenceCategoryAllergies, "Medications", "Contrast Dye"},

		// Allergies - Foods
		{entity.ReferenceCategoryAllergies, "Foods", "Peanuts"},
		{entity.ReferenceCategoryAllergies, "Foods", "Tree Nuts"},
		{entity.ReferenceCategoryAllergies, "Foods", "Shellfish"},
		{entity.ReferenceCategoryAllergies, "Foods", "Fish"},
		{entity.ReferenceCategoryAllergies, "Foods", "Milk"},
		{entity.ReferenceCategoryAllergies, "Foods", "Eggs"},
		{entity.ReferenceCategoryAllergies, "Foods", "Soy"},
		{entity.ReferenceCategoryAllergies, "Foods", "Wheat"},
		{entity.ReferenceCategoryAllergies, "Foods", "Sesame"},
		{entity.ReferenceCategoryAllergies, "Foods", "Corn"},

		// Allergies - Environmental
		{entity.ReferenceCategoryAllergies, "Environmental", "Pollen"},
		{entity.ReferenceCategoryAllergies, "Environmental", "Dust Mites"},
		{entity.ReferenceCategoryAllergies, "Environmental", "Mold"},
		{entity.ReferenceCategoryAllergies, "Environmental", "Pet Dander"},
		{entity.ReferenceCategoryAllergies, "Environmental", "Bee Stings"},
		{entity.ReferenceCategoryAllergies, "Environmental", "Wasp Stings"},
		{entity.ReferenceCategoryAllergies, "Environmental", "Cockroaches"},
		{entity.ReferenceCategoryAllergies, "Environmental", "Grass"},

		// Medications
		{entity.ReferenceCategoryMedications, "", "Aspirin"},
		{entity.ReferenceCategoryMedications, "", "Ibuprofen"},
		{entity.ReferenceCategoryMedications, "", "Acetaminophen"},
		{entity.ReferenceCategoryMedications, "", "Metformin"},
		{entity.ReferenceCategoryMedications, "", "Lisinopril"},
		{entity.ReferenceCategoryMedications, "", "Amlodipine"},
		{entity.ReferenceCategoryMedications, "", "Metoprolol"},
		{entity.ReferenceCategoryMedications, "", "Omeprazole"},
		{entity.ReferenceCategoryMedications, "", "Simvastatin"},
		{entity.ReferenceCategoryMedications, "", "Levothyroxine"},
		{entity.ReferenceCategoryMedications, "", "Albuterol"},
		{entity.ReferenceCategoryMedications, "", "Gabapentin"},
		{entity.ReferenceCategoryMedications, "", "Hydrochlorothiazide"},
		{entity.ReferenceCategoryMedications, "", "Losartan"},
		{entity.ReferenceCategoryMedications, "", "Atorvastatin"},

		// Conditions
		{entity.ReferenceCategoryConditions, "", "Diabetes"},
		{entity.ReferenceCategoryConditions, "", "Hypertension"},
		{entity.ReferenceCategoryConditions, "", "Asthma"},
		{entity.ReferenceCategoryConditions, "", "COPD"},
		{entity.ReferenceCategoryConditions, "", "Heart Disease"},
		{entity.ReferenceCategoryConditions, "", "Arthritis"},
		{entity.ReferenceCategoryConditions, "", "Depression"},
		{entity.ReferenceCategoryConditions, "", "Anxiety"},
		{entity.ReferenceCategoryConditions, "", "Epilepsy"},
		{entity.ReferenceCategoryConditions, "", "Cancer"},
		{entity.ReferenceCategoryConditions, "", "Kidney Disease"},
		{entity.ReferenceCategoryConditions, "", "Liver Disease"},
		{entity.ReferenceCategoryConditions, "", "Stroke"},
		{entity.ReferenceCategoryConditions, "", "Heart Attack History"},
	}

	items := make([]entity.ReferenceData, 0, len(seeds))
	for _, s := range seeds {
		items = append(items, entity.ReferenceData{
			Category:    s.category,
			Subcategory: s.subcategory,
			Name:        s.name,
		})
	}
	return items
}
