package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-family-tree/internal/config"
	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/store"
	"github.com/MKhiriev/go-family-tree/internal/utils"
	"github.com/MKhiriev/go-family-tree/models"
)

// Demo accounts. Both use DemoPassword.
const (
	DemoAdminEmail  = "admin@familytree.com"
	DemoClientEmail = "client@example.com"
	DemoPassword    = "password123"
)

const (
	demoAdminID        = "seed-admin"
	demoClientID       = "seed-client"
	demoSmithProject   = "smith-family-project"
	demoJohnsonProject = "johnson-family-project"
)

type seedService struct {
	seedRepository store.SeedRepository

	// hashPassword is swapped in tests to skip bcrypt.
	hashPassword func(string) (string, error)

	logger *logger.Logger
}

func NewSeedService(seedRepository store.SeedRepository, logger *logger.Logger) SeedService {
	return &seedService{
		seedRepository: seedRepository,
		hashPassword:   utils.HashPassword,
		logger:         logger,
	}
}

// SeedDemoData inserts the demo accounts, two projects, three persons and
// two sample analyses. Existing rows are left untouched.
func (s *seedService) SeedDemoData(ctx context.Context) error {
	data, err := s.demoData()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*seedService.SeedDemoData").Msg("failed to build demo data")
		return err
	}

	if err = s.seedRepository.SeedDemoData(ctx, data); err != nil {
		return fmt.Errorf("seeding demo data: %w", err)
	}
	return nil
}

func (s *seedService) demoData() (models.DemoData, error) {
	adminHash, err := s.hashPassword(DemoPassword)
	if err != nil {
		return models.DemoData{}, err
	}
	clientHash, err := s.hashPassword(DemoPassword)
	if err != nil {
		return models.DemoData{}, err
	}

	documentOutput, err := json.Marshal(models.DocumentAnalysisResult{
		ExtractedNames:  []string{"John Smith"},
		ExtractedDates:  []string{"1850-03-15"},
		ExtractedPlaces: []string{"Boston, Massachusetts"},
		Relationships:   []models.ExtractedRelationship{},
		Summary:         "Birth certificate confirming John Smith's birth details",
		Confidence:      float64Ptr(0.95),
	})
	if err != nil {
		return models.DemoData{}, err
	}
	researchOutput, err := json.Marshal(models.ResearchSuggestionsResult{
		Suggestions: []models.ResearchSuggestion{{
			Suggestion: "Search Census records for John Smith in Boston between 1850-1860",
			Priority:   models.PriorityHigh,
			Resources:  []string{"Ancestry.com", "FamilySearch.org"},
			Reasoning:  "Given birth date and location, census records are most likely to provide family structure",
		}},
	})
	if err != nil {
		return models.DemoData{}, err
	}

	boston := "Boston, Massachusetts"
	smith := "Smith"
	male, female := models.GenderMale, models.GenderFemale

	return models.DemoData{
		Users: []models.User{
			{ID: demoAdminID, Email: DemoAdminEmail, Name: "Admin User", PasswordHash: adminHash, Role: models.RoleAdmin},
			{ID: demoClientID, Email: DemoClientEmail, Name: "John Smith", PasswordHash: clientHash, Role: models.RoleClient},
		},
		Projects: []models.Project{
			{
				ID:          demoSmithProject,
				Title:       "Smith Family Research",
				Description: stringPtr("Researching the Smith family lineage in New England, 1850-1950"),
				Status:      models.ProjectStatusActive,
				ClientID:    demoClientID,
			},
			{
				ID:          demoJohnsonProject,
				Title:       "Johnson Family Tree",
				Description: stringPtr("Tracing Johnson ancestors back to Ireland, focusing on immigration records"),
				Status:      models.ProjectStatusActive,
				ClientID:    demoClientID,
			},
		},
		FamilyMembers: []models.FamilyMember{
			{
				ID:         "john-smith-1850",
				ProjectID:  demoSmithProject,
				FirstName:  "John",
				LastName:   &smith,
				BirthDate:  datePtr(1850, time.March, 15),
				DeathDate:  datePtr(1920, time.December, 10),
				BirthPlace: &boston,
				DeathPlace: &boston,
				Occupation: stringPtr("Blacksmith"),
				Gender:     &male,
				AddedByID:  demoClientID,
			},
			{
				ID:         "mary-smith-1855",
				ProjectID:  demoSmithProject,
				FirstName:  "Mary",
				LastName:   &smith,
				MaidenName: stringPtr("Johnson"),
				BirthDate:  datePtr(1855, time.July, 22),
				DeathDate:  datePtr(1925, time.August, 15),
				BirthPlace: stringPtr("Salem, Massachusetts"),
				DeathPlace: &boston,
				Gender:     &female,
				AddedByID:  demoClientID,
			},
			{
				ID:         "william-smith-1880",
				ProjectID:  demoSmithProject,
				FirstName:  "William",
				LastName:   &smith,
				BirthDate:  datePtr(1880, time.November, 3),
				DeathDate:  datePtr(1955, time.April, 20),
				BirthPlace: &boston,
				DeathPlace: stringPtr("Cambridge, Massachusetts"),
				Occupation: stringPtr("Teacher"),
				Gender:     &male,
				AddedByID:  demoClientID,
			},
		},
		Analyses: []models.AIAnalysis{
			{
				ID:         "seed-analysis-document",
				ProjectID:  demoSmithProject,
				Type:       models.AnalysisDocument,
				Input:      "Birth certificate for John Smith, born March 15, 1850 in Boston, Massachusetts",
				Output:     string(documentOutput),
				Confidence: float64Ptr(0.95),
				Model:      config.DefaultAIModel,
				Tokens:     intPtr(150),
			},
			{
				ID:         "seed-analysis-research",
				ProjectID:  demoSmithProject,
				Type:       models.AnalysisResearchSuggestion,
				Input:      `{"projectTitle":"Smith Family Research"}`,
				Output:     string(researchOutput),
				Confidence: float64Ptr(0.85),
				Model:      config.DefaultAIModel,
				Tokens:     intPtr(200),
			},
		},
	}, nil
}

func stringPtr(s string) *string    { return &s }
func float64Ptr(f float64) *float64 { return &f }
func intPtr(i int) *int             { return &i }

func datePtr(year int, month time.Month, day int) *models.Date {
	d := models.NewDate(year, month, day)
	return &d
}
