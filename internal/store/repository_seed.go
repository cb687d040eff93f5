package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/models"
)

type seedRepository struct {
	*DB
	logger *logger.Logger
}

func NewSeedRepository(db *DB, logger *logger.Logger) SeedRepository {
	return &seedRepository{
		DB:     db,
		logger: logger,
	}
}

// SeedDemoData inserts data in one transaction. Existing rows win: users are
// matched by email and projects, persons and analyses by id.
func (s *seedRepository) SeedDemoData(ctx context.Context, data models.DemoData) (err error) {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*seedRepository.SeedDemoData").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// seed id -> id stored under the same email
	userIDs := make(map[string]string, len(data.Users))
	for _, user := range data.Users {
		if _, err = tx.ExecContext(ctx, seedUser, user.ID, user.Email, user.Name, user.PasswordHash, user.Role); err != nil {
			return s.DB.writeError(err, nil)
		}

		var storedID string
		if err = tx.QueryRowContext(ctx, seedUserIDByEmail, user.Email).Scan(&storedID); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		userIDs[user.ID] = storedID
	}

	for _, project := range data.Projects {
		_, err = tx.ExecContext(ctx, seedProject,
			project.ID, project.Title, project.Description, string(project.Status), resolveSeedUser(userIDs, project.ClientID),
		)
		if err != nil {
			return s.DB.writeError(err, nil)
		}
	}

	for _, member := range data.FamilyMembers {
		_, err = tx.ExecContext(ctx, seedFamilyMember,
			member.ID,
			member.ProjectID,
			member.FirstName,
			member.LastName,
			member.MaidenName,
			member.BirthDate,
			member.DeathDate,
			member.BirthPlace,
			member.DeathPlace,
			member.Occupation,
			member.Gender,
			resolveSeedUser(userIDs, member.AddedByID),
		)
		if err != nil {
			return s.DB.writeError(err, nil)
		}
	}

	for _, analysis := range data.Analyses {
		_, err = tx.ExecContext(ctx, seedAnalysis,
			analysis.ID,
			analysis.ProjectID,
			analysis.DocumentID,
			string(analysis.Type),
			analysis.Input,
			analysis.Output,
			analysis.Confidence,
			analysis.Model,
			analysis.Tokens,
		)
		if err != nil {
			return s.DB.writeError(err, nil)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*seedRepository.SeedDemoData").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Int("users", len(data.Users)).
		Int("projects", len(data.Projects)).
		Int("family_members", len(data.FamilyMembers)).
		Int("analyses", len(data.Analyses)).
		Msg("demo data seeded")
	return nil
}

func resolveSeedUser(ids map[string]string, seedID string) string {
	if id, ok := ids[seedID]; ok {
		return id
	}
	return seedID
}
