package store

import (
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var relationshipRowColumns = []string{
	"id", "project_id", "person1_id", "person2_id", "relationship_type", "confidence", "reasoning", "ai_suggested", "created_at",
}

func newTestRelationshipRepo(t *testing.T) (RelationshipRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewRelationshipRepository(newDBFromSQL(db), logger.Nop()), mock
}

func TestListRelationships(t *testing.T) {
	repo, mock := newTestRelationshipRepo(t)

	mock.ExpectQuery("FROM relationships").
		WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows(relationshipRowColumns).
			AddRow("r-1", "p-1", "m-1", "m-2", "SPOUSE", 0.9, "same household", true, time.Now()).
			AddRow("r-2", "p-1", "m-1", "m-3", "PARENT_CHILD", nil, nil, false, time.Now()))

	relationships, err := repo.ListRelationships(testContext(), "p-1")
	require.NoError(t, err)
	require.Len(t, relationships, 2)

	assert.Equal(t, models.RelationshipSpouse, relationships[0].RelationshipType)
	require.NotNil(t, relationships[0].Confidence)
	assert.InDelta(t, 0.9, *relationships[0].Confidence, 1e-9)
	assert.True(t, relationships[0].AISuggested)
	assert.Nil(t, relationships[1].Confidence)
}

// TestCreateRelationship verifies that constraint violations of the
// relationships table surface as store sentinels.
func TestCreateRelationship(t *testing.T) {
	confidence := 0.8
	relationship := models.Relationship{
		ID:               "r-1",
		ProjectID:        "p-1",
		Person1ID:        "m-1",
		Person2ID:        "m-3",
		RelationshipType: models.RelationshipParentChild,
		Confidence:       &confidence,
		AISuggested:      true,
	}

	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "success"},
		{name: "person from another project", dbErr: pgError(pgerrcode.ForeignKeyViolation), wantErr: ErrInvalidReference},
		{name: "duplicate", dbErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrRelationshipAlreadyExists},
		{name: "self relationship", dbErr: pgError(pgerrcode.CheckViolation), wantErr: ErrInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRelationshipRepo(t)
			expect := mock.ExpectQuery("INSERT INTO relationships").
				WithArgs("r-1", "p-1", "m-1", "m-3", "PARENT_CHILD", 0.8, nil, true)

			if tt.dbErr != nil {
				expect.WillReturnError(tt.dbErr)
			} else {
				expect.WillReturnRows(sqlmock.NewRows(relationshipRowColumns).
					AddRow("r-1", "p-1", "m-1", "m-3", "PARENT_CHILD", 0.8, nil, true, time.Now()))
			}

			created, err := repo.CreateRelationship(testContext(), relationship)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "r-1", created.ID)
			assert.Nil(t, created.Reasoning)
		})
	}
}

func TestDeleteRelationship(t *testing.T) {
	repo, mock := newTestRelationshipRepo(t)
	mock.ExpectExec("DELETE FROM relationships").
		WithArgs("p-1", "r-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteRelationship(testContext(), "p-1", "r-1"))
}
