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

var documentRowColumns = []string{"id", "project_id", "title", "type", "file_name", "mime_type", "content", "uploaded_by_id", "created_at"}

func newTestDocumentRepo(t *testing.T) (DocumentRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewDocumentRepository(newDBFromSQL(db), logger.Nop()), mock
}

func TestListDocuments(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)
	now := time.Now()

	mock.ExpectQuery("FROM documents").
		WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows(documentRowColumns).
			AddRow("d-2", "p-1", "1880 Census", "CENSUS_RECORD", nil, nil, "Household of John Smith", "c-1", now).
			AddRow("d-1", "p-1", "Birth certificate", "BIRTH_CERTIFICATE", "john.pdf", "application/pdf", nil, "c-1", now))

	documents, err := repo.ListDocuments(testContext(), "p-1")
	require.NoError(t, err)
	require.Len(t, documents, 2)
	assert.Equal(t, "Household of John Smith", *documents[0].Content)
	assert.Nil(t, documents[0].FileName)
	assert.Equal(t, "application/pdf", *documents[1].MimeType)
}

func TestGetDocument(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestDocumentRepo(t)
		mock.ExpectQuery("FROM documents").
			WithArgs("p-1", "d-1").
			WillReturnRows(sqlmock.NewRows(documentRowColumns).
				AddRow("d-1", "p-1", "Birth certificate", "BIRTH_CERTIFICATE", nil, nil, "text", "c-1", time.Now()))

		document, err := repo.GetDocument(testContext(), "p-1", "d-1")
		require.NoError(t, err)
		assert.Equal(t, "BIRTH_CERTIFICATE", document.Type)
	})

	t.Run("belongs to another project", func(t *testing.T) {
		repo, mock := newTestDocumentRepo(t)
		mock.ExpectQuery("FROM documents").
			WithArgs("p-2", "d-1").
			WillReturnRows(sqlmock.NewRows(documentRowColumns))

		_, err := repo.GetDocument(testContext(), "p-2", "d-1")
		require.ErrorIs(t, err, ErrDocumentNotFound)
	})
}

func TestCreateDocument(t *testing.T) {
	document := models.Document{
		ID:           "d-1",
		ProjectID:    "p-1",
		Title:        "Birth certificate",
		Type:         "BIRTH_CERTIFICATE",
		Content:      strPtr("John Smith, born March 15, 1850"),
		UploadedByID: "c-1",
	}

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestDocumentRepo(t)
		mock.ExpectQuery("INSERT INTO documents").
			WithArgs("d-1", "p-1", "Birth certificate", "BIRTH_CERTIFICATE", nil, nil, "John Smith, born March 15, 1850", "c-1").
			WillReturnRows(sqlmock.NewRows(documentRowColumns).
				AddRow("d-1", "p-1", "Birth certificate", "BIRTH_CERTIFICATE", nil, nil, "John Smith, born March 15, 1850", "c-1", time.Now()))

		created, err := repo.CreateDocument(testContext(), document)
		require.NoError(t, err)
		assert.Equal(t, "d-1", created.ID)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("unknown uploader", func(t *testing.T) {
		repo, mock := newTestDocumentRepo(t)
		mock.ExpectQuery("INSERT INTO documents").
			WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

		_, err := repo.CreateDocument(testContext(), document)
		require.ErrorIs(t, err, ErrInvalidReference)
	})
}

func TestDeleteDocument(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)
	mock.ExpectExec("DELETE FROM documents").
		WithArgs("p-1", "d-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.DeleteDocument(testContext(), "p-1", "d-1"), ErrDocumentNotFound)
}
