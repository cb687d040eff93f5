package store

import (
	"github.com/MKhiriev/go-family-tree/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	userColumns         = `id, email, name, password_hash, role, created_at, updated_at`
	projectColumns      = `id, title, description, status, client_id, created_at, updated_at`
	familyMemberColumns = `id, project_id, first_name, last_name, maiden_name, birth_date, death_date, birth_place, death_place, occupation, gender, added_by_id, created_at, updated_at`
	documentColumns     = `id, project_id, title, type, file_name, mime_type, content, uploaded_by_id, created_at`
	relationshipColumns = `id, project_id, person1_id, person2_id, relationship_type, confidence, reasoning, ai_suggested, created_at`
	analysisColumns     = `id, project_id, document_id, type, input, output, confidence, model, tokens, created_at`
)

const (
	createUser = `INSERT INTO users (id, email, name, password_hash, role)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	createProject = `INSERT INTO projects (id, title, description, status, client_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + projectColumns + `;`

	deleteProject = `DELETE FROM projects
    WHERE id = $1;`

	listFamilyMembers = `SELECT ` + familyMemberColumns + `
    FROM family_members
    WHERE project_id = $1
    ORDER BY birth_date ASC NULLS LAST, created_at ASC;`

	getFamilyMember = `SELECT ` + familyMemberColumns + `
    FROM family_members
    WHERE project_id = $1 AND id = $2;`

	createFamilyMember = `INSERT INTO family_members (id, project_id, first_name, last_name, maiden_name, birth_date, death_date, birth_place, death_place, occupation, gender, added_by_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    RETURNING ` + familyMemberColumns + `;`

	deleteFamilyMember = `DELETE FROM family_members
    WHERE project_id = $1 AND id = $2;`

	listDocuments = `SELECT ` + documentColumns + `
    FROM documents
    WHERE project_id = $1
    ORDER BY created_at DESC;`

	getDocument = `SELECT ` + documentColumns + `
    FROM documents
    WHERE project_id = $1 AND id = $2;`

	createDocument = `INSERT INTO documents (id, project_id, title, type, file_name, mime_type, content, uploaded_by_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING ` + documentColumns + `;`

	deleteDocument = `DELETE FROM documents
    WHERE project_id = $1 AND id = $2;`

	listRelationships = `SELECT ` + relationshipColumns + `
    FROM relationships
    WHERE project_id = $1
    ORDER BY created_at ASC;`

	createRelationship = `INSERT INTO relationships (id, project_id, person1_id, person2_id, relationship_type, confidence, reasoning, ai_suggested)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING ` + relationshipColumns + `;`

	deleteRelationship = `DELETE FROM relationships
    WHERE project_id = $1 AND id = $2;`

	createAnalysis = `INSERT INTO ai_analyses (id, project_id, document_id, type, input, output, confidence, model, tokens)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING ` + analysisColumns + `;`

	listAnalyses = `SELECT ` + analysisColumns + `
    FROM ai_analyses
    WHERE project_id = $1
    ORDER BY created_at DESC;`

	getAdminStats = `SELECT
        (SELECT COUNT(*) FROM users WHERE role = 'CLIENT'),
        (SELECT COUNT(*) FROM projects WHERE status = 'ACTIVE'),
        (SELECT COUNT(*) FROM ai_analyses WHERE type = 'DOCUMENT_ANALYSIS'),
        (SELECT COUNT(*) FROM ai_analyses);`
)

// Seed statements never overwrite existing rows.
const (
	seedUser = `INSERT INTO users (id, email, name, password_hash, role)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT DO NOTHING;`

	seedUserIDByEmail = `SELECT id FROM users WHERE email = $1;`

	seedProject = `INSERT INTO projects (id, title, description, status, client_id)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT (id) DO NOTHING;`

	seedFamilyMember = `INSERT INTO family_members (id, project_id, first_name, last_name, maiden_name, birth_date, death_date, birth_place, death_place, occupation, gender, added_by_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    ON CONFLICT (id) DO NOTHING;`

	seedAnalysis = `INSERT INTO ai_analyses (id, project_id, document_id, type, input, output, confidence, model, tokens)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    ON CONFLICT (id) DO NOTHING;`
)

// selectProjects is the shared projection of project listings: the project
// row, its owning client and the number of rows it holds in each child table.
func selectProjects() sq.SelectBuilder {
	return psql.
		Select(
			"p.id", "p.title", "p.description", "p.status", "p.client_id", "p.created_at", "p.updated_at",
			"u.id", "u.name", "u.email",
			"(SELECT COUNT(*) FROM documents d WHERE d.project_id = p.id) AS documents_count",
			"(SELECT COUNT(*) FROM family_members m WHERE m.project_id = p.id) AS family_members_count",
			"(SELECT COUNT(*) FROM relationships r WHERE r.project_id = p.id) AS relationships_count",
		).
		From("projects p").
		Join("users u ON u.id = p.client_id")
}

// buildListProjectsQuery returns every project visible through filter,
// newest first. An empty ClientID lists all projects.
func buildListProjectsQuery(filter models.ProjectFilter) (string, []any, error) {
	query := selectProjects()
	if filter.ClientID != "" {
		query = query.Where(sq.Eq{"p.client_id": filter.ClientID})
	}
	return query.OrderBy("p.created_at DESC", "p.id DESC").ToSql()
}

func buildGetProjectQuery(id string) (string, []any, error) {
	return selectProjects().Where(sq.Eq{"p.id": id}).ToSql()
}

// buildUpdateProjectQuery sets only the non-nil fields of update and always
// bumps updated_at.
func buildUpdateProjectQuery(id string, update models.ProjectUpdate) (string, []any, error) {
	query := psql.Update("projects")

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	}
	if update.Status != nil {
		query = query.Set("status", string(*update.Status))
	}

	return query.
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + projectColumns).
		ToSql()
}

// buildUpdateFamilyMemberQuery is the family member counterpart of
// buildUpdateProjectQuery. The row is addressed by project and id.
func buildUpdateFamilyMemberQuery(projectID, id string, update models.FamilyMemberUpdate) (string, []any, error) {
	query := psql.Update("family_members")

	if update.FirstName != nil {
		query = query.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		query = query.Set("last_name", *update.LastName)
	}
	if update.MaidenName != nil {
		query = query.Set("maiden_name", *update.MaidenName)
	}
	if update.BirthDate != nil {
		query = query.Set("birth_date", *update.BirthDate)
	}
	if update.DeathDate != nil {
		query = query.Set("death_date", *update.DeathDate)
	}
	if update.BirthPlace != nil {
		query = query.Set("birth_place", *update.BirthPlace)
	}
	if update.DeathPlace != nil {
		query = query.Set("death_place", *update.DeathPlace)
	}
	if update.Occupation != nil {
		query = query.Set("occupation", *update.Occupation)
	}
	if update.Gender != nil {
		query = query.Set("gender", string(*update.Gender))
	}

	return query.
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"project_id": projectID, "id": id}).
		Suffix("RETURNING " + familyMemberColumns).
		ToSql()
}

// buildListClientOverviewsQuery lists CLIENT accounts with the number of
// projects each one owns, newest account first.
func buildListClientOverviewsQuery() (string, []any, error) {
	return psql.
		Select("u.id", "u.name", "u.email", "COUNT(p.id) AS project_count", "u.created_at").
		From("users u").
		LeftJoin("projects p ON p.client_id = u.id").
		Where(sq.Eq{"u.role": string(models.RoleClient)}).
		GroupBy("u.id").
		OrderBy("u.created_at DESC").
		ToSql()
}
