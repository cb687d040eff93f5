package models

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the body of POST /api/auth/register.
// Password length is capped at 72 bytes, the bcrypt input limit.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,max=200"`
}

// CreateProjectRequest is the body of POST /api/projects.
type CreateProjectRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

// UpdateProjectRequest is the body of PATCH /api/projects/{projectID}.
type UpdateProjectRequest struct {
	Title       *string        `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string        `json:"description" validate:"omitempty,max=5000"`
	Status      *ProjectStatus `json:"status" validate:"omitempty,project_status"`
}

// ToUpdate converts the request into a store update.
func (r UpdateProjectRequest) ToUpdate() ProjectUpdate {
	return ProjectUpdate{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
	}
}

// CreateFamilyMemberRequest is the body of POST .../members.
type CreateFamilyMemberRequest struct {
	FirstName  string  `json:"firstName" validate:"required,max=100"`
	LastName   *string `json:"lastName" validate:"omitempty,max=100"`
	MaidenName *string `json:"maidenName" validate:"omitempty,max=100"`
	BirthDate  *Date   `json:"birthDate"`
	DeathDate  *Date   `json:"deathDate"`
	BirthPlace *string `json:"birthPlace" validate:"omitempty,max=200"`
	DeathPlace *string `json:"deathPlace" validate:"omitempty,max=200"`
	Occupation *string `json:"occupation" validate:"omitempty,max=200"`
	Gender     *Gender `json:"gender" validate:"omitempty,gender"`
}

// ToMember converts the request into a member of projectID added by userID.
func (r CreateFamilyMemberRequest) ToMember(projectID, userID string) FamilyMember {
	return FamilyMember{
		ProjectID:  projectID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		MaidenName: r.MaidenName,
		BirthDate:  r.BirthDate,
		DeathDate:  r.DeathDate,
		BirthPlace: r.BirthPlace,
		DeathPlace: r.DeathPlace,
		Occupation: r.Occupation,
		Gender:     r.Gender,
		AddedByID:  userID,
	}
}

// UpdateFamilyMemberRequest is the body of PATCH .../members/{memberID}.
type UpdateFamilyMemberRequest struct {
	FirstName  *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName   *string `json:"lastName" validate:"omitempty,max=100"`
	MaidenName *string `json:"maidenName" validate:"omitempty,max=100"`
	BirthDate  *Date   `json:"birthDate"`
	DeathDate  *Date   `json:"deathDate"`
	BirthPlace *string `json:"birthPlace" validate:"omitempty,max=200"`
	DeathPlace *string `json:"deathPlace" validate:"omitempty,max=200"`
	Occupation *string `json:"occupation" validate:"omitempty,max=200"`
	Gender     *Gender `json:"gender" validate:"omitempty,gender"`
}

// ToUpdate converts the request into a store update.
func (r UpdateFamilyMemberRequest) ToUpdate() FamilyMemberUpdate {
	return FamilyMemberUpdate{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		MaidenName: r.MaidenName,
		BirthDate:  r.BirthDate,
		DeathDate:  r.DeathDate,
		BirthPlace: r.BirthPlace,
		DeathPlace: r.DeathPlace,
		Occupation: r.Occupation,
		Gender:     r.Gender,
	}
}

// CreateDocumentRequest is the body of POST .../documents.
type CreateDocumentRequest struct {
	Title    string  `json:"title" validate:"required,max=300"`
	Type     string  `json:"type" validate:"required,max=100"`
	FileName *string `json:"fileName" validate:"omitempty,max=300"`
	MimeType *string `json:"mimeType" validate:"omitempty,max=100"`
	Content  *string `json:"content"`
}

// CreateRelationshipRequest is the body of POST .../relationships.
type CreateRelationshipRequest struct {
	Person1ID        string           `json:"person1Id" validate:"required"`
	Person2ID        string           `json:"person2Id" validate:"required,nefield=Person1ID"`
	RelationshipType RelationshipType `json:"relationshipType" validate:"required,relationship_type"`
	Confidence       *float64         `json:"confidence" validate:"omitempty,gte=0,lte=1"`
	Reasoning        *string          `json:"reasoning"`
	AISuggested      bool             `json:"aiSuggested"`
}

// AnalyzeDocumentRequest is the body of POST /api/ai/analyze-document.
type AnalyzeDocumentRequest struct {
	DocumentContent string  `json:"documentContent" validate:"required"`
	DocumentType    string  `json:"documentType" validate:"required"`
	ProjectID       string  `json:"projectId" validate:"required"`
	DocumentID      *string `json:"documentId" validate:"omitempty,min=1"`
}

// ProjectAIRequest is the body of the AI endpoints that only need a project.
type ProjectAIRequest struct {
	ProjectID string `json:"projectId" validate:"required"`
}

// StandardizeNamesRequest is the body of POST /api/ai/standardize-names.
type StandardizeNamesRequest struct {
	ProjectID string   `json:"projectId" validate:"required"`
	Names     []string `json:"names" validate:"required,min=1,max=100,dive,required"`
}
