package models

import "time"

// Document is an artifact attached to a project. Only its metadata and
// transcribed text are stored; binary uploads are handled elsewhere.
type Document struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	Title     string `json:"title"`

	// Type is a free-form tag such as BIRTH_CERTIFICATE or CENSUS_RECORD.
	Type string `json:"type"`

	FileName *string `json:"fileName"`
	MimeType *string `json:"mimeType"`

	// Content is the transcribed text used as AI input.
	Content *string `json:"content"`

	UploadedByID string    `json:"uploadedById"`
	CreatedAt    time.Time `json:"createdAt"`
}
