package models

import (
	"fmt"
	"time"
)

// Gender of a family member.
type Gender string

const (
	GenderMale    Gender = "MALE"
	GenderFemale  Gender = "FEMALE"
	GenderOther   Gender = "OTHER"
	GenderUnknown Gender = "UNKNOWN"
)

// ParseGender converts s into a Gender.
func ParseGender(s string) (Gender, error) {
	switch g := Gender(s); g {
	case GenderMale, GenderFemale, GenderOther, GenderUnknown:
		return g, nil
	default:
		return "", fmt.Errorf("unknown gender %q", s)
	}
}

// FamilyMember is a person record attached to exactly one project.
type FamilyMember struct {
	ID         string  `json:"id"`
	ProjectID  string  `json:"projectId"`
	FirstName  string  `json:"firstName"`
	LastName   *string `json:"lastName"`
	MaidenName *string `json:"maidenName"`
	BirthDate  *Date   `json:"birthDate"`
	DeathDate  *Date   `json:"deathDate"`
	BirthPlace *string `json:"birthPlace"`
	DeathPlace *string `json:"deathPlace"`
	Occupation *string `json:"occupation"`
	Gender     *Gender `json:"gender"`

	// AddedByID is the user that created the record.
	AddedByID string `json:"addedById"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FullName joins first and last name.
func (m FamilyMember) FullName() string {
	if m.LastName == nil || *m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + *m.LastName
}

// FamilyMemberUpdate is a partial update; nil fields are left unchanged.
type FamilyMemberUpdate struct {
	FirstName  *string
	LastName   *string
	MaidenName *string
	BirthDate  *Date
	DeathDate  *Date
	BirthPlace *string
	DeathPlace *string
	Occupation *string
	Gender     *Gender
}

// IsEmpty reports whether the update changes nothing.
func (u FamilyMemberUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.MaidenName == nil &&
		u.BirthDate == nil && u.DeathDate == nil && u.BirthPlace == nil &&
		u.DeathPlace == nil && u.Occupation == nil && u.Gender == nil
}

// ApplyTo returns a copy of m with the non-nil fields of u applied.
func (u FamilyMemberUpdate) ApplyTo(m FamilyMember) FamilyMember {
	if u.FirstName != nil {
		m.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		m.LastName = u.LastName
	}
	if u.MaidenName != nil {
		m.MaidenName = u.MaidenName
	}
	if u.BirthDate != nil {
		m.BirthDate = u.BirthDate
	}
	if u.DeathDate != nil {
		m.DeathDate = u.DeathDate
	}
	if u.BirthPlace != nil {
		m.BirthPlace = u.BirthPlace
	}
	if u.DeathPlace != nil {
		m.DeathPlace = u.DeathPlace
	}
	if u.Occupation != nil {
		m.Occupation = u.Occupation
	}
	if u.Gender != nil {
		m.Gender = u.Gender
	}
	return m
}
