package models

import (
	"fmt"
	"time"
)

// RelationshipType tags the kind of edge between two family members.
type RelationshipType string

const (
	RelationshipParentChild           RelationshipType = "PARENT_CHILD"
	RelationshipSpouse                RelationshipType = "SPOUSE"
	RelationshipSibling               RelationshipType = "SIBLING"
	RelationshipGrandparentGrandchild RelationshipType = "GRANDPARENT_GRANDCHILD"
	RelationshipAuntUncle             RelationshipType = "AUNT_UNCLE"
	RelationshipCousin                RelationshipType = "COUSIN"
	RelationshipOther                 RelationshipType = "OTHER"
)

// RelationshipTypes lists every accepted relationship type.
var RelationshipTypes = []RelationshipType{
	RelationshipParentChild,
	RelationshipSpouse,
	RelationshipSibling,
	RelationshipGrandparentGrandchild,
	RelationshipAuntUncle,
	RelationshipCousin,
	RelationshipOther,
}

// ParseRelationshipType converts s into a RelationshipType.
func ParseRelationshipType(s string) (RelationshipType, error) {
	for _, t := range RelationshipTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown relationship type %q", s)
}

// Relationship is an edge between two members of the same project.
type Relationship struct {
	ID               string           `json:"id"`
	ProjectID        string           `json:"projectId"`
	Person1ID        string           `json:"person1Id"`
	Person2ID        string           `json:"person2Id"`
	RelationshipType RelationshipType `json:"relationshipType"`

	// Confidence and Reasoning are set for AI suggested edges.
	Confidence *float64 `json:"confidence"`
	Reasoning  *string  `json:"reasoning"`

	AISuggested bool      `json:"aiSuggested"`
	CreatedAt   time.Time `json:"createdAt"`
}
