package models

// DemoData is the fixed set of rows inserted when demo seeding is enabled.
//
// Users are matched by email: when an account with the same email already
// exists its id is used for every row that references the seed user.
type DemoData struct {
	Users         []User
	Projects      []Project
	FamilyMembers []FamilyMember
	Analyses      []AIAnalysis
}
