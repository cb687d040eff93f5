package models

import "time"

// AdminStats are the totals shown on the admin dashboard.
type AdminStats struct {
	TotalClients      int `json:"totalClients"`
	ActiveProjects    int `json:"activeProjects"`
	DocumentsAnalyzed int `json:"documentsAnalyzed"`
	AIInsights        int `json:"aiInsights"`
}

// ClientOverview is one row of the admin client list.
type ClientOverview struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ProjectCount int       `json:"projectCount"`
	CreatedAt    time.Time `json:"createdAt"`
}
