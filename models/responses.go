package models

// Response is the JSON envelope of every API reply.
//
// Successful replies carry Data and optionally Message. Failed replies carry
// Error (a short title), Message (human-readable detail) and, for
// validation failures only, per-field Details.
type Response struct {
	Success bool              `json:"success"`
	Data    any               `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// AuthResponse is the data of login, register and me replies.
type AuthResponse struct {
	User AuthUser `json:"user"`
}

// HealthResponse is the data of GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
