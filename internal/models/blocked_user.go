package models

// BlockedUser marks an email barred from submitting applications.
type BlockedUser struct {
	Email string `json:"email"`
}
