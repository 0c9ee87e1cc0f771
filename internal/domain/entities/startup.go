package entities

import "time"

// Startup is the minimal startup record the equity engine needs: who owns it.
type Startup struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Identity is the authenticated caller, as asserted by the bearer token.
type Identity struct {
	UserID string
	Email  string
	Role   string
}
