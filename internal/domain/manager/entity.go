package manager

import "time"

// Manager is a sign-in account. Email is the technical login the directory
// resolves display names to.
type Manager struct {
	ID        string
	Name      string
	Email     string
	PINHash   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
