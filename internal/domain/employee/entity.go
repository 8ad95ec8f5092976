package employee

import "time"

type Employee struct {
	ID           string
	Name         string
	UserID       *string
	ManagerName  string
	ManagerEmail string
	CreatedAt    time.Time
}
