package employee

type EmployeeResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UserID    *string `json:"user_id,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type ListEmployeeResponse struct {
	TotalCount int                `json:"total_count"`
	Employees  []EmployeeResponse `json:"employees"`
}

type ImportRosterResponse struct {
	Imported int `json:"imported"`
}
