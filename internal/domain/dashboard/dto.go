package dashboard

type DashboardResponse struct {
	ManagerName        string `json:"manager_name"`
	EmployeeCount      int64  `json:"employee_count"`
	AdjustmentCount30d int64  `json:"adjustment_count_30d"`
}
