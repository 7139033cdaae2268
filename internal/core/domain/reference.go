package domain

// Project is a billable or internal project time entries are filed against.
type Project struct {
	ProjectID   string `json:"projectID"` // Primary Key (e.g., UUID)
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

// AreaOfFocus groups time entries by organizational area.
type AreaOfFocus struct {
	AreaID   string `json:"areaID"` // Primary Key (e.g., UUID)
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
	AuditFields
}

// CostCode is an accounting bucket attached to time entries.
type CostCode struct {
	Code     string `json:"code"` // Primary Key (user-defined short code)
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
	AuditFields
}
