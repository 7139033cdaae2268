package models

// Project is the database representation of a project.
type Project struct {
	ProjectID   string `db:"project_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}

// AreaOfFocus is the database representation of an area of focus.
type AreaOfFocus struct {
	AreaID   string `db:"area_id"`
	Name     string `db:"name"`
	IsActive bool   `db:"is_active"`
	AuditFields
}

// CostCode is the database representation of a cost code.
type CostCode struct {
	Code     string `db:"code"`
	Name     string `db:"name"`
	IsActive bool   `db:"is_active"`
	AuditFields
}
