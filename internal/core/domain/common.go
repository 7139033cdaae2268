package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// ReferenceKind identifies which reference collection a foreign key points at.
type ReferenceKind string

const (
	RefProject     ReferenceKind = "project"
	RefAreaOfFocus ReferenceKind = "areaOfFocus"
	RefCostCode    ReferenceKind = "costCode"
	RefUser        ReferenceKind = "user"
)
