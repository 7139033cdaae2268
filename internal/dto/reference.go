package dto

import (
	"github.com/tracknest/timetrack_app/internal/core/domain"
)

// CreateProjectRequest defines the payload for creating a project.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,max=128"`
	Description string `json:"description" binding:"max=512"`
}

// UpdateProjectRequest defines the data allowed for updating a project.
type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=128"`
	Description *string `json:"description" binding:"omitempty,max=512"`
	IsActive    *bool   `json:"isActive"`
}

// CreateAreaRequest defines the payload for creating an area of focus.
type CreateAreaRequest struct {
	Name string `json:"name" binding:"required,max=128"`
}

// UpdateAreaRequest defines the data allowed for updating an area of focus.
type UpdateAreaRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=128"`
	IsActive *bool   `json:"isActive"`
}

// CreateCostCodeRequest defines the payload for creating a cost code.
// Codes are validated against the costcode format (see RegisterValidators).
type CreateCostCodeRequest struct {
	Code string `json:"code" binding:"required,max=32,costcode"`
	Name string `json:"name" binding:"required,max=128"`
}

// UpdateCostCodeRequest defines the data allowed for updating a cost code.
type UpdateCostCodeRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=128"`
	IsActive *bool   `json:"isActive"`
}

// ProjectResponse is the API representation of a project.
type ProjectResponse struct {
	ProjectID   string `json:"projectID"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
}

// AreaResponse is the API representation of an area of focus.
type AreaResponse struct {
	AreaID   string `json:"areaID"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// CostCodeResponse is the API representation of a cost code.
type CostCodeResponse struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// ToProjectResponse converts a domain.Project.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:   p.ProjectID,
		Name:        p.Name,
		Description: p.Description,
		IsActive:    p.IsActive,
	}
}

// ToProjectResponses converts a slice of projects.
func ToProjectResponses(projects []domain.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i := range projects {
		out[i] = ToProjectResponse(&projects[i])
	}
	return out
}

// ToAreaResponse converts a domain.AreaOfFocus.
func ToAreaResponse(a *domain.AreaOfFocus) AreaResponse {
	return AreaResponse{AreaID: a.AreaID, Name: a.Name, IsActive: a.IsActive}
}

// ToAreaResponses converts a slice of areas.
func ToAreaResponses(areas []domain.AreaOfFocus) []AreaResponse {
	out := make([]AreaResponse, len(areas))
	for i := range areas {
		out[i] = ToAreaResponse(&areas[i])
	}
	return out
}

// ToCostCodeResponse converts a domain.CostCode.
func ToCostCodeResponse(c *domain.CostCode) CostCodeResponse {
	return CostCodeResponse{Code: c.Code, Name: c.Name, IsActive: c.IsActive}
}

// ToCostCodeResponses converts a slice of cost codes.
func ToCostCodeResponses(codes []domain.CostCode) []CostCodeResponse {
	out := make([]CostCodeResponse, len(codes))
	for i := range codes {
		out[i] = ToCostCodeResponse(&codes[i])
	}
	return out
}
