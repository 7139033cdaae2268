package services

import (
	"context"

	"github.com/tracknest/timetrack_app/internal/core/domain"
	"github.com/tracknest/timetrack_app/internal/dto"
)

// ReferenceResolver resolves a foreign key to its display name at diff
// time. A missing or unknown id resolves to "None"; resolution never fails.
type ReferenceResolver interface {
	ResolveDisplayName(ctx context.Context, kind domain.ReferenceKind, id string) string
}

// ProjectSvc defines operations on projects.
type ProjectSvc interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error)
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, includeInactive bool) ([]domain.Project, error)
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, actorUserID string) (*domain.Project, error)
}

// AreaOfFocusSvc defines operations on areas of focus.
type AreaOfFocusSvc interface {
	CreateArea(ctx context.Context, req dto.CreateAreaRequest, creatorUserID string) (*domain.AreaOfFocus, error)
	GetAreaByID(ctx context.Context, areaID string) (*domain.AreaOfFocus, error)
	ListAreas(ctx context.Context, includeInactive bool) ([]domain.AreaOfFocus, error)
	UpdateArea(ctx context.Context, areaID string, req dto.UpdateAreaRequest, actorUserID string) (*domain.AreaOfFocus, error)
}

// CostCodeSvc defines operations on cost codes.
type CostCodeSvc interface {
	CreateCostCode(ctx context.Context, req dto.CreateCostCodeRequest, creatorUserID string) (*domain.CostCode, error)
	GetCostCodeByCode(ctx context.Context, code string) (*domain.CostCode, error)
	ListCostCodes(ctx context.Context, includeInactive bool) ([]domain.CostCode, error)
	UpdateCostCode(ctx context.Context, code string, req dto.UpdateCostCodeRequest, actorUserID string) (*domain.CostCode, error)
}

// ReferenceSvcFacade combines the reference-data service interfaces.
type ReferenceSvcFacade interface {
	ReferenceResolver
	ProjectSvc
	AreaOfFocusSvc
	CostCodeSvc
}
