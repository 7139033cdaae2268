package repositories

import (
	"context"

	"github.com/tracknest/timetrack_app/internal/core/domain"
)

// ProjectRepository persists projects.
type ProjectRepository interface {
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	FindProjects(ctx context.Context, includeInactive bool) ([]domain.Project, error)
	SaveProject(ctx context.Context, project domain.Project) error
	UpdateProject(ctx context.Context, project domain.Project) error
}

// AreaOfFocusRepository persists areas of focus.
type AreaOfFocusRepository interface {
	FindAreaByID(ctx context.Context, areaID string) (*domain.AreaOfFocus, error)
	FindAreas(ctx context.Context, includeInactive bool) ([]domain.AreaOfFocus, error)
	SaveArea(ctx context.Context, area domain.AreaOfFocus) error
	UpdateArea(ctx context.Context, area domain.AreaOfFocus) error
}

// CostCodeRepository persists cost codes.
type CostCodeRepository interface {
	FindCostCodeByCode(ctx context.Context, code string) (*domain.CostCode, error)
	FindCostCodes(ctx context.Context, includeInactive bool) ([]domain.CostCode, error)
	SaveCostCode(ctx context.Context, costCode domain.CostCode) error
	UpdateCostCode(ctx context.Context, costCode domain.CostCode) error
}
