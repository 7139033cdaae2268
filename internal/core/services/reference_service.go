package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tracknest/timetrack_app/internal/core/domain"
	portsrepo "github.com/tracknest/timetrack_app/internal/core/ports/repositories"
	portssvc "github.com/tracknest/timetrack_app/internal/core/ports/services"
	"github.com/tracknest/timetrack_app/internal/dto"
	"github.com/tracknest/timetrack_app/internal/middleware"
)

// referenceService manages the reference collections (projects, areas of
// focus, cost codes) and resolves foreign keys to display names for the
// change auditor.
type referenceService struct {
	projectRepo  portsrepo.ProjectRepository
	areaRepo     portsrepo.AreaOfFocusRepository
	costCodeRepo portsrepo.CostCodeRepository
	userRepo     portsrepo.UserReader
}

// NewReferenceService creates a new reference-data service.
func NewReferenceService(projectRepo portsrepo.ProjectRepository, areaRepo portsrepo.AreaOfFocusRepository, costCodeRepo portsrepo.CostCodeRepository, userRepo portsrepo.UserReader) portssvc.ReferenceSvcFacade {
	return &referenceService{
		projectRepo:  projectRepo,
		areaRepo:     areaRepo,
		costCodeRepo: costCodeRepo,
		userRepo:     userRepo,
	}
}

var _ portssvc.ReferenceSvcFacade = (*referenceService)(nil)

// ResolveDisplayName resolves a foreign key to the display name shown in
// audit records. Misses and lookup failures both read as "None"; the diff
// must never fail because a referenced row disappeared.
func (s *referenceService) ResolveDisplayName(ctx context.Context, kind domain.ReferenceKind, id string) string {
	if id == "" {
		return "None"
	}
	switch kind {
	case domain.RefProject:
		if p, err := s.projectRepo.FindProjectByID(ctx, id); err == nil && p != nil {
			return p.Name
		}
	case domain.RefAreaOfFocus:
		if a, err := s.areaRepo.FindAreaByID(ctx, id); err == nil && a != nil {
			return a.Name
		}
	case domain.RefCostCode:
		if c, err := s.costCodeRepo.FindCostCodeByCode(ctx, id); err == nil && c != nil {
			return c.Name
		}
	case domain.RefUser:
		if u, err := s.userRepo.FindUserByID(ctx, id); err == nil && u != nil {
			return u.Name
		}
	}
	return "None"
}

func (s *referenceService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()
	project := domain.Project{
		ProjectID:   uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		AuditFields: newAuditFields(creatorUserID, now),
	}
	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		logger.Error("Failed to save project", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save project: %w", err)
	}
	return &project, nil
}

func (s *referenceService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *referenceService) ListProjects(ctx context.Context, includeInactive bool) ([]domain.Project, error) {
	return s.projectRepo.FindProjects(ctx, includeInactive)
}

func (s *referenceService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, actorUserID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}
	touchAuditFields(&project.AuditFields, actorUserID)
	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		return nil, fmt.Errorf("failed to update project %s: %w", projectID, err)
	}
	return project, nil
}

func (s *referenceService) CreateArea(ctx context.Context, req dto.CreateAreaRequest, creatorUserID string) (*domain.AreaOfFocus, error) {
	now := time.Now().UTC()
	area := domain.AreaOfFocus{
		AreaID:      uuid.NewString(),
		Name:        req.Name,
		IsActive:    true,
		AuditFields: newAuditFields(creatorUserID, now),
	}
	if err := s.areaRepo.SaveArea(ctx, area); err != nil {
		return nil, fmt.Errorf("failed to save area of focus: %w", err)
	}
	return &area, nil
}

func (s *referenceService) GetAreaByID(ctx context.Context, areaID string) (*domain.AreaOfFocus, error) {
	return s.areaRepo.FindAreaByID(ctx, areaID)
}

func (s *referenceService) ListAreas(ctx context.Context, includeInactive bool) ([]domain.AreaOfFocus, error) {
	return s.areaRepo.FindAreas(ctx, includeInactive)
}

func (s *referenceService) UpdateArea(ctx context.Context, areaID string, req dto.UpdateAreaRequest, actorUserID string) (*domain.AreaOfFocus, error) {
	area, err := s.areaRepo.FindAreaByID(ctx, areaID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		area.Name = *req.Name
	}
	if req.IsActive != nil {
		area.IsActive = *req.IsActive
	}
	touchAuditFields(&area.AuditFields, actorUserID)
	if err := s.areaRepo.UpdateArea(ctx, *area); err != nil {
		return nil, fmt.Errorf("failed to update area of focus %s: %w", areaID, err)
	}
	return area, nil
}

func (s *referenceService) CreateCostCode(ctx context.Context, req dto.CreateCostCodeRequest, creatorUserID string) (*domain.CostCode, error) {
	now := time.Now().UTC()
	costCode := domain.CostCode{
		Code:        req.Code,
		Name:        req.Name,
		IsActive:    true,
		AuditFields: newAuditFields(creatorUserID, now),
	}
	if err := s.costCodeRepo.SaveCostCode(ctx, costCode); err != nil {
		return nil, fmt.Errorf("failed to save cost code: %w", err)
	}
	return &costCode, nil
}

func (s *referenceService) GetCostCodeByCode(ctx context.Context, code string) (*domain.CostCode, error) {
	return s.costCodeRepo.FindCostCodeByCode(ctx, code)
}

func (s *referenceService) ListCostCodes(ctx context.Context, includeInactive bool) ([]domain.CostCode, error) {
	return s.costCodeRepo.FindCostCodes(ctx, includeInactive)
}

func (s *referenceService) UpdateCostCode(ctx context.Context, code string, req dto.UpdateCostCodeRequest, actorUserID string) (*domain.CostCode, error) {
	costCode, err := s.costCodeRepo.FindCostCodeByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		costCode.Name = *req.Name
	}
	if req.IsActive != nil {
		costCode.IsActive = *req.IsActive
	}
	touchAuditFields(&costCode.AuditFields, actorUserID)
	if err := s.costCodeRepo.UpdateCostCode(ctx, *costCode); err != nil {
		return nil, fmt.Errorf("failed to update cost code %s: %w", code, err)
	}
	return costCode, nil
}

func newAuditFields(creatorUserID string, now time.Time) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}
}

func touchAuditFields(f *domain.AuditFields, actorUserID string) {
	f.LastUpdatedAt = time.Now().UTC()
	f.LastUpdatedBy = actorUserID
}
