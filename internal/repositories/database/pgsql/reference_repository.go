package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tracknest/timetrack_app/internal/apperrors"
	"github.com/tracknest/timetrack_app/internal/core/domain"
	portsrepo "github.com/tracknest/timetrack_app/internal/core/ports/repositories"
	"github.com/tracknest/timetrack_app/internal/models"
	"github.com/tracknest/timetrack_app/internal/utils/mapping"
)

type PgxProjectRepository struct {
	db *pgxpool.Pool
}

func newPgxProjectRepository(db *pgxpool.Pool) portsrepo.ProjectRepository {
	return &PgxProjectRepository{db: db}
}

var _ portsrepo.ProjectRepository = (*PgxProjectRepository)(nil)

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `
        SELECT project_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by
        FROM projects
        WHERE project_id = $1;
    `
	var m models.Project
	err := r.db.QueryRow(ctx, query, projectID).Scan(
		&m.ProjectID,
		&m.Name,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by ID %s: %w", projectID, err)
	}
	project := mapping.ToDomainProject(m)
	return &project, nil
}

func (r *PgxProjectRepository) FindProjects(ctx context.Context, includeInactive bool) ([]domain.Project, error) {
	query := `
        SELECT project_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by
        FROM projects
        WHERE is_active OR $1
        ORDER BY name ASC;
    `
	rows, err := r.db.Query(ctx, query, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var m models.Project
		err := rows.Scan(
			&m.ProjectID,
			&m.Name,
			&m.Description,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, mapping.ToDomainProject(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", rows.Err())
	}
	return projects, nil
}

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `
        INSERT INTO projects (project_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		m.ProjectID, m.Name, m.Description, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `
        UPDATE projects
        SET name = $1, description = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
        WHERE project_id = $6;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name, m.Description, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy, m.ProjectID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("project not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

type PgxAreaOfFocusRepository struct {
	db *pgxpool.Pool
}

func newPgxAreaOfFocusRepository(db *pgxpool.Pool) portsrepo.AreaOfFocusRepository {
	return &PgxAreaOfFocusRepository{db: db}
}

var _ portsrepo.AreaOfFocusRepository = (*PgxAreaOfFocusRepository)(nil)

func (r *PgxAreaOfFocusRepository) FindAreaByID(ctx context.Context, areaID string) (*domain.AreaOfFocus, error) {
	query := `
        SELECT area_id, name, is_active, created_at, created_by, last_updated_at, last_updated_by
        FROM areas_of_focus
        WHERE area_id = $1;
    `
	var m models.AreaOfFocus
	err := r.db.QueryRow(ctx, query, areaID).Scan(
		&m.AreaID,
		&m.Name,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find area of focus by ID %s: %w", areaID, err)
	}
	area := mapping.ToDomainAreaOfFocus(m)
	return &area, nil
}

func (r *PgxAreaOfFocusRepository) FindAreas(ctx context.Context, includeInactive bool) ([]domain.AreaOfFocus, error) {
	query := `
        SELECT area_id, name, is_active, created_at, created_by, last_updated_at, last_updated_by
        FROM areas_of_focus
        WHERE is_active OR $1
        ORDER BY name ASC;
    `
	rows, err := r.db.Query(ctx, query, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to query areas of focus: %w", err)
	}
	defer rows.Close()

	areas := []domain.AreaOfFocus{}
	for rows.Next() {
		var m models.AreaOfFocus
		err := rows.Scan(
			&m.AreaID,
			&m.Name,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan area of focus row: %w", err)
		}
		areas = append(areas, mapping.ToDomainAreaOfFocus(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating area of focus rows: %w", rows.Err())
	}
	return areas, nil
}

func (r *PgxAreaOfFocusRepository) SaveArea(ctx context.Context, area domain.AreaOfFocus) error {
	m := mapping.ToModelAreaOfFocus(area)
	query := `
        INSERT INTO areas_of_focus (area_id, name, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		m.AreaID, m.Name, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save area of focus: %w", err)
	}
	return nil
}

func (r *PgxAreaOfFocusRepository) UpdateArea(ctx context.Context, area domain.AreaOfFocus) error {
	m := mapping.ToModelAreaOfFocus(area)
	query := `
        UPDATE areas_of_focus
        SET name = $1, is_active = $2, last_updated_at = $3, last_updated_by = $4
        WHERE area_id = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy, m.AreaID,
	)
	if err != nil {
		return fmt.Errorf("failed to update area of focus: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("area of focus not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

type PgxCostCodeRepository struct {
	db *pgxpool.Pool
}

func newPgxCostCodeRepository(db *pgxpool.Pool) portsrepo.CostCodeRepository {
	return &PgxCostCodeRepository{db: db}
}

var _ portsrepo.CostCodeRepository = (*PgxCostCodeRepository)(nil)

func (r *PgxCostCodeRepository) FindCostCodeByCode(ctx context.Context, code string) (*domain.CostCode, error) {
	query := `
        SELECT code, name, is_active, created_at, created_by, last_updated_at, last_updated_by
        FROM cost_codes
        WHERE code = $1;
    `
	var m models.CostCode
	err := r.db.QueryRow(ctx, query, code).Scan(
		&m.Code,
		&m.Name,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cost code %s: %w", code, err)
	}
	costCode := mapping.ToDomainCostCode(m)
	return &costCode, nil
}

func (r *PgxCostCodeRepository) FindCostCodes(ctx context.Context, includeInactive bool) ([]domain.CostCode, error) {
	query := `
        SELECT code, name, is_active, created_at, created_by, last_updated_at, last_updated_by
        FROM cost_codes
        WHERE is_active OR $1
        ORDER BY code ASC;
    `
	rows, err := r.db.Query(ctx, query, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to query cost codes: %w", err)
	}
	defer rows.Close()

	costCodes := []domain.CostCode{}
	for rows.Next() {
		var m models.CostCode
		err := rows.Scan(
			&m.Code,
			&m.Name,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cost code row: %w", err)
		}
		costCodes = append(costCodes, mapping.ToDomainCostCode(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating cost code rows: %w", rows.Err())
	}
	return costCodes, nil
}

func (r *PgxCostCodeRepository) SaveCostCode(ctx context.Context, costCode domain.CostCode) error {
	m := mapping.ToModelCostCode(costCode)
	query := `
        INSERT INTO cost_codes (code, name, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		m.Code, m.Name, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save cost code: %w", err)
	}
	return nil
}

func (r *PgxCostCodeRepository) UpdateCostCode(ctx context.Context, costCode domain.CostCode) error {
	m := mapping.ToModelCostCode(costCode)
	query := `
        UPDATE cost_codes
        SET name = $1, is_active = $2, last_updated_at = $3, last_updated_by = $4
        WHERE code = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy, m.Code,
	)
	if err != nil {
		return fmt.Errorf("failed to update cost code: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("cost code not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
