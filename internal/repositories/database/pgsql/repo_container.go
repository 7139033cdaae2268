package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/tracknest/timetrack_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	timeEntryRepo := newPgxTimeEntryRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	projectRepo := newPgxProjectRepository(dbPool)
	areaRepo := newPgxAreaOfFocusRepository(dbPool)
	costCodeRepo := newPgxCostCodeRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TimeEntryRepo: timeEntryRepo,
		UserRepo:      userRepo,
		ProjectRepo:   projectRepo,
		AreaRepo:      areaRepo,
		CostCodeRepo:  costCodeRepo,
	}
}
