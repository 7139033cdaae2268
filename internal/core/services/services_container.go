package services

import (
	portsrepo "github.com/tracknest/timetrack_app/internal/core/ports/repositories"
	portssvc "github.com/tracknest/timetrack_app/internal/core/ports/services"
	"github.com/tracknest/timetrack_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Reference data first: the time entry service resolves foreign keys
	// through it when auditing edits.
	container.Reference = NewReferenceService(
		repos.ProjectRepo,
		repos.AreaRepo,
		repos.CostCodeRepo,
		repos.UserRepo,
	)

	container.User = NewUserService(repos.UserRepo)

	container.Feed = NewEntryFeed()
	container.TimeEntry = NewTimeEntryService(repos.TimeEntryRepo, container.Reference, container.Feed)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
