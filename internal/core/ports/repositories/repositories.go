package repositories

// RepositoryProvider bundles concrete repository implementations for
// injection into the service container.
type RepositoryProvider struct {
	TimeEntryRepo TimeEntryRepositoryFacade
	UserRepo      UserRepositoryFacade
	ProjectRepo   ProjectRepository
	AreaRepo      AreaOfFocusRepository
	CostCodeRepo  CostCodeRepository
}
