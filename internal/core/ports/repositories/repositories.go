package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	FreightRepo  FreightRepositoryFacade
	ExpenseRepo  ExpenseRepositoryFacade
	SettingsRepo SettingsRepositoryFacade
	OFretejaRepo OFretejaRepositoryFacade
	UserRepo     UserRepositoryFacade
}
