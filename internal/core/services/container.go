package services

import (
	portsrepo "github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/ports/repositories"
	portssvc "github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/ports/services"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/platform/config"
)

// NewServiceContainer wires every service facade with its repository
// dependencies. Called once at startup.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Freight = NewFreightService(
		repos.FreightRepo,
		WithOFretejaRepository(repos.OFretejaRepo),
		WithSettingsRepository(repos.SettingsRepo),
	)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Goal = NewGoalService(repos.FreightRepo, repos.SettingsRepo)
	container.Closure = NewClosureService(repos.FreightRepo, repos.ExpenseRepo, repos.SettingsRepo)
	container.OFreteja = NewOFretejaService(repos.OFretejaRepo, repos.FreightRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo)
	container.User = NewUserService(repos.UserRepo)
	container.GoogleOAuth = NewGoogleOAuthService(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
	)

	return container
}
