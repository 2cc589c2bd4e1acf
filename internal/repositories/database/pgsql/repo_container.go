package pgsql

import (
	portsrepo "github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		FreightRepo:  newPgxFreightRepository(dbPool),
		ExpenseRepo:  newPgxExpenseRepository(dbPool),
		SettingsRepo: newPgxSettingsRepository(dbPool),
		OFretejaRepo: newPgxOFretejaRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
	}
}
