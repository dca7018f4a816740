package pgsql

import (
	portsrepo "github.com/SscSPs/coin_vault_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository to the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool),
		VaultRepo:   newPgxVaultRepository(dbPool),
	}
}
