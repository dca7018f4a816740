package repositories

import (
	"context"

	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccountsByOwner retrieves a paginated list of accounts owned by a user.
	ListAccountsByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountTransactionSupport defines operations that support vault transactions
type AccountTransactionSupport interface {
	// FindAccountByIDForUpdate selects an account and locks its row within a transaction.
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
