package services

import (
	"context"

	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	"github.com/SscSPs/coin_vault_app/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account owned by userID.
	GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of the user's accounts.
	ListAccounts(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account with an empty container.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
