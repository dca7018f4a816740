package services

import (
	"context"

	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	"github.com/SscSPs/coin_vault_app/internal/dto"
)

// VaultReaderSvc defines read operations on an account's container
type VaultReaderSvc interface {
	// Balance returns the container's value in atomic units.
	Balance(ctx context.Context, accountID string, userID string) (int64, error)

	// Contents returns the container's slots in order.
	Contents(ctx context.Context, accountID string, userID string) ([]domain.Slot, error)

	// ListEntries returns a page of the account's ledger, newest first.
	ListEntries(ctx context.Context, accountID string, userID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// VaultWriterSvc defines mutating operations on an account's container
type VaultWriterSvc interface {
	// Deposit adds tokens worth up to amount atomic units.
	Deposit(ctx context.Context, accountID string, amount int64, userID string) (*domain.VaultOperation, error)

	// Withdraw removes tokens worth up to amount atomic units.
	Withdraw(ctx context.Context, accountID string, amount int64, userID string) (*domain.VaultOperation, error)
}

// VaultSvcFacade combines all vault-related service interfaces
type VaultSvcFacade interface {
	VaultReaderSvc
	VaultWriterSvc
}
