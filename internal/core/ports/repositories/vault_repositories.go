package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// VaultReader defines read operations for container contents
type VaultReader interface {
	// FindSlots returns the account's container laid out into size slots.
	FindSlots(ctx context.Context, accountID string, size int) ([]domain.Slot, error)
}

// VaultWriter defines write operations for container contents
type VaultWriter interface {
	// FindSlotsInTx reads the container inside tx; callers lock the account row first.
	FindSlotsInTx(ctx context.Context, tx pgx.Tx, accountID string, size int) ([]domain.Slot, error)

	// SaveSlotsInTx overwrites every slot of the container inside tx.
	SaveSlotsInTx(ctx context.Context, tx pgx.Tx, accountID string, slots []domain.Slot) error
}

// LedgerReader defines read operations for the vault ledger
type LedgerReader interface {
	// ListEntries returns entries newest first. A non-nil cursor resumes after that entry.
	ListEntries(ctx context.Context, accountID string, limit int, cursor *LedgerCursor) ([]domain.LedgerEntry, error)
}

// LedgerWriter defines write operations for the vault ledger
type LedgerWriter interface {
	// SaveEntryInTx appends an entry inside tx.
	SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) error
}

// LedgerCursor identifies the last entry of a previous page.
type LedgerCursor struct {
	CreatedAt time.Time
	EntryID   string
}

// VaultRepositoryFacade combines all vault-related repository interfaces
type VaultRepositoryFacade interface {
	VaultReader
	VaultWriter
	LedgerReader
	LedgerWriter
}

// VaultRepositoryWithTx extends VaultRepositoryFacade with transaction capabilities
type VaultRepositoryWithTx interface {
	VaultRepositoryFacade
	TransactionManager
}
