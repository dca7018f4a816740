package services_test

import (
	"context"

	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	portsrepo "github.com/SscSPs/coin_vault_app/internal/core/ports/repositories"
	"github.com/SscSPs/coin_vault_app/internal/platform/config"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// fakeTx satisfies pgx.Tx for mocks that never touch the database.
type fakeTx struct {
	pgx.Tx
}

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, tx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// MockVaultRepository is a mock type for the VaultRepositoryWithTx interface
type MockVaultRepository struct {
	mock.Mock
}

func (m *MockVaultRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockVaultRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockVaultRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockVaultRepository) FindSlots(ctx context.Context, accountID string, size int) ([]domain.Slot, error) {
	args := m.Called(ctx, accountID, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Slot), args.Error(1)
}

func (m *MockVaultRepository) FindSlotsInTx(ctx context.Context, tx pgx.Tx, accountID string, size int) ([]domain.Slot, error) {
	args := m.Called(ctx, tx, accountID, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Slot), args.Error(1)
}

func (m *MockVaultRepository) SaveSlotsInTx(ctx context.Context, tx pgx.Tx, accountID string, slots []domain.Slot) error {
	return m.Called(ctx, tx, accountID, slots).Error(0)
}

func (m *MockVaultRepository) ListEntries(ctx context.Context, accountID string, limit int, cursor *portsrepo.LedgerCursor) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, accountID, limit, cursor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockVaultRepository) SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) error {
	return m.Called(ctx, tx, entry).Error(0)
}

// barsAndCoins is a two-token currency: bars worth 100 stacking to 10, coins worth 1 stacking to 50.
func barsAndCoins() *config.CurrencyConfig {
	return &config.CurrencyConfig{
		Name:       "Crown",
		NamePlural: "Crowns",
		Digits:     2,
		Denominations: []config.DenominationConfig{
			{Kind: "coin", Value: 1, MaxPerSlot: 50},
			{Kind: "bar", Value: 100, MaxPerSlot: 10},
		},
	}
}
