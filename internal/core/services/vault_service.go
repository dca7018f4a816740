package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/coin_vault_app/internal/adapters/slots"
	"github.com/SscSPs/coin_vault_app/internal/apperrors"
	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	"github.com/SscSPs/coin_vault_app/internal/core/inventory"
	portsrepo "github.com/SscSPs/coin_vault_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/coin_vault_app/internal/core/ports/services"
	"github.com/SscSPs/coin_vault_app/internal/dto"
	"github.com/SscSPs/coin_vault_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// vaultService implements the VaultSvcFacade interface
type vaultService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	vaultRepo    portsrepo.VaultRepositoryWithTx
	currency     portssvc.CurrencyReaderSvc
	defaultStack int
	locks        *accountLocks
	now          func() time.Time
}

var _ portssvc.VaultSvcFacade = (*vaultService)(nil)

// VaultOption is a functional option for configuring the vault service
type VaultOption func(*vaultService)

// WithDefaultStackSize sets the per-slot limit used for token kinds the currency does not know.
func WithDefaultStackSize(n int) VaultOption {
	return func(s *vaultService) {
		if n > 0 {
			s.defaultStack = n
		}
	}
}

// WithClock overrides the time source used for ledger entries.
func WithClock(now func() time.Time) VaultOption {
	return func(s *vaultService) {
		s.now = now
	}
}

// NewVaultService creates a new vault service with the provided options
func NewVaultService(accountRepo portsrepo.AccountRepositoryFacade, vaultRepo portsrepo.VaultRepositoryWithTx, currency portssvc.CurrencyReaderSvc, options ...VaultOption) portssvc.VaultSvcFacade {
	svc := &vaultService{
		accountRepo:  accountRepo,
		vaultRepo:    vaultRepo,
		currency:     currency,
		defaultStack: slots.DefaultStackSize,
		locks:        newAccountLocks(),
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *vaultService) Balance(ctx context.Context, accountID string, userID string) (int64, error) {
	inv, _, err := s.readInventory(ctx, accountID, userID)
	if err != nil {
		return 0, err
	}
	return inv.Balance(), nil
}

func (s *vaultService) Contents(ctx context.Context, accountID string, userID string) ([]domain.Slot, error) {
	_, container, err := s.readInventory(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}
	return container.Contents(), nil
}

func (s *vaultService) Deposit(ctx context.Context, accountID string, amount int64, userID string) (*domain.VaultOperation, error) {
	return s.mutate(ctx, accountID, userID, domain.OperationDeposit, amount)
}

func (s *vaultService) Withdraw(ctx context.Context, accountID string, amount int64, userID string) (*domain.VaultOperation, error) {
	return s.mutate(ctx, accountID, userID, domain.OperationWithdraw, amount)
}

func (s *vaultService) ListEntries(ctx context.Context, accountID string, userID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	if _, err := s.loadOwnedAccount(ctx, accountID, userID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	var cursor *portsrepo.LedgerCursor
	if params.NextToken != "" {
		createdAt, entryID, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		cursor = &portsrepo.LedgerCursor{CreatedAt: createdAt, EntryID: entryID}
	}

	// fetch one extra row to learn whether another page exists
	entries, err := s.vaultRepo.ListEntries(ctx, accountID, limit+1, cursor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	var nextToken *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.EntryID)
		nextToken = &token
	}

	res := dto.ToListEntriesResponse(entries, nextToken)
	return &res, nil
}

func (s *vaultService) loadOwnedAccount(ctx context.Context, accountID, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, account, userID); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *vaultService) readInventory(ctx context.Context, accountID, userID string) (*inventory.AccountInventory, *slots.SlotContainer, error) {
	account, err := s.loadOwnedAccount(ctx, accountID, userID)
	if err != nil {
		return nil, nil, err
	}
	contents, err := s.vaultRepo.FindSlots(ctx, accountID, account.SlotCount)
	if err != nil {
		s.LogError(ctx, err, "Failed to load vault slots", slog.String("account_id", accountID))
		return nil, nil, fmt.Errorf("failed to load vault slots: %w", err)
	}
	cur := s.currency.Current()
	container, err := slots.NewSlotContainer(account.SlotCount, cur, s.defaultStack, contents...)
	if err != nil {
		return nil, nil, fmt.Errorf("stored slots for account %s are inconsistent: %w", accountID, err)
	}
	return inventory.NewAccountInventory(cur, container), container, nil
}

// mutate runs one deposit or withdrawal. The in-process lock keeps concurrent
// requests for the same account from queueing on the row lock; the row lock
// covers other instances.
func (s *vaultService) mutate(ctx context.Context, accountID, userID string, op domain.VaultOperationType, amount int64) (*domain.VaultOperation, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrInvalidAmount)
	}
	cur := s.currency.Current()
	logger := s.GetLogger(ctx).With(slog.String("account_id", accountID), slog.String("operation", string(op)))

	unlock := s.locks.Lock(accountID)
	defer unlock()

	tx, err := s.vaultRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.vaultRepo.Rollback(ctx, tx) }() // no-op after commit

	account, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, account, userID); err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, accountID)
	}

	contents, err := s.vaultRepo.FindSlotsInTx(ctx, tx, accountID, account.SlotCount)
	if err != nil {
		logger.Error("Failed to load vault slots", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load vault slots: %w", err)
	}
	container, err := slots.NewSlotContainer(account.SlotCount, cur, s.defaultStack, contents...)
	if err != nil {
		return nil, fmt.Errorf("stored slots for account %s are inconsistent: %w", accountID, err)
	}
	inv := inventory.NewAccountInventory(cur, container)

	result := domain.VaultOperation{
		AccountID:     accountID,
		Operation:     op,
		Requested:     amount,
		BalanceBefore: inv.Balance(),
	}
	if amount == 0 {
		result.BalanceAfter = result.BalanceBefore
		return &result, nil
	}

	switch op {
	case domain.OperationDeposit:
		result.Fulfilled, err = inv.Deposit(amount)
	case domain.OperationWithdraw:
		result.Fulfilled, err = inv.Withdraw(amount)
	default:
		err = fmt.Errorf("%w: unknown operation %q", apperrors.ErrValidation, op)
	}
	if err != nil {
		return nil, err
	}
	result.BalanceAfter = inv.Balance()

	if err := s.vaultRepo.SaveSlotsInTx(ctx, tx, accountID, container.Contents()); err != nil {
		logger.Error("Failed to persist vault slots", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to persist vault slots: %w", err)
	}

	entry := domain.LedgerEntry{
		EntryID:        uuid.NewString(),
		VaultOperation: result,
		CreatedAt:      s.now().UTC(),
		CreatedBy:      userID,
	}
	if err := s.recordEntry(ctx, tx, entry); err != nil {
		logger.Error("Failed to append ledger entry", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.vaultRepo.Commit(ctx, tx); err != nil {
		logger.Error("Failed to commit vault transaction", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Vault operation applied",
		slog.Int64("requested", result.Requested),
		slog.Int64("fulfilled", result.Fulfilled),
		slog.Int64("balance_after", result.BalanceAfter),
		slog.Bool("partial", result.Partial()))
	return &result, nil
}

func (s *vaultService) recordEntry(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) error {
	if err := s.vaultRepo.SaveEntryInTx(ctx, tx, entry); err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return nil
}
