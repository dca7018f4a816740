package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/coin_vault_app/internal/apperrors"
	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	portsrepo "github.com/SscSPs/coin_vault_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/coin_vault_app/internal/core/ports/services"
	"github.com/SscSPs/coin_vault_app/internal/dto"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	now         func() time.Time
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// NewAccountService creates a new account service
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo, now: time.Now}
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if req.SlotCount < 1 || req.SlotCount > domain.MaxSlotCount {
		return nil, fmt.Errorf("%w: slot count must be between 1 and %d", apperrors.ErrValidation, domain.MaxSlotCount)
	}

	now := s.now().UTC()
	account := domain.Account{
		AccountID: uuid.NewString(),
		OwnerID:   userID,
		Name:      req.Name,
		SlotCount: req.SlotCount,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account in repository", slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "Account created successfully", slog.String("account_id", account.AccountID), slog.Int("slot_count", account.SlotCount))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		// ErrNotFound is an expected outcome, not worth an error log
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID in repository", slog.String("account_id", accountID))
		}
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, account, userID); err != nil {
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves a paginated list of the user's accounts.
func (s *accountService) ListAccounts(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByOwner(ctx, userID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts from repository", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	s.LogDebug(ctx, "Accounts listed successfully", slog.Int("count", len(accounts)))
	return accounts, nil
}
