package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/coin_vault_app/internal/apperrors"
	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	portsrepo "github.com/SscSPs/coin_vault_app/internal/core/ports/repositories"
	"github.com/SscSPs/coin_vault_app/internal/models"
	"github.com/SscSPs/coin_vault_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_id, owner_id, name, slot_count, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryWithTx {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryWithTx
var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.OwnerID,
		m.Name,
		m.SlotCount,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	return findOneAccount(ctx, r.Pool, query, accountID)
}

// FindAccountByIDForUpdate retrieves an account and locks its row.
// Must be called within a transaction.
func (r *PgxAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 FOR UPDATE;`
	return findOneAccount(ctx, tx, query, accountID)
}

// ListAccountsByOwner retrieves a paginated list of accounts owned by ownerID, oldest first.
func (r *PgxAccountRepository) ListAccountsByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE owner_id = $1
		ORDER BY created_at, account_id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	accounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, fmt.Errorf("failed to scan account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

func findOneAccount(ctx context.Context, q querier, query string, accountID string) (*domain.Account, error) {
	rows, err := q.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query account %s: %w", accountID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan account %s: %w", accountID, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}
