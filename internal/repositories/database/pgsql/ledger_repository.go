package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/coin_vault_app/internal/apperrors"
	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	portsrepo "github.com/SscSPs/coin_vault_app/internal/core/ports/repositories"
	"github.com/SscSPs/coin_vault_app/internal/models"
	"github.com/SscSPs/coin_vault_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const ledgerColumns = `entry_id, account_id, operation, requested, fulfilled, balance_before, balance_after, created_at, created_by`

// SaveEntryInTx appends a ledger entry inside tx.
func (r *PgxVaultRepository) SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	query := `
		INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := tx.Exec(ctx, query,
		m.EntryID,
		m.AccountID,
		m.Operation,
		m.Requested,
		m.Fulfilled,
		m.BalanceBefore,
		m.BalanceAfter,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ledger entry %s already exists", apperrors.ErrDuplicate, m.EntryID)
		}
		return fmt.Errorf("failed to save ledger entry %s: %w", m.EntryID, err)
	}
	return nil
}

// ListEntries returns up to limit entries for accountID, newest first,
// starting strictly after cursor when one is given.
func (r *PgxVaultRepository) ListEntries(ctx context.Context, accountID string, limit int, cursor *portsrepo.LedgerCursor) ([]domain.LedgerEntry, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if cursor == nil {
		query := `
			SELECT ` + ledgerColumns + `
			FROM ledger_entries
			WHERE account_id = $1
			ORDER BY created_at DESC, entry_id DESC
			LIMIT $2;
		`
		rows, err = r.Pool.Query(ctx, query, accountID, limit)
	} else {
		query := `
			SELECT ` + ledgerColumns + `
			FROM ledger_entries
			WHERE account_id = $1 AND (created_at, entry_id) < ($2, $3)
			ORDER BY created_at DESC, entry_id DESC
			LIMIT $4;
		`
		rows, err = r.Pool.Query(ctx, query, accountID, cursor.CreatedAt, cursor.EntryID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}

	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerEntry])
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger entries: %w", err)
	}

	out := make([]domain.LedgerEntry, len(entries))
	for i, m := range entries {
		out[i] = mapping.ToDomainLedgerEntry(m)
	}
	return out, nil
}
