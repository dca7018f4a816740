package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	portsrepo "github.com/SscSPs/coin_vault_app/internal/core/ports/repositories"
	"github.com/SscSPs/coin_vault_app/internal/models"
	"github.com/SscSPs/coin_vault_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVaultRepository struct {
	BaseRepository
}

// newPgxVaultRepository creates a new repository for container slots and the ledger.
func newPgxVaultRepository(pool *pgxpool.Pool) portsrepo.VaultRepositoryWithTx {
	return &PgxVaultRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VaultRepositoryWithTx = (*PgxVaultRepository)(nil)

const selectSlotsQuery = `
	SELECT account_id, slot_index, token_kind, count
	FROM vault_slots
	WHERE account_id = $1
	ORDER BY slot_index;
`

// FindSlots reads the container outside of any transaction.
func (r *PgxVaultRepository) FindSlots(ctx context.Context, accountID string, size int) ([]domain.Slot, error) {
	return findSlots(ctx, r.Pool, accountID, size)
}

// FindSlotsInTx reads the container inside tx.
func (r *PgxVaultRepository) FindSlotsInTx(ctx context.Context, tx pgx.Tx, accountID string, size int) ([]domain.Slot, error) {
	return findSlots(ctx, tx, accountID, size)
}

// SaveSlotsInTx upserts one row per slot in a single batch.
func (r *PgxVaultRepository) SaveSlotsInTx(ctx context.Context, tx pgx.Tx, accountID string, slots []domain.Slot) error {
	rows := mapping.ToModelVaultSlots(accountID, slots)
	if len(rows) == 0 {
		return nil
	}

	query := `
		INSERT INTO vault_slots (account_id, slot_index, token_kind, count)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (account_id, slot_index)
		DO UPDATE SET token_kind = EXCLUDED.token_kind, count = EXCLUDED.count;
	`
	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(query, row.AccountID, row.SlotIndex, row.TokenKind, row.Count)
	}

	br := tx.SendBatch(ctx, batch)
	for i := range rows {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("failed to upsert slot %d of account %s: %w", i, accountID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close slot batch for account %s: %w", accountID, err)
	}
	return nil
}

func findSlots(ctx context.Context, q querier, accountID string, size int) ([]domain.Slot, error) {
	rows, err := q.Query(ctx, selectSlotsQuery, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query slots for account %s: %w", accountID, err)
	}
	slotRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.VaultSlot])
	if err != nil {
		return nil, fmt.Errorf("failed to scan slots for account %s: %w", accountID, err)
	}
	return mapping.ToDomainSlots(slotRows, size), nil
}
