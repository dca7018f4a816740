package mapping

import (
	"database/sql"

	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	"github.com/SscSPs/coin_vault_app/internal/models"
)

// ToModelVaultSlots converts container contents to rows, one per slot index.
func ToModelVaultSlots(accountID string, slots []domain.Slot) []models.VaultSlot {
	rows := make([]models.VaultSlot, len(slots))
	for i, s := range slots {
		rows[i] = models.VaultSlot{AccountID: accountID, SlotIndex: i}
		if !s.IsEmpty() {
			rows[i].TokenKind = sql.NullString{String: string(s.Kind), Valid: true}
			rows[i].Count = s.Count
		}
	}
	return rows
}

// ToDomainSlots lays rows out into a slot slice of the given size.
// Rows with an index outside [0, size) are dropped.
func ToDomainSlots(rows []models.VaultSlot, size int) []domain.Slot {
	slots := make([]domain.Slot, size)
	for _, r := range rows {
		if r.SlotIndex < 0 || r.SlotIndex >= size {
			continue
		}
		if r.TokenKind.Valid && r.Count > 0 {
			slots[r.SlotIndex] = domain.Slot{Kind: domain.TokenKind(r.TokenKind.String), Count: r.Count}
		}
	}
	return slots
}

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:       d.EntryID,
		AccountID:     d.AccountID,
		Operation:     string(d.Operation),
		Requested:     d.Requested,
		Fulfilled:     d.Fulfilled,
		BalanceBefore: d.BalanceBefore,
		BalanceAfter:  d.BalanceAfter,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID: m.EntryID,
		VaultOperation: domain.VaultOperation{
			AccountID:     m.AccountID,
			Operation:     domain.VaultOperationType(m.Operation),
			Requested:     m.Requested,
			Fulfilled:     m.Fulfilled,
			BalanceBefore: m.BalanceBefore,
			BalanceAfter:  m.BalanceAfter,
		},
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
	}
}
