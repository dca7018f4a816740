package models

import "database/sql"

// VaultSlot is a row of the vault_slots table. Empty slots keep their row with
// a NULL token_kind and a zero count.
type VaultSlot struct {
	AccountID string         `db:"account_id"`
	SlotIndex int            `db:"slot_index"`
	TokenKind sql.NullString `db:"token_kind"`
	Count     int            `db:"count"`
}
