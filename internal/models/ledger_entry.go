package models

import "time"

// LedgerEntry is a row of the ledger_entries table.
type LedgerEntry struct {
	EntryID       string    `db:"entry_id"`
	AccountID     string    `db:"account_id"`
	Operation     string    `db:"operation"`
	Requested     int64     `db:"requested"`
	Fulfilled     int64     `db:"fulfilled"`
	BalanceBefore int64     `db:"balance_before"`
	BalanceAfter  int64     `db:"balance_after"`
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
}
