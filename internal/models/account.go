package models

import "time"

// AuditFields holds the audit columns shared by persisted rows.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

// Account is a row of the accounts table.
type Account struct {
	AccountID string `db:"account_id"`
	OwnerID   string `db:"owner_id"`
	Name      string `db:"name"`
	SlotCount int    `db:"slot_count"`
	IsActive  bool   `db:"is_active"`
	AuditFields
}
