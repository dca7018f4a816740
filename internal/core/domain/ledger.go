package domain

import "time"

// VaultOperationType names the kind of container mutation recorded in the ledger.
type VaultOperationType string

const (
	OperationDeposit  VaultOperationType = "DEPOSIT"
	OperationWithdraw VaultOperationType = "WITHDRAW"
)

// VaultOperation is the outcome of one deposit or withdrawal, in atomic units.
type VaultOperation struct {
	AccountID     string             `json:"accountID"`
	Operation     VaultOperationType `json:"operation"`
	Requested     int64              `json:"requested"`
	Fulfilled     int64              `json:"fulfilled"`
	BalanceBefore int64              `json:"balanceBefore"`
	BalanceAfter  int64              `json:"balanceAfter"`
}

// Partial reports whether less than the requested amount was moved.
func (o VaultOperation) Partial() bool {
	return o.Fulfilled < o.Requested
}

// LedgerEntry is the persisted record of a VaultOperation.
type LedgerEntry struct {
	EntryID string `json:"entryID"`
	VaultOperation
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}
