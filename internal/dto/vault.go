package dto

import (
	"time"

	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	"github.com/SscSPs/coin_vault_app/internal/utils"
	"github.com/shopspring/decimal"
)

// AmountRequest is the body of deposit and withdraw calls.
// Amount is expressed in display units, e.g. "12.34".
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"12.34"`
}

// BalanceResponse defines the data returned for a balance query.
type BalanceResponse struct {
	AccountID string `json:"accountID"`
	Units     int64  `json:"units"`
	Display   string `json:"display"`
	Currency  string `json:"currency"`
}

// NewBalanceResponse builds a BalanceResponse in the given currency.
func NewBalanceResponse(accountID string, units int64, cur *domain.Currency) BalanceResponse {
	return BalanceResponse{
		AccountID: accountID,
		Units:     units,
		Display:   utils.FormatAtomicUnits(units, cur.Digits),
		Currency:  currencyLabel(cur, units),
	}
}

// SlotResponse is a single container slot. Empty slots have an empty kind.
type SlotResponse struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
	Count int    `json:"count"`
	Value int64  `json:"value"`
}

// SlotsResponse lists the container in slot order.
type SlotsResponse struct {
	AccountID string         `json:"accountID"`
	Slots     []SlotResponse `json:"slots"`
}

// ToSlotsResponse converts container contents to a SlotsResponse DTO
func ToSlotsResponse(accountID string, slots []domain.Slot, cur *domain.Currency) SlotsResponse {
	res := SlotsResponse{AccountID: accountID, Slots: make([]SlotResponse, len(slots))}
	for i, s := range slots {
		res.Slots[i] = SlotResponse{
			Index: i,
			Kind:  string(s.Kind),
			Count: s.Count,
			Value: cur.Value(s),
		}
	}
	return res
}

// VaultOperationResponse reports the outcome of a deposit or withdrawal.
type VaultOperationResponse struct {
	AccountID     string `json:"accountID"`
	Operation     string `json:"operation"`
	Requested     int64  `json:"requested"`
	Fulfilled     int64  `json:"fulfilled"`
	Display       string `json:"display"`
	BalanceBefore int64  `json:"balanceBefore"`
	BalanceAfter  int64  `json:"balanceAfter"`
	Partial       bool   `json:"partial"`
}

// ToVaultOperationResponse converts a domain.VaultOperation to its DTO
func ToVaultOperationResponse(op *domain.VaultOperation, digits int) VaultOperationResponse {
	return VaultOperationResponse{
		AccountID:     op.AccountID,
		Operation:     string(op.Operation),
		Requested:     op.Requested,
		Fulfilled:     op.Fulfilled,
		Display:       utils.FormatAtomicUnits(op.Fulfilled, digits),
		BalanceBefore: op.BalanceBefore,
		BalanceAfter:  op.BalanceAfter,
		Partial:       op.Partial(),
	}
}

// ListEntriesParams defines query parameters for listing ledger entries.
type ListEntriesParams struct {
	Limit     int    `form:"limit,default=20" binding:"gte=1,lte=100"`
	NextToken string `form:"nextToken"`
}

// LedgerEntryResponse is one ledger row.
type LedgerEntryResponse struct {
	EntryID       string    `json:"entryID"`
	Operation     string    `json:"operation"`
	Requested     int64     `json:"requested"`
	Fulfilled     int64     `json:"fulfilled"`
	BalanceBefore int64     `json:"balanceBefore"`
	BalanceAfter  int64     `json:"balanceAfter"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
}

// ListEntriesResponse wraps a page of ledger entries.
type ListEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToListEntriesResponse converts ledger entries to DTOs. nextToken may be nil.
func ToListEntriesResponse(entries []domain.LedgerEntry, nextToken *string) ListEntriesResponse {
	res := ListEntriesResponse{Entries: make([]LedgerEntryResponse, len(entries)), NextToken: nextToken}
	for i, e := range entries {
		res.Entries[i] = LedgerEntryResponse{
			EntryID:       e.EntryID,
			Operation:     string(e.Operation),
			Requested:     e.Requested,
			Fulfilled:     e.Fulfilled,
			BalanceBefore: e.BalanceBefore,
			BalanceAfter:  e.BalanceAfter,
			CreatedAt:     e.CreatedAt,
			CreatedBy:     e.CreatedBy,
		}
	}
	return res
}

func currencyLabel(cur *domain.Currency, units int64) string {
	if units == 1 {
		return cur.Name
	}
	return cur.NamePlural
}
