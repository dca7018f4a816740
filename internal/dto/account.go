package dto

import (
	"time"

	"github.com/SscSPs/coin_vault_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	SlotCount int    `json:"slotCount" binding:"required,gte=1,lte=256"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID     string    `json:"accountID"`
	OwnerID       string    `json:"ownerID"`
	Name          string    `json:"name"`
	SlotCount     int       `json:"slotCount"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		OwnerID:       acc.OwnerID,
		Name:          acc.Name,
		SlotCount:     acc.SlotCount,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc) // Reuse the single converter
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20" binding:"gte=1,lte=100"`
	Offset int `form:"offset,default=0" binding:"gte=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
