package dto

import (
	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	"github.com/SscSPs/coin_vault_app/internal/utils"
)

// DenominationResponse describes one registered token kind.
type DenominationResponse struct {
	Kind         string `json:"kind"`
	Value        int64  `json:"value"`
	DisplayValue string `json:"displayValue"`
	MaxPerSlot   int    `json:"maxPerSlot"`
}

// CurrencyResponse defines the data returned for the active currency.
// Denominations are ordered from highest to lowest value.
type CurrencyResponse struct {
	Name          string                 `json:"name"`
	NamePlural    string                 `json:"namePlural"`
	Digits        int                    `json:"digits"`
	Denominations []DenominationResponse `json:"denominations"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(cur *domain.Currency) CurrencyResponse {
	denoms := cur.Denominations()
	res := CurrencyResponse{
		Name:          cur.Name,
		NamePlural:    cur.NamePlural,
		Digits:        cur.Digits,
		Denominations: make([]DenominationResponse, len(denoms)),
	}
	for i, d := range denoms {
		res.Denominations[i] = DenominationResponse{
			Kind:         string(d.Kind),
			Value:        d.Value,
			DisplayValue: utils.FormatAtomicUnits(d.Value, cur.Digits),
			MaxPerSlot:   d.MaxPerSlot,
		}
	}
	return res
}
