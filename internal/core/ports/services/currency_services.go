package services

import (
	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	"github.com/SscSPs/coin_vault_app/internal/platform/config"
)

// CurrencyReaderSvc defines read access to the active currency
type CurrencyReaderSvc interface {
	// Current returns the active currency. Callers must not mutate it.
	Current() *domain.Currency

	// ListDenominations returns the active denominations, highest value first.
	ListDenominations() []domain.Denomination
}

// CurrencyWriterSvc defines how the active currency is replaced
type CurrencyWriterSvc interface {
	// Reload builds a new currency from cc and swaps it in atomically.
	Reload(cc *config.CurrencyConfig) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
