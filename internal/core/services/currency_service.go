package services

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/SscSPs/coin_vault_app/internal/apperrors"
	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	portssvc "github.com/SscSPs/coin_vault_app/internal/core/ports/services"
	"github.com/SscSPs/coin_vault_app/internal/platform/config"
)

// currencyService holds the active currency. Reload swaps in a fully built
// replacement, so readers never observe a half-populated registry.
type currencyService struct {
	BaseService
	active atomic.Pointer[domain.Currency]
	logger *slog.Logger
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// NewCurrencyService builds the initial currency from cc.
func NewCurrencyService(cc *config.CurrencyConfig, logger *slog.Logger) (portssvc.CurrencySvcFacade, error) {
	cur, err := BuildCurrency(cc)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &currencyService{logger: logger}
	s.active.Store(cur)
	return s, nil
}

// BuildCurrency registers every configured denomination on a new Currency.
func BuildCurrency(cc *config.CurrencyConfig) (*domain.Currency, error) {
	if cc == nil || len(cc.Denominations) == 0 {
		return nil, apperrors.ErrNoDenominations
	}

	cur := domain.NewCurrency(cc.Name, cc.NamePlural, cc.Digits)
	for _, dc := range cc.Denominations {
		d, err := domain.NewDenomination(domain.TokenKind(dc.Kind), dc.Value, dc.MaxPerSlot)
		if err != nil {
			return nil, fmt.Errorf("denomination %q: %w", dc.Kind, err)
		}
		cur.AddDenomination(d)
	}
	return cur, nil
}

func (s *currencyService) Current() *domain.Currency {
	return s.active.Load()
}

// ListDenominations returns the active denominations, highest value first.
func (s *currencyService) ListDenominations() []domain.Denomination {
	return s.Current().Denominations()
}

func (s *currencyService) Reload(cc *config.CurrencyConfig) error {
	cur, err := BuildCurrency(cc)
	if err != nil {
		s.logger.Error("Rejected currency reload, keeping previous definition", slog.String("error", err.Error()))
		return fmt.Errorf("failed to reload currency: %w", err)
	}
	prev := s.active.Swap(cur)
	s.logger.Info("Currency reloaded",
		slog.String("name", cur.Name),
		slog.Int("denominations", cur.Len()),
		slog.Int("previous_denominations", prev.Len()))
	return nil
}
