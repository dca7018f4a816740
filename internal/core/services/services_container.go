package services

import (
	"log/slog"

	portsrepo "github.com/SscSPs/coin_vault_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/coin_vault_app/internal/core/ports/services"
	"github.com/SscSPs/coin_vault_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, currencyCfg *config.CurrencyConfig, repos portsrepo.RepositoryProvider, logger *slog.Logger) (*portssvc.ServiceContainer, error) {
	container := &portssvc.ServiceContainer{}

	// Currency first, the vault service reads it on every call
	currency, err := NewCurrencyService(currencyCfg, logger)
	if err != nil {
		return nil, err
	}
	container.Currency = currency

	container.Account = NewAccountService(repos.AccountRepo)
	container.Vault = NewVaultService(
		repos.AccountRepo,
		repos.VaultRepo,
		container.Currency,
		WithDefaultStackSize(cfg.DefaultStackSize),
	)

	return container, nil
}
