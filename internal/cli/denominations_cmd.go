package cli

import (
	"github.com/SscSPs/coin_vault_app/internal/core/services"
	"github.com/SscSPs/coin_vault_app/internal/dto"
	"github.com/SscSPs/coin_vault_app/internal/platform/config"
	"github.com/spf13/cobra"
)

func newDenominationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "denominations",
		Short: "Print the currency's denominations, highest value first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("currency")
			cc, err := config.LoadCurrencyConfig(path)
			if err != nil {
				return err
			}
			cur, err := services.BuildCurrency(cc)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), dto.ToCurrencyResponse(cur))
		},
	}
}
