package cli

import (
	"fmt"

	"github.com/SscSPs/coin_vault_app/internal/adapters/slots"
	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	"github.com/SscSPs/coin_vault_app/internal/core/inventory"
	"github.com/SscSPs/coin_vault_app/internal/core/services"
	"github.com/SscSPs/coin_vault_app/internal/platform/config"
	"github.com/spf13/cobra"
)

// simulation is the JSON document printed by `vaultctl simulate`.
type simulation struct {
	Currency  string        `json:"currency"`
	Deposited int64         `json:"deposited"`
	Withdrawn int64         `json:"withdrawn"`
	Balance   int64         `json:"balance"`
	Capacity  int64         `json:"capacity"`
	Slots     []domain.Slot `json:"slots"`
}

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Deposit then withdraw against an empty in-memory container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("currency")
			slotCount, _ := cmd.Flags().GetInt("slots")
			stack, _ := cmd.Flags().GetInt("stack")
			deposit, _ := cmd.Flags().GetInt64("deposit")
			withdraw, _ := cmd.Flags().GetInt64("withdraw")

			cc, err := config.LoadCurrencyConfig(path)
			if err != nil {
				return err
			}
			cur, err := services.BuildCurrency(cc)
			if err != nil {
				return err
			}
			result, err := simulate(cur, slotCount, stack, deposit, withdraw)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().Int("slots", 36, "number of container slots")
	cmd.Flags().Int("stack", slots.DefaultStackSize, "stack size for token kinds the currency does not define")
	cmd.Flags().Int64("deposit", 0, "amount to deposit, in atomic units")
	cmd.Flags().Int64("withdraw", 0, "amount to withdraw after the deposit, in atomic units")
	return cmd
}

func simulate(cur *domain.Currency, slotCount, stack int, deposit, withdraw int64) (*simulation, error) {
	container, err := slots.NewSlotContainer(slotCount, cur, stack)
	if err != nil {
		return nil, err
	}
	inv := inventory.NewAccountInventory(cur, container)

	deposited, err := inv.Deposit(deposit)
	if err != nil {
		return nil, fmt.Errorf("deposit: %w", err)
	}
	withdrawn, err := inv.Withdraw(withdraw)
	if err != nil {
		return nil, fmt.Errorf("withdraw: %w", err)
	}

	return &simulation{
		Currency:  cur.Name,
		Deposited: deposited,
		Withdrawn: withdrawn,
		Balance:   inv.Balance(),
		Capacity:  inv.Capacity(),
		Slots:     container.Contents(),
	}, nil
}
