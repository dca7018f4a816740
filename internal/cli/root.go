// Package cli provides the vaultctl command-line interface.
package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const defaultCurrencyFile = "config/currency.yaml"

// NewRootCmd builds the vaultctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vaultctl",
		Short: "Inspect a currency definition and simulate vault operations offline.",
		Long: `vaultctl loads a currency file and runs deposits and withdrawals against ` +
			`an in-memory slot container, printing the result as JSON. No database is needed.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("currency", defaultCurrencyFile, "path to the currency YAML file")

	root.AddCommand(newSimulateCmd(), newDenominationsCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
