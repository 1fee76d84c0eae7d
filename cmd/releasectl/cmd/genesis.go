package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"editions/x/release/types"
)

func genesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Release genesis utilities",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a release module genesis JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var gs types.GenesisState
			if err := json.Unmarshal(bz, &gs); err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}
			if err := gs.Validate(); err != nil {
				return fmt.Errorf("invalid genesis: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "genesis valid: %d releases, %d delegated payers\n", len(gs.Releases), len(gs.Params.DelegatedPayers))
			return err
		},
	})
	return cmd
}
