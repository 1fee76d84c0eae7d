package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"editions/app"
)

const (
	EnvPrefix = "EDITIONS"

	flagConfig = "config"
	flagPrefix = "bech32-prefix"
	flagOutput = "output"

	outputText = "text"
	outputJSON = "json"
)

// NewRootCmd builds the releasectl command tree. Every flag can also be set
// from the config file or an EDITIONS_ environment variable.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "releasectl",
		Short:         "Offline tooling for capped-edition releases",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			if path := v.GetString(flagConfig); path != "" {
				v.SetConfigFile(path)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config %s: %w", path, err)
				}
			}
			switch out := v.GetString(flagOutput); out {
			case outputText, outputJSON:
			default:
				return fmt.Errorf("unknown output format %q", out)
			}
			app.SetAddressPrefixes(v.GetString(flagPrefix))
			return nil
		},
	}

	rootCmd.PersistentFlags().String(flagConfig, "", "config file (toml, yaml or json)")
	rootCmd.PersistentFlags().String(flagPrefix, app.AccountAddressPrefix, "bech32 account prefix")
	rootCmd.PersistentFlags().StringP(flagOutput, "o", outputText, "output format (text|json)")

	rootCmd.AddCommand(
		addressCmd(v),
		quoteCmd(v),
		genesisCmd(),
	)
	return rootCmd
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err == nil {
			err = v.BindPFlag(f.Name, f)
		}
	})
	return err
}

// printResult writes res as indented JSON or as aligned key/value lines.
func printResult(cmd *cobra.Command, v *viper.Viper, res any, lines [][2]string) error {
	out := cmd.OutOrStdout()
	if v.GetString(flagOutput) == outputJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l[0])+1)
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(out, "%-*s  %s\n", width, l[0]+":", l[1]); err != nil {
			return err
		}
	}
	return nil
}
