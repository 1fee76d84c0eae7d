package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"editions/x/release/types"
	tokentypes "editions/x/tokenext/types"
)

func addressCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "address [mint]",
		Short: "Derive the release address, signer and bump for a mint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mint, err := types.ParseMint(args[0])
			if err != nil {
				return err
			}
			release, releaseBump, err := types.FindReleaseAddress(mint)
			if err != nil {
				return err
			}
			signer, err := types.FindReleaseSigner(release)
			if err != nil {
				return err
			}

			res := types.QueryReleaseAddressesResponse{
				Release:       release.String(),
				ReleaseBump:   uint32(releaseBump),
				ReleaseSigner: signer.Address.String(),
				SignerBump:    uint32(signer.Bump),
				Denom:         tokentypes.Denom(mint),
			}
			return printResult(cmd, v, res, [][2]string{
				{"release", res.Release},
				{"release_bump", strconv.FormatUint(uint64(res.ReleaseBump), 10)},
				{"release_signer", res.ReleaseSigner},
				{"signer_bump", strconv.FormatUint(uint64(res.SignerBump), 10)},
				{"denom", res.Denom},
			})
		},
	}
}
