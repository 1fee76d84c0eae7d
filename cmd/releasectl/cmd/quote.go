package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"editions/x/release/types"
)

const (
	flagPolicy      = "reward-policy"
	flagFixedAmount = "reward-fixed-amount"
	flagThreshold   = "reward-threshold"
	flagMinimum     = "reward-minimum"
)

type quoteResult struct {
	Policy string `json:"policy"`
	Amount uint64 `json:"amount"`
	Share  uint64 `json:"share"`
}

func quoteCmd(v *viper.Viper) *cobra.Command {
	defaults := types.DefaultParams()

	cmd := &cobra.Command{
		Use:   "quote [amount]",
		Short: "Compute the reward pool share of a purchase price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			p := defaults
			p.RewardPolicy = v.GetString(flagPolicy)
			p.RewardFixedAmount = v.GetUint64(flagFixedAmount)
			p.RewardThreshold = v.GetUint64(flagThreshold)
			p.RewardMinimum = v.GetUint64(flagMinimum)
			if err := p.Validate(); err != nil {
				return err
			}

			share, err := p.SplitPolicy().Share(amount)
			if err != nil {
				return err
			}
			res := quoteResult{Policy: p.RewardPolicy, Amount: amount, Share: share}
			return printResult(cmd, v, res, [][2]string{
				{"policy", res.Policy},
				{"amount", strconv.FormatUint(res.Amount, 10)},
				{"share", strconv.FormatUint(res.Share, 10)},
			})
		},
	}

	cmd.Flags().String(flagPolicy, defaults.RewardPolicy, "reward split policy (fixed|percent)")
	cmd.Flags().Uint64(flagFixedAmount, defaults.RewardFixedAmount, "share taken by the fixed policy")
	cmd.Flags().Uint64(flagThreshold, defaults.RewardThreshold, "amount up to which the percent policy takes the minimum")
	cmd.Flags().Uint64(flagMinimum, defaults.RewardMinimum, "percent policy floor")
	return cmd
}
