package types

import (
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	RewardPolicyFixed   = "fixed"
	RewardPolicyPercent = "percent"
)

// Params configures who may pay on behalf of an authority or buyer, what the
// mint storage deposit costs, and how much of a purchase is forwarded to the
// reward pool.
type Params struct {
	DelegatedPayers   []string `json:"delegated_payers"`
	DepositDenom      string   `json:"deposit_denom"`
	DepositPerByte    uint64   `json:"deposit_per_byte"`
	RewardPolicy      string   `json:"reward_policy"`
	RewardFixedAmount uint64   `json:"reward_fixed_amount"`
	RewardThreshold   uint64   `json:"reward_threshold"`
	RewardMinimum     uint64   `json:"reward_minimum"`
}

func NewParams(
	delegatedPayers []string,
	depositDenom string,
	depositPerByte uint64,
	rewardPolicy string,
	rewardFixedAmount uint64,
	rewardThreshold uint64,
	rewardMinimum uint64,
) Params {
	return Params{
		DelegatedPayers:   delegatedPayers,
		DepositDenom:      depositDenom,
		DepositPerByte:    depositPerByte,
		RewardPolicy:      rewardPolicy,
		RewardFixedAmount: rewardFixedAmount,
		RewardThreshold:   rewardThreshold,
		RewardMinimum:     rewardMinimum,
	}
}

func DefaultParams() Params {
	return NewParams(
		nil,                      // no delegates by default
		sdk.DefaultBondDenom,     // deposit denom
		10,                       // deposit per byte of mint account
		RewardPolicyFixed,        // reward split
		DefaultRewardFixedAmount, // fixed reward share
		10_000_000,               // percent policy threshold
		1_000_000,                // percent policy floor
	)
}

func (p Params) Validate() error {
	seen := make(map[string]struct{}, len(p.DelegatedPayers))
	for _, addr := range p.DelegatedPayers {
		addr = strings.TrimSpace(addr)
		if _, err := sdk.AccAddressFromBech32(addr); err != nil {
			return fmt.Errorf("invalid delegated payer %q: %w", addr, err)
		}
		if _, dup := seen[addr]; dup {
			return fmt.Errorf("duplicate delegated payer %q", addr)
		}
		seen[addr] = struct{}{}
	}
	if err := sdk.ValidateDenom(p.DepositDenom); err != nil {
		return fmt.Errorf("deposit_denom: %w", err)
	}
	switch p.RewardPolicy {
	case RewardPolicyFixed:
		if p.RewardFixedAmount == 0 {
			return fmt.Errorf("reward_fixed_amount must be > 0")
		}
	case RewardPolicyPercent:
		if p.RewardMinimum == 0 {
			return fmt.Errorf("reward_minimum must be > 0")
		}
	default:
		return fmt.Errorf("unknown reward_policy %q", p.RewardPolicy)
	}
	return nil
}

// IsDelegatedPayer reports whether addr is on the delegate allow-list.
func (p Params) IsDelegatedPayer(addr string) bool {
	for _, d := range p.DelegatedPayers {
		if strings.TrimSpace(d) == addr {
			return true
		}
	}
	return false
}

// SplitPolicy returns the reward split configured by p.
func (p Params) SplitPolicy() SplitPolicy {
	if p.RewardPolicy == RewardPolicyPercent {
		return PercentShare{Threshold: p.RewardThreshold, Minimum: p.RewardMinimum}
	}
	return FixedShare{Amount: p.RewardFixedAmount}
}
