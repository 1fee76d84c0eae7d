package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gagliardetto/solana-go"

	"editions/x/release/types"
)

// topUpDeposit makes the mint account hold DepositPerByte for every byte the
// mint and its metadata occupy. payer covers any shortfall; a surplus is left
// in place.
func (k Keeper) topUpDeposit(ctx context.Context, payer sdk.AccAddress, mint solana.PublicKey) (sdk.Coin, error) {
	p := k.GetParams(ctx)
	size, err := k.token.AccountSize(ctx, mint)
	if err != nil {
		return sdk.Coin{}, err
	}
	required := sdkmath.NewIntFromUint64(p.DepositPerByte).Mul(sdkmath.NewIntFromUint64(size))

	account := sdk.AccAddress(mint.Bytes())
	have := k.bank.GetBalance(ctx, account, p.DepositDenom).Amount
	if have.GTE(required) {
		return sdk.NewCoin(p.DepositDenom, sdkmath.ZeroInt()), nil
	}
	diff := sdk.NewCoin(p.DepositDenom, required.Sub(have))
	if err := k.bank.SendCoins(ctx, payer, account, sdk.NewCoins(diff)); err != nil {
		return sdk.Coin{}, err
	}
	return diff, nil
}

// forwardReward sends the reward pool its share of a purchase from the buyer
// along with the buyer's deposit context.
func (k Keeper) forwardReward(ctx context.Context, buyer sdk.AccAddress, r types.Release, deposit types.RewardDeposit) (uint64, error) {
	if k.rewards == nil {
		return 0, errorsmod.Wrap(types.ErrInvalidRequest, "reward pool not configured")
	}
	share, err := k.GetParams(ctx).SplitPolicy().Share(r.Price)
	if err != nil {
		return 0, err
	}
	if share == 0 {
		return 0, nil
	}
	coins := sdk.NewCoins(sdk.NewCoin(r.PaymentDenom, sdkmath.NewIntFromUint64(share)))
	if err := k.rewards.Deposit(ctx, buyer, coins, deposit); err != nil {
		return 0, err
	}

	buyerStr, _ := k.addressCodec.BytesToString(buyer)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardDeposit,
			sdk.NewAttribute(types.AttributeKeyMint, r.Mint.String()),
			sdk.NewAttribute(types.AttributeKeyReceiver, buyerStr),
			sdk.NewAttribute(types.AttributeKeyRewardAmount, coins.String()),
			sdk.NewAttribute(types.AttributeKeyMerkleRootIdx, strconv.FormatUint(uint64(deposit.MerkleTreeRootIndex), 10)),
		),
	)
	return share, nil
}

// ensureAccount creates addr's account when it does not exist yet.
func (k Keeper) ensureAccount(ctx context.Context, addr sdk.AccAddress) {
	if k.accounts == nil || k.accounts.GetAccount(ctx, addr) != nil {
		return
	}
	acc := k.accounts.NewAccountWithAddress(ctx, addr)
	k.accounts.SetAccount(ctx, acc)

	addrStr, _ := k.addressCodec.BytesToString(addr)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAccountCreated,
			sdk.NewAttribute(types.AttributeKeyReceiver, addrStr),
		),
	)
}
