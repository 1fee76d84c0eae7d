package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"editions/app/metrics"
	"editions/x/release/types"
)

func (m msgServer) Purchase(ctx context.Context, msg *types.MsgPurchase) (*types.MsgPurchaseResponse, error) {
	resp, err := atomic(ctx, func(ctx sdk.Context) (*types.MsgPurchaseResponse, error) {
		return m.purchase(ctx, msg)
	})
	observePurchase(msg.Amount, err)
	return resp, err
}

func observePurchase(amount uint64, err error) {
	metrics.PurchasesCounter().WithLabelValues(purchaseResult(err)).Inc()
	if err == nil {
		metrics.PurchasePriceObserver().Observe(float64(amount))
	}
}

func purchaseResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errorsmod.IsOf(err, types.ErrWrongAmount):
		return "wrong_amount"
	case errorsmod.IsOf(err, types.ErrSoldOut):
		return "sold_out"
	case errorsmod.IsOf(err, types.ErrDelegatedPayerMismatch):
		return "delegated_payer_mismatch"
	case errorsmod.IsOf(err, types.ErrReleaseSignerMismatch):
		return "signer_mismatch"
	default:
		return "error"
	}
}

// purchase sells one unit of the release to msg.Receiver. Checks run in a
// fixed order: amount, supply cap, payer delegation, then signer.
func (k Keeper) purchase(ctx sdk.Context, msg *types.MsgPurchase) (*types.MsgPurchaseResponse, error) {
	payer, err := k.parseAddress("payer", msg.Payer)
	if err != nil {
		return nil, err
	}
	receiver, err := k.parseAddress("receiver", msg.Receiver)
	if err != nil {
		return nil, err
	}
	mint, err := types.ParseMint(msg.Mint)
	if err != nil {
		return nil, err
	}
	release, releaseAddr, err := k.GetRelease(ctx, mint)
	if err != nil {
		return nil, err
	}

	if msg.Amount != release.Price {
		return nil, errorsmod.Wrapf(types.ErrWrongAmount, "amount %d, price %d", msg.Amount, release.Price)
	}
	supply, err := k.LiveSupply(ctx, release)
	if err != nil {
		return nil, err
	}
	if supply >= release.TotalSupply {
		return nil, errorsmod.Wrapf(types.ErrSoldOut, "%d of %d issued", supply, release.TotalSupply)
	}
	if err := k.assertPayer(ctx, payer, receiver); err != nil {
		return nil, err
	}
	signer, err := types.VerifyReleaseSigner(releaseAddr, msg.Bump, release.ReleaseSigner)
	if err != nil {
		return nil, err
	}

	payment := sdk.NewCoins(sdk.NewCoin(release.PaymentDenom, sdkmath.NewIntFromUint64(msg.Amount)))
	if err := k.bank.SendCoins(ctx, receiver, release.RoyaltyAccount, payment); err != nil {
		return nil, err
	}
	k.ensureAccount(ctx, receiver)
	if err := k.token.MintTo(ctx, signer.Address, mint, receiver, 1); err != nil {
		return nil, err
	}

	resp := &types.MsgPurchaseResponse{Supply: supply + 1}
	if msg.RewardDeposit != nil {
		share, err := k.forwardReward(ctx, receiver, release, *msg.RewardDeposit)
		if err != nil {
			return nil, err
		}
		resp.RewardDeposit = share
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePurchase,
			sdk.NewAttribute(types.AttributeKeyMint, mint.String()),
			sdk.NewAttribute(types.AttributeKeyRelease, releaseAddr.String()),
			sdk.NewAttribute(types.AttributeKeyPayer, msg.Payer),
			sdk.NewAttribute(types.AttributeKeyReceiver, msg.Receiver),
			sdk.NewAttribute(types.AttributeKeyAmount, payment.String()),
			sdk.NewAttribute(types.AttributeKeySupply, strconv.FormatUint(resp.Supply, 10)),
		),
	)
	k.Logger(ctx).Debug("release purchased", "mint", mint.String(), "receiver", msg.Receiver, "supply", resp.Supply, "total_supply", release.TotalSupply)

	return resp, nil
}
