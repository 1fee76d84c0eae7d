package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"editions/app/metrics"
	"editions/x/release/types"
)

func (m msgServer) CloseRelease(ctx context.Context, msg *types.MsgCloseRelease) (*types.MsgCloseReleaseResponse, error) {
	resp, err := atomic(ctx, func(ctx sdk.Context) (*types.MsgCloseReleaseResponse, error) {
		return m.closeRelease(ctx, msg)
	})
	if err != nil {
		return nil, err
	}
	metrics.ClosesCounter().Inc()
	return resp, nil
}

// closeRelease seals the cap at the live supply so no further purchase can
// pass the cap check.
func (k Keeper) closeRelease(ctx sdk.Context, msg *types.MsgCloseRelease) (*types.MsgCloseReleaseResponse, error) {
	payer, err := k.parseAddress("payer", msg.Payer)
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
	if err := k.assertPayer(ctx, payer, release.Authority); err != nil {
		return nil, err
	}
	supply, err := k.LiveSupply(ctx, release)
	if err != nil {
		return nil, err
	}
	release.TotalSupply = supply
	if err := k.Releases.Set(ctx, releaseAddr.Bytes(), release); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeClose,
			sdk.NewAttribute(types.AttributeKeyMint, mint.String()),
			sdk.NewAttribute(types.AttributeKeyPayer, msg.Payer),
			sdk.NewAttribute(types.AttributeKeyTotalSupply, strconv.FormatUint(supply, 10)),
		),
	)
	k.Logger(ctx).Info("release closed", "mint", mint.String(), "total_supply", supply)

	return &types.MsgCloseReleaseResponse{TotalSupply: supply}, nil
}
