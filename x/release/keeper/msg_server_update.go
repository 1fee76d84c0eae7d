package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"editions/x/release/types"
)

func (m msgServer) UpdateRelease(ctx context.Context, msg *types.MsgUpdateRelease) (*types.MsgUpdateReleaseResponse, error) {
	return atomic(ctx, func(ctx sdk.Context) (*types.MsgUpdateReleaseResponse, error) {
		return m.updateRelease(ctx, msg)
	})
}

func (k Keeper) updateRelease(ctx sdk.Context, msg *types.MsgUpdateRelease) (*types.MsgUpdateReleaseResponse, error) {
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
	signer, err := types.VerifyReleaseSigner(releaseAddr, msg.Bump, release.ReleaseSigner)
	if err != nil {
		return nil, err
	}

	for _, f := range []struct{ field, value string }{
		{types.MetadataFieldURI, msg.URI},
		{types.MetadataFieldName, msg.Name},
		{types.MetadataFieldSymbol, msg.Symbol},
	} {
		if err := k.token.UpdateField(ctx, signer.Address, mint, f.field, f.value); err != nil {
			return nil, err
		}
	}
	deposit, err := k.topUpDeposit(ctx, payer, mint)
	if err != nil {
		return nil, err
	}

	release.Price = msg.Price
	release.TotalSupply = msg.TotalSupply
	if err := k.Releases.Set(ctx, releaseAddr.Bytes(), release); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdate,
			sdk.NewAttribute(types.AttributeKeyMint, mint.String()),
			sdk.NewAttribute(types.AttributeKeyPayer, msg.Payer),
			sdk.NewAttribute(types.AttributeKeyPrice, strconv.FormatUint(msg.Price, 10)),
			sdk.NewAttribute(types.AttributeKeyTotalSupply, strconv.FormatUint(msg.TotalSupply, 10)),
			sdk.NewAttribute(types.AttributeKeyURI, msg.URI),
			sdk.NewAttribute(types.AttributeKeyDeposit, deposit.String()),
		),
	)
	k.Logger(ctx).Info("release updated", "mint", mint.String(), "price", msg.Price, "total_supply", msg.TotalSupply)

	return &types.MsgUpdateReleaseResponse{}, nil
}

func (m msgServer) UpdateMetadata(ctx context.Context, msg *types.MsgUpdateMetadata) (*types.MsgUpdateMetadataResponse, error) {
	return atomic(ctx, func(ctx sdk.Context) (*types.MsgUpdateMetadataResponse, error) {
		payer, err := m.parseAddress("payer", msg.Payer)
		if err != nil {
			return nil, err
		}
		mint, err := types.ParseMint(msg.Mint)
		if err != nil {
			return nil, err
		}
		release, releaseAddr, err := m.GetRelease(ctx, mint)
		if err != nil {
			return nil, err
		}
		if err := m.assertPayer(ctx, payer, release.Authority); err != nil {
			return nil, err
		}
		signer, err := types.VerifyReleaseSigner(releaseAddr, msg.Bump, release.ReleaseSigner)
		if err != nil {
			return nil, err
		}
		if err := m.token.UpdateField(ctx, signer.Address, mint, types.MetadataFieldURI, msg.URI); err != nil {
			return nil, err
		}
		deposit, err := m.topUpDeposit(ctx, payer, mint)
		if err != nil {
			return nil, err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeUpdateMetadata,
				sdk.NewAttribute(types.AttributeKeyMint, mint.String()),
				sdk.NewAttribute(types.AttributeKeyURI, msg.URI),
				sdk.NewAttribute(types.AttributeKeyDeposit, deposit.String()),
			),
		)
		return &types.MsgUpdateMetadataResponse{}, nil
	})
}
