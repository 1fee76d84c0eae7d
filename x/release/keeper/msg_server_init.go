package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"editions/app/metrics"
	"editions/x/release/types"
)

func (m msgServer) InitRelease(ctx context.Context, msg *types.MsgInitRelease) (*types.MsgInitReleaseResponse, error) {
	resp, err := atomic(ctx, func(ctx sdk.Context) (*types.MsgInitReleaseResponse, error) {
		return m.initRelease(ctx, msg)
	})
	if err != nil {
		return nil, err
	}
	metrics.InitsCounter().Inc()
	return resp, nil
}

func (k Keeper) initRelease(ctx sdk.Context, msg *types.MsgInitRelease) (*types.MsgInitReleaseResponse, error) {
	payer, err := k.parseAddress("payer", msg.Payer)
	if err != nil {
		return nil, err
	}
	authority, err := k.parseAddress("authority", msg.Authority)
	if err != nil {
		return nil, err
	}
	royalty := authority
	if msg.RoyaltyAccount != "" {
		if royalty, err = k.parseAddress("royalty", msg.RoyaltyAccount); err != nil {
			return nil, err
		}
	}
	mint, err := types.ParseMint(msg.Mint)
	if err != nil {
		return nil, err
	}

	if err := k.assertPayer(ctx, payer, authority); err != nil {
		return nil, err
	}
	if !k.bank.HasSupply(ctx, msg.PaymentDenom) {
		return nil, errorsmod.Wrapf(types.ErrInvalidRequest, "payment denom %s does not exist", msg.PaymentDenom)
	}

	releaseAddr, _, err := types.FindReleaseAddress(mint)
	if err != nil {
		return nil, err
	}
	exists, err := k.Releases.Has(ctx, releaseAddr.Bytes())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errorsmod.Wrapf(types.ErrReleaseExists, "release %s for mint %s", releaseAddr, mint)
	}
	canonical, err := types.FindReleaseSigner(releaseAddr)
	if err != nil {
		return nil, err
	}
	signer, err := types.VerifyReleaseSigner(releaseAddr, msg.Bump, canonical.Address)
	if err != nil {
		return nil, err
	}

	if err := k.token.CreateMint(ctx, payer, mint, 0, signer.Address, signer.Address); err != nil {
		return nil, err
	}
	if err := k.token.InitializeMetadata(ctx, signer.Address, mint, msg.Name, msg.Symbol, msg.URI); err != nil {
		return nil, err
	}
	deposit, err := k.topUpDeposit(ctx, payer, mint)
	if err != nil {
		return nil, err
	}

	release := types.Release{
		Authority:      authority,
		ReleaseSigner:  signer.Address,
		Mint:           mint,
		RoyaltyAccount: royalty,
		PaymentDenom:   msg.PaymentDenom,
		TotalSupply:    msg.TotalSupply,
		Price:          msg.Price,
	}
	if err := k.Releases.Set(ctx, releaseAddr.Bytes(), release); err != nil {
		return nil, err
	}

	royaltyStr, _ := k.addressCodec.BytesToString(royalty)
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeInit,
			sdk.NewAttribute(types.AttributeKeyMint, mint.String()),
			sdk.NewAttribute(types.AttributeKeyRelease, releaseAddr.String()),
			sdk.NewAttribute(types.AttributeKeySigner, signer.Address.String()),
			sdk.NewAttribute(types.AttributeKeyAuthority, msg.Authority),
			sdk.NewAttribute(types.AttributeKeyPayer, msg.Payer),
			sdk.NewAttribute(types.AttributeKeyRoyalty, royaltyStr),
			sdk.NewAttribute(types.AttributeKeyPrice, strconv.FormatUint(msg.Price, 10)),
			sdk.NewAttribute(types.AttributeKeyTotalSupply, strconv.FormatUint(msg.TotalSupply, 10)),
			sdk.NewAttribute(types.AttributeKeyDeposit, deposit.String()),
		),
	)
	k.Logger(ctx).Info("release initialized", "mint", mint.String(), "release", releaseAddr.String(), "total_supply", msg.TotalSupply, "price", msg.Price)

	return &types.MsgInitReleaseResponse{
		Release:       releaseAddr.String(),
		ReleaseSigner: signer.Address.String(),
		Denom:         k.token.Denom(mint),
	}, nil
}

func (m msgServer) InitAndPurchase(ctx context.Context, msg *types.MsgInitAndPurchase) (*types.MsgInitAndPurchaseResponse, error) {
	resp, err := atomic(ctx, func(ctx sdk.Context) (*types.MsgInitAndPurchaseResponse, error) {
		initResp, err := m.initRelease(ctx, msg.InitMsg())
		if err != nil {
			return nil, err
		}
		purchaseResp, err := m.purchase(ctx, msg.PurchaseMsg())
		if err != nil {
			return nil, err
		}
		return &types.MsgInitAndPurchaseResponse{Init: *initResp, Purchase: *purchaseResp}, nil
	})
	if err != nil {
		return nil, err
	}
	metrics.InitsCounter().Inc()
	observePurchase(msg.Price, nil)
	return resp, nil
}
