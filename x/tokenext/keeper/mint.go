package keeper

import (
	"context"
	"errors"
	"strconv"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gagliardetto/solana-go"

	"editions/x/tokenext/types"
)

// Denom returns the bank denom backing mint.
func (k Keeper) Denom(mint solana.PublicKey) string {
	return types.Denom(mint)
}

// CreateMint registers a new mint. The mint identity must be unused.
func (k Keeper) CreateMint(ctx context.Context, payer sdk.AccAddress, mint solana.PublicKey, decimals uint8, mintAuthority, metadataAuthority solana.PublicKey) error {
	if mint.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "mint required")
	}
	has, err := k.Mints.Has(ctx, mint.Bytes())
	if err != nil {
		return err
	}
	denom := types.Denom(mint)
	if has || k.bank.GetSupply(ctx, denom).IsPositive() {
		return errorsmod.Wrapf(types.ErrMintExists, "mint %s", mint)
	}
	if err := k.Mints.Set(ctx, mint.Bytes(), types.Mint{
		Decimals:          decimals,
		MintAuthority:     mintAuthority,
		MetadataAuthority: metadataAuthority,
	}); err != nil {
		return err
	}

	payerStr, err := k.addressCodec.BytesToString(payer)
	if err != nil {
		return err
	}
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCreateMint,
			sdk.NewAttribute(types.AttributeKeyMint, mint.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAuthority, mintAuthority.String()),
			sdk.NewAttribute(types.AttributeKeyPayer, payerStr),
		),
	)
	return nil
}

// GetMint returns the mint record.
func (k Keeper) GetMint(ctx context.Context, mint solana.PublicKey) (types.Mint, error) {
	m, err := k.Mints.Get(ctx, mint.Bytes())
	if errors.Is(err, collections.ErrNotFound) {
		return types.Mint{}, errorsmod.Wrapf(types.ErrMintNotFound, "mint %s", mint)
	}
	return m, err
}

// MintTo issues amount units of mint to the recipient. signer must be the
// mint authority.
func (k Keeper) MintTo(ctx context.Context, signer, mint solana.PublicKey, to sdk.AccAddress, amount uint64) error {
	m, err := k.GetMint(ctx, mint)
	if err != nil {
		return err
	}
	if !m.MintAuthority.Equals(signer) {
		return errorsmod.Wrapf(types.ErrUnauthorized, "mint authority is %s, got %s", m.MintAuthority, signer)
	}
	coins := sdk.NewCoins(sdk.NewCoin(types.Denom(mint), sdkmath.NewIntFromUint64(amount)))
	if err := k.bank.MintCoins(ctx, types.ModuleName, coins); err != nil {
		return err
	}
	if err := k.bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, to, coins); err != nil {
		return err
	}

	supply, err := k.Supply(ctx, mint)
	if err != nil {
		return err
	}
	toStr, err := k.addressCodec.BytesToString(to)
	if err != nil {
		return err
	}
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMintTo,
			sdk.NewAttribute(types.AttributeKeyMint, mint.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, toStr),
			sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(amount, 10)),
			sdk.NewAttribute(types.AttributeKeySupply, strconv.FormatUint(supply, 10)),
		),
	)
	return nil
}

// Supply returns the number of units of mint in circulation.
func (k Keeper) Supply(ctx context.Context, mint solana.PublicKey) (uint64, error) {
	if _, err := k.GetMint(ctx, mint); err != nil {
		return 0, err
	}
	amt := k.bank.GetSupply(ctx, types.Denom(mint)).Amount
	if !amt.IsUint64() {
		return 0, errorsmod.Wrapf(types.ErrMintNotFound, "supply of %s exceeds u64", mint)
	}
	return amt.Uint64(), nil
}
