package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/gagliardetto/solana-go"

	"editions/x/tokenext/types"
)

// InitializeMetadata attaches metadata to mint. signer must be the metadata
// authority recorded at mint creation and becomes the update authority.
func (k Keeper) InitializeMetadata(ctx context.Context, signer, mint solana.PublicKey, name, symbol, uri string) error {
	m, err := k.GetMint(ctx, mint)
	if err != nil {
		return err
	}
	if !m.MetadataAuthority.Equals(signer) {
		return errorsmod.Wrapf(types.ErrUnauthorized, "metadata authority is %s, got %s", m.MetadataAuthority, signer)
	}
	has, err := k.Metadata.Has(ctx, mint.Bytes())
	if err != nil {
		return err
	}
	if has {
		return errorsmod.Wrapf(types.ErrMetadataExists, "mint %s", mint)
	}

	md := types.Metadata{
		UpdateAuthority: signer,
		Mint:            mint,
		Name:            name,
		Symbol:          symbol,
		URI:             uri,
	}
	if err := k.setMetadata(ctx, md); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeInitMetadata,
			sdk.NewAttribute(types.AttributeKeyMint, mint.String()),
			sdk.NewAttribute(types.AttributeKeyAuthority, signer.String()),
		),
	)
	return nil
}

// UpdateField rewrites one metadata field. signer must be the update
// authority.
func (k Keeper) UpdateField(ctx context.Context, signer, mint solana.PublicKey, field, value string) error {
	md, err := k.GetMetadata(ctx, mint)
	if err != nil {
		return err
	}
	if !md.UpdateAuthority.Equals(signer) {
		return errorsmod.Wrapf(types.ErrUnauthorized, "update authority is %s, got %s", md.UpdateAuthority, signer)
	}
	if !md.SetField(field, value) {
		return errorsmod.Wrapf(types.ErrUnknownField, "%q", field)
	}
	if err := k.setMetadata(ctx, md); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdateField,
			sdk.NewAttribute(types.AttributeKeyMint, mint.String()),
			sdk.NewAttribute(types.AttributeKeyField, field),
			sdk.NewAttribute(types.AttributeKeyValue, value),
		),
	)
	return nil
}

func (k Keeper) GetMetadata(ctx context.Context, mint solana.PublicKey) (types.Metadata, error) {
	md, err := k.Metadata.Get(ctx, mint.Bytes())
	if errors.Is(err, collections.ErrNotFound) {
		return types.Metadata{}, errorsmod.Wrapf(types.ErrMetadataNotFound, "mint %s", mint)
	}
	return md, err
}

// AccountSize is the stored size of mint and its metadata. It grows with the
// metadata strings.
func (k Keeper) AccountSize(ctx context.Context, mint solana.PublicKey) (uint64, error) {
	m, err := k.GetMint(ctx, mint)
	if err != nil {
		return 0, err
	}
	bz, err := types.MintValueCodec.Encode(m)
	if err != nil {
		return 0, err
	}
	size := uint64(len(bz))

	md, err := k.Metadata.Get(ctx, mint.Bytes())
	switch {
	case errors.Is(err, collections.ErrNotFound):
		return size, nil
	case err != nil:
		return 0, err
	}
	bz, err = types.MetadataValueCodec.Encode(md)
	if err != nil {
		return 0, err
	}
	return size + uint64(len(bz)), nil
}

// setMetadata stores md and mirrors it into the bank denom metadata.
func (k Keeper) setMetadata(ctx context.Context, md types.Metadata) error {
	if err := k.Metadata.Set(ctx, md.Mint.Bytes(), md); err != nil {
		return err
	}
	denom := types.Denom(md.Mint)
	k.bank.SetDenomMetaData(ctx, banktypes.Metadata{
		Description: md.Name,
		DenomUnits:  []*banktypes.DenomUnit{{Denom: denom, Exponent: 0}},
		Base:        denom,
		Display:     denom,
		Name:        md.Name,
		Symbol:      md.Symbol,
		URI:         md.URI,
	})
	return nil
}
