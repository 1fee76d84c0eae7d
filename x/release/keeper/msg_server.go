package keeper

import (
	"bytes"
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"editions/x/release/types"
)

type msgServer struct {
	Keeper
}

func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// atomic runs fn against a cached branch of ctx and commits it only when fn
// succeeds, so a failed message leaves no writes and no events behind.
func atomic[T any](ctx context.Context, fn func(ctx sdk.Context) (T, error)) (T, error) {
	cacheCtx, write := sdk.UnwrapSDKContext(ctx).CacheContext()
	out, err := fn(cacheCtx)
	if err != nil {
		var zero T
		return zero, err
	}
	write()
	return out, nil
}

func (m msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	authority, err := m.addressCodec.StringToBytes(msg.Authority)
	if err != nil {
		return nil, errorsmod.Wrap(err, "invalid authority address")
	}
	if !bytes.Equal(m.GetAuthority(), authority) {
		expected, _ := m.addressCodec.BytesToString(m.GetAuthority())
		return nil, errorsmod.Wrapf(types.ErrInvalidSigner, "invalid authority; expected %s, got %s", expected, msg.Authority)
	}
	if err := msg.Params.Validate(); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}
	if err := m.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}

// assertPayer enforces the delegation guard: payer must be expected or an
// allow-listed delegate.
func (k Keeper) assertPayer(ctx context.Context, payer sdk.AccAddress, expected sdk.AccAddress) error {
	if bytes.Equal(payer, expected) {
		return nil
	}
	payerStr, err := k.addressCodec.BytesToString(payer)
	if err != nil {
		return err
	}
	if k.GetParams(ctx).IsDelegatedPayer(payerStr) {
		return nil
	}
	expectedStr, _ := k.addressCodec.BytesToString(expected)
	return errorsmod.Wrapf(types.ErrDelegatedPayerMismatch, "payer %s is neither %s nor a delegate", payerStr, expectedStr)
}

func (k Keeper) parseAddress(field, s string) (sdk.AccAddress, error) {
	bz, err := k.addressCodec.StringToBytes(s)
	if err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid %s address (%s)", field, err)
	}
	return bz, nil
}
