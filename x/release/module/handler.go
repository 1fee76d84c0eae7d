package release

import (
	"context"
	"slices"

	errorsmod "cosmossdk.io/errors"

	"editions/x/release/keeper"
	"editions/x/release/types"
)

// Handler executes one release message and returns its response.
//
// signers is the set of bech32 addresses whose signatures the host has
// already verified for the enclosing transaction. The handler does not check
// signatures itself. It only requires every address in msg.Signers() to be
// present in that set.
type Handler func(ctx context.Context, signers []string, msg types.Msg) (any, error)

// NewHandler runs stateless validation and the signer check before
// dispatching to the keeper.
func NewHandler(k keeper.Keeper) Handler {
	srv := keeper.NewMsgServerImpl(k)

	return func(ctx context.Context, signers []string, msg types.Msg) (any, error) {
		if msg == nil {
			return nil, errorsmod.Wrap(types.ErrInvalidRequest, "nil message")
		}
		if err := msg.ValidateBasic(); err != nil {
			return nil, err
		}
		if err := requireSigners(signers, msg.Signers()); err != nil {
			return nil, err
		}

		switch msg := msg.(type) {
		case *types.MsgInitRelease:
			return srv.InitRelease(ctx, msg)
		case *types.MsgPurchase:
			return srv.Purchase(ctx, msg)
		case *types.MsgUpdateRelease:
			return srv.UpdateRelease(ctx, msg)
		case *types.MsgUpdateMetadata:
			return srv.UpdateMetadata(ctx, msg)
		case *types.MsgCloseRelease:
			return srv.CloseRelease(ctx, msg)
		case *types.MsgInitAndPurchase:
			return srv.InitAndPurchase(ctx, msg)
		case *types.MsgUpdateParams:
			return srv.UpdateParams(ctx, msg)
		default:
			return nil, errorsmod.Wrapf(types.ErrInvalidRequest, "unrecognized %s message type: %T", types.ModuleName, msg)
		}
	}
}

func requireSigners(signed, required []string) error {
	for _, addr := range required {
		if !slices.Contains(signed, addr) {
			return errorsmod.Wrapf(types.ErrMissingSignature, "%s", addr)
		}
	}
	return nil
}
