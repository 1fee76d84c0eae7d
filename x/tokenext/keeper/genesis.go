package keeper

import (
	"context"

	"editions/x/tokenext/types"
)

func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	for _, m := range gs.Mints {
		if err := k.Mints.Set(ctx, m.Address.Bytes(), m.Mint); err != nil {
			return err
		}
	}
	for _, md := range gs.Metadata {
		if err := k.setMetadata(ctx, md); err != nil {
			return err
		}
	}
	return nil
}

func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	gs := types.DefaultGenesis()
	err := k.Mints.Walk(ctx, nil, func(addr []byte, m types.Mint) (bool, error) {
		rec := types.MintRecord{Mint: m}
		copy(rec.Address[:], addr)
		gs.Mints = append(gs.Mints, rec)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	err = k.Metadata.Walk(ctx, nil, func(_ []byte, md types.Metadata) (bool, error) {
		gs.Metadata = append(gs.Metadata, md)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return gs, nil
}
