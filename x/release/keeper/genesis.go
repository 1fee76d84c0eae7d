package keeper

import (
	"context"

	"editions/x/release/types"
)

func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.Params.Set(ctx, genState.Params); err != nil {
		return err
	}
	for _, r := range genState.Releases {
		addr, err := r.ReleaseAddress()
		if err != nil {
			return err
		}
		if err := k.Releases.Set(ctx, addr.Bytes(), r); err != nil {
			return err
		}
	}
	return nil
}

func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)

	err := k.Releases.Walk(ctx, nil, func(_ []byte, r types.Release) (bool, error) {
		genesis.Releases = append(genesis.Releases, r)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return genesis, nil
}
