package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"editions/x/tokenext/types"
)

type Keeper struct {
	storeService corestore.KVStoreService
	addressCodec address.Codec

	Schema   collections.Schema
	Mints    collections.Map[[]byte, types.Mint]
	Metadata collections.Map[[]byte, types.Metadata]

	bank types.BankKeeper
}

func NewKeeper(
	storeService corestore.KVStoreService,
	addressCodec address.Codec,
	bank types.BankKeeper,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		addressCodec: addressCodec,
		bank:         bank,

		Mints:    collections.NewMap(sb, types.MintKey, "mints", collections.BytesKey, types.MintValueCodec),
		Metadata: collections.NewMap(sb, types.MetadataKey, "metadata", collections.BytesKey, types.MetadataValueCodec),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema
	return k
}

func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}
