package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gagliardetto/solana-go"

	"editions/internal/borshcodec"
	"editions/x/release/types"
)

type Keeper struct {
	storeService corestore.KVStoreService
	addressCodec address.Codec
	authority    []byte

	Schema   collections.Schema
	Params   collections.Item[types.Params]
	Releases collections.Map[[]byte, types.Release]

	token    types.TokenKeeper
	bank     types.BankKeeper
	accounts types.AccountKeeper
	rewards  types.RewardPool
}

func NewKeeper(
	storeService corestore.KVStoreService,
	addressCodec address.Codec,
	authority []byte,
) Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %s: %s", authority, err))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		addressCodec: addressCodec,
		authority:    authority,

		Params:   collections.NewItem(sb, types.ParamsKey, "params", borshcodec.New[types.Params]("ReleaseParams")),
		Releases: collections.NewMap(sb, types.ReleaseKey, "releases", collections.BytesKey, types.ReleaseValueCodec),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema
	return k
}

func (k *Keeper) SetTokenKeeper(tk types.TokenKeeper) { k.token = tk }

func (k *Keeper) SetBankKeeper(bk types.BankKeeper) { k.bank = bk }

func (k *Keeper) SetAccountKeeper(ak types.AccountKeeper) { k.accounts = ak }

func (k *Keeper) SetRewardPool(rp types.RewardPool) { k.rewards = rp }

func (k Keeper) GetAuthority() []byte { return k.authority }

func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) GetParams(ctx context.Context) types.Params {
	p, err := k.Params.Get(ctx)
	if err != nil {
		return types.DefaultParams()
	}
	return p
}

func (k Keeper) SetParams(ctx context.Context, p types.Params) error {
	return k.Params.Set(ctx, p)
}

// GetRelease loads the release for mint along with the address it is stored
// under.
func (k Keeper) GetRelease(ctx context.Context, mint solana.PublicKey) (types.Release, solana.PublicKey, error) {
	addr, _, err := types.FindReleaseAddress(mint)
	if err != nil {
		return types.Release{}, solana.PublicKey{}, err
	}
	r, err := k.Releases.Get(ctx, addr.Bytes())
	if errors.Is(err, collections.ErrNotFound) {
		return types.Release{}, addr, errorsmod.Wrapf(types.ErrReleaseNotFound, "mint %s", mint)
	}
	if err != nil {
		return types.Release{}, addr, err
	}
	return r, addr, nil
}

// LiveSupply is the number of release tokens issued so far.
func (k Keeper) LiveSupply(ctx context.Context, r types.Release) (uint64, error) {
	return k.token.Supply(ctx, r.Mint)
}
