package release

import (
	"context"

	"cosmossdk.io/core/address"
	"cosmossdk.io/core/appmodule"
	"cosmossdk.io/core/store"
	"cosmossdk.io/depinject"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	distrkeeper "github.com/cosmos/cosmos-sdk/x/distribution/keeper"

	"editions/x/release/keeper"
	"editions/x/release/types"
	tokenkeeper "editions/x/tokenext/keeper"
)

var _ depinject.OnePerModuleType = AppModule{}

func (AppModule) IsOnePerModuleType() {}

// Config is supplied by the app. Authority defaults to the gov module account.
type Config struct {
	Authority string
}

// Provider registers the module with a depinject container.
var Provider = depinject.ProvideInModule(types.ModuleName, ProvideModule)

type ModuleInputs struct {
	depinject.In

	Config       *Config `optional:"true"`
	StoreService store.KVStoreService
	AddressCodec address.Codec

	AccountKeeper      authkeeper.AccountKeeper
	BankKeeper         bankkeeper.Keeper
	DistributionKeeper distrkeeper.Keeper
	TokenKeeper        tokenkeeper.Keeper
}

type ModuleOutputs struct {
	depinject.Out

	ReleaseKeeper keeper.Keeper
	Module        appmodule.AppModule
}

func ProvideModule(in ModuleInputs) ModuleOutputs {
	authority := authtypes.NewModuleAddress(types.GovModuleName)
	if in.Config != nil && in.Config.Authority != "" {
		authority = authtypes.NewModuleAddressOrBech32Address(in.Config.Authority)
	}
	k := keeper.NewKeeper(
		in.StoreService,
		in.AddressCodec,
		authority,
	)
	k.SetTokenKeeper(in.TokenKeeper)
	k.SetBankKeeper(in.BankKeeper)
	k.SetAccountKeeper(in.AccountKeeper)
	k.SetRewardPool(communityPool{dk: in.DistributionKeeper})

	return ModuleOutputs{ReleaseKeeper: k, Module: NewAppModule(k)}
}

type fundingKeeper interface {
	FundCommunityPool(ctx context.Context, amount sdk.Coins, depositor sdk.AccAddress) error
}

// communityPool forwards reward shares to the distribution community pool.
type communityPool struct{ dk fundingKeeper }

func (p communityPool) Deposit(ctx context.Context, depositor sdk.AccAddress, amount sdk.Coins, deposit types.RewardDeposit) error {
	if err := p.dk.FundCommunityPool(ctx, amount, depositor); err != nil {
		return err
	}
	sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName).Debug(
		"reward deposit forwarded",
		"depositor", depositor.String(),
		"amount", amount.String(),
		"root_index", deposit.MerkleTreeRootIndex,
		"leaves", len(deposit.LeafIndexes),
	)
	return nil
}
