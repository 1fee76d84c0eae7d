package tokenext

import (
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/appmodule"
	"cosmossdk.io/core/store"
	"cosmossdk.io/depinject"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"

	"editions/x/tokenext/keeper"
	"editions/x/tokenext/types"
)

var _ depinject.OnePerModuleType = AppModule{}

func (AppModule) IsOnePerModuleType() {}

// ModuleAccountPermissions are the permissions the app must grant the
// tokenext module account so MintTo can issue release units.
var ModuleAccountPermissions = []string{authtypes.Minter}

var Provider = depinject.ProvideInModule(types.ModuleName, ProvideModule)

type ModuleInputs struct {
	depinject.In

	StoreService store.KVStoreService
	AddressCodec address.Codec
	BankKeeper   bankkeeper.Keeper
}

type ModuleOutputs struct {
	depinject.Out

	TokenKeeper keeper.Keeper
	Module      appmodule.AppModule
}

func ProvideModule(in ModuleInputs) ModuleOutputs {
	k := keeper.NewKeeper(in.StoreService, in.AddressCodec, in.BankKeeper)
	return ModuleOutputs{TokenKeeper: k, Module: NewAppModule(k)}
}
