package app

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	releasetypes "editions/x/release/types"
	tokenext "editions/x/tokenext/module"
	tokenexttypes "editions/x/tokenext/types"
)

const (
	Name                 = "editions"
	AccountAddressPrefix = "edn"
	ChainCoinType        = 118
)

// ModuleAccountPermissions lists the module accounts the editions modules
// need in addition to the SDK defaults.
func ModuleAccountPermissions() map[string][]string {
	return map[string][]string{
		tokenexttypes.ModuleName: tokenext.ModuleAccountPermissions,
	}
}

// SetAddressPrefixes installs the bech32 prefixes derived from prefix on the
// global SDK config. The config must not be sealed.
func SetAddressPrefixes(prefix string) {
	cfg := sdk.GetConfig()
	cfg.SetBech32PrefixForAccount(prefix, prefix+"pub")
	cfg.SetBech32PrefixForValidator(prefix+"valoper", prefix+"valoperpub")
	cfg.SetBech32PrefixForConsensusNode(prefix+"valcons", prefix+"valconspub")
	cfg.SetCoinType(ChainCoinType)
}

// ReleaseAuthority is the bech32 address of the account allowed to update
// release params.
func ReleaseAuthority() string {
	addr := authtypes.NewModuleAddress(releasetypes.GovModuleName)
	return sdk.MustBech32ifyAddressBytes(AccountAddressPrefix, addr)
}
