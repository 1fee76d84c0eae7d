package types

import "cosmossdk.io/collections"

const (
	ModuleName = "release"

	StoreKey = ModuleName

	GovModuleName = "gov"
)

var ParamsKey = collections.NewPrefix("p_release")

var (
	// ReleaseKey stores release records keyed by their derived release address.
	ReleaseKey = collections.NewPrefix("release/value/")
)

// Seeds used when deriving program addresses for a release.
var (
	SeedRelease = []byte("release")
)
