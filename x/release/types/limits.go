package types

const (
	ReleaseNameMaxLen   = 64
	ReleaseSymbolMaxLen = 16
	ReleaseURIMaxLen    = 512

	// MintAddressLen is the size of a mint identity. Mints, release addresses
	// and release signers are all 32-byte program keys.
	MintAddressLen = 32

	// DefaultRewardFixedAmount matches the flat deposit forwarded to the reward
	// pool on every purchase that carries a deposit context.
	DefaultRewardFixedAmount = 10_000_000
)
