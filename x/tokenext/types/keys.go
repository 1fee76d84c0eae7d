package types

import (
	"encoding/hex"

	"cosmossdk.io/collections"
	"github.com/gagliardetto/solana-go"
)

const (
	ModuleName = "tokenext"

	StoreKey = ModuleName

	// DenomPrefix namespaces the bank denoms that back mints.
	DenomPrefix = "release/"
)

var (
	MintKey     = collections.NewPrefix("tokenext/mint/")
	MetadataKey = collections.NewPrefix("tokenext/metadata/")
)

// Denom returns the bank denom that carries units of mint.
func Denom(mint solana.PublicKey) string {
	return DenomPrefix + hex.EncodeToString(mint.Bytes())
}
