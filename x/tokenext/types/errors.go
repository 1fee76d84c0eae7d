package types

import "cosmossdk.io/errors"

var (
	ErrMintExists       = errors.Register(ModuleName, 1100, "mint already exists")
	ErrMintNotFound     = errors.Register(ModuleName, 1101, "mint not found")
	ErrUnauthorized     = errors.Register(ModuleName, 1102, "signer is not the mint authority")
	ErrMetadataExists   = errors.Register(ModuleName, 1103, "metadata already initialized")
	ErrMetadataNotFound = errors.Register(ModuleName, 1104, "metadata not found")
	ErrUnknownField     = errors.Register(ModuleName, 1105, "unknown metadata field")
)
