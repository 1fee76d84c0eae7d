package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gagliardetto/solana-go"
)

// Metadata fields the token extension can rewrite.
const (
	MetadataFieldName   = "name"
	MetadataFieldSymbol = "symbol"
	MetadataFieldURI    = "uri"
)

// TokenKeeper is the token extension. Calls that take a signer succeed only
// when signer is the authority recorded on the mint.
type TokenKeeper interface {
	CreateMint(ctx context.Context, payer sdk.AccAddress, mint solana.PublicKey, decimals uint8, mintAuthority, metadataAuthority solana.PublicKey) error
	InitializeMetadata(ctx context.Context, signer, mint solana.PublicKey, name, symbol, uri string) error
	UpdateField(ctx context.Context, signer, mint solana.PublicKey, field, value string) error
	MintTo(ctx context.Context, signer, mint solana.PublicKey, to sdk.AccAddress, amount uint64) error
	Supply(ctx context.Context, mint solana.PublicKey) (uint64, error)
	// AccountSize is the serialized size of the mint including its metadata.
	AccountSize(ctx context.Context, mint solana.PublicKey) (uint64, error)
	Denom(mint solana.PublicKey) string
}

type AccountKeeper interface {
	GetAccount(context.Context, sdk.AccAddress) sdk.AccountI
	NewAccountWithAddress(context.Context, sdk.AccAddress) sdk.AccountI
	SetAccount(context.Context, sdk.AccountI)
}

type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	HasSupply(ctx context.Context, denom string) bool
}

// RewardPool accepts the forwarded share of a purchase together with the
// deposit context supplied by the buyer.
type RewardPool interface {
	Deposit(ctx context.Context, depositor sdk.AccAddress, amount sdk.Coins, deposit RewardDeposit) error
}
