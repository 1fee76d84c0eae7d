package keeper_test

import (
	"bytes"
	"context"
	"testing"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	sdkruntime "github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authcodec "github.com/cosmos/cosmos-sdk/x/auth/codec"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"editions/x/tokenext/keeper"
	"editions/x/tokenext/types"
)

type tokenFixture struct {
	ctx    sdk.Context
	keeper keeper.Keeper
	bank   *bankMock
	payer  sdk.AccAddress
}

func newTokenFixture(t *testing.T) *tokenFixture {
	t.Helper()

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	memKey := storetypes.NewTransientStoreKey("tokenext_test")
	ctx := testutil.DefaultContextWithDB(t, storeKey, memKey).Ctx

	bank := newBankMock()
	k := keeper.NewKeeper(
		sdkruntime.NewKVStoreService(storeKey),
		authcodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		bank,
	)
	return &tokenFixture{
		ctx:    ctx,
		keeper: k,
		bank:   bank,
		payer:  sdk.AccAddress(bytes.Repeat([]byte{0x07}, 20)),
	}
}

type bankMock struct {
	balances map[string]sdk.Coins
	supply   sdk.Coins
	metadata map[string]banktypes.Metadata
}

func newBankMock() *bankMock {
	return &bankMock{balances: map[string]sdk.Coins{}, metadata: map[string]banktypes.Metadata{}}
}

func (b *bankMock) MintCoins(_ context.Context, module string, amt sdk.Coins) error {
	b.supply = b.supply.Add(amt...)
	b.balances[module] = b.balances[module].Add(amt...)
	return nil
}

func (b *bankMock) SendCoinsFromModuleToAccount(_ context.Context, module string, to sdk.AccAddress, amt sdk.Coins) error {
	b.balances[module] = b.balances[module].Sub(amt...)
	b.balances[to.String()] = b.balances[to.String()].Add(amt...)
	return nil
}

func (b *bankMock) GetSupply(_ context.Context, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.supply.AmountOf(denom))
}

func (b *bankMock) SetDenomMetaData(_ context.Context, md banktypes.Metadata) {
	b.metadata[md.Base] = md
}

func TestCreateMintAndMintTo(t *testing.T) {
	f := newTokenFixture(t)
	mint := solana.NewWallet().PublicKey()
	authority := solana.NewWallet().PublicKey()

	require.NoError(t, f.keeper.CreateMint(f.ctx, f.payer, mint, 0, authority, authority))
	err := f.keeper.CreateMint(f.ctx, f.payer, mint, 0, authority, authority)
	require.ErrorIs(t, err, types.ErrMintExists)

	supply, err := f.keeper.Supply(f.ctx, mint)
	require.NoError(t, err)
	require.Zero(t, supply)

	buyer := sdk.AccAddress(bytes.Repeat([]byte{0x09}, 20))
	require.NoError(t, f.keeper.MintTo(f.ctx, authority, mint, buyer, 1))
	require.NoError(t, f.keeper.MintTo(f.ctx, authority, mint, buyer, 1))

	supply, err = f.keeper.Supply(f.ctx, mint)
	require.NoError(t, err)
	require.Equal(t, uint64(2), supply)
	require.Equal(t, sdkmath.NewInt(2), f.bank.balances[buyer.String()].AmountOf(f.keeper.Denom(mint)))

	err = f.keeper.MintTo(f.ctx, solana.NewWallet().PublicKey(), mint, buyer, 1)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestUnknownMint(t *testing.T) {
	f := newTokenFixture(t)
	mint := solana.NewWallet().PublicKey()

	_, err := f.keeper.Supply(f.ctx, mint)
	require.ErrorIs(t, err, types.ErrMintNotFound)
	_, err = f.keeper.AccountSize(f.ctx, mint)
	require.ErrorIs(t, err, types.ErrMintNotFound)
	err = f.keeper.MintTo(f.ctx, mint, mint, f.payer, 1)
	require.ErrorIs(t, err, types.ErrMintNotFound)
}

func TestMetadataLifecycle(t *testing.T) {
	f := newTokenFixture(t)
	mint := solana.NewWallet().PublicKey()
	authority := solana.NewWallet().PublicKey()
	require.NoError(t, f.keeper.CreateMint(f.ctx, f.payer, mint, 0, authority, authority))

	bare, err := f.keeper.AccountSize(f.ctx, mint)
	require.NoError(t, err)

	err = f.keeper.InitializeMetadata(f.ctx, solana.NewWallet().PublicKey(), mint, "n", "s", "https://a.io")
	require.ErrorIs(t, err, types.ErrUnauthorized)

	require.NoError(t, f.keeper.InitializeMetadata(f.ctx, authority, mint, "Night Drive", "NITE", "https://a.io/1.json"))
	err = f.keeper.InitializeMetadata(f.ctx, authority, mint, "n", "s", "https://a.io")
	require.ErrorIs(t, err, types.ErrMetadataExists)

	withMeta, err := f.keeper.AccountSize(f.ctx, mint)
	require.NoError(t, err)
	require.Greater(t, withMeta, bare)

	require.NoError(t, f.keeper.UpdateField(f.ctx, authority, mint, types.FieldURI, "https://a.io/a-much-longer-metadata-path.json"))
	grown, err := f.keeper.AccountSize(f.ctx, mint)
	require.NoError(t, err)
	require.Greater(t, grown, withMeta)

	err = f.keeper.UpdateField(f.ctx, authority, mint, "color", "red")
	require.ErrorIs(t, err, types.ErrUnknownField)
	err = f.keeper.UpdateField(f.ctx, solana.NewWallet().PublicKey(), mint, types.FieldName, "x")
	require.ErrorIs(t, err, types.ErrUnauthorized)

	md, err := f.keeper.GetMetadata(f.ctx, mint)
	require.NoError(t, err)
	require.Equal(t, "Night Drive", md.Name)
	require.Equal(t, "https://a.io/a-much-longer-metadata-path.json", md.URI)

	mirrored := f.bank.metadata[f.keeper.Denom(mint)]
	require.Equal(t, "NITE", mirrored.Symbol)
	require.Equal(t, md.URI, mirrored.URI)
}

func TestGenesisRoundTrip(t *testing.T) {
	f := newTokenFixture(t)
	mint := solana.NewWallet().PublicKey()
	authority := solana.NewWallet().PublicKey()
	require.NoError(t, f.keeper.CreateMint(f.ctx, f.payer, mint, 0, authority, authority))
	require.NoError(t, f.keeper.InitializeMetadata(f.ctx, authority, mint, "Night Drive", "NITE", "https://a.io/1.json"))

	gs, err := f.keeper.ExportGenesis(f.ctx)
	require.NoError(t, err)
	require.NoError(t, gs.Validate())
	require.Len(t, gs.Mints, 1)
	require.True(t, gs.Mints[0].Address.Equals(mint))

	g := newTokenFixture(t)
	require.NoError(t, g.keeper.InitGenesis(g.ctx, *gs))
	got, err := g.keeper.GetMint(g.ctx, mint)
	require.NoError(t, err)
	require.True(t, got.MintAuthority.Equals(authority))
	md, err := g.keeper.GetMetadata(g.ctx, mint)
	require.NoError(t, err)
	require.Equal(t, "NITE", md.Symbol)
}
