package keeper_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/collections"
	coreaddress "cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	sdkruntime "github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authcodec "github.com/cosmos/cosmos-sdk/x/auth/codec"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"editions/x/release/keeper"
	"editions/x/release/types"
	tokenkeeper "editions/x/tokenext/keeper"
)

const paymentDenom = "uusdc"

type releaseFixture struct {
	ctx       sdk.Context
	keeper    keeper.Keeper
	token     tokenkeeper.Keeper
	msgSrv    types.MsgServer
	querySrv  types.QueryServer
	addrCodec coreaddress.Codec
	bank      *bankMock
	accounts  *accountMock
	rewards   *rewardPoolMock

	gov       string
	authority sdk.AccAddress
	buyer     sdk.AccAddress
}

func newReleaseFixture(t *testing.T) *releaseFixture {
	t.Helper()

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	memKey := storetypes.NewTransientStoreKey("release_msg_server_test")
	ctx := testutil.DefaultContextWithDB(t, storeKey, memKey).Ctx
	ctx = ctx.WithBlockTime(time.Unix(1_000, 0))
	storeService := sdkruntime.NewKVStoreService(storeKey)

	addrCodec := authcodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix())
	govBz := authtypes.NewModuleAddress(types.GovModuleName)
	govStr, err := addrCodec.BytesToString(govBz)
	require.NoError(t, err)

	bank := newBankMock(storeService)
	accounts := newAccountMock(storeService)
	rewards := &rewardPoolMock{bank: bank}
	token := tokenkeeper.NewKeeper(storeService, addrCodec, bank)

	k := keeper.NewKeeper(storeService, addrCodec, govBz)
	k.SetTokenKeeper(token)
	k.SetBankKeeper(bank)
	k.SetAccountKeeper(accounts)
	k.SetRewardPool(rewards)
	require.NoError(t, k.SetParams(ctx, types.DefaultParams()))

	f := &releaseFixture{
		ctx:       ctx,
		keeper:    k,
		token:     token,
		msgSrv:    keeper.NewMsgServerImpl(k),
		querySrv:  keeper.NewQueryServerImpl(k),
		addrCodec: addrCodec,
		bank:      bank,
		accounts:  accounts,
		rewards:   rewards,
		gov:       govStr,
		authority: sdk.AccAddress(bytes.Repeat([]byte{0x42}, 20)),
		buyer:     sdk.AccAddress(bytes.Repeat([]byte{0x07}, 20)),
	}
	f.fund(t, f.authority, sdk.NewCoins(sdk.NewInt64Coin(sdk.DefaultBondDenom, 1_000_000)))
	f.fund(t, f.buyer, sdk.NewCoins(sdk.NewInt64Coin(paymentDenom, 100_000_000)))
	return f
}

func (f *releaseFixture) fund(t *testing.T, addr sdk.AccAddress, coins sdk.Coins) {
	t.Helper()
	require.NoError(t, f.bank.mint(f.ctx, addr, coins))
}

func (f *releaseFixture) balance(addr sdk.AccAddress, denom string) int64 {
	return f.bank.GetBalance(f.ctx, addr, denom).Amount.Int64()
}

func (f *releaseFixture) initMsg(mint solana.PublicKey, totalSupply, price uint64) *types.MsgInitRelease {
	releaseAddr, _, err := types.FindReleaseAddress(mint)
	if err != nil {
		panic(err)
	}
	signer, err := types.FindReleaseSigner(releaseAddr)
	if err != nil {
		panic(err)
	}
	return &types.MsgInitRelease{
		Payer:        f.authority.String(),
		Authority:    f.authority.String(),
		Mint:         mint.String(),
		PaymentDenom: paymentDenom,
		Name:         "Night Drive",
		Symbol:       "NITE",
		URI:          "https://meta.example.com/night-drive.json",
		TotalSupply:  totalSupply,
		Price:        price,
		Bump:         signer.Bump,
	}
}

// initRelease creates a release owned by f.authority and returns its mint
// and canonical signer bump.
func (f *releaseFixture) initRelease(t *testing.T, totalSupply, price uint64) (solana.PublicKey, uint8) {
	t.Helper()
	mint := solana.NewWallet().PublicKey()
	msg := f.initMsg(mint, totalSupply, price)
	_, err := f.msgSrv.InitRelease(f.ctx, msg)
	require.NoError(t, err)
	return mint, msg.Bump
}

func (f *releaseFixture) purchaseMsg(mint solana.PublicKey, bump uint8, amount uint64) *types.MsgPurchase {
	return &types.MsgPurchase{
		Payer:    f.buyer.String(),
		Receiver: f.buyer.String(),
		Mint:     mint.String(),
		Amount:   amount,
		Bump:     bump,
	}
}

func (f *releaseFixture) release(t *testing.T, mint solana.PublicKey) types.Release {
	t.Helper()
	r, _, err := f.keeper.GetRelease(f.ctx, mint)
	require.NoError(t, err)
	return r
}

func (f *releaseFixture) supply(t *testing.T, mint solana.PublicKey) uint64 {
	t.Helper()
	s, err := f.token.Supply(f.ctx, mint)
	require.NoError(t, err)
	return s
}

func (f *releaseFixture) setDelegates(t *testing.T, delegates ...sdk.AccAddress) {
	t.Helper()
	p := f.keeper.GetParams(f.ctx)
	p.DelegatedPayers = nil
	for _, d := range delegates {
		p.DelegatedPayers = append(p.DelegatedPayers, d.String())
	}
	require.NoError(t, f.keeper.SetParams(f.ctx, p))
}

func hasEvent(ctx sdk.Context, typ string) bool {
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == typ {
			return true
		}
	}
	return false
}

// bankMock keeps balances in the module store so cached contexts roll them
// back exactly like the real bank keeper.
type bankMock struct {
	balances collections.Map[string, sdkmath.Int]
	supply   collections.Map[string, sdkmath.Int]
	metadata map[string]banktypes.Metadata
}

func newBankMock(storeService corestore.KVStoreService) *bankMock {
	sb := collections.NewSchemaBuilder(storeService)
	b := &bankMock{
		balances: collections.NewMap(sb, collections.NewPrefix("mock/bank/balances/"), "balances", collections.StringKey, sdk.IntValue),
		supply:   collections.NewMap(sb, collections.NewPrefix("mock/bank/supply/"), "supply", collections.StringKey, sdk.IntValue),
		metadata: map[string]banktypes.Metadata{},
	}
	if _, err := sb.Build(); err != nil {
		panic(err)
	}
	return b
}

func balanceKey(addr sdk.AccAddress, denom string) string { return addr.String() + "|" + denom }

func (b *bankMock) amount(ctx context.Context, m collections.Map[string, sdkmath.Int], key string) sdkmath.Int {
	v, err := m.Get(ctx, key)
	if err != nil {
		return sdkmath.ZeroInt()
	}
	return v
}

func (b *bankMock) mint(ctx context.Context, to sdk.AccAddress, amt sdk.Coins) error {
	for _, c := range amt {
		if err := b.supply.Set(ctx, c.Denom, b.amount(ctx, b.supply, c.Denom).Add(c.Amount)); err != nil {
			return err
		}
		key := balanceKey(to, c.Denom)
		if err := b.balances.Set(ctx, key, b.amount(ctx, b.balances, key).Add(c.Amount)); err != nil {
			return err
		}
	}
	return nil
}

func (b *bankMock) SendCoins(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	for _, c := range amt {
		fromKey := balanceKey(from, c.Denom)
		have := b.amount(ctx, b.balances, fromKey)
		if have.LT(c.Amount) {
			return fmt.Errorf("insufficient funds: %s%s < %s", have, c.Denom, c)
		}
		if err := b.balances.Set(ctx, fromKey, have.Sub(c.Amount)); err != nil {
			return err
		}
		toKey := balanceKey(to, c.Denom)
		if err := b.balances.Set(ctx, toKey, b.amount(ctx, b.balances, toKey).Add(c.Amount)); err != nil {
			return err
		}
	}
	return nil
}

func (b *bankMock) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.amount(ctx, b.balances, balanceKey(addr, denom)))
}

func (b *bankMock) HasSupply(ctx context.Context, denom string) bool {
	return b.amount(ctx, b.supply, denom).IsPositive()
}

func (b *bankMock) GetSupply(ctx context.Context, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.amount(ctx, b.supply, denom))
}

func (b *bankMock) MintCoins(ctx context.Context, module string, amt sdk.Coins) error {
	return b.mint(ctx, authtypes.NewModuleAddress(module), amt)
}

func (b *bankMock) SendCoinsFromModuleToAccount(ctx context.Context, module string, to sdk.AccAddress, amt sdk.Coins) error {
	return b.SendCoins(ctx, authtypes.NewModuleAddress(module), to, amt)
}

func (b *bankMock) SetDenomMetaData(_ context.Context, md banktypes.Metadata) {
	b.metadata[md.Base] = md
}

type accountMock struct {
	accounts collections.KeySet[[]byte]
}

func newAccountMock(storeService corestore.KVStoreService) *accountMock {
	sb := collections.NewSchemaBuilder(storeService)
	a := &accountMock{
		accounts: collections.NewKeySet(sb, collections.NewPrefix("mock/auth/accounts/"), "accounts", collections.BytesKey),
	}
	if _, err := sb.Build(); err != nil {
		panic(err)
	}
	return a
}

func (a *accountMock) GetAccount(ctx context.Context, addr sdk.AccAddress) sdk.AccountI {
	if ok, _ := a.accounts.Has(ctx, addr); !ok {
		return nil
	}
	return authtypes.NewBaseAccountWithAddress(addr)
}

func (a *accountMock) NewAccountWithAddress(_ context.Context, addr sdk.AccAddress) sdk.AccountI {
	return authtypes.NewBaseAccountWithAddress(addr)
}

func (a *accountMock) SetAccount(ctx context.Context, acc sdk.AccountI) {
	_ = a.accounts.Set(ctx, acc.GetAddress())
}

var rewardPoolAddr = authtypes.NewModuleAddress("reward_pool")

type rewardPoolMock struct {
	bank     *bankMock
	deposits []types.RewardDeposit
}

func (r *rewardPoolMock) Deposit(ctx context.Context, depositor sdk.AccAddress, amount sdk.Coins, deposit types.RewardDeposit) error {
	if err := r.bank.SendCoins(ctx, depositor, rewardPoolAddr, amount); err != nil {
		return err
	}
	r.deposits = append(r.deposits, deposit)
	return nil
}
