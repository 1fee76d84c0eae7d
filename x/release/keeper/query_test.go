package keeper_test

import (
	"math"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"editions/x/release/types"
	tokentypes "editions/x/tokenext/types"
)

func TestQuerySaleStatus(t *testing.T) {
	f := newReleaseFixture(t)
	mint, bump := f.initRelease(t, 2, 1000)

	status, err := f.querySrv.SaleStatus(f.ctx, &types.QuerySaleStatusRequest{Mint: mint.String()})
	require.NoError(t, err)
	require.Equal(t, &types.QuerySaleStatusResponse{
		Supply:      0,
		TotalSupply: 2,
		Remaining:   2,
		Price:       1000,
		State:       types.SaleStateActive,
	}, status)

	for i := 0; i < 2; i++ {
		_, err = f.msgSrv.Purchase(f.ctx, f.purchaseMsg(mint, bump, 1000))
		require.NoError(t, err)
	}
	status, err = f.querySrv.SaleStatus(f.ctx, &types.QuerySaleStatusRequest{Mint: mint.String()})
	require.NoError(t, err)
	require.Equal(t, uint64(2), status.Supply)
	require.Zero(t, status.Remaining)
	require.Equal(t, types.SaleStateSoldOut, status.State)
}

func TestQueryReleaseAddresses(t *testing.T) {
	f := newReleaseFixture(t)
	mint := solana.NewWallet().PublicKey()

	resp, err := f.querySrv.ReleaseAddresses(f.ctx, &types.QueryReleaseAddressesRequest{Mint: mint.String()})
	require.NoError(t, err)

	addr, bump, err := types.FindReleaseAddress(mint)
	require.NoError(t, err)
	signer, err := types.FindReleaseSigner(addr)
	require.NoError(t, err)
	require.Equal(t, addr.String(), resp.Release)
	require.Equal(t, uint32(bump), resp.ReleaseBump)
	require.Equal(t, signer.Address.String(), resp.ReleaseSigner)
	require.Equal(t, uint32(signer.Bump), resp.SignerBump)
	require.Equal(t, tokentypes.Denom(mint), resp.Denom)

	// the derived bump is the one init accepts
	msg := f.initMsg(mint, 1, 1)
	require.Equal(t, uint8(resp.SignerBump), msg.Bump)
}

func TestQueryRelease(t *testing.T) {
	f := newReleaseFixture(t)
	mint, _ := f.initRelease(t, 3, 10)

	resp, err := f.querySrv.Release(f.ctx, &types.QueryReleaseRequest{Mint: mint.String()})
	require.NoError(t, err)
	require.Equal(t, f.release(t, mint), resp.Release)
	addr, _, err := types.FindReleaseAddress(mint)
	require.NoError(t, err)
	require.Equal(t, addr.String(), resp.Address)

	_, err = f.querySrv.Release(f.ctx, &types.QueryReleaseRequest{Mint: solana.NewWallet().PublicKey().String()})
	require.Equal(t, codes.NotFound, status.Code(err))

	_, err = f.querySrv.Release(f.ctx, &types.QueryReleaseRequest{Mint: "not-base58!"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = f.querySrv.SaleStatus(f.ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestQueryReleasesPagination(t *testing.T) {
	f := newReleaseFixture(t)
	for i := 0; i < 5; i++ {
		f.initRelease(t, 1, 1)
	}

	all, err := f.querySrv.Releases(f.ctx, &types.QueryReleasesRequest{})
	require.NoError(t, err)
	require.Len(t, all.Releases, 5)
	require.Equal(t, uint64(5), all.Total)

	page1, err := f.querySrv.Releases(f.ctx, &types.QueryReleasesRequest{Page: 1, Limit: 2})
	require.NoError(t, err)
	page3, err := f.querySrv.Releases(f.ctx, &types.QueryReleasesRequest{Page: 3, Limit: 2})
	require.NoError(t, err)
	require.Equal(t, all.Releases[:2], page1.Releases)
	require.Equal(t, all.Releases[4:], page3.Releases)
	require.Equal(t, uint64(5), page3.Total)

	empty, err := f.querySrv.Releases(f.ctx, &types.QueryReleasesRequest{Page: 4, Limit: 2})
	require.NoError(t, err)
	require.Empty(t, empty.Releases)
}

func TestQueryReleasesPageBounds(t *testing.T) {
	f := newReleaseFixture(t)
	for i := 0; i < 3; i++ {
		f.initRelease(t, 1, 1)
	}

	capped, err := f.querySrv.Releases(f.ctx, &types.QueryReleasesRequest{Page: 1, Limit: math.MaxUint64})
	require.NoError(t, err)
	require.Len(t, capped.Releases, 3)

	for _, req := range []*types.QueryReleasesRequest{
		{Page: 3, Limit: 1 << 63},
		{Page: 1<<63 + 1, Limit: 2},
		{Page: math.MaxUint64, Limit: 100},
	} {
		resp, err := f.querySrv.Releases(f.ctx, req)
		require.NoError(t, err)
		require.Empty(t, resp.Releases, "page %d limit %d", req.Page, req.Limit)
		require.Equal(t, uint64(3), resp.Total)
	}
}

func TestQueryParams(t *testing.T) {
	f := newReleaseFixture(t)
	resp, err := f.querySrv.Params(f.ctx, &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), resp.Params)
}
