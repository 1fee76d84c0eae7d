package keeper

import (
	"context"
	"math"
	"math/bits"

	errorsmod "cosmossdk.io/errors"
	"github.com/gagliardetto/solana-go"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"editions/x/release/types"
)

var _ types.QueryServer = queryServer{}

const maxReleasesPageLimit = 100

func NewQueryServerImpl(k Keeper) types.QueryServer { return queryServer{k} }

type queryServer struct{ k Keeper }

func (q queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	return &types.QueryParamsResponse{Params: q.k.GetParams(ctx)}, nil
}

func (q queryServer) release(ctx context.Context, mintStr string) (types.Release, solana.PublicKey, error) {
	mint, err := types.ParseMint(mintStr)
	if err != nil {
		return types.Release{}, solana.PublicKey{}, status.Error(codes.InvalidArgument, err.Error())
	}
	r, addr, err := q.k.GetRelease(ctx, mint)
	if err != nil {
		if errorsmod.IsOf(err, types.ErrReleaseNotFound) {
			return types.Release{}, addr, status.Error(codes.NotFound, "not found")
		}
		return types.Release{}, addr, status.Error(codes.Internal, "internal error")
	}
	return r, addr, nil
}

func (q queryServer) Release(ctx context.Context, req *types.QueryReleaseRequest) (*types.QueryReleaseResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	r, addr, err := q.release(ctx, req.Mint)
	if err != nil {
		return nil, err
	}
	return &types.QueryReleaseResponse{Release: r, Address: addr.String()}, nil
}

func (q queryServer) Releases(ctx context.Context, req *types.QueryReleasesRequest) (*types.QueryReleasesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	page := req.Page
	limit := req.Limit
	if limit == 0 {
		limit = 50
	}
	limit = min(limit, maxReleasesPageLimit)
	if page == 0 {
		page = 1
	}
	hi, start := bits.Mul64(page-1, limit)
	if hi != 0 {
		start = math.MaxUint64
	}

	iter, err := q.k.Releases.Iterate(ctx, nil)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	defer iter.Close()

	// only rows on the requested page are decoded; the rest are counted
	total := uint64(0)
	items := make([]types.Release, 0, limit)
	for ; iter.Valid(); iter.Next() {
		if total >= start && uint64(len(items)) < limit {
			v, err := iter.Value()
			if err != nil {
				return nil, status.Error(codes.Internal, "internal error")
			}
			items = append(items, v)
		}
		total++
	}
	return &types.QueryReleasesResponse{Releases: items, Total: total}, nil
}

func (q queryServer) SaleStatus(ctx context.Context, req *types.QuerySaleStatusRequest) (*types.QuerySaleStatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	r, _, err := q.release(ctx, req.Mint)
	if err != nil {
		return nil, err
	}
	supply, err := q.k.LiveSupply(ctx, r)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	resp := &types.QuerySaleStatusResponse{
		Supply:      supply,
		TotalSupply: r.TotalSupply,
		Price:       r.Price,
		State:       types.SaleStateSoldOut,
	}
	if supply < r.TotalSupply {
		resp.Remaining = r.TotalSupply - supply
		resp.State = types.SaleStateActive
	}
	return resp, nil
}

func (q queryServer) ReleaseAddresses(_ context.Context, req *types.QueryReleaseAddressesRequest) (*types.QueryReleaseAddressesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	mint, err := types.ParseMint(req.Mint)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	addr, bump, err := types.FindReleaseAddress(mint)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	signer, err := types.FindReleaseSigner(addr)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryReleaseAddressesResponse{
		Release:       addr.String(),
		ReleaseBump:   uint32(bump),
		ReleaseSigner: signer.Address.String(),
		SignerBump:    uint32(signer.Bump),
		Denom:         q.k.token.Denom(mint),
	}, nil
}
