package types

import "context"

const (
	SaleStateActive  = "active"
	SaleStateSoldOut = "sold_out"
)

// QueryServer answers read-only release queries.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Release(context.Context, *QueryReleaseRequest) (*QueryReleaseResponse, error)
	Releases(context.Context, *QueryReleasesRequest) (*QueryReleasesResponse, error)
	SaleStatus(context.Context, *QuerySaleStatusRequest) (*QuerySaleStatusResponse, error)
	ReleaseAddresses(context.Context, *QueryReleaseAddressesRequest) (*QueryReleaseAddressesResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryReleaseRequest struct {
	Mint string `json:"mint"`
}

type QueryReleaseResponse struct {
	Release Release `json:"release"`
	Address string  `json:"address"`
}

type QueryReleasesRequest struct {
	Page  uint64 `json:"page"`
	Limit uint64 `json:"limit"`
}

type QueryReleasesResponse struct {
	Releases []Release `json:"releases"`
	Total    uint64    `json:"total"`
}

type QuerySaleStatusRequest struct {
	Mint string `json:"mint"`
}

type QuerySaleStatusResponse struct {
	Supply      uint64 `json:"supply"`
	TotalSupply uint64 `json:"total_supply"`
	Remaining   uint64 `json:"remaining"`
	Price       uint64 `json:"price"`
	State       string `json:"state"`
}

type QueryReleaseAddressesRequest struct {
	Mint string `json:"mint"`
}

type QueryReleaseAddressesResponse struct {
	Release       string `json:"release"`
	ReleaseBump   uint32 `json:"release_bump"`
	ReleaseSigner string `json:"release_signer"`
	SignerBump    uint32 `json:"signer_bump"`
	Denom         string `json:"denom"`
}
