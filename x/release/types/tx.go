package types

import "context"

// MsgServer handles the release module's messages.
type MsgServer interface {
	InitRelease(context.Context, *MsgInitRelease) (*MsgInitReleaseResponse, error)
	Purchase(context.Context, *MsgPurchase) (*MsgPurchaseResponse, error)
	UpdateRelease(context.Context, *MsgUpdateRelease) (*MsgUpdateReleaseResponse, error)
	UpdateMetadata(context.Context, *MsgUpdateMetadata) (*MsgUpdateMetadataResponse, error)
	CloseRelease(context.Context, *MsgCloseRelease) (*MsgCloseReleaseResponse, error)
	InitAndPurchase(context.Context, *MsgInitAndPurchase) (*MsgInitAndPurchaseResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

type MsgInitReleaseResponse struct {
	Release       string `json:"release"`
	ReleaseSigner string `json:"release_signer"`
	Denom         string `json:"denom"`
}

type MsgPurchaseResponse struct {
	Supply        uint64 `json:"supply"`
	RewardDeposit uint64 `json:"reward_deposit,omitempty"`
}

type MsgUpdateReleaseResponse struct{}

type MsgUpdateMetadataResponse struct{}

type MsgCloseReleaseResponse struct {
	TotalSupply uint64 `json:"total_supply"`
}

type MsgInitAndPurchaseResponse struct {
	Init     MsgInitReleaseResponse `json:"init"`
	Purchase MsgPurchaseResponse    `json:"purchase"`
}

type MsgUpdateParamsResponse struct{}
