package types

import (
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"editions/internal/borshcodec"
)

// Release is the persistent record of a capped-edition sale.
//
// Mint, PaymentDenom, ReleaseSigner and Authority never change after init.
// Price and TotalSupply are rewritten by the authority; the number of units
// already issued lives with the token, not here.
type Release struct {
	Authority      sdk.AccAddress   `json:"authority"`
	ReleaseSigner  solana.PublicKey `json:"release_signer"`
	Mint           solana.PublicKey `json:"mint"`
	RoyaltyAccount sdk.AccAddress   `json:"royalty_account"`
	PaymentDenom   string           `json:"payment_denom"`
	TotalSupply    uint64           `json:"total_supply"`
	Price          uint64           `json:"price"`
}

// ReleaseValueCodec stores releases as a discriminated borsh row.
var ReleaseValueCodec = borshcodec.New[Release]("Release")

var _ collcodec.ValueCodec[Release] = ReleaseValueCodec

func (r Release) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := enc.WriteBytes(r.Authority, true); err != nil {
		return err
	}
	if err := enc.WriteBytes(r.ReleaseSigner.Bytes(), false); err != nil {
		return err
	}
	if err := enc.WriteBytes(r.Mint.Bytes(), false); err != nil {
		return err
	}
	if err := enc.WriteBytes(r.RoyaltyAccount, true); err != nil {
		return err
	}
	if err := enc.WriteString(r.PaymentDenom); err != nil {
		return err
	}
	if err := enc.WriteUint64(r.TotalSupply, bin.LE); err != nil {
		return err
	}
	return enc.WriteUint64(r.Price, bin.LE)
}

func (r *Release) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	if r.Authority, err = readAddress(dec); err != nil {
		return fmt.Errorf("authority: %w", err)
	}
	if r.ReleaseSigner, err = readKey(dec); err != nil {
		return fmt.Errorf("release_signer: %w", err)
	}
	if r.Mint, err = readKey(dec); err != nil {
		return fmt.Errorf("mint: %w", err)
	}
	if r.RoyaltyAccount, err = readAddress(dec); err != nil {
		return fmt.Errorf("royalty_account: %w", err)
	}
	if r.PaymentDenom, err = dec.ReadString(); err != nil {
		return fmt.Errorf("payment_denom: %w", err)
	}
	if r.TotalSupply, err = dec.ReadUint64(bin.LE); err != nil {
		return fmt.Errorf("total_supply: %w", err)
	}
	if r.Price, err = dec.ReadUint64(bin.LE); err != nil {
		return fmt.Errorf("price: %w", err)
	}
	return nil
}

func readAddress(dec *bin.Decoder) (sdk.AccAddress, error) {
	bz, err := dec.ReadByteSlice()
	if err != nil {
		return nil, err
	}
	return sdk.AccAddress(append([]byte(nil), bz...)), nil
}

func readKey(dec *bin.Decoder) (solana.PublicKey, error) {
	bz, err := dec.ReadNBytes(solana.PublicKeyLength)
	if err != nil {
		return solana.PublicKey{}, err
	}
	return solana.PublicKeyFromBytes(bz), nil
}

// ReleaseAddress returns the record address for the release's mint.
func (r Release) ReleaseAddress() (solana.PublicKey, error) {
	addr, _, err := FindReleaseAddress(r.Mint)
	return addr, err
}

// MintAccount is the bank account that holds the mint's storage deposit.
func (r Release) MintAccount() sdk.AccAddress {
	return sdk.AccAddress(r.Mint.Bytes())
}

// Validate checks the stateless shape of a stored release.
func (r Release) Validate() error {
	if err := sdk.VerifyAddressFormat(r.Authority); err != nil {
		return fmt.Errorf("authority: %w", err)
	}
	if err := sdk.VerifyAddressFormat(r.RoyaltyAccount); err != nil {
		return fmt.Errorf("royalty_account: %w", err)
	}
	if r.Mint.IsZero() {
		return fmt.Errorf("mint required")
	}
	if r.ReleaseSigner.IsZero() {
		return fmt.Errorf("release_signer required")
	}
	if err := sdk.ValidateDenom(r.PaymentDenom); err != nil {
		return fmt.Errorf("payment_denom: %w", err)
	}
	return nil
}
