package types

import (
	"strings"
	"unicode/utf8"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

func (msg *MsgInitRelease) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Payer); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid payer address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid authority address (%s)", err)
	}
	if msg.RoyaltyAccount != "" {
		if _, err := sdk.AccAddressFromBech32(msg.RoyaltyAccount); err != nil {
			return sdkerrors.ErrInvalidAddress.Wrapf("invalid royalty account (%s)", err)
		}
	}
	if _, err := ParseMint(msg.Mint); err != nil {
		return sdkerrors.ErrInvalidRequest.Wrap(err.Error())
	}
	if err := sdk.ValidateDenom(msg.PaymentDenom); err != nil {
		return sdkerrors.ErrInvalidRequest.Wrapf("payment_denom: %s", err)
	}
	if msg.TotalSupply == 0 {
		return sdkerrors.ErrInvalidRequest.Wrap("total_supply must be > 0")
	}
	return validateMetadata(msg.Name, msg.Symbol, msg.URI)
}

func (msg *MsgPurchase) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Payer); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid payer address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Receiver); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid receiver address (%s)", err)
	}
	if _, err := ParseMint(msg.Mint); err != nil {
		return sdkerrors.ErrInvalidRequest.Wrap(err.Error())
	}
	if d := msg.RewardDeposit; d != nil && len(d.AccountIDs) != len(d.Accounts) {
		return sdkerrors.ErrInvalidRequest.Wrapf("reward deposit: %d account ids for %d accounts", len(d.AccountIDs), len(d.Accounts))
	}
	return nil
}

func (msg *MsgUpdateRelease) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Payer); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid payer address (%s)", err)
	}
	if _, err := ParseMint(msg.Mint); err != nil {
		return sdkerrors.ErrInvalidRequest.Wrap(err.Error())
	}
	return validateMetadata(msg.Name, msg.Symbol, msg.URI)
}

func (msg *MsgUpdateMetadata) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Payer); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid payer address (%s)", err)
	}
	if _, err := ParseMint(msg.Mint); err != nil {
		return sdkerrors.ErrInvalidRequest.Wrap(err.Error())
	}
	return ValidateMetadataURI(msg.URI)
}

func (msg *MsgCloseRelease) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Payer); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid payer address (%s)", err)
	}
	if _, err := ParseMint(msg.Mint); err != nil {
		return sdkerrors.ErrInvalidRequest.Wrap(err.Error())
	}
	return nil
}

func (msg *MsgInitAndPurchase) ValidateBasic() error {
	if err := msg.InitMsg().ValidateBasic(); err != nil {
		return err
	}
	return msg.PurchaseMsg().ValidateBasic()
}

func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid authority address (%s)", err)
	}
	return msg.Params.Validate()
}

func validateMetadata(name, symbol, uri string) error {
	if err := validateDisplayString("name", name, ReleaseNameMaxLen); err != nil {
		return err
	}
	if err := validateDisplayString("symbol", symbol, ReleaseSymbolMaxLen); err != nil {
		return err
	}
	return ValidateMetadataURI(uri)
}

func validateDisplayString(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return sdkerrors.ErrInvalidRequest.Wrapf("%s required", field)
	}
	if !utf8.ValidString(value) {
		return sdkerrors.ErrInvalidRequest.Wrapf("%s must be valid utf-8", field)
	}
	if n := utf8.RuneCountInString(value); n > maxLen {
		return sdkerrors.ErrInvalidRequest.Wrapf("%s too long: %d > %d", field, n, maxLen)
	}
	return nil
}
