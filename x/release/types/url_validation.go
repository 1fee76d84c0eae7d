package types

import (
	"net/url"
	"strings"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const arweaveTxIDLen = 43

// ValidateMetadataURI enforces the allowed URI schemes for release metadata.
func ValidateMetadataURI(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return sdkerrors.ErrInvalidRequest.Wrap("uri required")
	}
	if len(raw) > ReleaseURIMaxLen {
		return sdkerrors.ErrInvalidRequest.Wrapf("uri too long: %d > %d", len(raw), ReleaseURIMaxLen)
	}

	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "ipfs://"):
		return validateIPFSCID(strings.TrimSpace(raw[len("ipfs://"):]))
	case strings.HasPrefix(lower, "ar://"):
		return validateArweaveID(strings.TrimSpace(raw[len("ar://"):]))
	default:
		return validateHTTPURL(raw)
	}
}

func validateHTTPURL(u string) error {
	parsed, err := url.Parse(u)
	if err != nil {
		return sdkerrors.ErrInvalidRequest.Wrap("uri parse error")
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
	default:
		return sdkerrors.ErrInvalidRequest.Wrap("uri scheme must be http/https/ipfs/ar")
	}
	if parsed.Host == "" {
		return sdkerrors.ErrInvalidRequest.Wrap("uri host required")
	}
	return nil
}

func validateIPFSCID(cid string) error {
	if cid == "" {
		return sdkerrors.ErrInvalidRequest.Wrap("ipfs cid required")
	}
	if len(cid) > 128 {
		return sdkerrors.ErrInvalidRequest.Wrap("ipfs cid too long")
	}
	for _, r := range cid {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			continue
		}
		return sdkerrors.ErrInvalidRequest.Wrapf("ipfs cid contains invalid character %q", r)
	}
	return nil
}

// Arweave transaction ids are 32 bytes in unpadded base64url.
func validateArweaveID(id string) error {
	if len(id) != arweaveTxIDLen {
		return sdkerrors.ErrInvalidRequest.Wrapf("arweave id must be %d characters", arweaveTxIDLen)
	}
	for _, r := range id {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			continue
		}
		return sdkerrors.ErrInvalidRequest.Wrapf("arweave id contains invalid character %q", r)
	}
	return nil
}
