package types

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/types/address"
	"github.com/gagliardetto/solana-go"
)

// ProgramID is the program identity every release address and release signer
// is derived under.
var ProgramID = solana.PublicKeyFromBytes(address.Hash("module", []byte(ModuleName)))

// ReleaseSigner is the program-derived identity that holds mint and metadata
// authority over a release token. It has no private key; the module signs on
// its behalf after re-deriving it from Release and Bump.
type ReleaseSigner struct {
	Release solana.PublicKey
	Address solana.PublicKey
	Bump    uint8
}

// FindReleaseAddress returns the address a release record for mint is stored
// under, together with its canonical bump.
func FindReleaseAddress(mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	addr, bump, err := solana.FindProgramAddress([][]byte{SeedRelease, mint.Bytes()}, ProgramID)
	if err != nil {
		return solana.PublicKey{}, 0, errorsmod.Wrapf(ErrInvalidRequest, "derive release address: %s", err)
	}
	return addr, bump, nil
}

// DeriveReleaseSigner derives the signer for release with the given bump.
// Bumps whose derivation lands on the ed25519 curve are rejected.
func DeriveReleaseSigner(release solana.PublicKey, bump uint8) (ReleaseSigner, error) {
	addr, err := solana.CreateProgramAddress([][]byte{release.Bytes(), {bump}}, ProgramID)
	if err != nil {
		return ReleaseSigner{}, errorsmod.Wrapf(ErrReleaseSignerMismatch, "bump %d: %s", bump, err)
	}
	return ReleaseSigner{Release: release, Address: addr, Bump: bump}, nil
}

// FindReleaseSigner returns the canonical signer of release, i.e. the one
// derived with the highest valid bump.
func FindReleaseSigner(release solana.PublicKey) (ReleaseSigner, error) {
	addr, bump, err := solana.FindProgramAddress([][]byte{release.Bytes()}, ProgramID)
	if err != nil {
		return ReleaseSigner{}, errorsmod.Wrapf(ErrReleaseSignerMismatch, "derive release signer: %s", err)
	}
	return ReleaseSigner{Release: release, Address: addr, Bump: bump}, nil
}

// VerifyReleaseSigner re-derives the signer from bump and checks it equals
// claimed.
func VerifyReleaseSigner(release solana.PublicKey, bump uint8, claimed solana.PublicKey) (ReleaseSigner, error) {
	signer, err := DeriveReleaseSigner(release, bump)
	if err != nil {
		return ReleaseSigner{}, err
	}
	if !signer.Address.Equals(claimed) {
		return ReleaseSigner{}, errorsmod.Wrapf(ErrReleaseSignerMismatch, "bump %d derives %s, want %s", bump, signer.Address, claimed)
	}
	return signer, nil
}

// ParseMint decodes a base58 mint identity.
func ParseMint(s string) (solana.PublicKey, error) {
	pk, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return solana.PublicKey{}, errorsmod.Wrapf(ErrInvalidRequest, "invalid mint %q: %s", s, err)
	}
	if pk.IsZero() {
		return solana.PublicKey{}, errorsmod.Wrap(ErrInvalidRequest, "mint must not be zero")
	}
	return pk, nil
}
