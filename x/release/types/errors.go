package types

import (
	"cosmossdk.io/errors"
)

var (
	ErrInvalidSigner = errors.Register(ModuleName, 1100, "expected gov account as only signer for proposal message")

	// ErrWrongReceiver is reserved for receiver checks on purchase.
	ErrWrongReceiver          = errors.Register(ModuleName, 1101, "release purchase wrong receiver")
	ErrWrongAmount            = errors.Register(ModuleName, 1102, "release purchase wrong amount")
	ErrSoldOut                = errors.Register(ModuleName, 1103, "release purchase sold out")
	ErrArithmetic             = errors.Register(ModuleName, 1104, "arithmetic error")
	ErrDelegatedPayerMismatch = errors.Register(ModuleName, 1105, "delegated payer mismatch")

	ErrReleaseExists         = errors.Register(ModuleName, 1106, "release already exists")
	ErrReleaseNotFound       = errors.Register(ModuleName, 1107, "release not found")
	ErrReleaseSignerMismatch = errors.Register(ModuleName, 1108, "release signer mismatch")
	ErrInvalidRequest        = errors.Register(ModuleName, 1109, "invalid request")
	ErrMissingSignature      = errors.Register(ModuleName, 1110, "missing required signature")
)
