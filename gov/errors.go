package gov

import (
	"github.com/blackbird014/contract-ownership-governance/errors"
)

// Error codes
// gov reserves 1000 ~ 1009.

var (
	ErrInvalidNonce          = errors.Register(1000, "invalid nonce")
	ErrMalformedSignature    = errors.Register(1001, "malformed signature")
	ErrUnsortedSigners       = errors.Register(1002, "signers not in strict ascending order")
	ErrUnauthorizedSigner    = errors.Register(1003, "signer holds no power")
	ErrQuorumNotMet          = errors.Register(1004, "not enough signing power")
	ErrActionReverted        = errors.Register(1005, "action reverted")
	ErrUnauthorizedAmendment = errors.Register(1006, "amendment not authorized by the engine")
	ErrAlreadyGovernor       = errors.Register(1007, "governor already holds power")
)
