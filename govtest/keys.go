// Package govtest provides test doubles and fixtures for code built around
// the authorization engine.
package govtest

import (
	governance "github.com/blackbird014/contract-ownership-governance"
	"github.com/blackbird014/contract-ownership-governance/crypto"
)

// NewKey returns a fresh random signer.
func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the condition of a fresh random key.
func NewCondition() governance.Condition {
	return NewKey().PublicKey().Condition()
}
