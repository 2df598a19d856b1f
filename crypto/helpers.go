// Package crypto wraps ed25519 signing behind small interfaces and provides
// the identity recovery primitive the engine verifies signature sets with.
package crypto

import (
	governance "github.com/blackbird014/contract-ownership-governance"
)

// ExtensionName is used for the Conditions we derive from public keys
const ExtensionName = "sigs"

// PubKey represents a crypto public key we use
type PubKey interface {
	Verify(message []byte, sig *Signature) bool
	Condition() governance.Condition
}

// Signer is the functionality we use from a private key.
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}
