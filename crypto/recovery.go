package crypto

import (
	governance "github.com/blackbird014/contract-ownership-governance"
	"github.com/blackbird014/contract-ownership-governance/errors"
)

// StdSignature is a single entry of a submitted signature set: the public
// key that allegedly signed and the signature itself. The signed digest is
// not part of the entry, the verifier provides it.
type StdSignature struct {
	Pubkey    *PublicKey `json:"pubkey"`
	Signature *Signature `json:"signature"`
}

// Validate ensures the StdSignature meets basic standards
func (s *StdSignature) Validate() error {
	if s.Pubkey == nil {
		return errors.ErrEmpty.New("public key")
	}
	if s.Signature == nil {
		return errors.ErrEmpty.New("signature")
	}
	if err := s.Pubkey.Validate(); err != nil {
		return errors.Wrap(err, "pubkey")
	}
	if err := s.Signature.Validate(); err != nil {
		return errors.Wrap(err, "signature")
	}
	return nil
}

// Condition returns the condition of the carried public key.
func (s *StdSignature) Condition() governance.Condition {
	if s.Pubkey == nil {
		return nil
	}
	return s.Pubkey.Condition()
}

// Recovery turns signature set entries back into signer identities. It
// verifies one entry against the digest it allegedly signs and reveals the
// address of the key that produced it. A failed verification never reveals
// an identity.
type Recovery struct{}

// Recover checks one signature against the digest and returns the address
// of the signer.
func (Recovery) Recover(digest []byte, sig *StdSignature) (governance.Address, error) {
	if sig == nil {
		return nil, errors.ErrEmpty.New("signature")
	}
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	if !sig.Pubkey.Verify(digest, sig.Signature) {
		return nil, errors.ErrUnauthorized.New("invalid signature")
	}
	return sig.Pubkey.Condition().Address(), nil
}

// Sign creates a signature set entry for the given digest.
func Sign(signer Signer, digest []byte) (*StdSignature, error) {
	sig, err := signer.Sign(digest)
	if err != nil {
		return nil, err
	}
	return &StdSignature{
		Pubkey:    signer.PublicKey(),
		Signature: sig,
	}, nil
}
