package gov

import (
	"bytes"
	"sort"

	governance "github.com/blackbird014/contract-ownership-governance"
	"github.com/blackbird014/contract-ownership-governance/crypto"
	"github.com/blackbird014/contract-ownership-governance/errors"
)

// Tx is one authorized call submitted to the engine: an opaque payload for
// a destination action, the nonce that makes the call unique and the
// signature set that authorizes it.
//
// Signatures must be ordered by ascending signer address. Collecting
// happens off-line and is not the engine's concern, SortSignatures brings a
// collected set into submission order.
type Tx struct {
	Nonce       int64                  `json:"nonce"`
	Destination string                 `json:"destination"`
	Payload     []byte                 `json:"payload"`
	Value       uint64                 `json:"value"`
	Signatures  []*crypto.StdSignature `json:"signatures"`
}

// Validate performs the stateless well formedness checks. Whether the
// signature set authorizes the call is decided by the engine alone.
func (tx *Tx) Validate() error {
	if tx.Nonce < 0 {
		return errors.Wrap(ErrInvalidNonce, "negative")
	}
	if tx.Destination == "" {
		return errors.ErrEmpty.New("destination")
	}
	for i, sig := range tx.Signatures {
		if sig == nil {
			return errors.ErrEmpty.Newf("signature %d", i)
		}
		if err := sig.Validate(); err != nil {
			return errors.Wrapf(err, "signature %d", i)
		}
	}
	return nil
}

// SignTx creates a signature set entry for the given transaction. The
// digest is bound to the engine instance the transaction is meant for.
func SignTx(signer crypto.Signer, tx *Tx, engine governance.Address) (*crypto.StdSignature, error) {
	digest, err := BuildDigest(engine, tx.Nonce, tx.Destination, tx.Payload)
	if err != nil {
		return nil, err
	}
	return crypto.Sign(signer, digest)
}

// SortSignatures orders a signature set by ascending signer address, the
// order the engine requires on submission. Entries without a public key
// sort first, they never pass verification anyway.
func SortSignatures(sigs []*crypto.StdSignature) {
	sort.Slice(sigs, func(i, j int) bool {
		return bytes.Compare(signerAddress(sigs[i]), signerAddress(sigs[j])) < 0
	})
}

func signerAddress(sig *crypto.StdSignature) governance.Address {
	if sig == nil {
		return nil
	}
	cond := sig.Condition()
	if cond == nil {
		return nil
	}
	return cond.Address()
}
