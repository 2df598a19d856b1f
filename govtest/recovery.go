package govtest

import (
	governance "github.com/blackbird014/contract-ownership-governance"
	"github.com/blackbird014/contract-ownership-governance/crypto"
)

// RecovererFunc adapts a plain function to the recoverer interface the
// engine verifies signature set entries with.
type RecovererFunc func(digest []byte, sig *crypto.StdSignature) (governance.Address, error)

func (f RecovererFunc) Recover(digest []byte, sig *crypto.StdSignature) (governance.Address, error) {
	return f(digest, sig)
}
