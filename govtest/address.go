package govtest

import (
	"testing"

	governance "github.com/blackbird014/contract-ownership-governance"
)

// ParseAddress takes an address in a human readable format and returns its
// binary representation. This function is a test helper that is using the
// governance.ParseAddress function functionality.
func ParseAddress(t testing.TB, encodedAddress string) governance.Address {
	t.Helper()

	addr, err := governance.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
