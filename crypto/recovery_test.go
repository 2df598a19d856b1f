package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackbird014/contract-ownership-governance/errors"
)

func TestRecoverSignature(t *testing.T) {
	priv := GenPrivKeyEd25519()
	digest := []byte("a digest computed elsewhere")

	sig, err := Sign(priv, digest)
	require.NoError(t, err)

	// signing must be deterministic
	sig2, err := Sign(priv, digest)
	require.NoError(t, err)
	assert.Equal(t, sig, sig2)

	var rec Recovery

	signer, err := rec.Recover(digest, sig)
	require.NoError(t, err)
	assert.Equal(t, priv.PublicKey().Condition().Address(), signer)

	// a signature over one digest never recovers under another
	_, err = rec.Recover([]byte("another digest"), sig)
	require.Error(t, err)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	// corrupting the signature must not reveal the signer either
	copy(sig.Signature.Ed25519, []byte{42, 17, 99})
	_, err = rec.Recover(digest, sig)
	require.Error(t, err)
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestRecoverRejectsMalformedEntry(t *testing.T) {
	var rec Recovery

	cases := map[string]struct {
		sig     *StdSignature
		wantErr *errors.Error
	}{
		"missing public key": {
			sig: &StdSignature{
				Signature: &Signature{Ed25519: make([]byte, 64)},
			},
			wantErr: errors.ErrEmpty,
		},
		"missing signature": {
			sig: &StdSignature{
				Pubkey: &PublicKey{Ed25519: make([]byte, 32)},
			},
			wantErr: errors.ErrEmpty,
		},
		"truncated public key": {
			sig: &StdSignature{
				Pubkey:    &PublicKey{Ed25519: make([]byte, 16)},
				Signature: &Signature{Ed25519: make([]byte, 64)},
			},
			wantErr: errors.ErrInvalidInput,
		},
		"truncated signature": {
			sig: &StdSignature{
				Pubkey:    &PublicKey{Ed25519: make([]byte, 32)},
				Signature: &Signature{Ed25519: make([]byte, 7)},
			},
			wantErr: errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := rec.Recover([]byte("digest"), tc.sig)
			require.Error(t, err)
			assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
		})
	}
}

func TestStdSignatureCondition(t *testing.T) {
	var empty StdSignature
	assert.Nil(t, empty.Condition())

	priv := GenPrivKeyEd25519()
	sig, err := Sign(priv, []byte("digest"))
	require.NoError(t, err)
	assert.Equal(t, priv.PublicKey().Condition(), sig.Condition())
}
