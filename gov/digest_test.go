package gov

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	governance "github.com/blackbird014/contract-ownership-governance"
	"github.com/blackbird014/contract-ownership-governance/errors"
)

func TestBuildDigestGolden(t *testing.T) {
	// Golden values. Keep them stable: a digest change invalidates every
	// signature that was collected off-line.
	engine := EngineCondition("wonderland-1").Address()
	assert.Equal(t, "F027A33D6D4F28A6616BD7DED661AE4E36398388", engine.String())

	digest, err := BuildDigest(engine, 7, "token/transfer", []byte("a very important payload"))
	require.NoError(t, err)
	assert.Equal(t,
		"4200c20950b8b4f6efd4f5febf56e9b789e6f155b7fc83f1127f9da581570f5188f5f67a8d460aaa4aaf58da7c1d84b08c604aa797fd15c602d1ce1599e41787",
		hex.EncodeToString(digest))
}

func TestBuildDigestBindsEveryField(t *testing.T) {
	engine := EngineCondition("wonderland-1").Address()
	other := EngineCondition("wonderland-2").Address()

	base, err := BuildDigest(engine, 3, "token/transfer", []byte("payload"))
	require.NoError(t, err)

	// deterministic
	same, err := BuildDigest(engine, 3, "token/transfer", []byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, base, same)

	cases := map[string]struct {
		engine  governance.Address
		nonce   int64
		dest    string
		payload []byte
	}{
		"engine changes the digest":      {other, 3, "token/transfer", []byte("payload")},
		"nonce changes the digest":       {engine, 4, "token/transfer", []byte("payload")},
		"destination changes the digest": {engine, 3, "token/burn", []byte("payload")},
		"payload changes the digest":     {engine, 3, "token/transfer", []byte("payloae")},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			d, err := BuildDigest(tc.engine, tc.nonce, tc.dest, tc.payload)
			require.NoError(t, err)
			assert.NotEqual(t, base, d)
			assert.Len(t, d, 64)
		})
	}

	// the length prefixes keep boundaries unambiguous
	shifted, err := BuildDigest(engine, 3, "token/transferp", []byte("ayload"))
	require.NoError(t, err)
	assert.NotEqual(t, base, shifted)
}

func TestBuildDigestRejectsBadInput(t *testing.T) {
	engine := EngineCondition("wonderland-1").Address()

	cases := map[string]struct {
		engine  governance.Address
		nonce   int64
		dest    string
		wantErr *errors.Error
	}{
		"negative nonce": {
			engine:  engine,
			nonce:   -1,
			dest:    "token/transfer",
			wantErr: ErrInvalidNonce,
		},
		"engine address of the wrong size": {
			engine:  governance.Address("too-short"),
			nonce:   0,
			dest:    "token/transfer",
			wantErr: errors.ErrInvalidInput,
		},
		"missing engine address": {
			engine:  nil,
			nonce:   0,
			dest:    "token/transfer",
			wantErr: errors.ErrInvalidInput,
		},
		"destination too long": {
			engine:  engine,
			nonce:   0,
			dest:    string(make([]byte, 256)),
			wantErr: errors.ErrInvalidInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if _, err := BuildDigest(tc.engine, tc.nonce, tc.dest, nil); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
