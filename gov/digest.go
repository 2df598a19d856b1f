package gov

import (
	"crypto/sha512"
	"encoding/binary"

	governance "github.com/blackbird014/contract-ownership-governance"
	"github.com/blackbird014/contract-ownership-governance/errors"
)

// DigestCodeV1 is the current way to prefix the bytes we hash into
// the signed digest
var DigestCodeV1 = []byte{0, 0xCA, 0xFE, 1}

/*
BuildDigest combines everything one signature authorizes into a digest.

We use the following format:

version | len(engine) | engine address | nonce             | len(dest) | destination  | payload
4bytes  | uint8       | raw bytes      | int64 (bigendian) | uint8     | ascii string | raw bytes

This is then hashed with sha512 before being fed into the public key
signing/verification step. Binding the engine address makes a signature
worthless on every other engine instance, binding the nonce makes it
worthless after its one authorized call.
*/
func BuildDigest(engine governance.Address, nonce int64, destination string, payload []byte) ([]byte, error) {
	if nonce < 0 {
		return nil, errors.Wrap(ErrInvalidNonce, "negative")
	}
	if err := engine.Validate(); err != nil {
		return nil, errors.Wrap(err, "engine")
	}
	if len(destination) > 255 {
		return nil, errors.ErrInvalidInput.Newf("destination length: %d", len(destination))
	}

	// encode nonce as 8 byte, big-endian
	seq := make([]byte, 8)
	binary.BigEndian.PutUint64(seq, uint64(nonce))

	// concatenate everything
	output := make([]byte, 0, 4+1+len(engine)+8+1+len(destination)+len(payload))
	output = append(output, DigestCodeV1...)
	output = append(output, uint8(len(engine)))
	output = append(output, engine...)
	output = append(output, seq...)
	output = append(output, uint8(len(destination)))
	output = append(output, []byte(destination)...)
	output = append(output, payload...)

	// now, we take the sha512 hash of the result, so we have a constant
	// length output to feed into eddsa
	hashed := sha512.Sum512(output)
	return hashed[:], nil
}
