package contracts

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PubKey is a raw uncompressed secp256k1 public key: 32 bytes of X followed
// by 32 bytes of Y, without the 0x04 SEC prefix.
type PubKey [64]byte

// CompressedPubKey is the canonical compressed encoding used by the
// settlement hashing engine: a parity byte derived from the first byte of Y
// (offset into the 0x02/0x03 SEC range) and the X coordinate with its byte
// order reversed.
type CompressedPubKey struct {
	Parity byte
	Coord  [32]byte
}

// Compress derives the canonical compressed form of pk. Pure and total; the
// result is a function of the key bytes only.
func Compress(pk PubKey) CompressedPubKey {
	var c CompressedPubKey
	c.Parity = pk[32]%2 + 2
	for i := 0; i < 32; i++ {
		c.Coord[i] = pk[31-i]
	}
	return c
}

// ParsePubKey accepts a 64-byte raw X||Y key, a 65-byte 0x04-prefixed
// uncompressed key, or a 33-byte compressed key and returns the raw 64-byte
// form. 33- and 65-byte inputs are validated as curve points.
func ParsePubKey(b []byte) (PubKey, error) {
	var pk PubKey
	switch len(b) {
	case 64:
		copy(pk[:], b)
		return pk, nil
	case 65, 33:
		p, err := secp256k1.ParsePubKey(b)
		if err != nil {
			return PubKey{}, fmt.Errorf("invalid public key: %w", err)
		}
		u := p.SerializeUncompressed()
		copy(pk[:], u[1:])
		return pk, nil
	default:
		return PubKey{}, fmt.Errorf("pubkey must be 33, 64 or 65 bytes, got %d", len(b))
	}
}

// PubKeyFromHex parses a hex-encoded public key in any of the forms
// ParsePubKey accepts.
//
// Examples it will accept:
//   - "02ab...cd"      (33B compressed)
//   - "04ab...cd"      (65B uncompressed)
//   - 128 hex chars    (64B raw X||Y)
func PubKeyFromHex(s string) (PubKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PubKey{}, fmt.Errorf("empty pubkey")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return PubKey{}, fmt.Errorf("decode pubkey hex: %w", err)
	}
	return ParsePubKey(b)
}
