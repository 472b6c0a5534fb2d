// Package hash turns input strings into the fixed-size digests identicons are built from.
package hash

import (
	"crypto/md5"
	"encoding/hex"
)

// DigestSize is the length of a Digest in bytes.
const DigestSize = md5.Size

// Digest is the MD5 sum of an input string.
//
// MD5 is used purely to spread input bytes deterministically. It is not
// relied on for collision resistance or integrity.
type Digest [DigestSize]byte

// Sum returns the digest of the raw bytes of input. The empty string is valid.
func Sum(input string) Digest {
	return md5.Sum([]byte(input))
}

// Bytes returns a fresh copy of the digest as a slice.
func (d Digest) Bytes() []byte {
	out := make([]byte, DigestSize)
	copy(out, d[:])
	return out
}

// Hex returns the lowercase hex encoding of the digest.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}
