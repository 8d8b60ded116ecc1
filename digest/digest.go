// Package digest wraps the hash functions used for data fingerprinting:
// hex-encoded streaming digests over the standard crypto hashes and keyed
// 64-bit hashing via SipHash.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	"github.com/dchest/siphash"
)

// New returns a hash.Hash for the named algorithm. Recognised names are
// "md5", "sha1" and "sha256".
func New(algorithm string) (hash.Hash, error) {
	switch algorithm {
	case "md5":
		return md5.New(), nil
	case "sha1":
		return sha1.New(), nil
	case "sha256":
		return sha256.New(), nil
	default:
		return nil, fmt.Errorf("digest: unknown algorithm %q", algorithm)
	}
}

// Hex streams r through the named algorithm and returns the digest as a
// lowercase hex string.
func Hex(algorithm string, r io.Reader) (string, error) {
	h, err := New(algorithm)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("digest: reading input: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SHA1Hex returns the hex-encoded SHA-1 digest of r.
func SHA1Hex(r io.Reader) (string, error) { return Hex("sha1", r) }

// MD5Hex returns the hex-encoded MD5 digest of r.
func MD5Hex(r io.Reader) (string, error) { return Hex("md5", r) }

// SipHash64 returns the SipHash-2-4 keyed 64-bit hash of data.
func SipHash64(k0, k1 uint64, data []byte) uint64 {
	return siphash.Hash(k0, k1, data)
}
