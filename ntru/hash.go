package ntru

import (
	"crypto/sha512"

	"golang.org/x/crypto/sha3"
)

// Hasher is the hash capability injected into encryption and
// decryption (IGF seeding and MGF-TP-1 masking); key generation takes
// no Hasher. Like ByteOracle it is a small interface rather
// than a package-level default so callers can swap implementations
// without touching global state.
type Hasher interface {
	// Hash returns the digest of data.
	Hash(data []byte) []byte
	// Size returns the digest length in bytes.
	Size() int
}

type sha512Hasher struct{}

// NewSHA512Hasher returns the default Hasher, backed by the standard
// library's SHA-512, the primitive the IGF and MGF-TP-1 constructions
// are specified against.
func NewSHA512Hasher() Hasher { return sha512Hasher{} }

func (sha512Hasher) Hash(data []byte) []byte {
	sum := sha512.Sum512(data)
	return sum[:]
}

func (sha512Hasher) Size() int { return sha512.Size }

type sha3Hasher struct{}

// NewSHA3Hasher returns an alternate Hasher backed by SHA3-512, for
// callers who want the sponge construction instead of SHA-512's
// Merkle-Damgard one; it satisfies the same 64-byte digest contract
// the IGF and MGF-TP-1 constructions expect.
func NewSHA3Hasher() Hasher { return sha3Hasher{} }

func (sha3Hasher) Hash(data []byte) []byte {
	sum := sha3.Sum512(data)
	return sum[:]
}

func (sha3Hasher) Size() int { return 64 }
