package ntru

import (
	"encoding/binary"
	"io"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// ByteOracle is the randomness capability injected into key
// generation, encryption, and every GenerateRandom constructor. It is
// a small interface rather than a global provider so callers can
// substitute a deterministic source in tests without touching
// package-level state.
type ByteOracle interface {
	// UniformInt returns a value drawn uniformly from [0,n) for n > 0.
	UniformInt(n int) (int, error)
	// Bytes fills buf with uniform random bytes.
	Bytes(buf []byte) error
}

// prngOracle is the default ByteOracle, backed by lattigo's keyed PRNG
// (itself a CSPRNG-driven io.Reader). Rejection sampling follows the
// unbiased-modulo-reduction pattern this codebase already used to
// fill bounded-range polynomials from a PRNG: read a machine word,
// reject values above the largest multiple of n that fits, retry.
type prngOracle struct {
	prng utils.PRNG
}

// NewPRNGOracle constructs the default ByteOracle from a fresh keyed
// PRNG. Passing a nil key lets lattigo derive one from the runtime's
// secure entropy source.
func NewPRNGOracle(key []byte) (ByteOracle, error) {
	var prng utils.PRNG
	var err error
	if key == nil {
		prng, err = utils.NewPRNG()
	} else {
		prng, err = utils.NewKeyedPRNG(key)
	}
	if err != nil {
		return nil, newErr(CryptoUnavailable, "prng init: %v", err)
	}
	return &prngOracle{prng: prng}, nil
}

func (o *prngOracle) Bytes(buf []byte) error {
	if _, err := io.ReadFull(o.prng, buf); err != nil {
		return newErr(CryptoUnavailable, "prng read: %v", err)
	}
	return nil
}

func (o *prngOracle) UniformInt(n int) (int, error) {
	if n <= 0 {
		return 0, newErr(InvalidArgument, "UniformInt: n must be positive, got %d", n)
	}
	rangeSize := uint64(n)
	maxUint64 := ^uint64(0)
	threshold := (maxUint64 / rangeSize) * rangeSize

	buf := make([]byte, 8)
	for {
		if err := o.Bytes(buf); err != nil {
			return 0, err
		}
		word := binary.LittleEndian.Uint64(buf)
		if word < threshold {
			return int(word % rangeSize), nil
		}
	}
}
