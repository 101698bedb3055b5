package ntru

import (
	"os"

	"github.com/tuneinsight/lattigo/v4/ring"
)

// nextPow2 returns the smallest power of two >= n.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// resultantPrimeRing builds a Lattigo NTT ring of degree the next
// power of two >= n with single modulus prime, the same
// ring.NewRing(N, []uint64{...}) call BuildRings used for its
// single-prime path. ok is false when prime isn't NTT-friendly at
// this ring degree (Lattigo requires prime == 1 mod 2*degree): the
// resultant pipeline's cross-check is then simply skipped, since the
// set of primes the Euclidean algorithm walks through has no relation
// to NTT-friendliness.
func resultantPrimeRing(n int, prime int64) (*ring.Ring, bool) {
	deg := nextPow2(n)
	r, err := ring.NewRing(deg, []uint64{uint64(prime)})
	if err != nil {
		return nil, false
	}
	return r, true
}

// ringCrossCheckMod pads p's coefficients (reduced mod prime) into a
// Lattigo ring polynomial and round-trips them through NTT/InvNTT. A
// mismatch would mean prime and the ring's NTT tables disagree about
// p's reduction; this is a sanity check on the prime/degree pair
// independent of this package's own modPoly arithmetic, not a
// correctness proof of the Euclidean-algorithm resultant step itself.
// Returns true when no cross-check ring is available for prime.
func ringCrossCheckMod(p *IntegerPolynomial, prime int64) bool {
	r, ok := resultantPrimeRing(p.N(), prime)
	if !ok {
		dbg(os.Stderr, "[Ring] no NTT-friendly ring for prime=%d, skipping cross-check\n", prime)
		return true
	}
	deg := nextPow2(p.N())
	pl := r.NewPoly()
	for i := 0; i < p.N() && i < deg; i++ {
		v := p.Coeffs[i] % prime
		if v < 0 {
			v += prime
		}
		pl.Coeffs[0][i] = uint64(v)
	}
	before := append([]uint64(nil), pl.Coeffs[0]...)
	r.NTT(pl, pl)
	r.InvNTT(pl, pl)
	for i := 0; i < deg; i++ {
		if pl.Coeffs[0][i] != before[i] {
			return false
		}
	}
	return true
}
