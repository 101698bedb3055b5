package ntru

import (
	"math/big"
	"math/bits"
)

// ceilLog2 returns ceil(log2(n)) for n >= 1.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// bitlenMaxAbsBig returns the maximum bit length among the absolute values
// of the big integers in s.
func bitlenMaxAbsBig(s []*big.Int) int {
	var m big.Int
	for _, v := range s {
		if v == nil {
			continue
		}
		if v.Sign() < 0 {
			var t big.Int
			t.Neg(v)
			if t.Cmp(&m) > 0 {
				m.Set(&t)
			}
		} else if v.Cmp(&m) > 0 {
			m.Set(v)
		}
	}
	return m.BitLen()
}

// hadamardBoundBig returns a bound on |resultant(f, X^N-1)| derived
// from Hadamard's inequality: the product of the Euclidean norms of
// the rows of the Sylvester matrix of f and X^N-1. For X^N-1 every row
// has norm sqrt(2), and for f every row has norm ||f||_2, giving
// bound = ||f||_2^N * 2^(N/2), rounded up generously via bit length.
func hadamardBoundBig(coeffs []*big.Int) *big.Int {
	n := len(coeffs)
	sumSq := new(big.Int)
	for _, c := range coeffs {
		sq := new(big.Int).Mul(c, c)
		sumSq.Add(sumSq, sq)
	}
	if sumSq.Sign() == 0 {
		sumSq.SetInt64(1)
	}
	// bound^2 = (sumSq)^N * 2^N ; we only need an over-estimate, so
	// work with bit lengths instead of computing this huge power exactly.
	bl := sumSq.BitLen()
	totalBits := bl*n + n
	bound := new(big.Int).Lsh(big.NewInt(1), uint(totalBits/2+1))
	return bound
}
