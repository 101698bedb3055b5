package ntru

import "sort"

// SparseTernaryPolynomial represents a ternary polynomial by the
// sorted index sets of its +1 and -1 coefficients rather than a dense
// coefficient vector, so multiplication against a dense polynomial
// costs O(N*d) instead of O(N^2) for d = len(ones)+len(negOnes).
type SparseTernaryPolynomial struct {
	n       int
	ones    []int
	negOnes []int
}

// NewSparseTernaryPolynomial builds a sparse ternary polynomial from
// explicit index sets, sorting a defensive copy of each.
func NewSparseTernaryPolynomial(n int, ones, negOnes []int) *SparseTernaryPolynomial {
	o := append([]int(nil), ones...)
	no := append([]int(nil), negOnes...)
	sort.Ints(o)
	sort.Ints(no)
	return &SparseTernaryPolynomial{n: n, ones: o, negOnes: no}
}

// GenerateSparseTernaryRandom draws numOnes distinct indices for +1
// and numNegOnes further distinct indices for -1, uniformly at random
// over [0,n), via rejection sampling against oracle.
func GenerateSparseTernaryRandom(n, numOnes, numNegOnes int, oracle ByteOracle) (*SparseTernaryPolynomial, error) {
	used := make(map[int]bool, numOnes+numNegOnes)
	draw := func(count int) ([]int, error) {
		out := make([]int, 0, count)
		for len(out) < count {
			idx, err := oracle.UniformInt(n)
			if err != nil {
				return nil, err
			}
			if used[idx] {
				continue
			}
			used[idx] = true
			out = append(out, idx)
		}
		return out, nil
	}
	ones, err := draw(numOnes)
	if err != nil {
		return nil, err
	}
	negOnes, err := draw(numNegOnes)
	if err != nil {
		return nil, err
	}
	return NewSparseTernaryPolynomial(n, ones, negOnes), nil
}

func (s *SparseTernaryPolynomial) N() int { return s.n }

// Mult returns s*b in R, reduced mod modulus if modulus > 0. Each
// nonzero coefficient of s contributes a single cyclic-shifted add or
// subtract of b, so the cost is O(n*(len(ones)+len(negOnes))).
func (s *SparseTernaryPolynomial) Mult(b *IntegerPolynomial, modulus int64) *IntegerPolynomial {
	n := s.n
	c := NewIntegerPolynomial(n)
	for _, i := range s.ones {
		for j := 0; j < n; j++ {
			k := i + j
			if k >= n {
				k -= n
			}
			c.Coeffs[k] += b.Coeffs[j]
		}
	}
	for _, i := range s.negOnes {
		for j := 0; j < n; j++ {
			k := i + j
			if k >= n {
				k -= n
			}
			c.Coeffs[k] -= b.Coeffs[j]
		}
	}
	if modulus > 0 {
		c.ModPositive(modulus)
	}
	return c
}

func (s *SparseTernaryPolynomial) mult(b *IntegerPolynomial, modulus int64) *IntegerPolynomial {
	return s.Mult(b, modulus)
}

// ToIntegerPolynomial materializes the dense form.
func (s *SparseTernaryPolynomial) ToIntegerPolynomial() *IntegerPolynomial {
	p := NewIntegerPolynomial(s.n)
	for _, i := range s.ones {
		p.Coeffs[i] = 1
	}
	for _, i := range s.negOnes {
		p.Coeffs[i] = -1
	}
	return p
}

func (s *SparseTernaryPolynomial) toIntegerPolynomial() *IntegerPolynomial {
	return s.ToIntegerPolynomial()
}

// Clear zeroizes the index sets in place.
func (s *SparseTernaryPolynomial) Clear() {
	for i := range s.ones {
		s.ones[i] = 0
	}
	for i := range s.negOnes {
		s.negOnes[i] = 0
	}
	s.ones = s.ones[:0]
	s.negOnes = s.negOnes[:0]
}

func (s *SparseTernaryPolynomial) clear() { s.Clear() }

// ToBinary packs the ones then negOnes index lists, each index as
// ceil(log2(n)) bits MSB-first, preceded by nothing: the caller
// already knows len(ones) and len(negOnes) from the parameter set
// (df/dg/dr), so no length prefix is written.
func (s *SparseTernaryPolynomial) ToBinary() []byte {
	bitsPerIdx := ceilLog2(s.n)
	total := len(s.ones) + len(s.negOnes)
	out := make([]byte, (total*bitsPerIdx+7)/8)
	bitPos := 0
	write := func(idx int) {
		for b := bitsPerIdx - 1; b >= 0; b-- {
			bit := (idx >> uint(b)) & 1
			if bit != 0 {
				out[bitPos/8] |= 1 << uint(7-bitPos%8)
			}
			bitPos++
		}
	}
	for _, i := range s.ones {
		write(i)
	}
	for _, i := range s.negOnes {
		write(i)
	}
	return out
}

// FromSparseBinary is the inverse of ToBinary given the expected
// counts of +1 and -1 coefficients.
func FromSparseBinary(data []byte, n, numOnes, numNegOnes int) (*SparseTernaryPolynomial, error) {
	bitsPerIdx := ceilLog2(n)
	total := numOnes + numNegOnes
	needBits := total * bitsPerIdx
	if len(data)*8 < needBits {
		return nil, newErr(IOError, "short read: need %d bits, have %d", needBits, len(data)*8)
	}
	bitPos := 0
	read := func() int {
		v := 0
		for b := 0; b < bitsPerIdx; b++ {
			v <<= 1
			byteIdx := bitPos / 8
			bitIdx := 7 - bitPos%8
			if data[byteIdx]&(1<<uint(bitIdx)) != 0 {
				v |= 1
			}
			bitPos++
		}
		return v
	}
	ones := make([]int, numOnes)
	for i := range ones {
		ones[i] = read()
	}
	negOnes := make([]int, numNegOnes)
	for i := range negOnes {
		negOnes[i] = read()
	}
	return NewSparseTernaryPolynomial(n, ones, negOnes), nil
}
