package ntru

import "math/big"

// BigIntPolynomial is a dense coefficient vector of big.Int over Z,
// used by the resultant pipeline where intermediate coefficients can
// grow far beyond int64 range.
type BigIntPolynomial struct {
	Coeffs []*big.Int
}

// NewBigIntPolynomial allocates the zero polynomial of degree < n.
func NewBigIntPolynomial(n int) *BigIntPolynomial {
	c := make([]*big.Int, n)
	for i := range c {
		c[i] = new(big.Int)
	}
	return &BigIntPolynomial{Coeffs: c}
}

// BigIntPolynomialFromInt converts a dense int64 IntegerPolynomial.
func BigIntPolynomialFromInt(p *IntegerPolynomial) *BigIntPolynomial {
	b := NewBigIntPolynomial(p.N())
	for i, c := range p.Coeffs {
		b.Coeffs[i].SetInt64(c)
	}
	return b
}

func (p *BigIntPolynomial) N() int { return len(p.Coeffs) }

func (p *BigIntPolynomial) Clone() *BigIntPolynomial {
	c := NewBigIntPolynomial(p.N())
	for i, v := range p.Coeffs {
		c.Coeffs[i].Set(v)
	}
	return c
}

// MultSmall multiplies by an int64-coefficient polynomial via
// schoolbook convolution mod X^N-1, without a modulus reduction.
func (p *BigIntPolynomial) MultSmall(b *IntegerPolynomial) *BigIntPolynomial {
	n := p.N()
	c := NewBigIntPolynomial(n)
	tmp := new(big.Int)
	for i := 0; i < n; i++ {
		if p.Coeffs[i].Sign() == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			k := i + j
			if k >= n {
				k -= n
			}
			tmp.SetInt64(b.Coeffs[j])
			tmp.Mul(tmp, p.Coeffs[i])
			c.Coeffs[k].Add(c.Coeffs[k], tmp)
		}
	}
	return c
}

// MultBig multiplies two BigIntPolynomials of equal length N using
// Karatsuba's three-multiplication identity, returning the full
// length-(2N-1) linear (non-cyclic) product; the caller folds the
// high half back mod X^N-1 when a ring product is wanted.
func (p *BigIntPolynomial) MultBig(b *BigIntPolynomial) *BigIntPolynomial {
	n := p.N()
	if n <= 32 {
		return schoolbookLinear(p, b)
	}
	n1 := n / 2

	aLo := &BigIntPolynomial{Coeffs: p.Coeffs[:n1]}
	aHi := &BigIntPolynomial{Coeffs: p.Coeffs[n1:]}
	bLo := &BigIntPolynomial{Coeffs: b.Coeffs[:n1]}
	bHi := &BigIntPolynomial{Coeffs: b.Coeffs[n1:]}

	aSum := polyAddSlices(aLo.Coeffs, aHi.Coeffs)
	bSum := polyAddSlices(bLo.Coeffs, bHi.Coeffs)

	z0 := aLo.MultBig(bLo)
	z2 := aHi.MultBig(bHi)
	z1 := (&BigIntPolynomial{Coeffs: aSum}).MultBig(&BigIntPolynomial{Coeffs: bSum})
	z1 = bigIntPolySub(bigIntPolySub(z1, z0), z2)

	out := NewBigIntPolynomial(2*n - 1)
	addAt(out, z0, 0)
	addAt(out, z1, n1)
	addAt(out, z2, 2*n1)
	return out
}

func schoolbookLinear(a, b *BigIntPolynomial) *BigIntPolynomial {
	n := a.N()
	m := b.N()
	out := NewBigIntPolynomial(n + m - 1)
	tmp := new(big.Int)
	for i := 0; i < n; i++ {
		if a.Coeffs[i].Sign() == 0 {
			continue
		}
		for j := 0; j < m; j++ {
			tmp.Mul(a.Coeffs[i], b.Coeffs[j])
			out.Coeffs[i+j].Add(out.Coeffs[i+j], tmp)
		}
	}
	return out
}

func polyAddSlices(a, b []*big.Int) []*big.Int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = new(big.Int)
		if i < len(a) {
			out[i].Add(out[i], a[i])
		}
		if i < len(b) {
			out[i].Add(out[i], b[i])
		}
	}
	return out
}

func bigIntPolySub(a, b *BigIntPolynomial) *BigIntPolynomial {
	n := a.N()
	if b.N() > n {
		n = b.N()
	}
	out := NewBigIntPolynomial(n)
	for i := 0; i < n; i++ {
		if i < a.N() {
			out.Coeffs[i].Add(out.Coeffs[i], a.Coeffs[i])
		}
		if i < b.N() {
			out.Coeffs[i].Sub(out.Coeffs[i], b.Coeffs[i])
		}
	}
	return out
}

func addAt(dst, src *BigIntPolynomial, offset int) {
	for i, v := range src.Coeffs {
		if offset+i >= dst.N() {
			break
		}
		dst.Coeffs[offset+i].Add(dst.Coeffs[offset+i], v)
	}
}

// Mod reduces every coefficient in place into [0,modulus).
func (p *BigIntPolynomial) Mod(modulus *big.Int) {
	for _, c := range p.Coeffs {
		c.Mod(c, modulus)
	}
}

// Halve divides every coefficient by two in place, assuming all
// coefficients are even.
func (p *BigIntPolynomial) Halve() {
	two := big.NewInt(2)
	for _, c := range p.Coeffs {
		c.Div(c, two)
	}
}

// Round divides every coefficient by denom and rounds to the nearest
// integer, ties to even, in place.
func (p *BigIntPolynomial) Round(denom *big.Int) {
	for i, c := range p.Coeffs {
		r := new(big.Rat).SetFrac(c, denom)
		p.Coeffs[i] = roundRatToEven(r)
	}
}

// FoldModXN1 reduces a length-(2N-1) linear product into R = Z[X]/(X^N-1).
func (p *BigIntPolynomial) FoldModXN1(n int) *BigIntPolynomial {
	out := NewBigIntPolynomial(n)
	for i, c := range p.Coeffs {
		idx := i % n
		out.Coeffs[idx].Add(out.Coeffs[idx], c)
	}
	return out
}
