package ntru

import "math/big"

// BigDecimalPolynomial is a dense coefficient vector of big.Float for
// ring elements with non-integer coefficients; ResultantXN1 does not
// use it and works in big.Int throughout. Unlike BigIntPolynomial.MultBig, Mult here folds the
// cyclic reduction mod X^N-1 itself rather than leaving it to the
// caller, since decimal coefficients are always used in a ring
// context in this package.
type BigDecimalPolynomial struct {
	Coeffs []*big.Float
	prec   uint
}

const bigDecimalPrec = 256

// NewBigDecimalPolynomial allocates the zero polynomial of degree < n.
func NewBigDecimalPolynomial(n int) *BigDecimalPolynomial {
	c := make([]*big.Float, n)
	for i := range c {
		c[i] = new(big.Float).SetPrec(bigDecimalPrec)
	}
	return &BigDecimalPolynomial{Coeffs: c, prec: bigDecimalPrec}
}

// BigDecimalPolynomialFromBigInt converts exactly, at the package
// precision.
func BigDecimalPolynomialFromBigInt(p *BigIntPolynomial) *BigDecimalPolynomial {
	d := NewBigDecimalPolynomial(p.N())
	for i, c := range p.Coeffs {
		d.Coeffs[i].SetInt(c)
	}
	return d
}

func (p *BigDecimalPolynomial) N() int { return len(p.Coeffs) }

// Mult returns p*b reduced mod X^N-1.
func (p *BigDecimalPolynomial) Mult(b *BigDecimalPolynomial) *BigDecimalPolynomial {
	n := p.N()
	c := NewBigDecimalPolynomial(n)
	tmp := new(big.Float).SetPrec(bigDecimalPrec)
	for i := 0; i < n; i++ {
		if p.Coeffs[i].Sign() == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			k := i + j
			if k >= n {
				k -= n
			}
			tmp.Mul(p.Coeffs[i], b.Coeffs[j])
			c.Coeffs[k].Add(c.Coeffs[k], tmp)
		}
	}
	return c
}

// Add returns p+b.
func (p *BigDecimalPolynomial) Add(b *BigDecimalPolynomial) *BigDecimalPolynomial {
	n := p.N()
	c := NewBigDecimalPolynomial(n)
	for i := 0; i < n; i++ {
		c.Coeffs[i].Add(p.Coeffs[i], b.Coeffs[i])
	}
	return c
}

// Div divides every coefficient by the scalar d in place.
func (p *BigDecimalPolynomial) Div(d *big.Float) {
	for _, c := range p.Coeffs {
		c.Quo(c, d)
	}
}

// Round rounds every coefficient to the nearest big.Int, ties to
// even, via exact big.Rat conversion of the underlying big.Float.
func (p *BigDecimalPolynomial) Round() *BigIntPolynomial {
	out := NewBigIntPolynomial(p.N())
	for i, c := range p.Coeffs {
		r := new(big.Rat)
		r.SetString(c.Text('f', int(p.prec/3)))
		out.Coeffs[i] = roundRatToEven(r)
	}
	return out
}
