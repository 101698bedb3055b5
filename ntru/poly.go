package ntru

// IntegerPolynomial is a dense coefficient vector of fixed length N
// over Z, representing an element of R = Z[X]/(X^N-1). Index
// arithmetic on the ring is always taken mod N.
type IntegerPolynomial struct {
	Coeffs []int64
}

// NewIntegerPolynomial allocates the zero polynomial of degree < N.
func NewIntegerPolynomial(n int) *IntegerPolynomial {
	return &IntegerPolynomial{Coeffs: make([]int64, n)}
}

// NewIntegerPolynomialFrom copies coeffs into a fresh polynomial.
func NewIntegerPolynomialFrom(coeffs []int64) *IntegerPolynomial {
	c := make([]int64, len(coeffs))
	copy(c, coeffs)
	return &IntegerPolynomial{Coeffs: c}
}

// N returns the ring degree.
func (p *IntegerPolynomial) N() int { return len(p.Coeffs) }

// Clone returns a deep copy.
func (p *IntegerPolynomial) Clone() *IntegerPolynomial {
	return NewIntegerPolynomialFrom(p.Coeffs)
}

// Clear overwrites the coefficients with zeros; used to zeroize
// secret intermediates (g, fq, blinding values) once they are no
// longer needed.
func (p *IntegerPolynomial) Clear() {
	zeroInts(p.Coeffs)
}

// Mult returns c = p*b in R, reduced into [0,modulus) if modulus > 0.
// Schoolbook O(N^2): c[k] = sum_{i+j == k (mod N)} p[i]*b[j].
func (p *IntegerPolynomial) Mult(b *IntegerPolynomial, modulus int64) *IntegerPolynomial {
	n := p.N()
	c := NewIntegerPolynomial(n)
	for i := 0; i < n; i++ {
		ai := p.Coeffs[i]
		if ai == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			k := i + j
			if k >= n {
				k -= n
			}
			c.Coeffs[k] += ai * b.Coeffs[j]
		}
	}
	if modulus > 0 {
		c.ModPositive(modulus)
	}
	return c
}

// Add returns p+b, reduced mod modulus if modulus > 0.
func (p *IntegerPolynomial) Add(b *IntegerPolynomial, modulus int64) *IntegerPolynomial {
	n := p.N()
	c := NewIntegerPolynomial(n)
	for i := 0; i < n; i++ {
		c.Coeffs[i] = p.Coeffs[i] + b.Coeffs[i]
	}
	if modulus > 0 {
		c.ModPositive(modulus)
	}
	return c
}

// Sub returns p-b, reduced mod modulus if modulus > 0.
func (p *IntegerPolynomial) Sub(b *IntegerPolynomial, modulus int64) *IntegerPolynomial {
	n := p.N()
	c := NewIntegerPolynomial(n)
	for i := 0; i < n; i++ {
		c.Coeffs[i] = p.Coeffs[i] - b.Coeffs[i]
	}
	if modulus > 0 {
		c.ModPositive(modulus)
	}
	return c
}

// Mult3 multiplies in place by 3, then reduces mod q. Used to compute
// h = (3*g)*fq mod q without materializing an intermediate
// IntegerPolynomial for the scalar 3.
func (p *IntegerPolynomial) Mult3(q int64) {
	for i := range p.Coeffs {
		p.Coeffs[i] = mod(p.Coeffs[i]*3, q)
	}
}

// Mod3 reduces every coefficient into {-1,0,1} mod 3 (centered).
func (p *IntegerPolynomial) Mod3() {
	for i, v := range p.Coeffs {
		r := v % 3
		switch r {
		case -2:
			r = 1
		case 2:
			r = -1
		case -1, 0, 1:
		}
		p.Coeffs[i] = r
	}
}

// Center0 returns a clone whose coefficients are centered into
// (-modulus/2, modulus/2].
func (p *IntegerPolynomial) Center0(modulus int64) *IntegerPolynomial {
	c := p.Clone()
	c.center0InPlace(modulus)
	return c
}

func (p *IntegerPolynomial) center0InPlace(modulus int64) {
	half := modulus / 2
	for i, v := range p.Coeffs {
		v = mod(v, modulus)
		if v > half {
			v -= modulus
		}
		p.Coeffs[i] = v
	}
}

// ModPositive reduces every coefficient in place into [0,modulus).
func (p *IntegerPolynomial) ModPositive(modulus int64) {
	for i, v := range p.Coeffs {
		p.Coeffs[i] = mod(v, modulus)
	}
}

// EnsurePositive converts any negative representative to [0,modulus)
// in place, leaving already-positive coefficients untouched (unlike
// ModPositive it assumes |v| < modulus already).
func (p *IntegerPolynomial) EnsurePositive(modulus int64) {
	for i, v := range p.Coeffs {
		if v < 0 {
			p.Coeffs[i] = v + modulus
		}
	}
}

// Count returns the number of coefficients equal to v.
func (p *IntegerPolynomial) Count(v int64) int {
	n := 0
	for _, c := range p.Coeffs {
		if c == v {
			n++
		}
	}
	return n
}

// Equals reports whether p and b have identical coefficients.
func (p *IntegerPolynomial) Equals(b *IntegerPolynomial) bool {
	if p.N() != b.N() {
		return false
	}
	for i, v := range p.Coeffs {
		if v != b.Coeffs[i] {
			return false
		}
	}
	return true
}

// mod returns the non-negative representative of v mod m, m > 0.
func mod(v, m int64) int64 {
	v %= m
	if v < 0 {
		v += m
	}
	return v
}
