package ntru

// This file computes polynomial inverses modulo 2, modulo 3, and
// modulo a power of two q (via Hensel lifting from the mod-2
// inverse), over R = Z[X]/(X^N-1). The core routine runs the
// extended Euclidean algorithm on (X^N-1, f) in GF(p)[X] for a small
// prime p, the same degree-reducing shift/subtract structure the
// Almost Inverse Algorithm uses, expressed through explicit
// polynomial long division rather than a bit-shift register. It is
// adapted from the RNS-limb inverter this codebase used for its own
// ring arithmetic (invertPoly/polyDiv over a prime modulus),
// generalized here to the small primes 2 and 3.

// modPoly is a polynomial with coefficients taken mod q, for a small
// prime q (2 or 3 for inversion, the odd CRT primes in resultant.go).
type modPoly struct {
	coeffs []int64
	q      int64
}

func (a modPoly) degree() int {
	for i := len(a.coeffs) - 1; i >= 0; i-- {
		if mod(a.coeffs[i], a.q) != 0 {
			return i
		}
	}
	return -1
}

func modPolySub(a, b modPoly) modPoly {
	n := len(a.coeffs)
	if len(b.coeffs) > n {
		n = len(b.coeffs)
	}
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		var ai, bi int64
		if i < len(a.coeffs) {
			ai = a.coeffs[i]
		}
		if i < len(b.coeffs) {
			bi = b.coeffs[i]
		}
		out[i] = mod(ai-bi, a.q)
	}
	return modPoly{coeffs: out, q: a.q}
}

func modPolyScalarMul(a modPoly, c int64) modPoly {
	out := make([]int64, len(a.coeffs))
	for i := range a.coeffs {
		out[i] = mod(a.coeffs[i]*c, a.q)
	}
	return modPoly{coeffs: out, q: a.q}
}

func modPolyMul(a, b modPoly) modPoly {
	out := make([]int64, len(a.coeffs)+len(b.coeffs)-1)
	for i, ai := range a.coeffs {
		if mod(ai, a.q) == 0 {
			continue
		}
		for j, bj := range b.coeffs {
			out[i+j] = mod(out[i+j]+ai*bj, a.q)
		}
	}
	return modPoly{coeffs: out, q: a.q}
}

// modPolyDiv computes quot,rem such that a = quot*b + rem with
// deg(rem) < deg(b), over GF(mq)[X]. Returns ok=false if b is the
// zero polynomial or its leading coefficient has no inverse mod mq.
func modPolyDiv(a, b modPoly) (quot, rem modPoly, ok bool) {
	mq := a.q
	db := b.degree()
	if db < 0 {
		return modPoly{}, modPoly{}, false
	}
	invLead, ok := modInvSmall(b.coeffs[db], mq)
	if !ok {
		return modPoly{}, modPoly{}, false
	}
	r := make([]int64, len(a.coeffs))
	copy(r, a.coeffs)
	da := modPolyDegreeSlice(r, mq)
	qc := make([]int64, 0)
	for da >= db {
		coef := mod(r[da]*invLead, mq)
		shift := da - db
		if shift >= len(qc) {
			tmp := make([]int64, shift+1)
			copy(tmp, qc)
			qc = tmp
		}
		qc[shift] = mod(qc[shift]+coef, mq)
		for i := 0; i <= db; i++ {
			r[i+shift] = mod(r[i+shift]-coef*b.coeffs[i], mq)
		}
		da = modPolyDegreeSlice(r, mq)
	}
	return modPoly{coeffs: modPolyTrim(qc, mq), q: mq}, modPoly{coeffs: modPolyTrim(r, mq), q: mq}, true
}

func modPolyDegreeSlice(a []int64, q int64) int {
	for i := len(a) - 1; i >= 0; i-- {
		if mod(a[i], q) != 0 {
			return i
		}
	}
	return -1
}

func modPolyTrim(a []int64, q int64) []int64 {
	i := len(a) - 1
	for i >= 0 && mod(a[i], q) == 0 {
		i--
	}
	out := make([]int64, i+1)
	copy(out, a)
	return out
}

func reduceModPolyXN1(a modPoly, n int) modPoly {
	out := make([]int64, n)
	for i, c := range a.coeffs {
		idx := i % n
		out[idx] = mod(out[idx]+c, a.q)
	}
	return modPoly{coeffs: out, q: a.q}
}

func modPolyPadToN(a []int64, n int) []int64 {
	out := make([]int64, n)
	copy(out, a)
	return out
}

// modInvSmall returns the multiplicative inverse of a mod q for a
// small prime q (2 or 3 for inversion, the odd CRT primes in
// resultant.go), found by brute-force search.
func modInvSmall(a, q int64) (int64, bool) {
	a = mod(a, q)
	if a == 0 {
		return 0, false
	}
	for x := int64(1); x < q; x++ {
		if mod(a*x, q) == 1 {
			return x, true
		}
	}
	return 0, false
}

// invertModPrime computes the inverse of p modulo (X^N-1, prime) via
// the extended Euclidean algorithm on (X^N-1, p) in GF(prime)[X].
// Returns (nil, false) if p shares a nontrivial factor with X^N-1.
func invertModPrime(p *IntegerPolynomial, prime int64) (*IntegerPolynomial, bool) {
	n := p.N()
	f := modPoly{coeffs: make([]int64, n), q: prime}
	for i, c := range p.Coeffs {
		f.coeffs[i] = mod(c, prime)
	}
	g := modPoly{coeffs: make([]int64, n+1), q: prime}
	g.coeffs[0] = mod(-1, prime)
	g.coeffs[n] = 1

	r0, r1 := g, f
	s0 := modPoly{coeffs: []int64{0}, q: prime}
	s1 := modPoly{coeffs: []int64{1}, q: prime}
	for r1.degree() >= 0 {
		q, r2, ok := modPolyDiv(r0, r1)
		if !ok {
			return nil, false
		}
		r0, r1 = r1, r2
		s0, s1 = s1, modPolySub(s0, modPolyMul(q, s1))
	}
	if r0.degree() != 0 {
		return nil, false
	}
	invLead, ok := modInvSmall(r0.coeffs[0], prime)
	if !ok {
		return nil, false
	}
	inv := modPolyScalarMul(s0, invLead)
	inv = reduceModPolyXN1(inv, n)
	result := NewIntegerPolynomial(n)
	copy(result.Coeffs, modPolyPadToN(inv.coeffs, n))
	return result, true
}

// InvertF2 returns the inverse of p modulo (2, X^N-1), or (nil,
// false) if p is not invertible in that ring.
func (p *IntegerPolynomial) InvertF2() (*IntegerPolynomial, bool) {
	return invertModPrime(p, 2)
}

// InvertF3 returns the inverse of p modulo (3, X^N-1), centered into
// {-1,0,1}, or (nil, false) if p is not invertible in that ring.
func (p *IntegerPolynomial) InvertF3() (*IntegerPolynomial, bool) {
	inv, ok := invertModPrime(p, 3)
	if !ok {
		return nil, false
	}
	inv.Mod3()
	return inv, true
}

// InvertFq returns the inverse of p modulo (q, X^N-1) for q a power
// of two, by computing the mod-2 inverse and Hensel-lifting it:
// starting from modulus 2, square the modulus and refine
// b <- b*(2 - p*b) mod n each round until n >= q. Returns (nil,
// false) if p has no inverse mod 2.
func (p *IntegerPolynomial) InvertFq(q int64) (*IntegerPolynomial, bool) {
	b, ok := p.InvertF2()
	if !ok {
		return nil, false
	}
	two := NewIntegerPolynomial(p.N())
	two.Coeffs[0] = 2

	n := int64(2)
	for n < q {
		n *= n
		if n > q {
			n = q
		}
		pb := p.Mult(b, n)
		inner := two.Sub(pb, n)
		b = b.Mult(inner, n)
	}
	b.ModPositive(q)
	return b, true
}
