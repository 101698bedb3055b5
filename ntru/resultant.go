package ntru

import (
	"math/big"
	"os"
)

// Resultant pairs the resultant of (p, X^N-1) with a cofactor rho
// satisfying rho*p == res (mod X^N-1), as integers (not reduced mod
// any q). NTRUSign key generation uses this to invert f modulo the
// resultant when f is not directly invertible mod q; this package
// only computes the value, NTRUSign's basis construction on top of
// it is out of scope.
type Resultant struct {
	Rho *BigIntPolynomial
	Res *big.Int
}

// ResultantXN1 computes the resultant of p with X^N-1 and a cofactor
// polynomial rho with rho*p == Res (mod X^N-1), by running the
// Euclidean algorithm on (X^N-1, p) independently modulo a growing
// set of odd primes coprime to N and CRT-combining the per-prime
// results via extGCDCanon's Bezout coefficients, the same combine
// step Subresultant.combine performs in the reference algorithm.
// Combination stops once the running modulus exceeds twice the
// Hadamard bound on |Res|, at which point every coefficient is
// center-lifted into its true signed value.
func (p *IntegerPolynomial) ResultantXN1() (*Resultant, error) {
	n := p.N()
	coeffsBig := make([]*big.Int, n)
	for i, c := range p.Coeffs {
		coeffsBig[i] = big.NewInt(c)
	}
	bound := hadamardBoundBig(coeffsBig)
	target := new(big.Int).Lsh(bound, 1)

	var rho *BigIntPolynomial
	var res *big.Int
	modulus := big.NewInt(1)

	prime := int64(2)
	skipped := big.NewInt(1)
	for modulus.Cmp(target) <= 0 && skipped.Cmp(target) <= 0 {
		prime = nextPrimeCoprime(prime+1, int64(n))
		rhoI, resI, ok := resultantModPrime(p, prime)
		if !ok || resI.Sign() == 0 {
			// p shares a factor with X^N-1 mod this prime; skip it,
			// the CRT combine only needs primes where the Euclidean
			// algorithm runs to completion. Every skipped prime divides
			// Res, so once their product passes the target Res is 0.
			skipped.Mul(skipped, big.NewInt(prime))
			continue
		}
		if rho == nil {
			rho = rhoI
			res = resI
			modulus = big.NewInt(prime)
			continue
		}
		rho, res, modulus = subresultantCombine(rho, res, modulus, rhoI, resI, big.NewInt(prime))
	}
	if rho == nil {
		return &Resultant{Rho: NewBigIntPolynomial(n), Res: new(big.Int)}, nil
	}

	rho = centerLiftBigIntPoly(rho, modulus)
	res = centerLiftBigInt(res, modulus)
	return &Resultant{Rho: rho, Res: res}, nil
}

// resultantModPrime runs the Euclidean algorithm on (X^N-1, p) in
// GF(prime)[X], returning the cofactor rho and resultant value as
// residues mod prime. ok is false if the algorithm cannot complete
// because some intermediate leading coefficient has no inverse mod
// prime. When p and X^N-1 share a factor mod prime it returns a zero
// rho and a zero resultant with ok true.
func resultantModPrime(p *IntegerPolynomial, prime int64) (rho *BigIntPolynomial, res *big.Int, ok bool) {
	if !ringCrossCheckMod(p, prime) {
		dbg(os.Stderr, "[Resultant] ring cross-check disagreed for prime=%d\n", prime)
	}

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
	// resVal tracks Res(X^N-1, p) mod prime through the Euclidean steps:
	// res(a,b) = (-1)^(deg a*deg b) * lc(b)^(deg a-deg r) * res(b,r).
	resVal := int64(1)
	for r1.degree() > 0 {
		q, r2, divOk := modPolyDiv(r0, r1)
		if !divOk {
			return nil, nil, false
		}
		d0, d1 := r0.degree(), r1.degree()
		if d0*d1%2 == 1 {
			resVal = mod(-resVal, prime)
		}
		for k := r2.degree(); k < d0; k++ {
			resVal = mod(resVal*r1.coeffs[d1], prime)
		}
		r0, r1 = r1, r2
		s0, s1 = s1, modPolySub(s0, modPolyMul(q, s1))
	}
	if r1.degree() != 0 {
		// f and X^N-1 share a common factor mod prime: resultant is 0.
		rho = NewBigIntPolynomial(n)
		return rho, big.NewInt(0), true
	}
	// s1*p == c (mod X^N-1) for the constant c = r1; res(r0, c) = c^deg(r0),
	// and rho = s1 * res/c so that rho*p == res.
	c := r1.coeffs[0]
	for k := 0; k < r0.degree(); k++ {
		resVal = mod(resVal*c, prime)
	}
	invC, _ := modInvSmall(c, prime)
	rho = NewBigIntPolynomial(n)
	reduced := reduceModPolyXN1(s1, n)
	for i := 0; i < n; i++ {
		rho.Coeffs[i].SetInt64(mod(reduced.coeffs[i]*mod(resVal*invC, prime), prime))
	}
	return rho, big.NewInt(resVal), true
}

// subresultantCombine merges (rho1,res1) known mod m1 with
// (rho2,res2) known mod m2, gcd(m1,m2)=1, into a single pair known
// mod m1*m2, via the Bezout identity u*m1+v*m2=1 from extGCDCanon.
func subresultantCombine(rho1 *BigIntPolynomial, res1 *big.Int, m1 *big.Int,
	rho2 *BigIntPolynomial, res2 *big.Int, m2 *big.Int) (*BigIntPolynomial, *big.Int, *big.Int) {
	u, v, _ := extGCDCanon(m1, m2)
	modulus := new(big.Int).Mul(m1, m2)

	vm2 := new(big.Int).Mul(v, m2)
	um1 := new(big.Int).Mul(u, m1)

	n := rho1.N()
	rho := NewBigIntPolynomial(n)
	tmp := new(big.Int)
	for i := 0; i < n; i++ {
		tmp.Mul(rho1.Coeffs[i], vm2)
		rho.Coeffs[i].Add(rho.Coeffs[i], tmp)
		tmp.Mul(rho2.Coeffs[i], um1)
		rho.Coeffs[i].Add(rho.Coeffs[i], tmp)
		rho.Coeffs[i].Mod(rho.Coeffs[i], modulus)
	}

	res := new(big.Int)
	tmp.Mul(res1, vm2)
	res.Add(res, tmp)
	tmp.Mul(res2, um1)
	res.Add(res, tmp)
	res.Mod(res, modulus)

	return rho, res, modulus
}

func centerLiftBigInt(v, modulus *big.Int) *big.Int {
	r := new(big.Int).Mod(v, modulus)
	half := new(big.Int).Rsh(modulus, 1)
	if r.Cmp(half) > 0 {
		r.Sub(r, modulus)
	}
	return r
}

func centerLiftBigIntPoly(p *BigIntPolynomial, modulus *big.Int) *BigIntPolynomial {
	out := NewBigIntPolynomial(p.N())
	for i, c := range p.Coeffs {
		out.Coeffs[i] = centerLiftBigInt(c, modulus)
	}
	return out
}

func isPrimeInt64(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// nextPrimeCoprime returns the smallest odd prime >= from that does
// not divide n.
func nextPrimeCoprime(from, n int64) int64 {
	if from <= 2 {
		from = 3
	}
	if from%2 == 0 {
		from++
	}
	for {
		if isPrimeInt64(from) && (n%from != 0) {
			return from
		}
		from += 2
	}
}
