package ntru

import (
	"math/big"
	"testing"
)

func TestResultantXN1CofactorIdentity(t *testing.T) {
	// rho*p == Res (mod X^N-1), as a check independent of how the
	// CRT-combine pipeline arrived at either value.
	p := NewIntegerPolynomialFrom([]int64{1, 1, 0, 1, 0, 0, 1, 0, 0, 0, 0})
	r, err := p.ResultantXN1()
	if err != nil {
		t.Fatalf("ResultantXN1: %v", err)
	}
	prod := r.Rho.MultSmall(p)
	for i, c := range prod.Coeffs {
		want := int64(0)
		if i == 0 {
			want = r.Res.Int64()
		}
		if c.Int64() != want {
			t.Fatalf("coeff %d: got %v want %d", i, c, want)
		}
	}
}

func TestNextPrimeCoprimeSkipsDivisorsOfN(t *testing.T) {
	n := int64(11)
	p := nextPrimeCoprime(3, n)
	if p%2 == 0 || !isPrimeInt64(p) {
		t.Fatalf("nextPrimeCoprime returned non-prime or even value: %d", p)
	}
	if n%p == 0 {
		t.Fatalf("nextPrimeCoprime returned a divisor of n: %d", p)
	}
}

func TestIsPrimeInt64(t *testing.T) {
	primes := map[int64]bool{2: true, 3: true, 4: false, 17: true, 21: false, 97: true, 100: false}
	for v, want := range primes {
		if got := isPrimeInt64(v); got != want {
			t.Fatalf("isPrimeInt64(%d) = %v, want %v", v, got, want)
		}
	}
}

func TestCenterLiftBigIntSymmetric(t *testing.T) {
	m := big.NewInt(10)
	cases := map[int64]int64{0: 0, 4: 4, 5: 5, 6: -4, 9: -1}
	for v, want := range cases {
		got := centerLiftBigInt(big.NewInt(v), m)
		if got.Int64() != want {
			t.Fatalf("centerLiftBigInt(%d,10) = %d, want %d", v, got.Int64(), want)
		}
	}
}
