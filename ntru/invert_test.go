package ntru

import "testing"

// findInvertibleF2 returns the first dense ternary draw (from a small
// deterministic oracle) whose dense form is invertible mod 2; for
// n=11 this should succeed quickly since a random polynomial is
// non-invertible only if it shares a root with X^n-1 over GF(2).
// Callers pass unequal ones/negOnes counts: with equal counts f(1)=0,
// so X-1 divides f and no draw is invertible.
func findInvertibleF2(t *testing.T, n, ones, negOnes int) (*IntegerPolynomial, *IntegerPolynomial) {
	for seed := int64(0); seed < 50; seed++ {
		oracle := newMathRandOracle(seed)
		d, err := GenerateDenseTernaryRandom(n, ones, negOnes, oracle)
		if err != nil {
			t.Fatalf("GenerateDenseTernaryRandom: %v", err)
		}
		f := d.toIntegerPolynomial()
		if inv, ok := f.InvertF2(); ok {
			return f, inv
		}
	}
	t.Fatal("no invertible-mod-2 candidate found in 50 draws")
	return nil, nil
}

func TestInvertF2RoundTrip(t *testing.T) {
	n := 11
	f, inv := findInvertibleF2(t, n, 3, 2)
	prod := f.Mult(inv, 2)
	want := NewIntegerPolynomial(n)
	want.Coeffs[0] = 1
	prod.ModPositive(2)
	if !prod.Equals(want) {
		t.Fatalf("f*f^-1 mod 2 = %v, want %v", prod.Coeffs, want.Coeffs)
	}
}

func TestInvertF3RoundTrip(t *testing.T) {
	n := 11
	for seed := int64(0); seed < 50; seed++ {
		oracle := newMathRandOracle(seed)
		d, err := GenerateDenseTernaryRandom(n, 3, 2, oracle)
		if err != nil {
			t.Fatalf("GenerateDenseTernaryRandom: %v", err)
		}
		f := d.toIntegerPolynomial()
		inv, ok := f.InvertF3()
		if !ok {
			continue
		}
		prod := f.Mult(inv, 3)
		prod.Mod3()
		want := NewIntegerPolynomial(n)
		want.Coeffs[0] = 1
		if !prod.Equals(want) {
			t.Fatalf("f*f^-1 mod 3 = %v, want %v", prod.Coeffs, want.Coeffs)
		}
		return
	}
	t.Fatal("no invertible-mod-3 candidate found in 50 draws")
}

func TestInvertFqRoundTrip(t *testing.T) {
	n := 11
	q := int64(2048)
	for seed := int64(0); seed < 50; seed++ {
		oracle := newMathRandOracle(seed)
		d, err := GenerateDenseTernaryRandom(n, 3, 2, oracle)
		if err != nil {
			t.Fatalf("GenerateDenseTernaryRandom: %v", err)
		}
		f := d.toIntegerPolynomial()
		inv, ok := f.InvertFq(q)
		if !ok {
			continue
		}
		prod := f.Mult(inv, q)
		want := NewIntegerPolynomial(n)
		want.Coeffs[0] = 1
		if !prod.Equals(want) {
			t.Fatalf("f*f^-1 mod q = %v, want %v", prod.Coeffs, want.Coeffs)
		}
		return
	}
	t.Fatal("no invertible-mod-q candidate found in 50 draws")
}

func TestInvertF2NotInvertible(t *testing.T) {
	n := 6
	// The all-zero polynomial is never invertible.
	f := NewIntegerPolynomial(n)
	if _, ok := f.InvertF2(); ok {
		t.Fatal("expected zero polynomial to be non-invertible mod 2")
	}
}
