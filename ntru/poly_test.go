package ntru

import "testing"

// TestMultN11 checks a concrete N=11 multiplication vector by hand:
// (1+X) * (1+X+X^2) mod (X^11-1) = 1+2X+2X^2+X^3.
func TestMultN11(t *testing.T) {
	a := NewIntegerPolynomialFrom([]int64{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	b := NewIntegerPolynomialFrom([]int64{1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0})
	c := a.Mult(b, 0)
	want := []int64{1, 2, 2, 1, 0, 0, 0, 0, 0, 0, 0}
	for i, w := range want {
		if c.Coeffs[i] != w {
			t.Fatalf("coeff %d: got %d want %d", i, c.Coeffs[i], w)
		}
	}
}

func TestMultWrapsAroundRing(t *testing.T) {
	n := 5
	a := NewIntegerPolynomial(n)
	a.Coeffs[n-1] = 1 // X^4
	b := NewIntegerPolynomial(n)
	b.Coeffs[1] = 1 // X
	c := a.Mult(b, 0)
	// X^4 * X = X^5 = X^0 (mod X^5-1)
	for i, v := range c.Coeffs {
		want := int64(0)
		if i == 0 {
			want = 1
		}
		if v != want {
			t.Fatalf("coeff %d: got %d want %d", i, v, want)
		}
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	a := NewIntegerPolynomialFrom([]int64{1, 2, 3})
	b := NewIntegerPolynomialFrom([]int64{4, 5, 6})
	sum := a.Add(b, 0)
	back := sum.Sub(b, 0)
	if !back.Equals(a) {
		t.Fatalf("Sub(Add(a,b),b) != a: got %v", back.Coeffs)
	}
}

func TestMod3Centers(t *testing.T) {
	p := NewIntegerPolynomialFrom([]int64{-4, -3, -2, -1, 0, 1, 2, 3, 4})
	p.Mod3()
	want := []int64{-1, 0, 1, -1, 0, 1, -1, 0, 1}
	for i, w := range want {
		if p.Coeffs[i] != w {
			t.Fatalf("coeff %d: got %d want %d", i, p.Coeffs[i], w)
		}
	}
}

func TestCenter0(t *testing.T) {
	p := NewIntegerPolynomialFrom([]int64{0, 5, 10, 15})
	c := p.Center0(16)
	want := []int64{0, 5, -6, -1}
	for i, w := range want {
		if c.Coeffs[i] != w {
			t.Fatalf("coeff %d: got %d want %d", i, c.Coeffs[i], w)
		}
	}
}

func TestClearZeroizes(t *testing.T) {
	p := NewIntegerPolynomialFrom([]int64{1, 2, 3})
	p.Clear()
	for i, v := range p.Coeffs {
		if v != 0 {
			t.Fatalf("coeff %d not cleared: %d", i, v)
		}
	}
}

func TestCount(t *testing.T) {
	p := NewIntegerPolynomialFrom([]int64{-1, 0, 1, 1, -1, 0, 0})
	if got := p.Count(1); got != 2 {
		t.Fatalf("Count(1) = %d, want 2", got)
	}
	if got := p.Count(0); got != 3 {
		t.Fatalf("Count(0) = %d, want 3", got)
	}
	if got := p.Count(-1); got != 2 {
		t.Fatalf("Count(-1) = %d, want 2", got)
	}
}
