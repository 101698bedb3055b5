package ntru

import (
	"math/big"
	"testing"
)

func TestBigIntPolynomialFromIntRoundTrip(t *testing.T) {
	p := NewIntegerPolynomialFrom([]int64{1, -2, 3, -4, 5})
	b := BigIntPolynomialFromInt(p)
	for i, c := range p.Coeffs {
		if b.Coeffs[i].Int64() != c {
			t.Fatalf("coeff %d: got %v want %d", i, b.Coeffs[i], c)
		}
	}
}

func TestBigIntMultSmallAgreesWithIntegerMultLinear(t *testing.T) {
	// Use a degree large enough that no wraparound occurs, so MultSmall
	// (which folds mod X^N-1) is directly comparable to a dense
	// schoolbook product computed by hand via IntegerPolynomial.Mult.
	n := 5
	a := NewIntegerPolynomialFrom([]int64{1, 2, 0, 0, 0})
	bp := NewIntegerPolynomialFrom([]int64{3, 0, 4, 0, 0})
	got := BigIntPolynomialFromInt(a).MultSmall(bp)
	want := a.Mult(bp, 0)
	for i := 0; i < n; i++ {
		if got.Coeffs[i].Int64() != want.Coeffs[i] {
			t.Fatalf("coeff %d: got %v want %d", i, got.Coeffs[i], want.Coeffs[i])
		}
	}
}

func TestBigIntMultBigAgreesWithSchoolbook(t *testing.T) {
	n := 40
	a := NewBigIntPolynomial(n)
	b := NewBigIntPolynomial(n)
	for i := 0; i < n; i++ {
		a.Coeffs[i].SetInt64(int64(i%5) - 2)
		b.Coeffs[i].SetInt64(int64((i*3)%7) - 3)
	}
	got := a.MultBig(b)
	want := schoolbookLinear(a, b)
	if got.N() != want.N() {
		t.Fatalf("length mismatch: got %d want %d", got.N(), want.N())
	}
	for i := 0; i < got.N(); i++ {
		if got.Coeffs[i].Cmp(want.Coeffs[i]) != 0 {
			t.Fatalf("coeff %d: got %v want %v", i, got.Coeffs[i], want.Coeffs[i])
		}
	}
}

func TestBigIntFoldModXN1(t *testing.T) {
	n := 4
	p := NewBigIntPolynomial(2*n - 1)
	for i := range p.Coeffs {
		p.Coeffs[i].SetInt64(int64(i + 1))
	}
	folded := p.FoldModXN1(n)
	want := []int64{1 + 5, 2 + 6, 3 + 7, 4}
	for i, w := range want {
		if folded.Coeffs[i].Int64() != w {
			t.Fatalf("coeff %d: got %v want %d", i, folded.Coeffs[i], w)
		}
	}
}

func TestBigIntModNonNegative(t *testing.T) {
	p := NewBigIntPolynomial(3)
	p.Coeffs[0].SetInt64(-1)
	p.Coeffs[1].SetInt64(5)
	p.Coeffs[2].SetInt64(-7)
	p.Mod(big.NewInt(4))
	want := []int64{3, 1, 1}
	for i, w := range want {
		if p.Coeffs[i].Int64() != w {
			t.Fatalf("coeff %d: got %v want %d", i, p.Coeffs[i], w)
		}
	}
}

func TestBigIntRoundTiesToEven(t *testing.T) {
	p := NewBigIntPolynomial(2)
	p.Coeffs[0].SetInt64(5) // 5/2 = 2.5 -> rounds to 2 (even)
	p.Coeffs[1].SetInt64(7) // 7/2 = 3.5 -> rounds to 4 (even)
	p.Round(big.NewInt(2))
	if p.Coeffs[0].Int64() != 2 {
		t.Fatalf("coeff 0: got %v want 2", p.Coeffs[0])
	}
	if p.Coeffs[1].Int64() != 4 {
		t.Fatalf("coeff 1: got %v want 4", p.Coeffs[1])
	}
}
