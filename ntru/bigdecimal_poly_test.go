package ntru

import (
	"math/big"
	"testing"
)

func TestBigDecimalFromBigIntRoundTrip(t *testing.T) {
	b := BigIntPolynomialFromInt(NewIntegerPolynomialFrom([]int64{1, -2, 3}))
	d := BigDecimalPolynomialFromBigInt(b)
	for i := range b.Coeffs {
		want := new(big.Float).SetInt(b.Coeffs[i])
		if d.Coeffs[i].Cmp(want) != 0 {
			t.Fatalf("coeff %d: got %v want %v", i, d.Coeffs[i], want)
		}
	}
}

func TestBigDecimalMultAgreesWithIntegerMult(t *testing.T) {
	n := 5
	a := NewIntegerPolynomialFrom([]int64{1, 2, 0, -1, 0})
	bp := NewIntegerPolynomialFrom([]int64{3, 0, 4, 0, -2})
	want := a.Mult(bp, 0)

	da := BigDecimalPolynomialFromBigInt(BigIntPolynomialFromInt(a))
	db := BigDecimalPolynomialFromBigInt(BigIntPolynomialFromInt(bp))
	got := da.Mult(db)
	for i := 0; i < n; i++ {
		f, _ := got.Coeffs[i].Float64()
		if int64(f) != want.Coeffs[i] {
			t.Fatalf("coeff %d: got %v want %d", i, got.Coeffs[i], want.Coeffs[i])
		}
	}
}

func TestBigDecimalAddAndDiv(t *testing.T) {
	a := BigDecimalPolynomialFromBigInt(BigIntPolynomialFromInt(NewIntegerPolynomialFrom([]int64{2, 4, 6})))
	b := BigDecimalPolynomialFromBigInt(BigIntPolynomialFromInt(NewIntegerPolynomialFrom([]int64{1, 1, 1})))
	sum := a.Add(b)
	want := []int64{3, 5, 7}
	for i, w := range want {
		f, _ := sum.Coeffs[i].Float64()
		if int64(f) != w {
			t.Fatalf("coeff %d: got %v want %d", i, sum.Coeffs[i], w)
		}
	}
	sum.Div(big.NewFloat(2))
	wantHalved := []int64{1, 2, 3}
	for i, w := range wantHalved {
		f, _ := sum.Coeffs[i].Float64()
		if int64(f) != w {
			t.Fatalf("coeff %d after div: got %v want %d", i, sum.Coeffs[i], w)
		}
	}
}

func TestBigDecimalRoundTiesToEven(t *testing.T) {
	p := NewBigDecimalPolynomial(2)
	p.Coeffs[0].SetFloat64(2.5)
	p.Coeffs[1].SetFloat64(3.5)
	out := p.Round()
	if out.Coeffs[0].Int64() != 2 {
		t.Fatalf("coeff 0: got %v want 2", out.Coeffs[0])
	}
	if out.Coeffs[1].Int64() != 4 {
		t.Fatalf("coeff 1: got %v want 4", out.Coeffs[1])
	}
}
