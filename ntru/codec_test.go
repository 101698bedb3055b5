package ntru

import "testing"

func TestToFromBinaryRoundTrip(t *testing.T) {
	n, q := 11, int64(2048)
	p := NewIntegerPolynomial(n)
	for i := range p.Coeffs {
		p.Coeffs[i] = int64(i*173) % q
	}
	data := p.ToBinary(q)
	back, err := FromBinary(data, n, q)
	if err != nil {
		t.Fatalf("FromBinary: %v", err)
	}
	if !back.Equals(p) {
		t.Fatalf("round trip mismatch: got %v want %v", back.Coeffs, p.Coeffs)
	}
}

func TestFromBinaryShortRead(t *testing.T) {
	if _, err := FromBinary([]byte{0x00}, 100, 2048); err == nil {
		t.Fatal("expected short-read error")
	}
}

func TestToFromBinary3TightRoundTrip(t *testing.T) {
	for _, n := range []int{1, 4, 5, 6, 11, 100} {
		p := NewIntegerPolynomial(n)
		for i := range p.Coeffs {
			p.Coeffs[i] = int64(i%3) - 1
		}
		data := p.ToBinary3Tight()
		back, err := FromBinary3Tight(data, n)
		if err != nil {
			t.Fatalf("n=%d: FromBinary3Tight: %v", n, err)
		}
		if !back.Equals(p) {
			t.Fatalf("n=%d: round trip mismatch: got %v want %v", n, back.Coeffs, p.Coeffs)
		}
	}
}

func TestToFromBinary3ArithRoundTrip(t *testing.T) {
	n := 50
	p := NewIntegerPolynomial(n)
	for i := range p.Coeffs {
		p.Coeffs[i] = int64(i%3) - 1
	}
	data := p.ToBinary3Arith()
	back, err := FromBinary3Arith(data, n)
	if err != nil {
		t.Fatalf("FromBinary3Arith: %v", err)
	}
	if !back.Equals(p) {
		t.Fatalf("round trip mismatch: got %v want %v", back.Coeffs, p.Coeffs)
	}
}

func TestFromBinary3ArithRejectsReservedPair(t *testing.T) {
	// 0xFF is four reserved 0b11 pairs.
	data := []byte{0xFF}
	if _, err := FromBinary3Arith(data, 4); err == nil {
		t.Fatal("expected InvalidArgument for reserved trit encoding")
	}
}

func TestFromBinary3TreatsReservedPairAsZero(t *testing.T) {
	data := []byte{0xFF}
	p := FromBinary3(data, 4)
	for i, v := range p.Coeffs {
		if v != 0 {
			t.Fatalf("coeff %d: got %d want 0 for reserved pair", i, v)
		}
	}
}
