package ntru

// ProductFormPolynomial represents a ternary polynomial as
// f1*f2+f3 for three sparse ternary factors, following the NTRU
// "product-form" private-key representation: multiplication against
// it never materializes f1*f2 as a dense polynomial, so the cost of
// f*b stays O(N*(d1+d2+d3)) instead of O(N^2).
type ProductFormPolynomial struct {
	f1, f2, f3 *SparseTernaryPolynomial
}

// NewProductFormPolynomial wraps three sparse ternary factors.
func NewProductFormPolynomial(f1, f2, f3 *SparseTernaryPolynomial) *ProductFormPolynomial {
	return &ProductFormPolynomial{f1: f1, f2: f2, f3: f3}
}

// GenerateProductFormRandom draws three independent sparse ternary
// polynomials sized (df1,df1), (df2,df2), (df3,df3) respectively, per
// the product-form parameter convention.
func GenerateProductFormRandom(n, df1, df2, df3 int, oracle ByteOracle) (*ProductFormPolynomial, error) {
	f1, err := GenerateSparseTernaryRandom(n, df1, df1, oracle)
	if err != nil {
		return nil, err
	}
	f2, err := GenerateSparseTernaryRandom(n, df2, df2, oracle)
	if err != nil {
		return nil, err
	}
	f3, err := GenerateSparseTernaryRandom(n, df3, df3, oracle)
	if err != nil {
		return nil, err
	}
	return NewProductFormPolynomial(f1, f2, f3), nil
}

// Mult returns (f1*f2+f3)*b in R via the fold (((f1*b)*f2)+f3*b),
// reduced mod modulus if modulus > 0.
func (p *ProductFormPolynomial) Mult(b *IntegerPolynomial, modulus int64) *IntegerPolynomial {
	t := p.f1.Mult(b, modulus)
	t = p.f2.Mult(t, modulus)
	f3b := p.f3.Mult(b, modulus)
	return t.Add(f3b, modulus)
}

func (p *ProductFormPolynomial) mult(b *IntegerPolynomial, modulus int64) *IntegerPolynomial {
	return p.Mult(b, modulus)
}

// ToIntegerPolynomial materializes f1*f2+f3 as a dense polynomial.
func (p *ProductFormPolynomial) ToIntegerPolynomial() *IntegerPolynomial {
	f2Dense := p.f2.ToIntegerPolynomial()
	f1f2 := p.f1.Mult(f2Dense, 0)
	f3Dense := p.f3.ToIntegerPolynomial()
	return f1f2.Add(f3Dense, 0)
}

func (p *ProductFormPolynomial) toIntegerPolynomial() *IntegerPolynomial {
	return p.ToIntegerPolynomial()
}

func (p *ProductFormPolynomial) Clear() {
	p.f1.Clear()
	p.f2.Clear()
	p.f3.Clear()
}

func (p *ProductFormPolynomial) clear() { p.Clear() }

// ToBinary concatenates the three factors' ToBinary encodings in
// order f1, f2, f3.
func (p *ProductFormPolynomial) ToBinary() []byte {
	return append(append(p.f1.ToBinary(), p.f2.ToBinary()...), p.f3.ToBinary()...)
}

// FromProductFormBinary is the inverse of ToBinary given the expected
// (df1,df2,df3) sparsity of each factor.
func FromProductFormBinary(data []byte, n, df1, df2, df3 int) (*ProductFormPolynomial, error) {
	bitsPerIdx := ceilLog2(n)
	f1Bytes := (2*df1*bitsPerIdx + 7) / 8
	f2Bytes := (2*df2*bitsPerIdx + 7) / 8

	f1, err := FromSparseBinary(data, n, df1, df1)
	if err != nil {
		return nil, err
	}
	if len(data) < f1Bytes {
		return nil, newErr(IOError, "short read for product-form f1")
	}
	f2, err := FromSparseBinary(data[f1Bytes:], n, df2, df2)
	if err != nil {
		return nil, err
	}
	if len(data) < f1Bytes+f2Bytes {
		return nil, newErr(IOError, "short read for product-form f2")
	}
	f3, err := FromSparseBinary(data[f1Bytes+f2Bytes:], n, df3, df3)
	if err != nil {
		return nil, err
	}
	return NewProductFormPolynomial(f1, f2, f3), nil
}
