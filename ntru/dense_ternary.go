package ntru

// DenseTernaryPolynomial is an IntegerPolynomial whose coefficients
// are restricted to {-1,0,1}. It exists as a named type so the
// ternaryPoly capability set (mult/toIntegerPolynomial/clear) can
// dispatch on representation without an inheritance hierarchy: dense,
// sparse and product-form ternary polynomials all implement it.
type DenseTernaryPolynomial struct {
	poly *IntegerPolynomial
}

// NewDenseTernaryPolynomial wraps an already-ternary IntegerPolynomial.
// It does not validate that every coefficient is in {-1,0,1}; callers
// that build from untrusted data should check first.
func NewDenseTernaryPolynomial(p *IntegerPolynomial) *DenseTernaryPolynomial {
	return &DenseTernaryPolynomial{poly: p}
}

// GenerateDenseTernaryRandom draws a uniform random dense ternary
// polynomial of degree < n with exactly numOnes coefficients equal to
// 1 and numNegOnes equal to -1, using oracle as the source of
// randomness. It lays down a fixed-length array with the requested
// counts and then applies a Fisher-Yates shuffle driven by rejection
// sampling over oracle, rather than rejection-sampling whole
// polynomials.
func GenerateDenseTernaryRandom(n, numOnes, numNegOnes int, oracle ByteOracle) (*DenseTernaryPolynomial, error) {
	coeffs := make([]int64, n)
	for i := 0; i < numOnes; i++ {
		coeffs[i] = 1
	}
	for i := numOnes; i < numOnes+numNegOnes; i++ {
		coeffs[i] = -1
	}
	for i := n - 1; i > 0; i-- {
		j, err := oracle.UniformInt(i + 1)
		if err != nil {
			return nil, err
		}
		coeffs[i], coeffs[j] = coeffs[j], coeffs[i]
	}
	return &DenseTernaryPolynomial{poly: NewIntegerPolynomialFrom(coeffs)}, nil
}

func (d *DenseTernaryPolynomial) mult(b *IntegerPolynomial, modulus int64) *IntegerPolynomial {
	return d.poly.Mult(b, modulus)
}

func (d *DenseTernaryPolynomial) toIntegerPolynomial() *IntegerPolynomial {
	return d.poly.Clone()
}

func (d *DenseTernaryPolynomial) clear() {
	d.poly.Clear()
}
