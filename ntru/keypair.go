package ntru

// ternaryPoly is the small capability interface that lets key
// generation and encryption treat dense-ternary, sparse-ternary and
// product-form private-key polynomials uniformly, without an
// inheritance hierarchy: each representation implements mult (for
// ring multiplication against a dense operand), toIntegerPolynomial
// (materializing the dense form when one is genuinely needed, e.g.
// for inversion) and clear (zeroizing the representation in place).
type ternaryPoly interface {
	mult(b *IntegerPolynomial, modulus int64) *IntegerPolynomial
	toIntegerPolynomial() *IntegerPolynomial
	clear()
}

// PublicKey is the public half of an NTRUEncrypt key pair: the
// parameter set and h = p*g*fq mod q.
type PublicKey struct {
	Params Params
	H      *IntegerPolynomial
}

// PrivateKey is the private half: f (or its fastFp predecessor F,
// with f = 1+p*F) together with fp = f^-1 mod p, kept so decryption
// never has to re-invert f.
type PrivateKey struct {
	Params Params
	F      ternaryPoly
	Fp     *IntegerPolynomial
}

// KeyPair bundles the two halves produced by GenerateKeyPair.
type KeyPair struct {
	Public  *PublicKey
	Private *PrivateKey
}

// Clear zeroizes the private polynomial and fp.
func (pk *PrivateKey) Clear() {
	if pk.F != nil {
		pk.F.clear()
	}
	if pk.Fp != nil {
		pk.Fp.Clear()
	}
}

// EncodeF serializes the private key's stored ternary representation
// (F itself under FastFp, not the shifted dense f) for persistence:
// a product-form key is written as the sparse encodings of f1, f2 and
// f3 concatenated, any other key as ToBinary3Tight of its coefficients.
func (pk *PrivateKey) EncodeF() []byte {
	if pf, ok := pk.F.(*ProductFormPolynomial); ok {
		return pf.ToBinary()
	}
	return pk.F.toIntegerPolynomial().ToBinary3Tight()
}

// DecodePrivateF reconstructs the ternaryPoly capability value stored
// in a private key from its persisted wire form, dispatching on the
// same product-form/sparse/dense representation choice
// generatePrivatePoly used to create it.
func DecodePrivateF(data []byte, params Params) (ternaryPoly, error) {
	if params.ProductForm() {
		return FromProductFormBinary(data, params.N, params.Df1, params.Df2, params.Df3)
	}
	dense, err := FromBinary3Tight(data, params.N)
	if err != nil {
		return nil, err
	}
	if params.Sparse {
		var ones, negOnes []int
		for i, c := range dense.Coeffs {
			if c == 1 {
				ones = append(ones, i)
			} else if c == -1 {
				negOnes = append(negOnes, i)
			}
		}
		return NewSparseTernaryPolynomial(params.N, ones, negOnes), nil
	}
	return NewDenseTernaryPolynomial(dense), nil
}
