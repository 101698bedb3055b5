package ntru

const maxKeygenRetries = 100

// GenerateKeyPair runs NTRUEncrypt key generation: draw g (always
// sparse-ternary with Dg ones and Dg minus-ones) and f (or, under FastFp, F
// with f = 1 + p*F so f is automatically invertible mod p), retrying
// with fresh draws whenever f or fq turns out not to be invertible
// mod q. h = p*g*fq mod q is the public key; f and fp = f^-1 mod p
// make up the private key.
func GenerateKeyPair(params Params, oracle ByteOracle) (*KeyPair, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxKeygenRetries; attempt++ {
		f, fDense, err := generatePrivatePoly(params, oracle)
		if err != nil {
			return nil, err
		}

		var fq *IntegerPolynomial
		var fp *IntegerPolynomial
		var ok bool
		if params.FastFp {
			// f = 1 + p*F is always invertible mod p (fp = 1), and
			// invertible mod q whenever F alone is invertible mod q
			// once shifted the same way.
			fp = NewIntegerPolynomial(params.N)
			fp.Coeffs[0] = 1
			fq, ok = fDense.InvertFq(params.Q)
			if !ok {
				continue
			}
		} else {
			fq, ok = fDense.InvertFq(params.Q)
			if !ok {
				continue
			}
			fp, ok = fDense.InvertF3()
			if !ok {
				continue
			}
		}

		g, err := generateBlindingLikePoly(params.N, params.Dg, oracle)
		if err != nil {
			return nil, err
		}
		gDense := g.toIntegerPolynomial()

		h := gDense.Mult(fq, params.Q)
		h.Mult3(params.Q)
		fq.Clear()

		pub := &PublicKey{Params: params, H: h}
		priv := &PrivateKey{Params: params, F: f, Fp: fp}
		return &KeyPair{Public: pub, Private: priv}, nil
	}
	return nil, newErr(KeygenFailure, "exhausted %d key generation attempts", maxKeygenRetries)
}

// generatePrivatePoly draws f (or F, under FastFp) in the
// representation the parameter set calls for, returning both the
// ternaryPoly capability value stored in the private key and its
// dense form for inversion. Under FastFp the returned dense form is
// already shifted to 1+p*F.
func generatePrivatePoly(params Params, oracle ByteOracle) (ternaryPoly, *IntegerPolynomial, error) {
	var t ternaryPoly
	var err error
	// Under FastFp, f=1+p*F is invertible mod p regardless of F's
	// balance, so F is drawn with equal +1/-1 counts. Otherwise f
	// itself must be invertible mod 3, which needs the asymmetric
	// df/(df-1) weighting.
	dfNeg := params.Df
	if !params.FastFp {
		dfNeg = params.Df - 1
	}
	if params.ProductForm() {
		t, err = GenerateProductFormRandom(params.N, params.Df1, params.Df2, params.Df3, oracle)
	} else if params.Sparse {
		t, err = GenerateSparseTernaryRandom(params.N, params.Df, dfNeg, oracle)
	} else {
		t, err = GenerateDenseTernaryRandom(params.N, params.Df, dfNeg, oracle)
	}
	if err != nil {
		return nil, nil, err
	}
	dense := t.toIntegerPolynomial()
	if params.FastFp {
		shifted := dense.Clone()
		for i := range shifted.Coeffs {
			shifted.Coeffs[i] *= params.P
		}
		shifted.Coeffs[0] += 1
		return t, shifted, nil
	}
	return t, dense, nil
}

// generateBlindingLikePoly draws g as a sparse-ternary polynomial
// whatever representation the parameter set uses for f, since g needs
// no inversion and only ever appears through toIntegerPolynomial.
func generateBlindingLikePoly(n, weight int, oracle ByteOracle) (ternaryPoly, error) {
	return GenerateSparseTernaryRandom(n, weight, weight, oracle)
}
