package ntru

// denseF reconstructs the dense f = 1+p*F (FastFp) or f (otherwise)
// from the private key's stored ternary representation.
func (priv *PrivateKey) denseF() *IntegerPolynomial {
	dense := priv.F.toIntegerPolynomial()
	if priv.Params.FastFp {
		for i := range dense.Coeffs {
			dense.Coeffs[i] *= priv.Params.P
		}
		dense.Coeffs[0]++
	}
	return dense
}

// Decrypt implements the SVES decryption procedure. It recovers the
// masked message trinomial via f and fp, unmasks it with the same
// MGF-TP-1 stream encryption used, unpacks the padded buffer, and
// then re-derives the blinding polynomial the sender must have used
// from the recovered plaintext to check the ciphertext is
// self-consistent.
//
// The consistency check compares (r'*h + m') mod q against the
// received ciphertext e directly, rather than re-deriving r from e
// and comparing polynomials: comparing r' to a value extracted from
// e conflates a decode failure with a tamper signal and can leak
// which one occurred. Rebuilding the ciphertext-side equation and
// comparing against e keeps the check a single yes/no oracle.
func Decrypt(priv *PrivateKey, pub *PublicKey, ciphertext []byte, hasher Hasher) ([]byte, error) {
	params := priv.Params
	e, err := FromBinary(ciphertext, params.N, params.Q)
	if err != nil {
		return nil, err
	}

	f := priv.denseF()
	a := f.Mult(e, params.Q)
	a = a.Center0(params.Q)

	ci := a.Clone()
	ci.Mod3()

	mTrinCandidate := priv.Fp.Mult(ci, params.P)
	mTrinCandidate.Mod3()

	rH := e.Sub(mTrinCandidate, params.Q)
	rH.ModPositive(4)
	mask := MGFTP1(rH.ToBinary(4), params.N, params.MinCallsMask, hasher)

	msgTrin := mTrinCandidate.Sub(mask, 3)
	msgTrin.Mod3()

	if !dm0Balanced(mTrinCandidate, params.Dm0) {
		return nil, ErrDecryption
	}

	buf := msgTrin.ToBinary3Arith()
	if len(buf)*8 < params.BufferLenBits {
		return nil, ErrDecryption
	}
	buf = buf[:params.BufferLenBits/8]

	dbLen := params.Db / 8
	if dbLen+1 > len(buf) {
		return nil, ErrDecryption
	}
	b := buf[:dbLen]
	msgLen := int(buf[dbLen])
	if msgLen > params.MaxMsgLenBytes || dbLen+1+msgLen > len(buf) {
		return nil, ErrDecryption
	}
	m := append([]byte(nil), buf[dbLen+1:dbLen+1+msgLen]...)
	for _, tail := range buf[dbLen+1+msgLen:] {
		if tail != 0 {
			zeroBytes(buf)
			return nil, ErrDecryption
		}
	}
	zeroBytes(buf)

	sData := buildSData(params, m, b, pub.H)
	rPrime := generateBlindingPoly(params, sData, hasher)
	zeroBytes(sData)
	defer rPrime.clear()

	rPrimeH := rPrime.mult(pub.H, params.Q)
	check := rPrimeH.Add(mTrinCandidate, params.Q)
	if !check.Equals(e) {
		return nil, ErrDecryption
	}

	return m, nil
}
