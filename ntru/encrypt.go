package ntru

const maxEncryptRetries = 100

// buildSData assembles the seed fed to the index generation function
// when deriving the blinding polynomial r: the parameter OID, the
// plaintext, the random padding bytes, and a pkLen/8-byte prefix of
// the public key's binary encoding, so that decryption can
// reconstruct the same r once it has recovered m and b from the
// ciphertext.
func buildSData(params Params, m, b []byte, h *IntegerPolynomial) []byte {
	bh := h.ToBinary(params.Q)
	hTrunc := bh[:params.PkLen/8]
	out := make([]byte, 0, len(params.OID)+len(m)+len(b)+len(hTrunc))
	out = append(out, params.OID[:]...)
	out = append(out, m...)
	out = append(out, b...)
	out = append(out, hTrunc...)
	return out
}

// packMessageBuffer lays out b || len(m) || m || zero-padding into a
// byte buffer exactly BufferLenBits/8 bytes long.
func packMessageBuffer(params Params, m, b []byte) []byte {
	buf := make([]byte, params.BufferLenBits/8)
	copy(buf, b)
	buf[len(b)] = byte(len(m))
	copy(buf[len(b)+1:], m)
	return buf
}

// Encrypt implements the SVES encryption procedure: pad the message
// into a fixed-width buffer, encode it as a ternary polynomial, mask
// it with an MGF-TP-1 stream keyed on r*h, and add the result to
// r*h to form the ciphertext. Encryption retries with fresh random
// padding whenever the masked message fails the dm0 balance test,
// which guards against a masked message representative that leaks
// information through a skewed coefficient distribution.
func Encrypt(pub *PublicKey, m []byte, hasher Hasher, oracle ByteOracle) ([]byte, error) {
	params := pub.Params
	if len(m) > params.MaxMsgLenBytes {
		return nil, newErr(InvalidArgument, "message too long: %d bytes, max %d", len(m), params.MaxMsgLenBytes)
	}

	for attempt := 0; attempt < maxEncryptRetries; attempt++ {
		b := make([]byte, params.Db/8)
		if err := oracle.Bytes(b); err != nil {
			return nil, err
		}

		buf := packMessageBuffer(params, m, b)
		mTrin := FromBinary3(buf, params.N)
		zeroBytes(buf)

		sData := buildSData(params, m, b, pub.H)
		r := generateBlindingPoly(params, sData, hasher)
		zeroBytes(sData)

		R := r.mult(pub.H, params.Q)
		R4 := R.Clone()
		R4.ModPositive(4)
		mask := MGFTP1(R4.ToBinary(4), params.N, params.MinCallsMask, hasher)

		masked := mTrin.Add(mask, 3)
		masked.Mod3()

		if !dm0Balanced(masked, params.Dm0) {
			r.clear()
			continue
		}

		e := R.Add(masked, params.Q)
		r.clear()
		return e.ToBinary(params.Q), nil
	}
	return nil, newErr(EncryptFailure, "exhausted %d encryption attempts", maxEncryptRetries)
}

// dm0Balanced reports whether p has at least min coefficients equal
// to each of -1, 0 and 1: the "dm0 test" that rejects masked message
// representatives whose coefficient distribution is too skewed.
func dm0Balanced(p *IntegerPolynomial, min int) bool {
	return p.Count(1) >= min && p.Count(0) >= min && p.Count(-1) >= min
}
