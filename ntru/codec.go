package ntru

// ToBinary packs the N coefficients of p as ceil(log2(q)) bits each,
// MSB-first within each coefficient, concatenated with no
// inter-coefficient padding; the final byte is zero-padded at the low
// bits. Coefficients are taken mod q (must already be in [0,q)).
func (p *IntegerPolynomial) ToBinary(q int64) []byte {
	bitsPerCoeff := ceilLog2(int(q))
	totalBits := bitsPerCoeff * p.N()
	out := make([]byte, (totalBits+7)/8)

	bitPos := 0
	for _, c := range p.Coeffs {
		for b := bitsPerCoeff - 1; b >= 0; b-- {
			bit := (c >> uint(b)) & 1
			if bit != 0 {
				out[bitPos/8] |= 1 << uint(7-bitPos%8)
			}
			bitPos++
		}
	}
	return out
}

// FromBinary unpacks n coefficients of ceil(log2(q)) bits each from
// data, MSB-first, inverse of ToBinary.
func FromBinary(data []byte, n int, q int64) (*IntegerPolynomial, error) {
	bitsPerCoeff := ceilLog2(int(q))
	needBits := bitsPerCoeff * n
	if len(data)*8 < needBits {
		return nil, newErr(IOError, "short read: need %d bits, have %d", needBits, len(data)*8)
	}
	p := NewIntegerPolynomial(n)
	bitPos := 0
	for i := 0; i < n; i++ {
		var v int64
		for b := 0; b < bitsPerCoeff; b++ {
			v <<= 1
			byteIdx := bitPos / 8
			bitIdx := 7 - bitPos%8
			if data[byteIdx]&(1<<uint(bitIdx)) != 0 {
				v |= 1
			}
			bitPos++
		}
		p.Coeffs[i] = v
	}
	return p, nil
}

// tritToBase3 maps a centered trit {-1,0,1} to the base-3 digit
// {0,1,2} used by the tight and arithmetic trit packings.
func tritToBase3(t int64) byte {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	case -1:
		return 2
	default:
		panic("tritToBase3: not a trit")
	}
}

func base3ToTrit(d byte) int64 {
	switch d {
	case 0:
		return 0
	case 1:
		return 1
	case 2:
		return -1
	default:
		panic("base3ToTrit: not a base-3 digit")
	}
}

// ToBinary3Tight packs 5 trits per byte as d = t0 + 3*t1 + 9*t2 +
// 27*t3 + 81*t4, trit mapping 0<->0, 1<->1, -1<->2. The final partial
// group of fewer than 5 trits packs identically with the missing
// high trits treated as 0.
func (p *IntegerPolynomial) ToBinary3Tight() []byte {
	n := p.N()
	out := make([]byte, (n+4)/5)
	for i := 0; i < n; i += 5 {
		var d int
		mul := 1
		for j := 0; j < 5 && i+j < n; j++ {
			d += int(tritToBase3(p.Coeffs[i+j])) * mul
			mul *= 3
		}
		out[i/5] = byte(d)
	}
	return out
}

// FromBinary3Tight is the inverse of ToBinary3Tight.
func FromBinary3Tight(data []byte, n int) (*IntegerPolynomial, error) {
	if len(data) < (n+4)/5 {
		return nil, newErr(IOError, "short read: need %d bytes, have %d", (n+4)/5, len(data))
	}
	p := NewIntegerPolynomial(n)
	for i := 0; i < n; i += 5 {
		d := int(data[i/5])
		for j := 0; j < 5 && i+j < n; j++ {
			p.Coeffs[i+j] = base3ToTrit(byte(d % 3))
			d /= 3
		}
	}
	return p, nil
}

// ToBinary3Arith packs 2 bits per trit, MSB-first within each byte:
// 00->0, 01->1, 10->-1. 11 is reserved and never emitted here.
func (p *IntegerPolynomial) ToBinary3Arith() []byte {
	n := p.N()
	out := make([]byte, (n*2+7)/8)
	bitPos := 0
	for _, c := range p.Coeffs {
		var bb byte
		switch c {
		case 0:
			bb = 0
		case 1:
			bb = 1
		case -1:
			bb = 2
		default:
			panic("ToBinary3Arith: not a trit")
		}
		for b := 1; b >= 0; b-- {
			bit := (bb >> uint(b)) & 1
			if bit != 0 {
				out[bitPos/8] |= 1 << uint(7-bitPos%8)
			}
			bitPos++
		}
	}
	return out
}

// FromBinary3Arith is the inverse of ToBinary3Arith; it rejects the
// reserved bit pair 0b11 with an InvalidArgument error.
func FromBinary3Arith(data []byte, n int) (*IntegerPolynomial, error) {
	needBits := n * 2
	if len(data)*8 < needBits {
		return nil, newErr(IOError, "short read: need %d bits, have %d", needBits, len(data)*8)
	}
	p := NewIntegerPolynomial(n)
	bitPos := 0
	for i := 0; i < n; i++ {
		var bb byte
		for b := 0; b < 2; b++ {
			bb <<= 1
			byteIdx := bitPos / 8
			bitIdx := 7 - bitPos%8
			if data[byteIdx]&(1<<uint(bitIdx)) != 0 {
				bb |= 1
			}
			bitPos++
		}
		switch bb {
		case 0:
			p.Coeffs[i] = 0
		case 1:
			p.Coeffs[i] = 1
		case 2:
			p.Coeffs[i] = -1
		default:
			return nil, newErr(InvalidArgument, "reserved trit encoding 0b11 at index %d", i)
		}
	}
	return p, nil
}

// FromBinary3 reads consecutive 2-bit pairs from data (same mapping
// as ToBinary3Arith) and fills n coefficients in order. It is the
// streaming decode used by the SVES message-to-trinomial step, where
// the reserved pair is treated as a don't-care zero rather than an
// error (the input there is hash output, not an adversarial wire
// ciphertext).
func FromBinary3(data []byte, n int) *IntegerPolynomial {
	p := NewIntegerPolynomial(n)
	bitPos := 0
	for i := 0; i < n; i++ {
		var bb byte
		for b := 0; b < 2; b++ {
			bb <<= 1
			byteIdx := bitPos / 8
			if byteIdx < len(data) {
				bitIdx := 7 - bitPos%8
				if data[byteIdx]&(1<<uint(bitIdx)) != 0 {
					bb |= 1
				}
			}
			bitPos++
		}
		switch bb {
		case 1:
			p.Coeffs[i] = 1
		case 2:
			p.Coeffs[i] = -1
		default:
			p.Coeffs[i] = 0
		}
	}
	return p
}
