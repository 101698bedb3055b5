package ntru

import ntruio "ntruenc/ntru/io"

// Params is an NTRUEncrypt parameter set: the ring dimension N, the
// large modulus q, the small modulus p (always 3), the sparsity
// knobs for the private-key and blinding polynomials, and the
// encoding/derivation constants used by key generation and SVES
// encrypt/decrypt.
type Params struct {
	Name string
	N    int
	Q    int64
	P    int64

	Df int // private-key f sparsity (dense-ternary/sparse path)
	Dr int // blinding polynomial r sparsity (sparse path)
	Dg int // private-key g sparsity

	// Product-form sparsity: when all three Df1..Df3 are nonzero
	// (see ProductForm), f = f1*f2+f3 and r = r1*r2+r3 instead of single sparse
	// ternary polynomials of weight Df/Dr.
	Df1, Df2, Df3 int
	Dr1, Dr2, Dr3 int

	Db           int   // number of random bits appended before hashing (multiple of 8)
	Dm0          int   // minimum number of -1/0/1 coefficients required in M (dm0 test)
	C            int   // IGF index bit parameter override; 0 means derive from N
	MinCallsR    int   // minimum IGF hash calls when generating the blinding polynomial
	MinCallsMask int   // minimum hash calls for MGF-TP-1
	OID          [3]byte
	Sparse       bool // true selects the sparse-ternary representation of f when not product-form
	FastFp       bool // true selects f = 1 + p*F so f is always invertible mod p

	MaxMsgLenBytes int
	BufferLenBits  int
	BufferLenTrits int
	PkLen          int
}

// Validate checks the internal consistency of a parameter set.
func (p Params) Validate() error {
	if p.N <= 0 {
		return newErr(InvalidArgument, "N must be positive")
	}
	if p.Q <= 0 {
		return newErr(InvalidArgument, "q must be positive")
	}
	if p.P != 3 {
		return newErr(InvalidArgument, "p must be 3")
	}
	if p.Db%8 != 0 {
		return newErr(InvalidArgument, "db must be a multiple of 8")
	}
	if p.Sparse {
		if p.Df1 > 0 || p.Df2 > 0 || p.Df3 > 0 {
			if p.Df1 <= 0 || p.Df2 <= 0 || p.Df3 <= 0 {
				return newErr(InvalidArgument, "product-form df1/df2/df3 must all be positive or all zero")
			}
		} else if p.Df <= 0 {
			return newErr(InvalidArgument, "df must be positive")
		}
	}
	return nil
}

// ProductForm reports whether f and r use the product-form
// representation rather than a single sparse-ternary polynomial.
func (p Params) ProductForm() bool {
	return p.Df1 > 0 && p.Df2 > 0 && p.Df3 > 0
}

// IGFIndexBits returns the c parameter (bits per IGF index draw).
func (p Params) IGFIndexBits() int {
	if p.C > 0 {
		return p.C
	}
	return ceilLog2(p.N)
}

// deriveLengths fills in MaxMsgLenBytes, BufferLenBits, BufferLenTrits
// and PkLen from N, Db and Dm0, following the SVES padding scheme:
// the buffer holds the random bits, a length byte, the message and
// zero padding, and is later read out of / packed into an N-trit
// polynomial via FromBinary3/ToBinary3Arith. BufferLenBits is
// ceil(3N/2) bits rounded up to a whole byte, matching the reference
// parameter tables; MaxMsgLenBytes is what remains of it after the
// Db random bits and the length byte.
func (p *Params) deriveLengths() {
	p.BufferLenTrits = p.N - 1
	p.BufferLenBits = ((p.N*3+1)/2 + 7) / 8 * 8
	p.MaxMsgLenBytes = p.BufferLenBits/8 - p.Db/8 - 1
	if p.MaxMsgLenBytes < 0 {
		p.MaxMsgLenBytes = 0
	}
	p.PkLen = p.Db / 2
}

// ApplyOverrides returns a copy of p with every non-nil field of o
// applied, re-deriving the dependent length fields afterward.
func ApplyOverrides(p Params, o ntruio.Overrides) Params {
	if o.N != nil {
		p.N = *o.N
	}
	if o.Q != nil {
		p.Q = *o.Q
	}
	if o.Df != nil {
		p.Df = *o.Df
	}
	if o.Dg != nil {
		p.Dg = *o.Dg
	}
	if o.Dr != nil {
		p.Dr = *o.Dr
	}
	if o.Db != nil {
		p.Db = *o.Db
	}
	if o.Dm0 != nil {
		p.Dm0 = *o.Dm0
	}
	if o.MinCallsR != nil {
		p.MinCallsR = *o.MinCallsR
	}
	if o.MinCallsMask != nil {
		p.MinCallsMask = *o.MinCallsMask
	}
	if o.Sparse != nil {
		p.Sparse = *o.Sparse
	}
	if o.FastFp != nil {
		p.FastFp = *o.FastFp
	}
	p.deriveLengths()
	return p
}
