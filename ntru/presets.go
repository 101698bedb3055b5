package ntru

// Concrete NTRUEncrypt parameter sets, following the published
// EES/APR2011 reference catalog. Df/Dg/Dr are for the single
// sparse-ternary path; the product-form sets instead populate
// Df1/Df2/Df3 and Dr1/Dr2/Dr3 and leave Df/Dr at zero.

// APR2011_439 targets a 439-bit ring at the 128-bit security level,
// sparse-ternary representation.
func APR2011_439() Params {
	p := Params{
		Name: "APR2011_439", N: 439, Q: 2048, P: 3,
		Df: 9, Dg: 146, Dr: 9,
		Db: 112, Dm0: 112, MinCallsR: 32, MinCallsMask: 9,
		OID: [3]byte{0, 6, 1}, Sparse: true, FastFp: true,
	}
	p.deriveLengths()
	return p
}

// APR2011_439_FAST is APR2011_439's product-form counterpart.
func APR2011_439_FAST() Params {
	p := Params{
		Name: "APR2011_439_FAST", N: 439, Q: 2048, P: 3,
		Df1: 9, Df2: 8, Df3: 5, Dg: 146,
		Dr1: 9, Dr2: 8, Dr3: 5,
		Db: 112, Dm0: 112, MinCallsR: 32, MinCallsMask: 9,
		OID: [3]byte{0, 6, 3}, Sparse: true, FastFp: true,
	}
	p.deriveLengths()
	return p
}

// APR2011_743 targets the 256-bit security level, sparse-ternary.
func APR2011_743() Params {
	p := Params{
		Name: "APR2011_743", N: 743, Q: 2048, P: 3,
		Df: 11, Dg: 247, Dr: 11,
		Db: 248, Dm0: 248, MinCallsR: 32, MinCallsMask: 9,
		OID: [3]byte{0, 7, 1}, Sparse: true, FastFp: true,
	}
	p.deriveLengths()
	return p
}

// APR2011_743_FAST is APR2011_743's product-form counterpart.
func APR2011_743_FAST() Params {
	p := Params{
		Name: "APR2011_743_FAST", N: 743, Q: 2048, P: 3,
		Df1: 11, Df2: 11, Df3: 15, Dg: 247,
		Dr1: 11, Dr2: 11, Dr3: 15,
		Db: 248, Dm0: 248, MinCallsR: 32, MinCallsMask: 9,
		OID: [3]byte{0, 7, 3}, Sparse: true, FastFp: true,
	}
	p.deriveLengths()
	return p
}

// EES1087EP2 is a high-security legacy parameter set with a
// dense-ternary (non-sparse) private key.
func EES1087EP2() Params {
	p := Params{
		Name: "EES1087EP2", N: 1087, Q: 2048, P: 3,
		Df: 120, Dg: 362, Dr: 120,
		Db: 256, Dm0: 256, MinCallsR: 32, MinCallsMask: 9,
		OID: [3]byte{0, 8, 1}, Sparse: false, FastFp: false,
	}
	p.deriveLengths()
	return p
}

// AllPresets returns every catalog entry, in the order the OID
// catalog normally walks them.
func AllPresets() []Params {
	return []Params{
		APR2011_439(),
		APR2011_439_FAST(),
		APR2011_743(),
		APR2011_743_FAST(),
		EES1087EP2(),
	}
}
