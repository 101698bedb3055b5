package ntru

// generateBlindingPoly derives the ephemeral blinding polynomial r
// (SVES step "generate r") deterministically from sData via the
// index generation function, drawing IGFIndexBits() bits per index
// and using the parameter set's sparsity
// (Dr for the sparse path, Dr1/Dr2/Dr3 for product-form). Both
// encryption and decryption call this with the same sData so that
// decryption's reconstructed r' can be compared against the r the
// sender actually used.
func generateBlindingPoly(params Params, sData []byte, hasher Hasher) ternaryPoly {
	g := newIGF(sData, params.N, hasher)
	g.c = uint(params.IGFIndexBits())
	for g.counter < uint32(params.MinCallsR) {
		g.refill()
	}
	if params.ProductForm() {
		r1 := genSparseFromIGF(g, params.Dr1)
		r2 := genSparseFromIGF(g, params.Dr2)
		r3 := genSparseFromIGF(g, params.Dr3)
		return NewProductFormPolynomial(r1, r2, r3)
	}
	return genSparseFromIGF(g, params.Dr)
}

// genSparseFromIGF draws count distinct +1 indices, then count
// further distinct -1 indices (disjoint from the +1 set), from g.
func genSparseFromIGF(g *igf, count int) *SparseTernaryPolynomial {
	used := make(map[int]bool, 2*count)
	draw := func() []int {
		out := make([]int, 0, count)
		for len(out) < count {
			idx := g.next()
			if used[idx] {
				continue
			}
			used[idx] = true
			out = append(out, idx)
		}
		return out
	}
	ones := draw()
	negOnes := draw()
	return NewSparseTernaryPolynomial(g.n, ones, negOnes)
}
