package ntru

import "encoding/binary"

// igf is the Index Generation Function: a deterministic bit stream
// seeded from a hash of (seed || counter), sampled c = ceil(log2(N))
// bits at a time and rejection-sampled into [0,N) to avoid modulo
// bias. It refills its bit buffer by hashing an incrementing 32-bit
// big-endian counter appended to the seed, the same construction
// MGF-TP-1 uses for its own mask stream.
type igf struct {
	seed    []byte
	n       int
	c       uint
	hasher  Hasher
	counter uint32
	buf     []byte
	bitPos  int
}

// newIGF creates an index generator over [0,n) seeded from seed, with
// c = ceil(log2(n)); generateBlindingPoly then sets c from the
// parameter set's IGFIndexBits.
func newIGF(seed []byte, n int, hasher Hasher) *igf {
	return &igf{seed: seed, n: n, c: uint(ceilLog2(n)), hasher: hasher}
}

func (g *igf) remainingBits() int { return len(g.buf)*8 - g.bitPos }

func (g *igf) refill() {
	m := make([]byte, len(g.seed)+4)
	copy(m, g.seed)
	binary.BigEndian.PutUint32(m[len(g.seed):], g.counter)
	g.counter++
	g.buf = append(g.buf, g.hasher.Hash(m)...)
	g.compact()
}

// compact drops fully-consumed leading bytes so the buffer doesn't
// grow without bound across a long sampling run.
func (g *igf) compact() {
	consumedBytes := g.bitPos / 8
	if consumedBytes == 0 {
		return
	}
	g.buf = g.buf[consumedBytes:]
	g.bitPos -= consumedBytes * 8
}

// next returns the next uniformly distributed index in [0,n).
func (g *igf) next() int {
	total := int64(1) << g.c
	threshold := total - total%int64(g.n)
	for {
		for g.remainingBits() < int(g.c) {
			g.refill()
		}
		var v int64
		for b := uint(0); b < g.c; b++ {
			v <<= 1
			byteIdx := g.bitPos / 8
			bitIdx := 7 - g.bitPos%8
			if g.buf[byteIdx]&(1<<uint(bitIdx)) != 0 {
				v |= 1
			}
			g.bitPos++
		}
		if v < threshold {
			return int(v % int64(g.n))
		}
	}
}

// IGFSample draws count uniformly distributed, mutually independent
// indices in [0,n) from seed, exposed for the uniformity property
// test and the histogram tool.
func IGFSample(seed []byte, n, count int, hasher Hasher) []int {
	g := newIGF(seed, n, hasher)
	out := make([]int, count)
	for i := range out {
		out[i] = g.next()
	}
	return out
}
