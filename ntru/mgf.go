package ntru

import "encoding/binary"

// MGFTP1 is mask generation function TP-1: it hashes seed || counter
// (a 32-bit big-endian counter starting at 0) with hasher repeatedly,
// concatenates the digests, truncates to numBytes, and decodes the
// result as a ternary polynomial via FromBinary3. numBytes is
// ceil((3*n+2)/2) so there are enough 2-bit trit slots for n
// coefficients; the number of hash calls is at least minCalls even
// if fewer would cover numBytes, since the reference parameter sets
// size minCallsMask as a security margin rather than strictly a
// coverage requirement.
func MGFTP1(seed []byte, n, minCalls int, hasher Hasher) *IntegerPolynomial {
	numBytes := (3*n + 2 + 1) / 2
	hashLen := hasher.Size()
	numCalls := (numBytes + hashLen - 1) / hashLen
	if numCalls < minCalls {
		numCalls = minCalls
	}

	buf := make([]byte, 0, numCalls*hashLen)
	for counter := uint32(0); counter < uint32(numCalls); counter++ {
		m := make([]byte, len(seed)+4)
		copy(m, seed)
		binary.BigEndian.PutUint32(m[len(seed):], counter)
		buf = append(buf, hasher.Hash(m)...)
	}
	if len(buf) > numBytes {
		buf = buf[:numBytes]
	}
	return FromBinary3(buf, n)
}
