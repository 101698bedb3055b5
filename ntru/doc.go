// Package ntru implements the polynomial arithmetic engine and the
// NTRUEncrypt public-key cryptosystem over the truncated ring
// R = Z[X]/(X^N-1).
//
// The package favors value-typed polynomials (dense, dense-ternary,
// sparse-ternary, product-form, big-integer, big-decimal) over an
// inheritance hierarchy: capability is expressed through the small
// ternaryPoly interface rather than a class tree. Secrets produced
// during key generation and encryption are zeroized explicitly once
// they are no longer needed.
package ntru
