package keys

import "encoding/base64"

// BasisType selects how a signing-basis row's second polynomial is
// packed: STANDARD shifts f' by +q/2 before encoding it, matching the
// convention NTRUSign's reference basis format uses so that a
// centered f' (which can be negative) round-trips through an
// unsigned wire encoding.
type BasisType int

const (
	Standard BasisType = iota
	Transpose
)

// SignBasis is the data-model encoding of one row of an NTRUSign
// private basis: a pair of ring elements (f, f'), plus h when the row
// index is nonzero (row 0's h is the public key itself and is not
// repeated). This package only models the wire encoding of a basis
// row; constructing or verifying an NTRUSign signature from it is out
// of scope here.
type SignBasis struct {
	Index int
	Type  BasisType
	N     int
	Q     int64
	F     string // base64 ToBinary(q) of f
	FPrime string // base64 ToBinary(q) of f' (shifted by +q/2 under Standard)
	H     string // base64 ToBinary(q) of h; empty when Index == 0
}

// EncodeSignBasis packs f and fPrime (fPrime already shifted by
// +q/2 if basisType is Standard) into their wire form.
func EncodeSignBasis(index int, basisType BasisType, n int, q int64, fBytes, fPrimeBytes, hBytes []byte) *SignBasis {
	sb := &SignBasis{
		Index:  index,
		Type:   basisType,
		N:      n,
		Q:      q,
		F:      base64.StdEncoding.EncodeToString(fBytes),
		FPrime: base64.StdEncoding.EncodeToString(fPrimeBytes),
	}
	if index > 0 {
		sb.H = base64.StdEncoding.EncodeToString(hBytes)
	}
	return sb
}

func (sb *SignBasis) FBytes() ([]byte, error)      { return base64.StdEncoding.DecodeString(sb.F) }
func (sb *SignBasis) FPrimeBytes() ([]byte, error) { return base64.StdEncoding.DecodeString(sb.FPrime) }
func (sb *SignBasis) HBytes() ([]byte, error)      { return base64.StdEncoding.DecodeString(sb.H) }

// DecodeSeed converts a base64 seed string to bytes.
func DecodeSeed(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

// EncodeSeed returns the base64 representation of seed bytes.
func EncodeSeed(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
