package ntru

import "math/big"

// roundRatToEven rounds a rational to the nearest integer, ties to
// even, matching IEEE 754 "round half to even" semantics over exact
// rational arithmetic. Used by BigIntPolynomial.Round.
func roundRatToEven(r *big.Rat) *big.Int {
	num := new(big.Int).Set(r.Num())
	den := new(big.Int).Set(r.Denom())

	neg := num.Sign() < 0
	if neg {
		num.Neg(num)
	}

	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	twice := new(big.Int).Lsh(rem, 1)
	cmp := twice.Cmp(den)

	switch {
	case cmp > 0:
		q.Add(q, big.NewInt(1))
	case cmp == 0:
		if q.Bit(0) == 1 {
			q.Add(q, big.NewInt(1))
		}
	}

	if neg {
		q.Neg(q)
	}
	return q
}
