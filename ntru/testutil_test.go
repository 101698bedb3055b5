package ntru

import "math/rand"

// mathRandOracle is a deterministic ByteOracle test double backed by
// math/rand, so tests don't depend on system entropy or pull in the
// lattigo PRNG for fixtures that only need reproducibility.
type mathRandOracle struct {
	r *rand.Rand
}

func newMathRandOracle(seed int64) *mathRandOracle {
	return &mathRandOracle{r: rand.New(rand.NewSource(seed))}
}

func (o *mathRandOracle) UniformInt(n int) (int, error) {
	if n <= 0 {
		return 0, newErr(InvalidArgument, "UniformInt: n must be positive")
	}
	return o.r.Intn(n), nil
}

func (o *mathRandOracle) Bytes(buf []byte) error {
	_, err := o.r.Read(buf)
	return err
}
