package ntru

// zeroBytes overwrites buf with zeros in place; used to scrub seed
// material and decoded message buffers once they have served their
// purpose.
func zeroBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}

// zeroInts overwrites a coefficient slice with zeros in place.
func zeroInts(v []int64) {
	for i := range v {
		v[i] = 0
	}
}
