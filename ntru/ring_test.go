package ntru

import "testing"

func TestNextPow2(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 11: 16, 439: 512, 1024: 1024}
	for n, want := range cases {
		if got := nextPow2(n); got != want {
			t.Fatalf("nextPow2(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestRingCrossCheckModRoundTrips(t *testing.T) {
	p := NewIntegerPolynomialFrom([]int64{1, 1, 0, 1, 0, 0, 1, 0, 0, 0, 0})
	// A small prime that isn't NTT-friendly for this degree still
	// returns true: the cross-check is skipped rather than failing.
	if !ringCrossCheckMod(p, 3) {
		t.Fatal("ringCrossCheckMod reported a mismatch for a skipped (non-NTT-friendly) prime")
	}
}

func TestResultantPrimeRingReportsUnavailability(t *testing.T) {
	// prime=2 is never NTT-friendly (NTT requires an odd prime
	// congruent to 1 mod 2*degree), so resultantPrimeRing must report
	// ok=false rather than constructing a broken ring.
	if _, ok := resultantPrimeRing(11, 2); ok {
		t.Fatal("expected resultantPrimeRing to reject prime=2 as non-NTT-friendly")
	}
}
