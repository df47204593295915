package params

// P610 builds the process-wide parameter set for the 610-bit prime
// p = 2^67·3^175·5^119 − 1 (spec.md §1). Alice walks the 3-isogeny (e=175),
// Bob the 5-isogeny (e=119); the 2^67 cofactor keeps the curve
// supersingular with margin but is not walked by either ephemeral party
// (SPEC_FULL.md §4).
func P610() *Params {
	factors := []struct{ base, exp int64 }{
		{2, 67}, {3, 175}, {5, 119},
	}
	const words = 10    // ceil(610/64), rounded up to cover the +1 bit of p+1
	const fieldBytes = 77 // spec §6
	return build("p610", factors, words, fieldBytes, 175, 3, 119, 5, 1.0, 0.35)
}
