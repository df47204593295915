package params

// P751 builds the process-wide parameter set for the 751-bit prime
// p = 2^372·3^239 − 1 (spec.md §1). Alice walks the 4-isogeny (e=372, two
// doublings per row), Bob the 3-isogeny (e=239) — the classical SIDH split
// (SPEC_FULL.md §4).
func P751() *Params {
	factors := []struct{ base, exp int64 }{
		{2, 372}, {3, 239},
	}
	const words = 12     // ceil(751/64)
	const fieldBytes = 94 // spec §6
	return build("p751", factors, words, fieldBytes, 372, 4, 239, 3, 1.0, 0.35)
}
