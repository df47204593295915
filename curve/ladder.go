package curve

import "github.com/suhrikim/HuffSIDH/gf2"

// Ladder3Pt computes x(P + k*Q) from x(P), x(Q), x(P-Q), and a scalar k of
// exactly bitLen bits (spec §4.3's LADDER3PT), processing k from most to
// least significant bit.
//
// It runs the ordinary single-coordinate Montgomery ladder on Q alone —
// r0 = [s]Q, r1 = [s+1]Q, invariant r1-r0 = Q, the same swap/update/swap-back
// shape XMulSmall uses — and folds in a third accumulator v = P + [s]Q at
// the top of every round, before that round's conditional swap disturbs
// r0/r1's canonical roles. v always absorbs whichever of r0, r1 sits a
// constant difference away from it: r0 (diff x(P)) when the incoming bit is
// 0, r1 (diff x(P-Q)) when it is 1 — the only two offsets that stay fixed
// across the whole walk, which is what lets a single xADD handle both cases
// without branching on s. No branch or memory access depends on k.
func Ladder3Pt(f *gf2.Field, cv MontCoeffs, xP, xQ, xQmP gf2.Elt, k []byte, bitLen int) Point {
	r0 := Infinity(f)
	r1 := Point{X: f.Clone(xQ), Z: f.One()}
	v := Point{X: f.Clone(xP), Z: f.One()}

	diffQ := Point{X: f.Clone(xQ), Z: f.One()}
	diffP := Point{X: f.Clone(xP), Z: f.One()}
	diffQmP := Point{X: f.Clone(xQmP), Z: f.One()}

	for i := bitLen - 1; i >= 0; i-- {
		bit := bitAt(k, i)
		mask := uint64(0) - bit

		vOperand := New(f)
		Select(f, vOperand, r1, r0, mask)
		vDiff := New(f)
		Select(f, vDiff, diffQmP, diffP, mask)
		v = XADD(f, v, vOperand, vDiff)

		CondSwap(f, r0, r1, mask)
		r1 = XADD(f, r0, r1, diffQ)
		r0 = XDBL(f, cv, r0)
		CondSwap(f, r0, r1, mask)
	}
	return v
}

func bitAt(k []byte, i int) uint64 {
	byteIdx := i / 8
	if byteIdx >= len(k) {
		return 0
	}
	return uint64((k[byteIdx] >> uint(i%8)) & 1)
}
