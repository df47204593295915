// Package curve implements x-only projective elliptic-curve arithmetic over
// GF(p²) on two models: Montgomery (montgomery.go) and Huff (huff.go), plus
// the three-point ladder (ladder.go) shared by both. See spec.md §4.3 and
// DESIGN.md's Open Question entries for the Huff-model implementation
// strategy.
package curve

import "github.com/suhrikim/HuffSIDH/gf2"

// Point is an x-only projective point (X:Z); the affine x-coordinate is
// X/Z when Z != 0. A point at infinity is represented as (X,0) for any
// nonzero X (spec §3).
type Point struct {
	X, Z gf2.Elt
}

// New returns the zero-initialized point (0:0); callers must populate X,Z.
func New(f *gf2.Field) Point {
	return Point{X: f.New(), Z: f.New()}
}

// Clone returns a deep copy of p.
func Clone(f *gf2.Field, p Point) Point {
	return Point{X: f.Clone(p.X), Z: f.Clone(p.Z)}
}

// Infinity returns the representation of the identity element.
func Infinity(f *gf2.Field) Point {
	return Point{X: f.One(), Z: f.Zero()}
}

// Affine returns p's affine x-coordinate X/Z.
func Affine(f *gf2.Field, p Point) gf2.Elt {
	zinv := f.New()
	f.Inv(zinv, p.Z)
	x := f.New()
	f.Mul(x, p.X, zinv)
	return x
}

// CondSwap conditionally swaps p and q in place when mask is all-ones.
func CondSwap(f *gf2.Field, p, q Point, mask uint64) {
	f.CondSwap(p.X, q.X, mask)
	f.CondSwap(p.Z, q.Z, mask)
}

// Select sets z = p if mask is all-ones, else z = q.
func Select(f *gf2.Field, z, p, q Point, mask uint64) {
	f.Select(z.X, p.X, q.X, mask)
	f.Select(z.Z, p.Z, q.Z, mask)
}

// BatchInvert3 performs Montgomery's three-way simultaneous inversion of
// three Z-coordinates (spec §4.5 step 4): one Fp2 inversion instead of
// three, via z1z2z3 = z1*z2*z3, inv = 1/z1z2z3, then back-multiplying.
func BatchInvert3(f *gf2.Field, z1, z2, z3 gf2.Elt) (gf2.Elt, gf2.Elt, gf2.Elt) {
	z12 := f.New()
	f.Mul(z12, z1, z2)
	z123 := f.New()
	f.Mul(z123, z12, z3)

	inv123 := f.New()
	f.Inv(inv123, z123)

	inv1 := f.New()
	f.Mul(inv1, inv123, z2)
	f.Mul(inv1, inv1, z3)

	inv2 := f.New()
	f.Mul(inv2, inv123, z1)
	f.Mul(inv2, inv2, z3)

	inv3 := f.New()
	f.Mul(inv3, inv123, z1)
	f.Mul(inv3, inv3, z2)

	return inv1, inv2, inv3
}
