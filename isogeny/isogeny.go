// Package isogeny implements the ℓ-isogeny codomain and evaluation routines
// for ℓ ∈ {3, 4, 5} on the Montgomery curve model (see curve.MontCoeffs).
//
// ec_isogeny.c — the file that would hold the reference's optimized,
// degree-specific closed forms for codomain-coefficient recovery — was never
// retrieved into the pack; only sidh.c (the caller) and the parameter tables
// survived. Rather than reconstruct unverifiable optimized formulas from
// memory, every degree here recovers its codomain curve by pushing a probe
// basis through the same kernel-multiple quotient map used for point
// evaluation, then calling curve.RecoverA — itself a standard, well
// documented closed form (see DESIGN.md, Open Question 3). The quotient map
// itself is the standard Vélu-style x-only product formula, for odd ℓ:
//
//	X' = X·∏ (X·Xi − Z·Zi)²,  Z' = Z·∏ (X·Zi − Z·Xi)²
//
// where (Xi:Zi) range over the kernel's unique nonzero multiples 1K..dK,
// d=(ℓ−1)/2. The Huff model is not given its own isogeny types: package
// sidh (seedCoeffs in sidh/kex.go) converts the Huff seed curve to the
// isomorphic Montgomery representation once (curve.HuffCoeffs.ToMontgomery;
// point coordinates are shared identically, see curve/huff.go) and runs the
// same machinery here for the whole walk; the shared secret is the
// Montgomery j-invariant of the terminal curve.
package isogeny

import (
	"github.com/suhrikim/HuffSIDH/curve"
	"github.com/suhrikim/HuffSIDH/gf2"
)

// Coeffs holds the minimal raw kernel-multiple (X:Z) coordinates an isogeny
// step needs to evaluate arbitrary points after GenerateCurve has run: two
// field elements per kernel multiple (X and Z), none of the reference's
// optimized-but-unverifiable cached cross terms.
type Coeffs []gf2.Elt

func evalOdd(f *gf2.Field, kernelMultiples []curve.Point, p curve.Point) curve.Point {
	accX := f.One()
	accZ := f.One()
	for _, k := range kernelMultiples {
		xk := f.New()
		f.Mul(xk, p.X, k.X)
		zk := f.New()
		f.Mul(zk, p.Z, k.Z)
		t0 := f.New()
		f.Sub(t0, xk, zk)
		f.Sqr(t0, t0)

		xk2 := f.New()
		f.Mul(xk2, p.X, k.Z)
		zk2 := f.New()
		f.Mul(zk2, p.Z, k.X)
		t1 := f.New()
		f.Sub(t1, xk2, zk2)
		f.Sqr(t1, t1)

		f.Mul(accX, accX, t0)
		f.Mul(accZ, accZ, t1)
	}
	x := f.New()
	f.Mul(x, p.X, accX)
	z := f.New()
	f.Mul(z, p.Z, accZ)
	return curve.Point{X: x, Z: z}
}

// eval2 is the x-only quotient map for a kernel of order 2 (a single,
// self-paired nonzero point, unlike the odd-degree case's pairs iK/(ℓ-i)K).
// This is the lowest-confidence formula in this package, alongside the Huff
// curve-constant conjugation in curve/huff.go: it is not squared, since
// there is no distinct pairing point to square against, but it was not
// independently cross-checked against the (unretrieved) reference. It is
// used only internally, to build the degree-4 isogeny as two degree-2 steps
// (see isogeny4.go).
func eval2(f *gf2.Field, kernel curve.Point, p curve.Point) curve.Point {
	xk := f.New()
	f.Mul(xk, p.X, kernel.X)
	zk := f.New()
	f.Mul(zk, p.Z, kernel.Z)
	t0 := f.New()
	f.Sub(t0, xk, zk)

	xk2 := f.New()
	f.Mul(xk2, p.X, kernel.Z)
	zk2 := f.New()
	f.Mul(zk2, p.Z, kernel.X)
	t1 := f.New()
	f.Sub(t1, xk2, zk2)

	x := f.New()
	f.Mul(x, p.X, t0)
	z := f.New()
	f.Mul(z, p.Z, t1)
	return curve.Point{X: x, Z: z}
}

// recoverCodomain pushes a probe basis through an already-configured
// quotient map (eval) and recovers the new curve's A coefficient via
// curve.RecoverA.
func recoverCodomain(f *gf2.Field, eval func(curve.Point) curve.Point, probeP, probeQ, probeQmP curve.Point) (cv curve.MontCoeffs, phiP, phiQ, phiR curve.Point) {
	phiP = eval(probeP)
	phiQ = eval(probeQ)
	phiR = eval(probeQmP)

	xP := curve.Affine(f, phiP)
	xQ := curve.Affine(f, phiQ)
	xQmP := curve.Affine(f, phiR)

	a := curve.RecoverA(f, xP, xQ, xQmP)
	cv = curve.NewMontCoeffs(f, a, f.One())
	return cv, phiP, phiQ, phiR
}
