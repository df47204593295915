package isogeny

import (
	"github.com/suhrikim/HuffSIDH/curve"
	"github.com/suhrikim/HuffSIDH/gf2"
)

// Isogeny5 computes and evaluates a single 5-isogeny via the d=(5-1)/2=2
// kernel-multiple product formula (evalOdd with K and [2]K).
//
// spec §4.4 notes the reference's Montgomery 5-isogeny additionally carries
// an auxiliary 2-torsion point through the whole walk, evaluated at every
// step alongside the basis triple. This module's codomain recovery (see
// isogeny.go) does not need that point — curve.RecoverA only consumes the
// pushed-forward probe basis — so it is not a field here; the walk engine
// preserves the reference's data-flow shape by tracking and evaluating it
// as an ordinary extra point for degree-5 Montgomery rows, using this
// type's own EvaluatePoint like any other point (see walk/walk.go and
// DESIGN.md's refinement of Open Question 2).
type Isogeny5 struct {
	f         *gf2.Field
	kernel    curve.Point
	kernel2   curve.Point // [2]K
}

func NewIsogeny5(f *gf2.Field) *Isogeny5 {
	return &Isogeny5{f: f}
}

// GenerateCurve consumes a kernel point of exact order 5 on the curve
// described by cv and returns the codomain curve constants plus the probe
// basis pushed through the same step.
func (phi *Isogeny5) GenerateCurve(cv curve.MontCoeffs, kernel, probeP, probeQ, probeQmP curve.Point) (curve.MontCoeffs, curve.Point, curve.Point, curve.Point) {
	phi.kernel = curve.Clone(phi.f, kernel)
	phi.kernel2 = curve.XDBL(phi.f, cv, kernel)

	newCv, phiP, phiQ, phiR := recoverCodomain(phi.f, phi.eval, probeP, probeQ, probeQmP)
	return newCv, phiP, phiQ, phiR
}

func (phi *Isogeny5) eval(p curve.Point) curve.Point {
	return evalOdd(phi.f, []curve.Point{phi.kernel, phi.kernel2}, p)
}

// EvaluatePoint pushes p through the isogeny generated by the last call to
// GenerateCurve.
func (phi *Isogeny5) EvaluatePoint(p curve.Point) curve.Point {
	return phi.eval(p)
}

// Coeffs exposes the two kernel multiples' raw coordinates.
func (phi *Isogeny5) Coeffs() Coeffs {
	return Coeffs{phi.kernel.X, phi.kernel.Z, phi.kernel2.X, phi.kernel2.Z}
}
